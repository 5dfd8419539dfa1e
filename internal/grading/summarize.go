package grading

import "quizgrade/internal/domain"

// Summarize grades every question on the paper against the answer sheet and
// derives the objective score summary. Questions are visited in declaration
// order. A question's weight always counts toward the section total and
// counts toward the score only on a true verdict; an untouched question is
// neither correct nor incorrect. The summary is built fresh on every call.
func Summarize(paper *domain.Paper, sheet *domain.AnswerSheet) domain.ObjectiveSummary {
	var summary domain.ObjectiveSummary

	choice := domain.SectionSummary{
		CorrectIDs:   []string{},
		IncorrectIDs: []string{},
	}
	for _, q := range paper.Choices {
		weight := q.EffectiveWeight()
		choice.Total += weight
		answer := sheet.ChoiceAnswer(q.ID)
		if GradeChoice(answer, q.Answer) {
			choice.Score += weight
			choice.CorrectIDs = append(choice.CorrectIDs, q.ID)
		} else if answer != nil {
			choice.IncorrectIDs = append(choice.IncorrectIDs, q.ID)
		}
	}

	fillin := domain.SectionSummary{
		CorrectIDs:   []string{},
		IncorrectIDs: []string{},
	}
	for _, q := range paper.Fillins {
		weight := q.EffectiveWeight()
		fillin.Total += weight
		input := sheet.FillinAnswer(q.ID)
		if GradeFillin(input, q.Rule) {
			fillin.Score += weight
			fillin.CorrectIDs = append(fillin.CorrectIDs, q.ID)
		} else if input != "" {
			fillin.IncorrectIDs = append(fillin.IncorrectIDs, q.ID)
		}
	}

	summary.Choice = choice
	summary.Fillin = fillin
	summary.Score = choice.Score + fillin.Score
	summary.Total = choice.Total + fillin.Total
	return summary
}
