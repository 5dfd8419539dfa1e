package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"quizgrade/internal/domain"
	"quizgrade/internal/logger"

	"go.uber.org/zap"
)

const feedbackTimeout = 15 * time.Second

// renderReport builds the plaintext report for a graded submission. Question
// order follows the paper, not the sheet.
func (s *paperService) renderReport(ctx context.Context, paper *domain.Paper, sub *domain.Submission) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Report for %q\n", paper.Title)
	fmt.Fprintf(&b, "Submission: %s\n", sub.ID)
	fmt.Fprintf(&b, "Graded at:  %s\n", sub.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Score:      %s / %s\n\n", formatScore(sub.Summary.Score), formatScore(sub.Summary.Total))

	correct := make(map[string]bool)
	for _, id := range sub.Summary.Choice.CorrectIDs {
		correct[id] = true
	}
	for _, id := range sub.Summary.Fillin.CorrectIDs {
		correct[id] = true
	}

	if len(paper.Choices) > 0 {
		fmt.Fprintf(&b, "Choice questions (%s / %s)\n",
			formatScore(sub.Summary.Choice.Score), formatScore(sub.Summary.Choice.Total))
		for i, q := range paper.Choices {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
			fmt.Fprintf(&b, "   answered: %s  [%s]\n",
				choiceAnswerText(q, sub.Sheet.ChoiceAnswer(q.ID)), verdict(correct[q.ID]))
		}
		b.WriteString("\n")
	}

	if len(paper.Fillins) > 0 {
		fmt.Fprintf(&b, "Fill-in questions (%s / %s)\n",
			formatScore(sub.Summary.Fillin.Score), formatScore(sub.Summary.Fillin.Total))
		for i, q := range paper.Fillins {
			given := sub.Sheet.FillinAnswer(q.ID)
			fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
			fmt.Fprintf(&b, "   answered: %s  [%s]\n", displayAnswer(given), verdict(correct[q.ID]))
			if !correct[q.ID] && given != "" {
				if tip := s.studyTip(ctx, q, given); tip != "" {
					fmt.Fprintf(&b, "   tip: %s\n", tip)
				}
			}
		}
	}

	return b.String()
}

// studyTip asks the feedback generator for a hint on a wrong answer. Any
// failure degrades to no tip.
func (s *paperService) studyTip(ctx context.Context, q domain.FillinQuestion, given string) string {
	if s.feedback == nil {
		return ""
	}
	tipCtx, cancel := context.WithTimeout(ctx, feedbackTimeout)
	defer cancel()

	tip, err := s.feedback.StudyTip(tipCtx, q.Text, expectedAnswerText(q.Rule), given)
	if err != nil {
		logger.Get().Warn("feedback generator failed",
			zap.String("questionID", q.ID),
			zap.Error(err))
		return ""
	}
	return strings.TrimSpace(tip)
}

func choiceAnswerText(q domain.ChoiceQuestion, answer *int) string {
	if answer == nil {
		return "(blank)"
	}
	if *answer >= 0 && *answer < len(q.Options) {
		return q.Options[*answer]
	}
	return fmt.Sprintf("option %d", *answer)
}

// expectedAnswerText renders the canonical answer of a rule for the feedback
// prompt. Regex rules expose the pattern itself.
func expectedAnswerText(rule domain.AnswerRule) string {
	switch rule.Mode {
	case domain.RuleNumber:
		return strconv.FormatFloat(rule.Value, 'f', -1, 64)
	case domain.RuleRegex:
		return rule.Pattern
	default:
		return rule.Answer
	}
}

func displayAnswer(given string) string {
	if given == "" {
		return "(blank)"
	}
	return given
}

func verdict(ok bool) string {
	if ok {
		return "correct"
	}
	return "incorrect"
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
