package grading

import (
	"testing"

	"quizgrade/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testPaper() *domain.Paper {
	return &domain.Paper{
		ID:    "p1",
		Title: "Networking basics",
		Choices: []domain.ChoiceQuestion{
			{ID: "c1", Text: "Pick one", Options: []string{"a", "b"}, Answer: 1},
			{ID: "c2", Text: "Pick one", Options: []string{"a", "b"}, Answer: 0, Weight: 2},
		},
		Fillins: []domain.FillinQuestion{
			{ID: "f1", Text: "Protocol?", Rule: domain.AnswerRule{Mode: domain.RuleText, Answer: "tcp"}, Weight: 2},
			{ID: "f2", Text: "Port?", Rule: domain.AnswerRule{Mode: domain.RuleNumber, Value: 443}, Weight: 3},
		},
	}
}

func TestSummarize(t *testing.T) {
	paper := testPaper()
	sheet := &domain.AnswerSheet{
		Choices: map[string]*int{
			"c1": intPtr(1), // correct
			"c2": intPtr(1), // wrong
		},
		Fillins: map[string]string{
			"f1": "TCP", // correct after case folding
			"f2": "80",  // wrong
		},
	}

	summary := Summarize(paper, sheet)

	assert.Equal(t, []string{"c1"}, summary.Choice.CorrectIDs)
	assert.Equal(t, []string{"c2"}, summary.Choice.IncorrectIDs)
	assert.Equal(t, 1.0, summary.Choice.Score)
	assert.Equal(t, 3.0, summary.Choice.Total)

	assert.Equal(t, []string{"f1"}, summary.Fillin.CorrectIDs)
	assert.Equal(t, []string{"f2"}, summary.Fillin.IncorrectIDs)
	assert.Equal(t, 2.0, summary.Fillin.Score)
	assert.Equal(t, 5.0, summary.Fillin.Total)

	assert.Equal(t, 3.0, summary.Score)
	assert.Equal(t, 8.0, summary.Total)
}

func TestSummarize_BlankIsNotIncorrect(t *testing.T) {
	paper := &domain.Paper{
		ID: "p2",
		Fillins: []domain.FillinQuestion{
			{ID: "q1", Rule: domain.AnswerRule{Mode: domain.RuleText, Answer: "x"}, Weight: 2},
			{ID: "q2", Rule: domain.AnswerRule{Mode: domain.RuleText, Answer: "y"}, Weight: 3},
		},
	}
	sheet := &domain.AnswerSheet{
		Fillins: map[string]string{"q1": "x"},
	}

	summary := Summarize(paper, sheet)

	assert.Equal(t, 2.0, summary.Fillin.Score)
	assert.Equal(t, 5.0, summary.Fillin.Total)
	assert.Equal(t, []string{"q1"}, summary.Fillin.CorrectIDs)
	assert.Empty(t, summary.Fillin.IncorrectIDs)
}

func TestSummarize_DefaultWeightIsOne(t *testing.T) {
	paper := &domain.Paper{
		ID: "p3",
		Choices: []domain.ChoiceQuestion{
			{ID: "c1", Options: []string{"a", "b"}, Answer: 0},
		},
		Fillins: []domain.FillinQuestion{
			{ID: "f1", Rule: domain.AnswerRule{Mode: domain.RuleText, Answer: "x"}},
		},
	}
	summary := Summarize(paper, &domain.AnswerSheet{})

	assert.Equal(t, 1.0, summary.Choice.Total)
	assert.Equal(t, 1.0, summary.Fillin.Total)
	assert.Equal(t, 0.0, summary.Score)
	assert.Equal(t, 2.0, summary.Total)
}

func TestSummarize_EmptySheet(t *testing.T) {
	paper := testPaper()
	summary := Summarize(paper, &domain.AnswerSheet{})

	assert.Empty(t, summary.Choice.CorrectIDs)
	assert.Empty(t, summary.Choice.IncorrectIDs)
	assert.Empty(t, summary.Fillin.CorrectIDs)
	assert.Empty(t, summary.Fillin.IncorrectIDs)
	assert.Equal(t, 0.0, summary.Score)
	assert.Equal(t, 8.0, summary.Total)
}
