package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPaper() *Paper {
	return &Paper{
		Title: "Networking basics",
		Choices: []ChoiceQuestion{
			{ID: "c1", Text: "Pick", Options: []string{"a", "b"}, Answer: 1},
		},
		Fillins: []FillinQuestion{
			{ID: "f1", Text: "Protocol?", Rule: AnswerRule{Mode: RuleText, Answer: "tcp"}},
		},
	}
}

func TestPaper_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, validPaper().Validate())
	})

	t.Run("MissingTitle", func(t *testing.T) {
		p := validPaper()
		p.Title = ""
		errs := p.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "title", errs[0].Field)
	})

	t.Run("NoQuestions", func(t *testing.T) {
		p := &Paper{Title: "Empty"}
		assert.NotEmpty(t, p.Validate())
	})

	t.Run("DuplicateIDAcrossSections", func(t *testing.T) {
		p := validPaper()
		p.Fillins[0].ID = "c1"
		assert.NotEmpty(t, p.Validate())
	})

	t.Run("AnswerIndexOutOfRange", func(t *testing.T) {
		p := validPaper()
		p.Choices[0].Answer = 2
		assert.NotEmpty(t, p.Validate())
	})

	t.Run("UnknownRuleMode", func(t *testing.T) {
		p := validPaper()
		p.Fillins[0].Rule.Mode = "essay"
		errs := p.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "essay")
	})

	t.Run("CollectsMultipleFailures", func(t *testing.T) {
		p := validPaper()
		p.Title = ""
		p.Choices[0].Answer = -1
		assert.Len(t, p.Validate(), 2)
	})
}

func TestAnswerRule_CaseFold(t *testing.T) {
	f := false
	tr := true

	assert.True(t, AnswerRule{}.CaseFold())
	assert.True(t, AnswerRule{CaseInsensitive: &tr}.CaseFold())
	assert.False(t, AnswerRule{CaseInsensitive: &f}.CaseFold())
}

func TestQuestion_EffectiveWeight(t *testing.T) {
	assert.Equal(t, 1.0, ChoiceQuestion{}.EffectiveWeight())
	assert.Equal(t, 2.5, ChoiceQuestion{Weight: 2.5}.EffectiveWeight())
	assert.Equal(t, 1.0, FillinQuestion{Weight: -3}.EffectiveWeight())
}
