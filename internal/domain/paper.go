package domain

import (
	"fmt"
	"time"
)

// RuleMode discriminates the answer-rule union. The set is closed; anything
// else in an imported document grades false rather than failing the paper.
type RuleMode string

const (
	RuleText   RuleMode = "text"
	RuleRegex  RuleMode = "regex"
	RuleNumber RuleMode = "number"
	RuleDate   RuleMode = "date"
)

// AnswerRule is the author-defined grading rule for one fill-in question.
// Which fields are meaningful depends on Mode:
//
//	text:   Answer / Accept, CaseInsensitive (default true), NormalizeZh
//	regex:  Pattern, matched against the raw user string
//	number: Value, Tolerance (default 0)
//	date:   Answer / Accept as calendar date strings in any supported style
type AnswerRule struct {
	Mode            RuleMode `json:"mode"`
	Answer          string   `json:"answer,omitempty"`
	Accept          []string `json:"accept,omitempty"`
	CaseInsensitive *bool    `json:"case_insensitive,omitempty"`
	NormalizeZh     bool     `json:"normalize_zh,omitempty"`
	Pattern         string   `json:"pattern,omitempty"`
	Value           float64  `json:"value,omitempty"`
	Tolerance       float64  `json:"tolerance,omitempty"`
}

// CaseFold reports whether text comparison should be case-insensitive.
// Unset means yes.
func (r AnswerRule) CaseFold() bool {
	return r.CaseInsensitive == nil || *r.CaseInsensitive
}

// ChoiceQuestion is a single-choice question graded by option index.
type ChoiceQuestion struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  int      `json:"answer"`
	Weight  float64  `json:"weight,omitempty"`
}

// FillinQuestion is a free-form question graded by its AnswerRule.
type FillinQuestion struct {
	ID     string     `json:"id"`
	Text   string     `json:"text"`
	Rule   AnswerRule `json:"rule"`
	Weight float64    `json:"weight,omitempty"`
}

// Paper is one quiz document: two sections in declaration order.
// Documents are validated on import; the grading engine itself treats any
// remaining malformation as a false verdict, never an error.
type Paper struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Choices   []ChoiceQuestion `json:"choices"`
	Fillins   []FillinQuestion `json:"fillins"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Validate checks a paper document on import and returns every failure, not
// just the first. A nil result means the document is well formed.
func (p *Paper) Validate() ValidationErrors {
	var errs ValidationErrors
	if p.Title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "is required"})
	}
	if len(p.Choices) == 0 && len(p.Fillins) == 0 {
		errs = append(errs, ValidationError{Field: "questions", Message: "paper has no questions"})
	}
	seen := make(map[string]struct{}, len(p.Choices)+len(p.Fillins))
	for i, q := range p.Choices {
		field := fmt.Sprintf("choices[%d]", i)
		if q.ID == "" {
			errs = append(errs, ValidationError{Field: field, Message: "question id is required"})
			continue
		}
		if _, dup := seen[q.ID]; dup {
			errs = append(errs, ValidationError{Field: field, Message: "duplicate question id: " + q.ID})
		}
		seen[q.ID] = struct{}{}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			errs = append(errs, ValidationError{Field: field, Message: "answer index out of range"})
		}
	}
	for i, q := range p.Fillins {
		field := fmt.Sprintf("fillins[%d]", i)
		if q.ID == "" {
			errs = append(errs, ValidationError{Field: field, Message: "question id is required"})
			continue
		}
		if _, dup := seen[q.ID]; dup {
			errs = append(errs, ValidationError{Field: field, Message: "duplicate question id: " + q.ID})
		}
		seen[q.ID] = struct{}{}
		switch q.Rule.Mode {
		case RuleText, RuleRegex, RuleNumber, RuleDate:
		default:
			errs = append(errs, ValidationError{Field: field, Message: "unknown rule mode: " + string(q.Rule.Mode)})
		}
	}
	return errs
}

// EffectiveWeight returns the declared weight, or 1 when none is declared.
func (q ChoiceQuestion) EffectiveWeight() float64 {
	if q.Weight <= 0 {
		return 1
	}
	return q.Weight
}

func (q FillinQuestion) EffectiveWeight() float64 {
	if q.Weight <= 0 {
		return 1
	}
	return q.Weight
}
