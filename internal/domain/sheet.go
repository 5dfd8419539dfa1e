package domain

import "time"

// AnswerSheet is a snapshot of one examinee's responses, keyed by question
// id. A missing key or nil choice means the question was not attempted.
// The sheet is owned by the caller; the grading engine never mutates it.
type AnswerSheet struct {
	Choices map[string]*int   `json:"choices,omitempty"`
	Fillins map[string]string `json:"fillins,omitempty"`
}

// ChoiceAnswer returns the selected option index for a question, or nil.
func (s *AnswerSheet) ChoiceAnswer(questionID string) *int {
	if s == nil || s.Choices == nil {
		return nil
	}
	return s.Choices[questionID]
}

// FillinAnswer returns the raw typed answer for a question, "" if untouched.
func (s *AnswerSheet) FillinAnswer(questionID string) string {
	if s == nil || s.Fillins == nil {
		return ""
	}
	return s.Fillins[questionID]
}

// Submission is one graded answer sheet, persisted for reporting.
type Submission struct {
	ID        string           `json:"id"`
	PaperID   string           `json:"paper_id"`
	SessionID string           `json:"session_id"`
	Sheet     AnswerSheet      `json:"sheet"`
	Summary   ObjectiveSummary `json:"summary"`
	CreatedAt time.Time        `json:"created_at"`
}
