package domain

import "context"

// PaperRepository is the persistence port for quiz documents.
type PaperRepository interface {
	GetPaperByID(ctx context.Context, id string) (*Paper, error)
	SavePaper(ctx context.Context, paper *Paper) error
	DeletePaper(ctx context.Context, id string) error
}

// SubmissionRepository persists graded answer sheets.
type SubmissionRepository interface {
	SaveSubmission(ctx context.Context, sub *Submission) error
	GetSubmissionByID(ctx context.Context, id string) (*Submission, error)
}

// FeedbackGenerator produces an optional study tip for a question the
// examinee got wrong. Implementations may call out to an LLM; the report
// works without one.
type FeedbackGenerator interface {
	StudyTip(ctx context.Context, questionText, expected, given string) (string, error)
}
