package service

import (
	"context"
	"fmt"

	"quizgrade/internal/domain"
	"quizgrade/internal/dto"
	"quizgrade/internal/grading"
	"quizgrade/internal/logger"

	"go.uber.org/zap"
)

// PaperService covers the paper lifecycle: authoring, delivery to examinees,
// grading a submitted sheet, and exporting a report for a past submission.
type PaperService interface {
	CreatePaper(ctx context.Context, req *dto.CreatePaperRequest) (*dto.CreatePaperResponse, error)
	GetPaper(ctx context.Context, paperID string) (*dto.PaperResponse, error)
	DeletePaper(ctx context.Context, paperID string) error
	Grade(ctx context.Context, paperID, sessionID string, sheet *domain.AnswerSheet) (*dto.GradeResponse, error)
	GetReport(ctx context.Context, submissionID string) (string, error)
}

type paperService struct {
	papers      domain.PaperRepository
	submissions domain.SubmissionRepository
	drafts      DraftService
	feedback    domain.FeedbackGenerator
}

// NewPaperService creates a new instance of PaperService. feedback may be
// nil, in which case reports carry no study tips.
func NewPaperService(
	papers domain.PaperRepository,
	submissions domain.SubmissionRepository,
	drafts DraftService,
	feedback domain.FeedbackGenerator,
) PaperService {
	return &paperService{
		papers:      papers,
		submissions: submissions,
		drafts:      drafts,
		feedback:    feedback,
	}
}

// CreatePaper validates and persists a new paper document.
func (s *paperService) CreatePaper(ctx context.Context, req *dto.CreatePaperRequest) (*dto.CreatePaperResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("paper document is required")
	}
	paper := req.ToDomain()
	if errs := paper.Validate(); len(errs) > 0 {
		return nil, errs
	}
	if err := s.papers.SavePaper(ctx, paper); err != nil {
		return nil, domain.NewInternalError("failed to save paper", err)
	}
	logger.Get().Info("paper created",
		zap.String("paperID", paper.ID),
		zap.Int("choices", len(paper.Choices)),
		zap.Int("fillins", len(paper.Fillins)))
	return &dto.CreatePaperResponse{ID: paper.ID}, nil
}

// GetPaper returns the examinee view of a paper, without answers or rules.
func (s *paperService) GetPaper(ctx context.Context, paperID string) (*dto.PaperResponse, error) {
	paper, err := s.loadPaper(ctx, paperID)
	if err != nil {
		return nil, err
	}
	return dto.NewPaperResponse(paper), nil
}

// DeletePaper soft-deletes a paper.
func (s *paperService) DeletePaper(ctx context.Context, paperID string) error {
	if _, err := s.loadPaper(ctx, paperID); err != nil {
		return err
	}
	if err := s.papers.DeletePaper(ctx, paperID); err != nil {
		return domain.NewInternalError("failed to delete paper", err)
	}
	return nil
}

// Grade scores a submitted answer sheet against its paper, persists the
// submission, and clears the session's draft.
func (s *paperService) Grade(ctx context.Context, paperID, sessionID string, sheet *domain.AnswerSheet) (*dto.GradeResponse, error) {
	if sheet == nil {
		return nil, domain.NewInvalidInputError("answer sheet is required")
	}
	paper, err := s.loadPaper(ctx, paperID)
	if err != nil {
		return nil, err
	}

	summary := grading.Summarize(paper, sheet)

	sub := &domain.Submission{
		PaperID:   paperID,
		SessionID: sessionID,
		Sheet:     *sheet,
		Summary:   summary,
	}
	if err := s.submissions.SaveSubmission(ctx, sub); err != nil {
		return nil, domain.NewInternalError("failed to save submission", err)
	}

	// The sheet is now graded, so the draft has served its purpose. A
	// failed delete only means the key lingers until its TTL.
	if err := s.drafts.DeleteDraft(ctx, paperID, sessionID); err != nil {
		logger.Get().Warn("failed to delete draft after grading",
			zap.String("paperID", paperID),
			zap.String("sessionID", sessionID),
			zap.Error(err))
	}

	logger.Get().Info("graded submission",
		zap.String("submissionID", sub.ID),
		zap.String("paperID", paperID),
		zap.Float64("score", summary.Score),
		zap.Float64("total", summary.Total))

	return &dto.GradeResponse{
		SubmissionID: sub.ID,
		Summary:      dto.NewSummaryResponse(summary),
	}, nil
}

// GetReport renders a plaintext report for a stored submission.
func (s *paperService) GetReport(ctx context.Context, submissionID string) (string, error) {
	sub, err := s.submissions.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return "", domain.NewInternalError("failed to load submission", err)
	}
	if sub == nil {
		return "", domain.NewSubmissionNotFoundError(submissionID)
	}
	paper, err := s.loadPaper(ctx, sub.PaperID)
	if err != nil {
		return "", err
	}
	return s.renderReport(ctx, paper, sub), nil
}

func (s *paperService) loadPaper(ctx context.Context, paperID string) (*domain.Paper, error) {
	if paperID == "" {
		return nil, domain.NewInvalidInputError("paper ID is required")
	}
	paper, err := s.papers.GetPaperByID(ctx, paperID)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to load paper %s", paperID), err)
	}
	if paper == nil {
		return nil, domain.NewPaperNotFoundError(paperID)
	}
	return paper, nil
}
