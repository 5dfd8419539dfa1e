package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quizgrade/internal/cache"
	"quizgrade/internal/domain"
	"quizgrade/internal/logger"

	"go.uber.org/zap"
)

// DraftService stores in-progress answer sheets keyed by paper and session.
// Drafts are advisory: losing one costs the examinee typing, not a grade.
type DraftService interface {
	SaveDraft(ctx context.Context, paperID, sessionID string, sheet *domain.AnswerSheet) error
	GetDraft(ctx context.Context, paperID, sessionID string) (*domain.AnswerSheet, error)
	DeleteDraft(ctx context.Context, paperID, sessionID string) error
}

type draftService struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewDraftService creates a new instance of DraftService
func NewDraftService(c domain.Cache, ttl time.Duration) DraftService {
	return &draftService{cache: c, ttl: ttl}
}

// SaveDraft overwrites any previous draft for the same paper and session.
func (s *draftService) SaveDraft(ctx context.Context, paperID, sessionID string, sheet *domain.AnswerSheet) error {
	if sheet == nil {
		return domain.NewInvalidInputError("draft answer sheet is required")
	}
	data, err := json.Marshal(sheet)
	if err != nil {
		return domain.NewInternalError("failed to marshal draft", err)
	}
	key := cache.DraftKey(paperID, sessionID)
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError("failed to save draft", err)
	}
	return nil
}

// GetDraft returns (nil, nil) when no draft exists.
func (s *draftService) GetDraft(ctx context.Context, paperID, sessionID string) (*domain.AnswerSheet, error) {
	key := cache.DraftKey(paperID, sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to load draft", err)
	}
	var sheet domain.AnswerSheet
	if err := json.Unmarshal([]byte(data), &sheet); err != nil {
		// A corrupt draft is treated as absent rather than blocking the
		// examinee from continuing.
		logger.Get().Warn("discarding unreadable draft",
			zap.String("key", key),
			zap.Error(err))
		return nil, nil
	}
	return &sheet, nil
}

// DeleteDraft removes the draft after a successful submission.
func (s *draftService) DeleteDraft(ctx context.Context, paperID, sessionID string) error {
	key := cache.DraftKey(paperID, sessionID)
	if err := s.cache.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		return domain.NewInternalError("failed to delete draft", err)
	}
	return nil
}
