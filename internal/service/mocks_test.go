package service

import (
	"context"
	"sync"
	"time"

	"quizgrade/internal/domain"
)

type mockPaperRepo struct {
	GetPaperByIDFn func(ctx context.Context, id string) (*domain.Paper, error)
	SavePaperFn    func(ctx context.Context, paper *domain.Paper) error
	DeletePaperFn  func(ctx context.Context, id string) error
}

func (m *mockPaperRepo) GetPaperByID(ctx context.Context, id string) (*domain.Paper, error) {
	return m.GetPaperByIDFn(ctx, id)
}

func (m *mockPaperRepo) SavePaper(ctx context.Context, paper *domain.Paper) error {
	return m.SavePaperFn(ctx, paper)
}

func (m *mockPaperRepo) DeletePaper(ctx context.Context, id string) error {
	return m.DeletePaperFn(ctx, id)
}

type mockSubmissionRepo struct {
	SaveSubmissionFn    func(ctx context.Context, sub *domain.Submission) error
	GetSubmissionByIDFn func(ctx context.Context, id string) (*domain.Submission, error)
}

func (m *mockSubmissionRepo) SaveSubmission(ctx context.Context, sub *domain.Submission) error {
	return m.SaveSubmissionFn(ctx, sub)
}

func (m *mockSubmissionRepo) GetSubmissionByID(ctx context.Context, id string) (*domain.Submission, error) {
	return m.GetSubmissionByIDFn(ctx, id)
}

// mapCache is an in-memory domain.Cache for draft tests.
type mapCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string]string)}
}

func (c *mapCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *mapCache) Ping(ctx context.Context) error { return nil }

type mockFeedback struct {
	StudyTipFn func(ctx context.Context, questionText, expected, given string) (string, error)
}

func (m *mockFeedback) StudyTip(ctx context.Context, questionText, expected, given string) (string, error) {
	return m.StudyTipFn(ctx, questionText, expected, given)
}

func intPtr(v int) *int { return &v }
