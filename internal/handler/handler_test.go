package handler

import (
	"context"
	"net/http"
	"time"

	"quizgrade/internal/domain"
	"quizgrade/internal/dto"
	"quizgrade/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type mockAuthService struct {
	CreateSessionFn func(ctx context.Context) (*dto.SessionResponse, error)
	ValidateTokenFn func(ctx context.Context, token string) (*dto.AuthClaims, error)
}

func (m *mockAuthService) CreateSession(ctx context.Context) (*dto.SessionResponse, error) {
	return m.CreateSessionFn(ctx)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (*dto.AuthClaims, error) {
	return m.ValidateTokenFn(ctx, token)
}

type mockPaperService struct {
	CreatePaperFn func(ctx context.Context, req *dto.CreatePaperRequest) (*dto.CreatePaperResponse, error)
	GetPaperFn    func(ctx context.Context, paperID string) (*dto.PaperResponse, error)
	DeletePaperFn func(ctx context.Context, paperID string) error
	GradeFn       func(ctx context.Context, paperID, sessionID string, sheet *domain.AnswerSheet) (*dto.GradeResponse, error)
	GetReportFn   func(ctx context.Context, submissionID string) (string, error)
}

func (m *mockPaperService) CreatePaper(ctx context.Context, req *dto.CreatePaperRequest) (*dto.CreatePaperResponse, error) {
	return m.CreatePaperFn(ctx, req)
}

func (m *mockPaperService) GetPaper(ctx context.Context, paperID string) (*dto.PaperResponse, error) {
	return m.GetPaperFn(ctx, paperID)
}

func (m *mockPaperService) DeletePaper(ctx context.Context, paperID string) error {
	return m.DeletePaperFn(ctx, paperID)
}

func (m *mockPaperService) Grade(ctx context.Context, paperID, sessionID string, sheet *domain.AnswerSheet) (*dto.GradeResponse, error) {
	return m.GradeFn(ctx, paperID, sessionID, sheet)
}

func (m *mockPaperService) GetReport(ctx context.Context, submissionID string) (string, error) {
	return m.GetReportFn(ctx, submissionID)
}

type mockDraftService struct {
	SaveDraftFn   func(ctx context.Context, paperID, sessionID string, sheet *domain.AnswerSheet) error
	GetDraftFn    func(ctx context.Context, paperID, sessionID string) (*domain.AnswerSheet, error)
	DeleteDraftFn func(ctx context.Context, paperID, sessionID string) error
}

func (m *mockDraftService) SaveDraft(ctx context.Context, paperID, sessionID string, sheet *domain.AnswerSheet) error {
	return m.SaveDraftFn(ctx, paperID, sessionID, sheet)
}

func (m *mockDraftService) GetDraft(ctx context.Context, paperID, sessionID string) (*domain.AnswerSheet, error) {
	return m.GetDraftFn(ctx, paperID, sessionID)
}

func (m *mockDraftService) DeleteDraft(ctx context.Context, paperID, sessionID string) error {
	return m.DeleteDraftFn(ctx, paperID, sessionID)
}

// stubAuth accepts the token "valid" as session "sess1" and rejects anything
// else, matching how the protected route tests authenticate.
func stubAuth() *mockAuthService {
	return &mockAuthService{
		CreateSessionFn: func(ctx context.Context) (*dto.SessionResponse, error) {
			return &dto.SessionResponse{
				SessionID: "sess1",
				Token:     "valid",
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
		ValidateTokenFn: func(ctx context.Context, token string) (*dto.AuthClaims, error) {
			if token != "valid" {
				return nil, domain.NewUnauthorizedError("invalid or expired session token")
			}
			return &dto.AuthClaims{SessionID: "sess1", TokenType: "session"}, nil
		},
	}
}

func setupTestApp(auth *mockAuthService, papers *mockPaperService, drafts *mockDraftService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	sessionHandler := NewSessionHandler(auth)
	paperHandler := NewPaperHandler(papers, drafts)

	protected := middleware.Protected(auth)
	admin := middleware.AdminOnly("admin-key")

	api := app.Group("/api")
	api.Post("/sessions", sessionHandler.CreateSession)
	api.Get("/papers/:id", paperHandler.GetPaper)

	api.Put("/papers/:id/draft", protected, paperHandler.SaveDraft)
	api.Get("/papers/:id/draft", protected, paperHandler.GetDraft)
	api.Post("/papers/:id/grade", protected, paperHandler.Grade)
	api.Get("/submissions/:id/report", protected, paperHandler.GetReport)

	api.Post("/papers", admin, paperHandler.CreatePaper)
	api.Delete("/papers/:id", admin, paperHandler.DeletePaper)

	return app
}

func authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer valid")
	return req
}
