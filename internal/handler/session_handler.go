package handler

import (
	"quizgrade/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler issues anonymous examinee sessions.
type SessionHandler struct {
	authService service.AuthService
}

// NewSessionHandler creates a new instance of SessionHandler
func NewSessionHandler(authService service.AuthService) *SessionHandler {
	return &SessionHandler{authService: authService}
}

// CreateSession godoc
// @Summary Start an examinee session
// @Description Issues an anonymous session token used for drafts and grading
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /api/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	resp, err := h.authService.CreateSession(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
