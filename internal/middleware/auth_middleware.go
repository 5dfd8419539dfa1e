package middleware

import (
	"strings"

	"quizgrade/internal/domain"
	"quizgrade/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionIDKey is the locals key under which the authenticated session ID is
// stored for downstream handlers.
const SessionIDKey = "sessionID"

// Protected requires a valid Bearer session token and exposes its session ID
// via c.Locals(SessionIDKey).
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return domain.NewUnauthorizedError("missing authorization header")
		}
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return domain.NewUnauthorizedError("authorization header must be a Bearer token")
		}

		claims, err := authService.ValidateToken(c.Context(), tokenString)
		if err != nil {
			return err
		}

		c.Locals(SessionIDKey, claims.SessionID)
		return c.Next()
	}
}

// AdminOnly guards authoring endpoints with a shared key header. An empty
// configured key disables the endpoints entirely.
func AdminOnly(adminKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if adminKey == "" || c.Get("X-Admin-Key") != adminKey {
			return domain.NewUnauthorizedError("admin key required")
		}
		return c.Next()
	}
}

// SessionID extracts the authenticated session ID set by Protected.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(SessionIDKey).(string)
	return id
}
