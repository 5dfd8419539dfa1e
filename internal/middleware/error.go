package middleware

import (
	"errors"

	"quizgrade/internal/domain"
	"quizgrade/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler translates errors bubbling out of handlers into JSON
// responses, mapping domain error codes to HTTP statuses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    string(domain.CodeValidation),
			"message": "paper document failed validation",
			"details": verrs,
		})
	}

	var derr *domain.DomainError
	if errors.As(err, &derr) {
		status := statusForCode(derr.Code)
		if status >= fiber.StatusInternalServerError {
			logger.Get().Error("request failed",
				zap.String("path", c.Path()),
				zap.String("code", string(derr.Code)),
				zap.Error(err))
		}
		return c.Status(status).JSON(derr)
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return c.Status(ferr.Code).JSON(fiber.Map{
			"code":    string(domain.CodeInternal),
			"message": ferr.Message,
		})
	}

	logger.Get().Error("unhandled error",
		zap.String("path", c.Path()),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    string(domain.CodeInternal),
		"message": "internal server error",
	})
}

func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeInvalidInput, domain.CodeValidation, domain.CodeInvalidPaper:
		return fiber.StatusBadRequest
	case domain.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case domain.CodeNotFound, domain.CodePaperNotFound, domain.CodeSubmissionNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
