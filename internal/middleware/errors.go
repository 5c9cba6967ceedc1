package middleware

import (
	"errors"

	"github.com/bilgisen/factcheck/internal/models"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error as {"detail": ...}. *fiber.Error values
// keep their code and message; anything else becomes a 500. Logging is left
// to RequestLogger.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	detail := fiber.ErrInternalServerError.Message

	var e *fiber.Error
	if errors.As(err, &e) {
		detail = e.Message
	}

	return c.Status(code).JSON(models.ErrorResponse{Detail: detail})
}

func statusFor(err error) int {
	var e *fiber.Error
	if errors.As(err, &e) {
		return e.Code
	}
	return fiber.StatusInternalServerError
}
