package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// DetailInvalidBody is returned when a request body cannot be decoded.
const DetailInvalidBody = "Invalid request body"

// BodyKey is the Locals key ParseBody stores the decoded body under.
const BodyKey = "body"

// ParseBody decodes the request body into a fresh T for every request and
// stores it in Locals under BodyKey. Use Body to read it back.
func ParseBody[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(T)
		if err := c.BodyParser(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, DetailInvalidBody)
		}
		c.Locals(BodyKey, body)
		return c.Next()
	}
}

// Body returns the value stored by ParseBody[T].
func Body[T any](c *fiber.Ctx) (*T, bool) {
	body, ok := c.Locals(BodyKey).(*T)
	return body, ok
}
