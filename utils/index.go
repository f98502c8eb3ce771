package utils

import (
	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = message
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   errMsg,
		"message": message,
	})
}

// ErrorResponseWithDetails adds per-field messages; used for validation
// failures only, the other error kinds never leak internals.
func ErrorResponseWithDetails(c *fiber.Ctx, status int, message string, err error, details []string) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = message
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   errMsg,
		"message": message,
		"details": details,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(data)
}
