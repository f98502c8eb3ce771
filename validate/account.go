package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := body[model.LoginInput](c)
		if res.IsErr() {
			return invalid(c, "Invalid login data", res.Err())
		}
		c.Locals("input", res.Unwrap())
		return c.Next()
	}
}

func RefreshToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := body[model.RefreshTokenInput](c)
		if res.IsErr() {
			return invalid(c, "Invalid refresh token data", res.Err())
		}
		c.Locals("input", res.Unwrap())
		return c.Next()
	}
}
