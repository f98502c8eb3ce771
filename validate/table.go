package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := body[model.CreateTableInput](c)
		if res.IsErr() {
			return invalid(c, "Invalid table data", res.Err())
		}
		c.Locals("input", res.Unwrap())
		return c.Next()
	}
}

func UpdateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := body[model.UpdateTableInput](c)
		if res.IsErr() {
			return invalid(c, "Invalid table data", res.Err())
		}
		c.Locals("input", res.Unwrap())
		return c.Next()
	}
}
