package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := body[model.CreateReservationInput](c)
		if res.IsErr() {
			return invalid(c, "Invalid reservation data", res.Err())
		}
		c.Locals("input", res.Unwrap())
		return c.Next()
	}
}

// UpdateReservation validates a partial body: absent fields pass, present
// fields still face their type and format rules.
func UpdateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := body[model.UpdateReservationInput](c)
		if res.IsErr() {
			return invalid(c, "Invalid reservation data", res.Err())
		}
		c.Locals("input", res.Unwrap())
		return c.Next()
	}
}
