package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", validate.RefreshToken(), handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	reservation := api.Group("/reservations")
	reservation.Get("/", handler.GetReservations)
	reservation.Post("/", validate.CreateReservation(), handler.CreateReservation)
	reservation.Put("/:id", validate.GetById("id"), validate.UpdateReservation(), handler.UpdateReservation)
	reservation.Delete("/:id", validate.GetById("id"), handler.DeleteReservation)

	table := api.Group("/tables")
	table.Get("/", handler.GetTables)
	table.Post("/", validate.CreateTable(), handler.CreateTable)
	table.Put("/:id", validate.GetById("id"), validate.UpdateTable(), handler.UpdateTable)
	table.Delete("/:id", validate.GetById("id"), handler.DeleteTable)
}
