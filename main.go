package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"restaurant_manager/database"
	"restaurant_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
	}))

	database.ConnectDB()

	router.SetupRoutes(app)

	// explicit shutdown on all exit paths: stop accepting requests,
	// then release the connection pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down")
		if err := app.Shutdown(); err != nil {
			log.Println("shutdown error:", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8002"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Println("listen error:", err)
	}
	database.Close()
}
