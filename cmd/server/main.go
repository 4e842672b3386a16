package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"finmentor/internal/config"
	"finmentor/internal/handlers"
	"finmentor/internal/storage"
)

func setupRouter(h *handlers.Handlers) *fiber.App {
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	h.RegisterRoutes(app)

	return app
}

func main() {
	cfg := config.Load()

	db, err := storage.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database. \n", err)
	}
	defer db.Close()

	app := setupRouter(handlers.NewHandlers(db))

	log.Fatal(app.Listen(":" + cfg.Port))
}
