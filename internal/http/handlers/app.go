package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"petshop/internal/config"
	applog "petshop/internal/log"
)

// NewApp assembles the HTTP API: middleware, health check and the /api
// dispatcher.
func NewApp(cfg config.Config, deps *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "petshop",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(cfg.HideErrors),
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(applog.Access())
	app.Use(recover.New())
	app.Use(CORS())

	app.Get("/healthz", func(c *fiber.Ctx) error { return writeJSON(c, fiber.StatusOK, `{"ok":true}`) })
	app.All("/api/*", deps.Dispatcher().Serve)
	return app
}
