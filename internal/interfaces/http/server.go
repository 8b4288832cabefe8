package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Inventario-tiendas/pkg/logger"
)

// AppConfig parámetros de la aplicación Fiber.
type AppConfig struct {
	Name       string
	Production bool
	Log        *logger.Logger
	Metrics    *Metrics // nil desactiva /metrics
}

// NewApp crea la aplicación Fiber con el middleware común, /health y /metrics.
// Las rutas de la API se registran después con Router.
func NewApp(cfg AppConfig) *fiber.App {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(RequestID())
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	if cfg.Metrics != nil {
		app.Use(cfg.Metrics.Middleware())
	}
	app.Use(SecureHeaders(cfg.Production))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics.Handler())
	}
	return app
}
