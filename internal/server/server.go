package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// New builds the Fiber app with middleware and routes registered.
func New(
	cfg *config.Config,
	gateway services.Gateway,
	analyzer services.AnalyzerService,
	log *logrus.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Resume Analyzer API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		BodyLimit:             cfg.Server.BodyLimit,
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: cfg.Server.Env != "development",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     log.Out,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	analyzeHandler := handlers.NewAnalyzeHandler(gateway, analyzer, log)
	healthHandler := handlers.NewHealthHandler(cfg)

	// Routes
	app.Get("/health", healthHandler.HandleHealth)
	app.Post("/analyze", analyzeHandler.HandleAnalyze)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /analyze",
				"GET /health",
			},
		})
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
