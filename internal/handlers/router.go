package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type AppConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
	// AccessLog enables the request logger middleware.
	AccessLog bool
}

type Handlers struct {
	Start   *StartHandler
	Answers *AnswersHandler
	Session *SessionHandler
}

// multipartOverhead leaves room for the form fields around a maximum-size resume.
const multipartOverhead = 1 << 20

func NewApp(cfg AppConfig, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "AI Interview Coach API",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit + multipartOverhead,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/start-interview", h.Start.HandleStart)
	api.Post("/submit-answers", h.Answers.HandleSubmit)
	api.Get("/next-round", h.Session.HandleNextRound)
	api.Get("/session/:user_id", h.Session.HandleGetSession)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Interview Coach API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/start-interview",
				"POST /api/v1/submit-answers",
				"GET /api/v1/next-round",
				"GET /api/v1/session/:user_id",
			},
		})
	})

	return app
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
