package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gruntled/assessment-backend/internal/api/handlers"
	"github.com/gruntled/assessment-backend/internal/metrics"
	"github.com/gruntled/assessment-backend/internal/middleware/coachauth"
	"github.com/gruntled/assessment-backend/internal/middleware/ratelimit"
	"github.com/gruntled/assessment-backend/internal/middleware/security"
	"github.com/gruntled/assessment-backend/internal/session"
	"github.com/gruntled/assessment-backend/internal/storage/jsonstore"
	"github.com/gruntled/assessment-backend/pkg/config"
)

// New wires the fiber app: middleware, respondent routes, and the coach
// routes behind the token gate and rate limiter.
func New(cfg *config.Config, store *jsonstore.Store, sessions *session.Manager) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	sessionHandler := handlers.NewSessionHandler(sessions)
	coachHandler := handlers.NewCoachHandler(store)

	apiV1 := app.Group("/api/v1")

	apiV1.Post("/sessions", sessionHandler.Begin)
	apiV1.Get("/sessions/:id", sessionHandler.Get)
	apiV1.Get("/sessions/:id/intake", sessionHandler.OpenIntake)
	apiV1.Post("/sessions/:id/intake", sessionHandler.SubmitIntake)
	apiV1.Get("/sessions/:id/questions", sessionHandler.Questions)
	apiV1.Post("/sessions/:id/answers", sessionHandler.Answer)
	apiV1.Post("/sessions/:id/complete", sessionHandler.Complete)
	apiV1.Get("/sessions/:id/chart", sessionHandler.Chart)

	limiter := ratelimit.New(ratelimit.Config{
		MaxRequestsPerMinute: cfg.Coach.MaxRequestsPerMinute,
	})
	app.Hooks().OnShutdown(func() error {
		limiter.Stop()
		return nil
	})
	coach := apiV1.Group("/coach",
		limiter.Middleware(),
		coachauth.Middleware(coachauth.Config{AccessToken: cfg.Coach.AccessToken}),
	)

	coach.Get("/assessments", coachHandler.List)
	coach.Get("/assessments/:id", coachHandler.Get)
	coach.Delete("/assessments/:id", coachHandler.Delete)
	coach.Get("/assessments/:id/report.pdf", coachHandler.ExportPDF)
	coach.Get("/assessments/:id/chart", coachHandler.Chart)

	app.Get("/metrics", metrics.MetricsHandler())
	apiV1.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	return app
}
