package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sorinslavic/graide-api/internal/config"
	"github.com/sorinslavic/graide-api/internal/handler"
	"github.com/sorinslavic/graide-api/internal/middleware"
	"github.com/sorinslavic/graide-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ClassHandler            *handler.ClassHandler
	StudentHandler          *handler.StudentHandler
	TestHandler             *handler.TestHandler
	SubmissionHandler       *handler.SubmissionHandler
	SubmissionDetailHandler *handler.SubmissionDetailHandler
	RubricHandler           *handler.RubricHandler
	WorkspaceHandler        *handler.WorkspaceHandler
}

// Register wires the HTTP routes into the fiber application. Everything
// under /api/v1 except the health endpoint requires a Google bearer token.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	authed := api.Group("", middleware.RequireGoogleToken())

	if deps.WorkspaceHandler != nil {
		deps.WorkspaceHandler.Register(authed.Group("/workspace"))
	}
	if deps.ClassHandler != nil {
		deps.ClassHandler.Register(authed.Group("/classes"))
	}
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(authed.Group("/students"))
	}
	if deps.TestHandler != nil {
		deps.TestHandler.Register(authed.Group("/tests"))
	}
	if deps.SubmissionHandler != nil {
		deps.SubmissionHandler.Register(authed.Group("/submissions"))
	}
	if deps.SubmissionDetailHandler != nil {
		deps.SubmissionDetailHandler.Register(authed.Group("/submission-details"))
	}
	if deps.RubricHandler != nil {
		deps.RubricHandler.Register(authed.Group("/rubrics"))
	}
}
