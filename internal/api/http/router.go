package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/backoffice/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Dashboard     *handlers.DashboardHandler
	Payments      *handlers.PaymentsHandler
	Inquiries     *handlers.InquiriesHandler
	Notifications *handlers.NotificationsHandler
	Collections   []handlers.CollectionRoutes
	Metrics       nethttp.Handler
}

// RegisterRoutes wires HTTP routes. Fixed sub-paths are registered before
// the /:id routes they would otherwise be shadowed by.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics))
	}

	api := app.Group("/api")
	api.Get("/dashboard", cfg.Dashboard.Dashboard)
	api.Get("/audit", cfg.Dashboard.Audit)

	payments := api.Group("/payments")
	payments.Get("/export.csv", cfg.Payments.ExportCSV)
	payments.Get("/export.xlsx", cfg.Payments.ExportXLSX)
	payments.Post("/:id/refund", cfg.Payments.Refund)

	inquiries := api.Group("/inquiries")
	inquiries.Post("/:id/assign", cfg.Inquiries.Assign)
	inquiries.Post("/:id/answer", cfg.Inquiries.Answer)

	notifications := api.Group("/notifications")
	notifications.Post("/:id/read", cfg.Notifications.MarkRead)
	notifications.Post("/:id/send", cfg.Notifications.Send)

	api.Post("/employees/ssn/preview", handlers.PreviewSSN)

	for _, collection := range cfg.Collections {
		group := api.Group("/" + collection.Name())
		group.Get("/", collection.List)
		group.Get("/stats", collection.Stats)
		group.Post("/", collection.Create)
		group.Get("/:id", collection.Get)
		group.Patch("/:id", collection.Update)
		group.Delete("/:id", collection.Delete)
	}
}
