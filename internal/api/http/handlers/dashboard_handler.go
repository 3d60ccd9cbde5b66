package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/backoffice/internal/repository"
	"github.com/spec-kit/backoffice/internal/service"
	apperrors "github.com/spec-kit/backoffice/pkg/util/errorutil"
)

// DashboardHandler serves the analytics page and the audit trail.
type DashboardHandler struct {
	office *service.Backoffice
	audit  *service.AuditService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(office *service.Backoffice, audit *service.AuditService) *DashboardHandler {
	return &DashboardHandler{office: office, audit: audit}
}

// Dashboard GET /api/dashboard.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.office.Dashboard(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": d})
}

// Audit GET /api/audit?collection=&entity_id=&limit=&offset=.
func (h *DashboardHandler) Audit(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 50)
	if err != nil || limit < 0 {
		return apperrors.NewValidationError("invalid limit", map[string]any{"limit": c.Query("limit")})
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		return apperrors.NewValidationError("invalid offset", map[string]any{"offset": c.Query("offset")})
	}
	entries, err := h.audit.List(c.UserContext(), repository.AuditFilter{
		Collection: c.Query("collection"),
		EntityID:   c.Query("entity_id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return apperrors.NewUnavailable("audit log unavailable", err)
	}
	return c.JSON(fiber.Map{"data": entries})
}
