package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/backoffice/internal/api/dto"
	"github.com/spec-kit/backoffice/internal/service"
	"github.com/spec-kit/backoffice/internal/ssn"
	apperrors "github.com/spec-kit/backoffice/pkg/util/errorutil"
)

// InquiriesHandler serves the support workflow routes.
type InquiriesHandler struct {
	inquiries *service.Inquiries
}

// NewInquiriesHandler constructs handler.
func NewInquiriesHandler(inquiries *service.Inquiries) *InquiriesHandler {
	return &InquiriesHandler{inquiries: inquiries}
}

// Assign POST /api/inquiries/:id/assign.
func (h *InquiriesHandler) Assign(c *fiber.Ctx) error {
	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	inquiry, err := h.inquiries.Assign(c.UserContext(), c.Params("id"), req.AssigneeID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": inquiry})
}

// Answer POST /api/inquiries/:id/answer.
func (h *InquiriesHandler) Answer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	inquiry, err := h.inquiries.Answer(c.UserContext(), c.Params("id"), req.Answer)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": inquiry})
}

// NotificationsHandler serves delivery routes.
type NotificationsHandler struct {
	notifications *service.Notifications
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notifications *service.Notifications) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// MarkRead POST /api/notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	n, err := h.notifications.MarkRead(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": n})
}

// Send POST /api/notifications/:id/send.
func (h *NotificationsHandler) Send(c *fiber.Ctx) error {
	n, err := h.notifications.Send(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": n})
}

// PreviewSSN POST /api/employees/ssn/preview shows the masked value and
// derived gender without storing anything.
func PreviewSSN(c *fiber.Ctx) error {
	var req dto.SSNPreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.SSN == "" {
		return apperrors.NewValidationError("ssn is required", map[string]any{"ssn": "required"})
	}
	masked, gender := ssn.Apply(req.SSN, req.Gender)
	return c.JSON(fiber.Map{"data": dto.SSNPreviewResponse{
		Masked:  masked,
		Gender:  gender,
		Derived: req.Gender == "" && gender != "",
	}})
}
