package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/backoffice/internal/api/dto"
	"github.com/spec-kit/backoffice/internal/export"
	"github.com/spec-kit/backoffice/internal/service"
	apperrors "github.com/spec-kit/backoffice/pkg/util/errorutil"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PaymentsHandler serves the settlement routes beyond CRUD.
type PaymentsHandler struct {
	payments *service.Payments
	export   export.Options
	now      func() time.Time
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.Payments, opts export.Options) *PaymentsHandler {
	return &PaymentsHandler{payments: payments, export: opts, now: time.Now}
}

// Refund POST /api/payments/:id/refund.
func (h *PaymentsHandler) Refund(c *fiber.Ctx) error {
	var req dto.RefundRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	payment, err := h.payments.Refund(c.UserContext(), c.Params("id"), req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": payment})
}

// ExportCSV GET /api/payments/export.csv. List filters apply; paging does not.
func (h *PaymentsHandler) ExportCSV(c *fiber.Ctx) error {
	f, err := parseFilter(c, h.payments.QuerySchema())
	if err != nil {
		return err
	}
	items, err := h.payments.Items(c.UserContext(), f)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WritePaymentsCSV(&buf, items, h.export); err != nil {
		return apperrors.NewInternalError(err)
	}
	h.attachment(c, "csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}

// ExportXLSX GET /api/payments/export.xlsx.
func (h *PaymentsHandler) ExportXLSX(c *fiber.Ctx) error {
	f, err := parseFilter(c, h.payments.QuerySchema())
	if err != nil {
		return err
	}
	items, err := h.payments.Items(c.UserContext(), f)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WritePaymentsXLSX(&buf, items, h.export); err != nil {
		return apperrors.NewInternalError(err)
	}
	h.attachment(c, "xlsx")
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(buf.Bytes())
}

func (h *PaymentsHandler) attachment(c *fiber.Ctx, ext string) {
	loc := h.export.Location
	if loc == nil {
		loc = export.KST
	}
	name := fmt.Sprintf("payments_%s.%s", h.now().In(loc).Format("2006-01-02"), ext)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
}
