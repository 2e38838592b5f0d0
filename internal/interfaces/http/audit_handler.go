package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/application/inventory"
)

// AuditHandler maneja las peticiones HTTP de auditorías de stock.
type AuditHandler struct {
	uc *inventory.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *inventory.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// Create POST /api/stock-audits
func (h *AuditHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAuditRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	audit, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(audit)
}

// Approve POST /api/stock-audits/:id/approve
func (h *AuditHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveAuditRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	audit, err := h.uc.Approve(c.Context(), c.Params("id"), in.ApprovedBy)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(audit)
}

// Reject POST /api/stock-audits/:id/reject
func (h *AuditHandler) Reject(c *fiber.Ctx) error {
	if err := h.uc.Reject(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History GET /api/stock-audits?from=&to=
func (h *AuditHandler) History(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	audits, err := h.uc.History(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(audits)
}

// Summary GET /api/stock-audits/summary?from=&to=
func (h *AuditHandler) Summary(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	summary, err := h.uc.Summary(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
