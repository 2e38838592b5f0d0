package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallsco/firmbooks-api/internal/application/cash"
	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// CashHandler maneja las peticiones HTTP del libro de caja de la firma.
type CashHandler struct {
	uc *cash.CashUseCase
}

// NewCashHandler construye el handler.
func NewCashHandler(uc *cash.CashUseCase) *CashHandler {
	return &CashHandler{uc: uc}
}

// RecordReceipt POST /api/cash/receipts
func (h *CashHandler) RecordReceipt(c *fiber.Ctx) error {
	var in dto.RecordReceiptRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	entry, err := h.uc.RecordReceipt(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// RecordPayment POST /api/cash/payments
func (h *CashHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordCashPaymentRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	entry, err := h.uc.RecordPayment(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// Cashbook GET /api/cash/entries?from=&to=&type=&category=&partner_id=
func (h *CashHandler) Cashbook(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	filter := repository.CashFilter{
		From:      from,
		To:        to,
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		PartnerID: c.Query("partner_id"),
	}
	entries, err := h.uc.Cashbook(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// Balance GET /api/cash/balance
func (h *CashHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.uc.CurrentBalance()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(balance)
}

// Summary GET /api/cash/summary?from=&to=
func (h *CashHandler) Summary(c *fiber.Ctx) error {
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
