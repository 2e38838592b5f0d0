package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/application/procurement"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
)

// SupplierHandler maneja las peticiones HTTP de proveedores, sus facturas y pagos.
type SupplierHandler struct {
	suppliers *procurement.SupplierUseCase
	billing   *procurement.SupplierBillingUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(suppliers *procurement.SupplierUseCase, billing *procurement.SupplierBillingUseCase) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers, billing: billing}
}

// Create POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierFormRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	supplier, err := h.suppliers.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// List GET /api/suppliers?active=true
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	list, err := h.suppliers.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/suppliers/:id
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	supplier, err := h.suppliers.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplier)
}

// Update PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.SupplierFormRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	supplier, err := h.suppliers.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplier)
}

// Delete DELETE /api/suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.suppliers.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary GET /api/suppliers/summary
func (h *SupplierHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.suppliers.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// CreateInvoice POST /api/supplier-invoices
func (h *SupplierHandler) CreateInvoice(c *fiber.Ctx) error {
	var in dto.CreateSupplierInvoiceRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	invoice, err := h.billing.CreateInvoice(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSupplierInvoiceResponse(invoice))
}

// RecordPayment POST /api/supplier-payments
func (h *SupplierHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordSupplierPaymentRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	payment, err := h.billing.RecordPayment(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSupplierPaymentResponse(payment))
}

// ListInvoices GET /api/suppliers/:id/invoices
func (h *SupplierHandler) ListInvoices(c *fiber.Ctx) error {
	invoices, err := h.billing.ListInvoices(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.SupplierInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toSupplierInvoiceResponse(inv))
	}
	return c.JSON(out)
}

// ListPayments GET /api/suppliers/:id/payments
func (h *SupplierHandler) ListPayments(c *fiber.Ctx) error {
	payments, err := h.billing.ListPayments(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.SupplierPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toSupplierPaymentResponse(p))
	}
	return c.JSON(out)
}

// Ledger GET /api/suppliers/:id/ledger
func (h *SupplierHandler) Ledger(c *fiber.Ctx) error {
	lines, err := h.billing.Ledger(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lines)
}

func toSupplierInvoiceResponse(inv *entity.SupplierInvoice) *dto.SupplierInvoiceResponse {
	out := &dto.SupplierInvoiceResponse{
		ID:                inv.ID,
		SupplierID:        inv.SupplierID,
		InvoiceNumber:     inv.InvoiceNumber,
		InvoiceDate:       dto.FormatDate(inv.InvoiceDate),
		Subtotal:          inv.Subtotal,
		GSTAmount:         inv.GSTAmount,
		TotalAmount:       inv.TotalAmount,
		PaidAmount:        inv.PaidAmount,
		OutstandingAmount: inv.OutstandingAmount,
		PaymentStatus:     inv.PaymentStatus,
	}
	if inv.DueDate != nil {
		out.DueDate = dto.FormatDate(*inv.DueDate)
	}
	return out
}

func toSupplierPaymentResponse(p *entity.SupplierPayment) *dto.SupplierPaymentResponse {
	return &dto.SupplierPaymentResponse{
		ID:          p.ID,
		SupplierID:  p.SupplierID,
		PaymentDate: dto.FormatDate(p.PaymentDate),
		AmountPaid:  p.AmountPaid,
		PaymentMode: p.PaymentMode,
		Notes:       p.Notes,
	}
}
