package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallsco/firmbooks-api/internal/application/billing"
	"github.com/wallsco/firmbooks-api/internal/application/dto"
)

// ClientHandler maneja las peticiones HTTP de clientes y su facturación.
type ClientHandler struct {
	clients *billing.ClientUseCase
	billing *billing.BillingUseCase
	dues    *billing.DueUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(clients *billing.ClientUseCase, billingUC *billing.BillingUseCase, dues *billing.DueUseCase) *ClientHandler {
	return &ClientHandler{clients: clients, billing: billingUC, dues: dues}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	client, err := h.clients.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List GET /api/clients?active=true
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.clients.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/clients/:id
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	client, err := h.clients.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	client, err := h.clients.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client)
}

// Deactivate DELETE /api/clients/:id
func (h *ClientHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.clients.Deactivate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddBill POST /api/client-bills
func (h *ClientHandler) AddBill(c *fiber.Ctx) error {
	var in dto.AddBillRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	bill, err := h.billing.AddBill(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// RecordPayment POST /api/client-payments
func (h *ClientHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordClientPaymentRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	payment, err := h.billing.RecordPayment(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// ListBills GET /api/clients/:id/bills
func (h *ClientHandler) ListBills(c *fiber.Ctx) error {
	bills, err := h.billing.ListBills(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bills)
}

// ListPayments GET /api/clients/:id/payments
func (h *ClientHandler) ListPayments(c *fiber.Ctx) error {
	payments, err := h.billing.ListPayments(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payments)
}

// Due GET /api/clients/:id/due
func (h *ClientHandler) Due(c *fiber.Ctx) error {
	due, err := h.dues.ClientDue(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(due)
}

// AllDues GET /api/clients/dues
func (h *ClientHandler) AllDues(c *fiber.Ctx) error {
	dues, err := h.dues.AllClientDues(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dues)
}
