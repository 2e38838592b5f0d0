package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/application/inventory"
)

// MaterialHandler maneja las peticiones HTTP de materias primas y sus compras.
type MaterialHandler struct {
	materials *inventory.MaterialUseCase
	purchases *inventory.PurchaseUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(materials *inventory.MaterialUseCase, purchases *inventory.PurchaseUseCase) *MaterialHandler {
	return &MaterialHandler{materials: materials, purchases: purchases}
}

// Create POST /api/materials
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	material, err := h.materials.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(material)
}

// List GET /api/materials?active=true
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	list, err := h.materials.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/materials/:name
func (h *MaterialHandler) Get(c *fiber.Ctx) error {
	name, err := nameParam(c)
	if err != nil {
		return err
	}
	material, err := h.materials.GetByName(name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(material)
}

// RecordPurchase POST /api/material-purchases
func (h *MaterialHandler) RecordPurchase(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	purchase, err := h.purchases.Record(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// PurchaseHistory GET /api/material-purchases?partner_id=&from=&to=
func (h *MaterialHandler) PurchaseHistory(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	history, err := h.purchases.History(c.Query("partner_id"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(history)
}

// PurchaseSummary GET /api/material-purchases/summary?from=&to=
func (h *MaterialHandler) PurchaseSummary(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	summary, err := h.purchases.Summary(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
