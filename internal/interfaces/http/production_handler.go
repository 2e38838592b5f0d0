package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/application/inventory"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
)

// ProductionHandler maneja las peticiones HTTP de producción y ventas de stock.
type ProductionHandler struct {
	uc *inventory.ProductionUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *inventory.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// RecordEntry POST /api/production/entries
func (h *ProductionHandler) RecordEntry(c *fiber.Ctx) error {
	var in dto.CreateProductionEntryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	entry, err := h.uc.RecordEntry(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductionEntryResponse(entry))
}

// RecordSale POST /api/production/sales
func (h *ProductionHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.CreateStockSaleRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	sale, err := h.uc.RecordSale(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockSaleResponse(sale))
}

// ListEntries GET /api/production/entries?from=&to=
func (h *ProductionHandler) ListEntries(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	entries, err := h.uc.Entries(from, to)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.ProductionEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toProductionEntryResponse(e))
	}
	return c.JSON(out)
}

// ListSales GET /api/production/sales?from=&to=
func (h *ProductionHandler) ListSales(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	sales, err := h.uc.Sales(from, to)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.StockSaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toStockSaleResponse(s))
	}
	return c.JSON(out)
}

func toProductionEntryResponse(e *entity.ProductionEntry) *dto.ProductionEntryResponse {
	return &dto.ProductionEntryResponse{
		ID:       e.ID,
		Date:     dto.FormatDate(e.Date),
		ItemName: e.ItemName,
		Quantity: e.Quantity,
		Notes:    e.Notes,
	}
}

func toStockSaleResponse(s *entity.StockSale) *dto.StockSaleResponse {
	return &dto.StockSaleResponse{
		ID:       s.ID,
		Date:     dto.FormatDate(s.Date),
		ItemName: s.ItemName,
		Quantity: s.Quantity,
		Amount:   s.Amount,
		Notes:    s.Notes,
	}
}
