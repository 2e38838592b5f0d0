package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallsco/firmbooks-api/internal/application/reports"
)

// ReportsHandler maneja las peticiones HTTP de reportes y del dashboard.
type ReportsHandler struct {
	reports   *reports.ReportsUseCase
	dashboard *reports.DashboardUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(reportsUC *reports.ReportsUseCase, dashboard *reports.DashboardUseCase) *ReportsHandler {
	return &ReportsHandler{reports: reportsUC, dashboard: dashboard}
}

// Clients GET /api/reports/clients?from=&to=
func (h *ReportsHandler) Clients(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	report, err := h.reports.ClientFinancialReport(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Partners GET /api/reports/partners?from=&to=
func (h *ReportsHandler) Partners(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	report, err := h.reports.PartnerFinancialReport(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Production GET /api/reports/production?from=&to=
func (h *ReportsHandler) Production(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	report, err := h.reports.ProductionStockReport(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// ProfitLoss GET /api/reports/profit-loss?from=&to=
func (h *ReportsHandler) ProfitLoss(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	report, err := h.reports.ProfitLoss(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Comprehensive GET /api/reports/comprehensive?from=&to=
func (h *ReportsHandler) Comprehensive(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	report, err := h.reports.ComprehensiveReport(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Dashboard GET /api/dashboard
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.dashboard.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
