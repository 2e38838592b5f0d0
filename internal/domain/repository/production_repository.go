package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/domain/entity"
)

// ProductionTotals totales de producción vs ventas de un rango de fechas.
type ProductionTotals struct {
	Produced     decimal.Decimal
	Sold         decimal.Decimal
	SalesRevenue decimal.Decimal
}

// ProductionRepository producción y ventas de producto terminado.
// Alimenta exclusivamente al compositor de reportes.
type ProductionRepository interface {
	CreateEntry(entry *entity.ProductionEntry) error
	CreateSale(sale *entity.StockSale) error
	ListEntries(from, to *time.Time) ([]*entity.ProductionEntry, error)
	ListSales(from, to *time.Time) ([]*entity.StockSale, error)
	Totals(from, to *time.Time) (ProductionTotals, error)
}
