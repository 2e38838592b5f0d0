package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionEntry registra unidades producidas de un artículo terminado
// (postes, placas) en una fecha.
type ProductionEntry struct {
	ID        string
	Date      time.Time
	ItemName  string
	Quantity  decimal.Decimal
	Notes     string
	CreatedAt time.Time
}

// StockSale registra la venta de unidades de producto terminado.
type StockSale struct {
	ID        string
	Date      time.Time
	ItemName  string
	Quantity  decimal.Decimal
	Amount    decimal.Decimal
	Notes     string
	CreatedAt time.Time
}
