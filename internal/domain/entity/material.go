package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origen de fondos de una compra de material.
const (
	PaidFromOfficeCash    = "office_cash"
	PaidFromPartnerPocket = "partner_pocket"
)

// Material representa una materia prima del catálogo maestro.
// CurrentStock y UnitCost son contadores desnormalizados: se actualizan
// únicamente dentro de la transacción que registra la compra o el ajuste de
// auditoría que los modifica.
type Material struct {
	ID               string
	Name             string
	Category         string
	Unit             string
	CurrentStock     decimal.Decimal
	UnitCost         decimal.Decimal
	LastPurchaseDate *time.Time
	LastPurchaseRate decimal.Decimal
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// MaterialPurchase es una compra de materia prima (append-only).
type MaterialPurchase struct {
	ID            string
	Date          time.Time
	MaterialName  string
	Quantity      decimal.Decimal
	UnitCost      decimal.Decimal
	TotalAmount   decimal.Decimal
	VendorName    string
	PartnerID     *string
	PaidFrom      string // office_cash | partner_pocket
	InvoiceNumber string
	Notes         string
	CreatedAt     time.Time
}
