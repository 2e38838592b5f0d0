package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	POStatusPending   = "pending"
	POStatusApproved  = "approved"
	POStatusDelivered = "delivered"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder representa una orden de compra a proveedor.
// Máquina de estados: pending → approved → delivered; pending/approved →
// cancelled. delivered y cancelled son terminales.
//
// Nota: marcar una orden como delivered NO afecta el stock de materias
// primas; la entrada de stock se registra por separado como compra de
// material (comportamiento heredado, pendiente de definición de producto).
type PurchaseOrder struct {
	ID                   string
	PONumber             string
	SupplierID           string
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	Status               string
	Subtotal             decimal.Decimal
	GSTAmount            decimal.Decimal
	TotalAmount          decimal.Decimal
	PaymentTerms         string
	DeliveryAddress      string
	Notes                string
	ApprovedBy           string
	ApprovedAt           *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PurchaseOrderItem es una línea de la orden de compra.
type PurchaseOrderItem struct {
	ID               string
	POID             string
	MaterialName     string
	MaterialCategory string
	Quantity         decimal.Decimal
	Unit             string
	RatePerUnit      decimal.Decimal
	Amount           decimal.Decimal
	GSTPercentage    decimal.Decimal
	GSTAmount        decimal.Decimal
	TotalAmount      decimal.Decimal
	Notes            string
	CreatedAt        time.Time
}

// CanTransition valida la máquina de estados de la orden de compra.
// No hay transición de salida desde delivered ni cancelled.
func CanTransition(from, to string) bool {
	switch from {
	case POStatusPending:
		return to == POStatusApproved || to == POStatusCancelled
	case POStatusApproved:
		return to == POStatusDelivered || to == POStatusCancelled
	default:
		return false
	}
}
