package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockAudit es un registro de auditoría de stock físico vs digital.
// Variance = PhysicalCount − DigitalStock. Al aprobar la auditoría el stock
// del material se SOBRESCRIBE con PhysicalCount (no se suma la varianza).
type StockAudit struct {
	ID                 string
	Date               time.Time
	MaterialName       string
	DigitalStock       decimal.Decimal
	PhysicalCount      decimal.Decimal
	Variance           decimal.Decimal
	VariancePercentage decimal.Decimal
	Reason             string
	ApprovedBy         string
	PartnersNotified   bool
	FinancialImpact    decimal.Decimal // |Variance| × costo unitario, siempre ≥ 0
	CreatedAt          time.Time
}

// AuditVariance calcula la varianza física − digital y su porcentaje sobre
// el stock digital (0 si el stock digital es cero).
func AuditVariance(digital, physical decimal.Decimal) (variance, pct decimal.Decimal) {
	variance = physical.Sub(digital)
	if digital.IsZero() {
		return variance, decimal.Zero
	}
	pct = variance.Div(digital).Mul(decimal.NewFromInt(100)).Round(2)
	return variance, pct
}
