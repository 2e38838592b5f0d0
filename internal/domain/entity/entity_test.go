package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wallsco/firmbooks-api/internal/domain/entity"
)

func TestCanTransition_MaquinaDeEstados(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.POStatusPending, entity.POStatusApproved, true},
		{entity.POStatusPending, entity.POStatusCancelled, true},
		{entity.POStatusPending, entity.POStatusDelivered, false},
		{entity.POStatusApproved, entity.POStatusDelivered, true},
		{entity.POStatusApproved, entity.POStatusCancelled, true},
		{entity.POStatusApproved, entity.POStatusPending, false},
		{entity.POStatusDelivered, entity.POStatusCancelled, false},
		{entity.POStatusCancelled, entity.POStatusApproved, false},
		{entity.POStatusDelivered, entity.POStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, entity.CanTransition(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestAuditVariance_StockDigitalCero(t *testing.T) {
	// Con stock digital cero el porcentaje queda en cero (sin división).
	variance, pct := entity.AuditVariance(decimal.Zero, decimal.NewFromInt(5))
	assert.True(t, variance.Equal(decimal.NewFromInt(5)))
	assert.True(t, pct.IsZero())
}

func TestAuditVariance_FaltanteYSobrante(t *testing.T) {
	// Faltante: físico < digital ⇒ varianza negativa.
	variance, pct := entity.AuditVariance(decimal.NewFromInt(100), decimal.NewFromInt(90))
	assert.True(t, variance.Equal(decimal.NewFromInt(-10)))
	assert.True(t, pct.Equal(decimal.NewFromInt(-10)))

	// Sobrante con redondeo a 2 decimales.
	variance, pct = entity.AuditVariance(decimal.NewFromInt(3), decimal.NewFromInt(4))
	assert.True(t, variance.Equal(decimal.NewFromInt(1)))
	assert.True(t, pct.Equal(decimal.RequireFromString("33.33")))
}

func TestWageRate_PorTipoDeAsistencia(t *testing.T) {
	assert.True(t, entity.WageRate(entity.AttendanceFullDay).Equal(decimal.NewFromInt(400)))
	assert.True(t, entity.WageRate(entity.AttendanceHalfDay).Equal(decimal.NewFromInt(200)))
	assert.True(t, entity.WageRate(entity.AttendanceOutdoor).Equal(decimal.NewFromInt(450)))
	// Custom: la tarifa la fija el llamador.
	assert.True(t, entity.WageRate(entity.AttendanceCustom).IsZero())
}

func TestValidCashCategory(t *testing.T) {
	assert.True(t, entity.ValidCashCategory(entity.CashCategorySales))
	assert.True(t, entity.ValidCashCategory(entity.CashCategoryPartnerWithdrawal))
	assert.False(t, entity.ValidCashCategory("loan"))
	assert.True(t, entity.ValidCashType(entity.CashTypeReceipt))
	assert.False(t, entity.ValidCashType("transfer"))
}

func TestSupplierOutstanding(t *testing.T) {
	s := &entity.Supplier{
		OpeningBalance: decimal.NewFromInt(1000),
		TotalPurchases: decimal.NewFromInt(5000),
		TotalPaid:      decimal.NewFromInt(5500),
	}
	assert.True(t, s.Outstanding().Equal(decimal.NewFromInt(500)))

	// Anticipo al proveedor: saldo negativo.
	s.TotalPaid = decimal.NewFromInt(7000)
	assert.True(t, s.Outstanding().Equal(decimal.NewFromInt(-1000)))
}
