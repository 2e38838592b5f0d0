package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSum_SecuenciaVacia(t *testing.T) {
	assert.True(t, ledger.Sum(nil).IsZero(), "sin filas el total debe ser cero exacto")
}

func TestDue_SaldoConSigno(t *testing.T) {
	// El cliente pagó de más: la deuda queda negativa, nunca se trunca.
	billed := []decimal.Decimal{d("1000"), d("500.50")}
	paid := []decimal.Decimal{d("1600")}
	assert.True(t, ledger.Due(billed, paid).Equal(d("-99.50")))

	// Caso normal: facturado > pagado.
	assert.True(t, ledger.Due(billed, []decimal.Decimal{d("400")}).Equal(d("1100.50")))

	// Sin movimientos: cero.
	assert.True(t, ledger.Due(nil, nil).IsZero())
}

func TestDue_ConmutativaRespectoAlOrden(t *testing.T) {
	a := []decimal.Decimal{d("10"), d("20"), d("30")}
	b := []decimal.Decimal{d("30"), d("10"), d("20")}
	assert.True(t, ledger.Due(a, nil).Equal(ledger.Due(b, nil)))
}

func TestFoldCash_EntradaVacia(t *testing.T) {
	b := ledger.FoldCash(nil)
	assert.True(t, b.Balance.IsZero())
	assert.True(t, b.Income.IsZero())
	assert.True(t, b.LabourCost.IsZero())
	assert.True(t, b.TotalReceipts.IsZero())
	assert.True(t, b.TotalPayments.IsZero())
}

func TestFoldCash_CubetasPorCategoria(t *testing.T) {
	entries := []entity.CashEntry{
		{Type: entity.CashTypeReceipt, Category: entity.CashCategorySales, Amount: d("5000")},
		{Type: entity.CashTypeReceipt, Category: entity.CashCategoryPartnerContribution, Amount: d("2000")},
		{Type: entity.CashTypePayment, Category: entity.CashCategoryWage, Amount: d("800")},
		{Type: entity.CashTypePayment, Category: entity.CashCategoryPurchase, Amount: d("1200")},
		{Type: entity.CashTypePayment, Category: entity.CashCategoryOperational, Amount: d("300")},
		{Type: entity.CashTypeReceipt, Category: entity.CashCategoryAdjustment, Amount: d("50")},
		{Type: entity.CashTypePayment, Category: entity.CashCategoryAdjustment, Amount: d("20")},
	}
	b := ledger.FoldCash(entries)

	assert.True(t, b.Income.Equal(d("5000")))
	assert.True(t, b.PartnerContribution.Equal(d("2000")))
	assert.True(t, b.LabourCost.Equal(d("800")))
	assert.True(t, b.PurchaseCost.Equal(d("1200")))
	assert.True(t, b.OperationalCost.Equal(d("300")))
	// ajuste neto: +50 − 20
	assert.True(t, b.ManualAdjustment.Equal(d("30")))
	assert.True(t, b.TotalReceipts.Equal(d("7050")))
	assert.True(t, b.TotalPayments.Equal(d("2320")))
	assert.True(t, b.Balance.Equal(d("4730")))
}

func TestFoldCash_RetiroDeSocioDescuentaDelBalance(t *testing.T) {
	entries := []entity.CashEntry{
		{Type: entity.CashTypeReceipt, Category: entity.CashCategorySales, Amount: d("500")},
		{Type: entity.CashTypePayment, Category: entity.CashCategoryWage, Amount: d("200")},
		{Type: entity.CashTypePayment, Category: entity.CashCategoryPartnerWithdrawal, Amount: d("50")},
	}
	b := ledger.FoldCash(entries)

	assert.True(t, b.Income.Equal(d("500")))
	assert.True(t, b.LabourCost.Equal(d("200")))
	assert.True(t, b.PartnerWithdrawal.Equal(d("50")))
	// balance = 500 − 200 − 50
	assert.True(t, b.Balance.Equal(d("250")))
}

func TestFoldCash_BalancePuedeSerNegativo(t *testing.T) {
	entries := []entity.CashEntry{
		{Type: entity.CashTypeReceipt, Category: entity.CashCategorySales, Amount: d("100")},
		{Type: entity.CashTypePayment, Category: entity.CashCategoryPurchase, Amount: d("250")},
	}
	assert.True(t, ledger.FoldCash(entries).Balance.Equal(d("-150")))
}

func TestWalletBalance_YEstado(t *testing.T) {
	// La firma le debe al socio.
	balance := ledger.WalletBalance([]decimal.Decimal{d("1000")}, []decimal.Decimal{d("400")})
	assert.True(t, balance.Equal(d("600")))
	assert.Equal(t, ledger.WalletOwed, ledger.WalletStatus(balance))

	// El socio le debe a la firma.
	balance = ledger.WalletBalance([]decimal.Decimal{d("100")}, []decimal.Decimal{d("400")})
	assert.Equal(t, ledger.WalletOwing, ledger.WalletStatus(balance))

	// Saldada.
	assert.Equal(t, ledger.WalletSettled, ledger.WalletStatus(decimal.Zero))
}

func TestCollectionRate_DivisionPorCero(t *testing.T) {
	assert.True(t, ledger.CollectionRate(d("500"), decimal.Zero).IsZero())
	assert.True(t, ledger.CollectionRate(d("500"), d("-10")).IsZero())
	assert.True(t, ledger.CollectionRate(d("500"), d("2000")).Equal(d("25")))
}

func TestMargin_Redondeo(t *testing.T) {
	assert.True(t, ledger.Margin(d("1"), d("3")).Equal(d("33.33")))
	assert.True(t, ledger.Margin(d("10"), decimal.Zero).IsZero())
}
