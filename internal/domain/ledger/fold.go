// Package ledger contiene los servicios de dominio puros que pliegan filas de
// transacciones (append-only) en saldos con signo. Todas las funciones son
// deterministas, sin I/O, y conmutativas respecto al orden de las filas.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/domain/entity"
)

// Due calcula la deuda de un cliente: Σfacturado − Σpagado.
// Puede ser negativa (cliente pagó de más); nunca se trunca a cero.
func Due(billed, paid []decimal.Decimal) decimal.Decimal {
	return Sum(billed).Sub(Sum(paid))
}

// Sum pliega una secuencia de montos. Secuencia vacía ⇒ cero exacto.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// CashBalance es el resultado de plegar el libro de caja: balance con signo
// más la descomposición por categoría.
type CashBalance struct {
	Balance             decimal.Decimal
	Income              decimal.Decimal // receipts categoría sales
	Investment          decimal.Decimal // receipts categoría investment
	PartnerContribution decimal.Decimal // receipts categoría partner_contribution
	LabourCost          decimal.Decimal // payments categoría wage
	PurchaseCost        decimal.Decimal // payments categoría purchase
	OperationalCost     decimal.Decimal // payments categoría operational
	PartnerWithdrawal   decimal.Decimal // payments categoría partner_withdrawal
	ManualAdjustment    decimal.Decimal // receipts − payments categoría adjustment
	TotalReceipts       decimal.Decimal
	TotalPayments       decimal.Decimal
}

// FoldCash pliega asientos del libro de caja en un solo paso:
// balance = Σreceipt.amount − Σpayment.amount, con sub-totales por categoría.
// Entrada vacía ⇒ cero exacto en cada cubeta (nunca NaN ni nil).
func FoldCash(entries []entity.CashEntry) CashBalance {
	b := CashBalance{
		Balance:             decimal.Zero,
		Income:              decimal.Zero,
		Investment:          decimal.Zero,
		PartnerContribution: decimal.Zero,
		LabourCost:          decimal.Zero,
		PurchaseCost:        decimal.Zero,
		OperationalCost:     decimal.Zero,
		PartnerWithdrawal:   decimal.Zero,
		ManualAdjustment:    decimal.Zero,
		TotalReceipts:       decimal.Zero,
		TotalPayments:       decimal.Zero,
	}
	for _, e := range entries {
		switch e.Type {
		case entity.CashTypeReceipt:
			b.TotalReceipts = b.TotalReceipts.Add(e.Amount)
			b.Balance = b.Balance.Add(e.Amount)
			switch e.Category {
			case entity.CashCategorySales:
				b.Income = b.Income.Add(e.Amount)
			case entity.CashCategoryInvestment:
				b.Investment = b.Investment.Add(e.Amount)
			case entity.CashCategoryPartnerContribution:
				b.PartnerContribution = b.PartnerContribution.Add(e.Amount)
			case entity.CashCategoryAdjustment:
				b.ManualAdjustment = b.ManualAdjustment.Add(e.Amount)
			}
		case entity.CashTypePayment:
			b.TotalPayments = b.TotalPayments.Add(e.Amount)
			b.Balance = b.Balance.Sub(e.Amount)
			switch e.Category {
			case entity.CashCategoryWage:
				b.LabourCost = b.LabourCost.Add(e.Amount)
			case entity.CashCategoryPurchase:
				b.PurchaseCost = b.PurchaseCost.Add(e.Amount)
			case entity.CashCategoryOperational:
				b.OperationalCost = b.OperationalCost.Add(e.Amount)
			case entity.CashCategoryPartnerWithdrawal:
				b.PartnerWithdrawal = b.PartnerWithdrawal.Add(e.Amount)
			case entity.CashCategoryAdjustment:
				b.ManualAdjustment = b.ManualAdjustment.Sub(e.Amount)
			}
		}
	}
	return b
}

// Estados de la billetera del socio según convención de signo:
// saldo > 0 ⇒ la firma le debe al socio (OWED); < 0 ⇒ el socio le debe a la
// firma (OWING); == 0 ⇒ saldada (SETTLED).
const (
	WalletOwed    = "OWED"
	WalletOwing   = "OWING"
	WalletSettled = "SETTLED"
)

// WalletBalance calcula el saldo de la billetera del socio:
// Σaportes − Σretiros.
func WalletBalance(contributions, withdrawals []decimal.Decimal) decimal.Decimal {
	return Sum(contributions).Sub(Sum(withdrawals))
}

// WalletStatus clasifica un saldo de billetera según la convención de signo.
func WalletStatus(balance decimal.Decimal) string {
	switch balance.Sign() {
	case 1:
		return WalletOwed
	case -1:
		return WalletOwing
	default:
		return WalletSettled
	}
}

// CollectionRate devuelve received/revenue ×100, redondeado a 2 decimales.
// Revenue cero ⇒ 0 exacto (nunca división por cero).
func CollectionRate(received, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return received.Div(revenue).Mul(decimal.NewFromInt(100)).Round(2)
}

// Margin devuelve profit/revenue ×100, redondeado a 2 decimales, con la
// misma protección contra división por cero.
func Margin(profit, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(decimal.NewFromInt(100)).Round(2)
}
