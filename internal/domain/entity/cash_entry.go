package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento del libro de caja de la firma.
const (
	CashTypeReceipt = "receipt" // entrada de dinero
	CashTypePayment = "payment" // salida de dinero
)

// Categorías del libro de caja. El balance y los sub-totales del reporte
// se derivan filtrando por (type, category).
const (
	CashCategorySales               = "sales"
	CashCategoryInvestment          = "investment"
	CashCategoryPurchase            = "purchase"
	CashCategoryWage                = "wage"
	CashCategoryOperational         = "operational"
	CashCategoryPartnerContribution = "partner_contribution"
	CashCategoryPartnerWithdrawal   = "partner_withdrawal"
	CashCategoryAdjustment          = "adjustment"
)

// CashEntry es un asiento del diario único firm_cash_ledger (append-only).
// ReferenceID enlaza el asiento con la fila de negocio que lo originó
// (compra de material, pago de salario, pago a proveedor).
type CashEntry struct {
	ID              string
	Date            time.Time
	Type            string // receipt | payment
	Category        string
	Amount          decimal.Decimal
	PartnerID       *string
	DepositedToFirm bool
	Description     string
	ReferenceID     *string
	CreatedAt       time.Time
}

// ValidCashType verifica el discriminante de tipo.
func ValidCashType(t string) bool {
	return t == CashTypeReceipt || t == CashTypePayment
}

// ValidCashCategory verifica que la categoría sea una de las conocidas.
func ValidCashCategory(c string) bool {
	switch c {
	case CashCategorySales, CashCategoryInvestment, CashCategoryPurchase,
		CashCategoryWage, CashCategoryOperational,
		CashCategoryPartnerContribution, CashCategoryPartnerWithdrawal,
		CashCategoryAdjustment:
		return true
	}
	return false
}
