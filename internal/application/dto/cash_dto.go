package dto

import "github.com/shopspring/decimal"

// RecordReceiptRequest entrada de dinero en el libro de caja.
type RecordReceiptRequest struct {
	Date            string          `json:"date" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	PartnerID       string          `json:"partner_id"`
	DepositedToFirm *bool           `json:"deposited_to_firm"`
}

// RecordCashPaymentRequest salida de dinero del libro de caja.
type RecordCashPaymentRequest struct {
	Date        string          `json:"date" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required"`
	PartnerID   string          `json:"partner_id"`
}

// CashEntryResponse asiento del libro de caja.
type CashEntryResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	PartnerID       string          `json:"partner_id,omitempty"`
	DepositedToFirm bool            `json:"deposited_to_firm"`
	Description     string          `json:"description,omitempty"`
	ReferenceID     string          `json:"reference_id,omitempty"`
}

// CashBalanceDTO balance de caja con descomposición por categoría.
type CashBalanceDTO struct {
	Balance             decimal.Decimal `json:"balance"`
	Income              decimal.Decimal `json:"income"`
	Investment          decimal.Decimal `json:"investment"`
	PartnerContribution decimal.Decimal `json:"partner_contribution"`
	LabourCost          decimal.Decimal `json:"labour_cost"`
	PurchaseCost        decimal.Decimal `json:"purchase_cost"`
	OperationalCost     decimal.Decimal `json:"operational_cost"`
	PartnerWithdrawal   decimal.Decimal `json:"partner_withdrawal"`
	ManualAdjustment    decimal.Decimal `json:"manual_adjustment"`
}

// CashSummaryDTO resumen de caja para un rango de fechas.
type CashSummaryDTO struct {
	Period        Period          `json:"period"`
	TotalReceipts decimal.Decimal `json:"total_receipts"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	NetCashFlow   decimal.Decimal `json:"net_cash_flow"`
	Breakdown     CashBalanceDTO  `json:"breakdown"`
}
