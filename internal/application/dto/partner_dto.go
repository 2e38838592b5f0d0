package dto

import "github.com/shopspring/decimal"

// CreatePartnerRequest alta de socio.
type CreatePartnerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
}

// PartnerResponse representación HTTP de un socio.
type PartnerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	Active bool   `json:"active"`
}

// PartnerWalletDTO saldo de billetera de un socio.
// Balance = Σaportes − Σretiros; Status según convención de signo
// (OWED > 0, OWING < 0, SETTLED == 0).
type PartnerWalletDTO struct {
	PartnerID         string          `json:"partner_id"`
	PartnerName       string          `json:"partner_name"`
	TotalContribution decimal.Decimal `json:"total_contribution"`
	TotalWithdrawal   decimal.Decimal `json:"total_withdrawal"`
	TotalCollected    decimal.Decimal `json:"total_collected"`
	TotalDeposited    decimal.Decimal `json:"total_deposited"`
	Balance           decimal.Decimal `json:"balance"`
	Status            string          `json:"status"`
	Degraded          []string        `json:"degraded,omitempty"`
}

// WalletMovementDTO línea del historial de billetera.
type WalletMovementDTO struct {
	Date        string          `json:"date"`
	Type        string          `json:"type"` // CONTRIBUTION | WITHDRAWAL
	Amount      decimal.Decimal `json:"amount"`
	Sign        int             `json:"sign"`
	Description string          `json:"description,omitempty"`
}

// PartnerWalletHistoryDTO historial + saldo actual.
type PartnerWalletHistoryDTO struct {
	PartnerName   string              `json:"partner_name"`
	History       []WalletMovementDTO `json:"history"`
	CurrentWallet *PartnerWalletDTO   `json:"current_wallet"`
}

// PartnerSummaryRow totales de un socio en un rango.
type PartnerSummaryRow struct {
	PartnerID         string          `json:"partner_id"`
	PartnerName       string          `json:"partner_name"`
	TotalContribution decimal.Decimal `json:"total_contribution"`
	TotalWithdrawal   decimal.Decimal `json:"total_withdrawal"`
	Balance           decimal.Decimal `json:"balance"`
}
