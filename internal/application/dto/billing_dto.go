package dto

import "github.com/shopspring/decimal"

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	Name        string          `json:"name" validate:"required"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// UpdateClientRequest modificación de cliente.
type UpdateClientRequest struct {
	Name        string          `json:"name" validate:"required"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// ClientResponse representación HTTP de un cliente.
type ClientResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Active      bool            `json:"active"`
}

// AddBillRequest registra una factura de cliente.
type AddBillRequest struct {
	ClientID    string          `json:"client_id" validate:"required"`
	Date        string          `json:"date" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// RecordClientPaymentRequest registra un cobro de cliente.
type RecordClientPaymentRequest struct {
	ClientID             string          `json:"client_id" validate:"required"`
	Date                 string          `json:"date" validate:"required"`
	Amount               decimal.Decimal `json:"amount"`
	CollectedByPartnerID string          `json:"collected_by_partner_id"`
	DepositedToFirm      bool            `json:"deposited_to_firm"`
	Notes                string          `json:"notes"`
}

// ClientDueDTO deuda puntual de un cliente.
// Degraded lista las lecturas que fallaron y fueron sustituidas por cero
// (distinción entre "cero real" y "cero por fallo de lectura").
type ClientDueDTO struct {
	ClientID        string          `json:"client_id"`
	ClientName      string          `json:"client_name,omitempty"`
	TotalBilled     decimal.Decimal `json:"total_billed"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	Due             decimal.Decimal `json:"due"`
	OverCreditLimit bool            `json:"over_credit_limit"`
	Degraded        []string        `json:"degraded,omitempty"`
}

// BillResponse representación HTTP de una factura de cliente.
type BillResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// PaymentResponse representación HTTP de un cobro de cliente.
type PaymentResponse struct {
	ID                   string          `json:"id"`
	ClientID             string          `json:"client_id"`
	Date                 string          `json:"date"`
	AmountPaid           decimal.Decimal `json:"amount_paid"`
	CollectedByPartnerID string          `json:"collected_by_partner_id,omitempty"`
	DepositedToFirm      bool            `json:"deposited_to_firm"`
}
