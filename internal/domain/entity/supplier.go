package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor con sus contadores desnormalizados
// TotalPurchases / TotalPaid. Los contadores son una caché del libro mayor:
// solo se actualizan dentro de la misma transacción que inserta la factura o
// el pago correspondiente (nunca con llamadas separadas).
type Supplier struct {
	ID             string
	Name           string
	CompanyName    string
	Phone          string
	Email          string
	GSTIN          string
	Address        string
	City           string
	State          string
	Pincode        string
	OpeningBalance decimal.Decimal
	TotalPurchases decimal.Decimal
	TotalPaid      decimal.Decimal
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Outstanding devuelve el saldo pendiente con el proveedor:
// apertura + compras − pagos. Puede ser negativo (anticipo al proveedor).
func (s *Supplier) Outstanding() decimal.Decimal {
	return s.OpeningBalance.Add(s.TotalPurchases).Sub(s.TotalPaid)
}

// SupplierPayment es un pago realizado a un proveedor (append-only).
type SupplierPayment struct {
	ID               string
	SupplierID       string
	POID             *string
	PaymentDate      time.Time
	AmountPaid       decimal.Decimal
	PaymentMode      string
	ChequeNumber     string
	TransactionID    string
	BankName         string
	PaidByPartnerID  *string
	PaidFromFirmCash bool
	InvoiceNumber    string
	Notes            string
	CreatedAt        time.Time
}

// Estados de pago de una factura de proveedor.
const (
	InvoiceStatusUnpaid  = "unpaid"
	InvoiceStatusPartial = "partial"
	InvoiceStatusPaid    = "paid"
)

// SupplierInvoice es una factura recibida del proveedor.
// PaidAmount/OutstandingAmount se mantienen al asignar pagos, en la misma
// transacción que inserta el pago.
type SupplierInvoice struct {
	ID                string
	SupplierID        string
	POID              *string
	InvoiceNumber     string
	InvoiceDate       time.Time
	DueDate           *time.Time
	Subtotal          decimal.Decimal
	GSTAmount         decimal.Decimal
	TotalAmount       decimal.Decimal
	PaidAmount        decimal.Decimal
	OutstandingAmount decimal.Decimal
	PaymentStatus     string // unpaid | partial | paid
	Notes             string
	CreatedAt         time.Time
}

// SupplierLedgerLine es una línea del extracto cronológico del proveedor
// (débitos = facturas/apertura, créditos = pagos) con saldo corrido.
type SupplierLedgerLine struct {
	TransactionDate time.Time
	TransactionType string
	Reference       string
	Description     string
	DebitAmount     decimal.Decimal
	CreditAmount    decimal.Decimal
	Balance         decimal.Decimal
}
