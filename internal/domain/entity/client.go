package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa un cliente de la firma (libro mayor de clientes).
// Nunca se elimina físicamente: baja lógica vía Active.
type Client struct {
	ID          string
	Name        string
	Phone       string
	Address     string
	CreditLimit decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClientBill es una línea de facturación del cliente (append-only, inmutable).
type ClientBill struct {
	ID          string
	ClientID    string
	Date        time.Time
	Amount      decimal.Decimal
	EntryType   string // siempre "BILL"
	Description string
	CreatedAt   time.Time
}

// ClientPayment es un cobro registrado contra el cliente (append-only).
// CollectedByPartnerID indica qué socio recibió el dinero; DepositedToFirm
// marca si ya fue entregado a la caja de la firma.
type ClientPayment struct {
	ID                   string
	ClientID             string
	Date                 time.Time
	AmountPaid           decimal.Decimal
	CollectedByPartnerID *string
	DepositedToFirm      bool
	Notes                string
	CreatedAt            time.Time
}

// BillEntryType valor fijo de EntryType en client_bill.
const BillEntryType = "BILL"
