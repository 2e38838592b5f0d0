package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia del maestro de clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(onlyActive bool) ([]*entity.Client, error)
	Update(client *entity.Client) error
	SetActive(id string, active bool) error
}

// ClientBillRepository acceso a las facturas de cliente (append-only).
type ClientBillRepository interface {
	Create(bill *entity.ClientBill) error
	ListByClient(clientID string) ([]*entity.ClientBill, error)
	ListByDateRange(from, to time.Time) ([]*entity.ClientBill, error)
	// AmountsByClient devuelve solo los montos facturados del cliente
	// (entrada del plegado de deuda).
	AmountsByClient(clientID string) ([]decimal.Decimal, error)
	// AmountsByDateRange devuelve los montos del rango; from/to nil = sin cota.
	AmountsByDateRange(from, to *time.Time) ([]decimal.Decimal, error)
}

// ClientPaymentRepository acceso a los cobros de cliente (append-only).
type ClientPaymentRepository interface {
	Create(payment *entity.ClientPayment) error
	ListByClient(clientID string) ([]*entity.ClientPayment, error)
	AmountsByClient(clientID string) ([]decimal.Decimal, error)
	AmountsByDateRange(from, to *time.Time) ([]decimal.Decimal, error)
	// AmountsByCollector devuelve pares (monto, depositado) de los cobros
	// recibidos por un socio.
	AmountsByCollector(partnerID string) ([]CollectedAmount, error)
}

// CollectedAmount es un cobro hecho por un socio y su estado de depósito.
type CollectedAmount struct {
	Amount          decimal.Decimal
	DepositedToFirm bool
}
