package repository

import (
	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia de proveedores.
// ApplyPurchase/ApplyPayment actualizan los contadores desnormalizados y
// DEBEN invocarse únicamente dentro de la transacción que inserta la factura
// o el pago (el TxRunner entrega instancias atadas a la tx).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(onlyActive bool) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
	ListWithOutstanding() ([]*entity.Supplier, error)
	ApplyPurchase(supplierID string, amount decimal.Decimal) error
	ApplyPayment(supplierID string, amount decimal.Decimal) error
}

// SupplierPaymentRepository pagos a proveedores (append-only).
type SupplierPaymentRepository interface {
	Create(payment *entity.SupplierPayment) error
	ListBySupplier(supplierID string) ([]*entity.SupplierPayment, error)
	ListAll() ([]*entity.SupplierPayment, error)
}

// SupplierInvoiceRepository facturas de proveedores.
type SupplierInvoiceRepository interface {
	Create(invoice *entity.SupplierInvoice) error
	GetByID(id string) (*entity.SupplierInvoice, error)
	ListBySupplier(supplierID string) ([]*entity.SupplierInvoice, error)
	ListUnpaid() ([]*entity.SupplierInvoice, error)
	// ListUnpaidBySupplierForUpdate bloquea las facturas abiertas del
	// proveedor (SELECT FOR UPDATE) para asignarles un pago.
	ListUnpaidBySupplierForUpdate(supplierID string) ([]*entity.SupplierInvoice, error)
	// ApplyPayment actualiza paid/outstanding/payment_status de una factura.
	ApplyPayment(invoiceID string, paid, outstanding decimal.Decimal, status string) error
}
