package procurement

import (
	"context"

	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que factura/pago, contadores del
// proveedor y asiento de caja se escriban juntos o no se escriban.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		supplierRepo repository.SupplierRepository,
		invoiceRepo repository.SupplierInvoiceRepository,
		paymentRepo repository.SupplierPaymentRepository,
		cashRepo repository.CashLedgerRepository,
	) error) error
}
