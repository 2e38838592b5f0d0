package billing

import (
	"context"

	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el cobro y su asiento de caja
// se escriban juntos o no se escriban.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		paymentRepo repository.ClientPaymentRepository,
		cashRepo repository.CashLedgerRepository,
	) error) error
}
