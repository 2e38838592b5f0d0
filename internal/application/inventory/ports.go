package inventory

import (
	"context"

	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la fila de compra o auditoría
// y los contadores del material se muevan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		purchaseRepo repository.MaterialPurchaseRepository,
		auditRepo repository.StockAuditRepository,
		cashRepo repository.CashLedgerRepository,
	) error) error
}
