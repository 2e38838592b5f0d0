package payroll

import (
	"context"

	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el asiento de jornal, los
// contadores del trabajador y el asiento de caja se muevan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		workerRepo repository.WorkerRepository,
		wageRepo repository.WageEntryRepository,
		cashRepo repository.CashLedgerRepository,
	) error) error
}
