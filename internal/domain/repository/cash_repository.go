package repository

import (
	"time"

	"github.com/wallsco/firmbooks-api/internal/domain/entity"
)

// CashFilter filtros de consulta del libro de caja. Campos nil = sin filtro.
type CashFilter struct {
	From      *time.Time
	To        *time.Time
	Type      string
	Category  string
	PartnerID string
}

// CashLedgerRepository acceso al diario único firm_cash_ledger.
// List devuelve los asientos del filtro, más recientes primero (el orden es
// irrelevante para la agregación; solo afecta la presentación).
type CashLedgerRepository interface {
	Create(entry *entity.CashEntry) error
	List(filter CashFilter) ([]entity.CashEntry, error)
	DeleteByReference(referenceID string) error
}
