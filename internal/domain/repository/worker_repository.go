package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/domain/entity"
)

// WorkerRepository define el puerto de persistencia de trabajadores.
// ApplyWage actualiza los contadores acumulados y solo debe invocarse dentro
// de la transacción que inserta el asiento de jornal.
type WorkerRepository interface {
	Create(worker *entity.Worker) error
	GetByID(id string) (*entity.Worker, error)
	// GetByIDForUpdate bloquea la fila del trabajador para mutar contadores.
	GetByIDForUpdate(id string) (*entity.Worker, error)
	List(onlyActive bool) ([]*entity.Worker, error)
	Update(worker *entity.Worker) error
	SetActive(id string, active bool) error
	ListWithOutstanding() ([]*entity.Worker, error)
	ApplyWage(workerID string, earned, paid, daysWorked decimal.Decimal) error
}

// WageEntryRepository asientos de jornal (append-only).
type WageEntryRepository interface {
	Create(entry *entity.WageEntry) error
	ListByWorker(workerID string, from, to *time.Time) ([]*entity.WageEntry, error)
}
