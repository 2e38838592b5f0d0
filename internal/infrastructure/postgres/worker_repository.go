package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

const workerColumns = `id, name, phone, cumulative_balance, total_days_worked, total_earned,
		total_paid, active, joined_date, notes, created_at`

// WorkerRepo implementación de WorkerRepository (usable con pool o tx).
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository construye el adaptador.
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

// Create persiste un trabajador.
func (r *WorkerRepo) Create(worker *entity.Worker) error {
	query := `
		INSERT INTO workers (` + workerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.Name, worker.Phone, worker.CumulativeBalance, worker.TotalDaysWorked,
		worker.TotalEarned, worker.TotalPaid, worker.Active, worker.JoinedDate,
		worker.Notes, worker.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID.
func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`
	return r.getOne(query, id)
}

// GetByIDForUpdate bloquea la fila del trabajador (SELECT FOR UPDATE). Solo
// desde transacción.
func (r *WorkerRepo) GetByIDForUpdate(id string) (*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *WorkerRepo) getOne(query, id string) (*entity.Worker, error) {
	var w entity.Worker
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Name, &w.Phone, &w.CumulativeBalance, &w.TotalDaysWorked, &w.TotalEarned,
		&w.TotalPaid, &w.Active, &w.JoinedDate, &w.Notes, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return &w, nil
}

// List trabajadores ordenados por nombre.
func (r *WorkerRepo) List(onlyActive bool) ([]*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`
	return r.scanWorkers(r.q.Query(context.Background(), query))
}

// ListWithOutstanding trabajadores con saldo acumulado positivo (la firma
// les debe jornal).
func (r *WorkerRepo) ListWithOutstanding() ([]*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE cumulative_balance > 0 ORDER BY name`
	return r.scanWorkers(r.q.Query(context.Background(), query))
}

func (r *WorkerRepo) scanWorkers(rows pgx.Rows, err error) ([]*entity.Worker, error) {
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Phone, &w.CumulativeBalance, &w.TotalDaysWorked,
			&w.TotalEarned, &w.TotalPaid, &w.Active, &w.JoinedDate, &w.Notes, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Update actualiza los datos maestros (nunca los contadores).
func (r *WorkerRepo) Update(worker *entity.Worker) error {
	query := `UPDATE workers SET name = $2, phone = $3, notes = $4 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, worker.ID, worker.Name, worker.Phone, worker.Notes)
	if err != nil {
		return fmt.Errorf("update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive aplica la baja/alta lógica.
func (r *WorkerRepo) SetActive(id string, active bool) error {
	query := `UPDATE workers SET active = $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, active)
	if err != nil {
		return fmt.Errorf("set worker active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ApplyWage mueve los contadores acumulados del trabajador. Solo desde la
// transacción que inserta el asiento de jornal, con la fila bloqueada.
func (r *WorkerRepo) ApplyWage(workerID string, earned, paid, daysWorked decimal.Decimal) error {
	query := `
		UPDATE workers SET
			cumulative_balance = cumulative_balance + $2 - $3,
			total_earned = total_earned + $2,
			total_paid = total_paid + $3,
			total_days_worked = total_days_worked + $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, workerID, earned, paid, daysWorked)
	if err != nil {
		return fmt.Errorf("apply wage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.WageEntryRepository = (*WageEntryRepo)(nil)

const wageEntryColumns = `id, date, worker_id, production_entry_id, attendance_type,
		wage_earned, paid_today, payment_mode, notes, created_at`

// WageEntryRepo implementación de WageEntryRepository.
type WageEntryRepo struct {
	q Querier
}

// NewWageEntryRepository construye el adaptador.
func NewWageEntryRepository(q Querier) *WageEntryRepo {
	return &WageEntryRepo{q: q}
}

// Create persiste un asiento de jornal.
func (r *WageEntryRepo) Create(entry *entity.WageEntry) error {
	query := `
		INSERT INTO wage_entries (` + wageEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Date, entry.WorkerID, entry.ProductionEntryID, entry.AttendanceType,
		entry.WageEarned, entry.PaidToday, entry.PaymentMode, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wage entry: %w", err)
	}
	return nil
}

// ListByWorker asientos de jornal de un trabajador en el rango.
func (r *WageEntryRepo) ListByWorker(workerID string, from, to *time.Time) ([]*entity.WageEntry, error) {
	query := `SELECT ` + wageEntryColumns + ` FROM wage_entries WHERE worker_id = $1`
	args := []any{workerID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND date <= $%d`, len(args))
	}
	query += ` ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list wage entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.WageEntry
	for rows.Next() {
		var e entity.WageEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.WorkerID, &e.ProductionEntryID, &e.AttendanceType,
			&e.WageEarned, &e.PaidToday, &e.PaymentMode, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wage entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
