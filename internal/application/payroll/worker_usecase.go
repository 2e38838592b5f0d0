// Package payroll contiene los casos de uso de trabajadores y jornales:
// asistencia con tarifas fijas por tipo de día, pagos directos y extracto
// con saldo corrido.
package payroll

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// WorkerUseCase maestro de trabajadores y asientos de jornal. Las mutaciones
// que tocan contadores acumulados van por el TxRunner con la fila del
// trabajador bloqueada (SELECT FOR UPDATE).
type WorkerUseCase struct {
	txRunner   TxRunner
	workerRepo repository.WorkerRepository
	wageRepo   repository.WageEntryRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(
	txRunner TxRunner,
	workerRepo repository.WorkerRepository,
	wageRepo repository.WageEntryRepository,
) *WorkerUseCase {
	return &WorkerUseCase{
		txRunner:   txRunner,
		workerRepo: workerRepo,
		wageRepo:   wageRepo,
	}
}

// Create da de alta un trabajador con contadores en cero.
func (uc *WorkerUseCase) Create(in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	worker := &entity.Worker{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Phone:             in.Phone,
		CumulativeBalance: decimal.Zero,
		TotalDaysWorked:   decimal.Zero,
		TotalEarned:       decimal.Zero,
		TotalPaid:         decimal.Zero,
		Active:            true,
		JoinedDate:        now,
		Notes:             in.Notes,
		CreatedAt:         now,
	}
	if err := uc.workerRepo.Create(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// GetByID devuelve un trabajador.
func (uc *WorkerUseCase) GetByID(id string) (*dto.WorkerResponse, error) {
	worker, err := uc.workerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkerResponse(worker), nil
}

// List devuelve los trabajadores.
func (uc *WorkerUseCase) List(onlyActive bool) ([]*dto.WorkerResponse, error) {
	workers, err := uc.workerRepo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, toWorkerResponse(w))
	}
	return out, nil
}

// Deactivate baja lógica del trabajador; su historial de jornales queda.
func (uc *WorkerUseCase) Deactivate(id string) error {
	worker, err := uc.workerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if worker == nil {
		return domain.ErrNotFound
	}
	return uc.workerRepo.SetActive(id, false)
}

// RecordAttendance registra un día de asistencia. El jornal ganado sale de
// la tarifa fija del tipo de día (Custom usa CustomWage); si PaidToday > 0
// el pago escribe además el asiento de caja (payment, wage) en la misma
// transacción.
func (uc *WorkerUseCase) RecordAttendance(ctx context.Context, in dto.RecordAttendanceRequest) (*entity.WageEntry, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.PaidToday.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var earned decimal.Decimal
	var daysWorked decimal.Decimal
	switch in.AttendanceType {
	case entity.AttendanceFullDay, entity.AttendanceOutdoor:
		earned = entity.WageRate(in.AttendanceType)
		daysWorked = decimal.NewFromInt(1)
	case entity.AttendanceHalfDay:
		earned = entity.WageRate(in.AttendanceType)
		daysWorked = decimal.NewFromFloat(0.5)
	case entity.AttendanceCustom:
		if in.CustomWage.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		earned = in.CustomWage
		daysWorked = decimal.NewFromInt(1)
	default:
		return nil, domain.ErrInvalidInput
	}

	mode := entity.WagePaymentUnpaid
	if in.PaidToday.IsPositive() {
		mode = entity.WagePaymentCash
	}

	entry := &entity.WageEntry{
		ID:             uuid.New().String(),
		Date:           date,
		WorkerID:       in.WorkerID,
		AttendanceType: in.AttendanceType,
		WageEarned:     earned,
		PaidToday:      in.PaidToday,
		PaymentMode:    mode,
		Notes:          in.Notes,
		CreatedAt:      time.Now(),
	}
	if err := uc.applyWageEntry(ctx, entry, daysWorked); err != nil {
		return nil, err
	}
	return entry, nil
}

// PayWorker registra un pago directo (sin asistencia): baja el saldo
// acumulado del trabajador y sale de la caja de la firma.
func (uc *WorkerUseCase) PayWorker(ctx context.Context, in dto.PayWorkerRequest) (*entity.WageEntry, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	entry := &entity.WageEntry{
		ID:          uuid.New().String(),
		Date:        date,
		WorkerID:    in.WorkerID,
		WageEarned:  decimal.Zero,
		PaidToday:   in.Amount,
		PaymentMode: entity.WagePaymentCash,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	if err := uc.applyWageEntry(ctx, entry, decimal.Zero); err != nil {
		return nil, err
	}
	return entry, nil
}

// applyWageEntry inserta el asiento, mueve los contadores del trabajador y,
// si hubo pago, escribe el asiento de caja. Una sola transacción.
func (uc *WorkerUseCase) applyWageEntry(ctx context.Context, entry *entity.WageEntry, daysWorked decimal.Decimal) error {
	return uc.txRunner.Run(ctx, func(
		workerRepo repository.WorkerRepository,
		wageRepo repository.WageEntryRepository,
		cashRepo repository.CashLedgerRepository,
	) error {
		worker, err := workerRepo.GetByIDForUpdate(entry.WorkerID)
		if err != nil {
			return err
		}
		if worker == nil {
			return domain.ErrNotFound
		}
		if err := wageRepo.Create(entry); err != nil {
			return err
		}
		if err := workerRepo.ApplyWage(worker.ID, entry.WageEarned, entry.PaidToday, daysWorked); err != nil {
			return err
		}
		if !entry.PaidToday.IsPositive() {
			return nil
		}
		cashEntry := &entity.CashEntry{
			ID:          uuid.New().String(),
			Date:        entry.Date,
			Type:        entity.CashTypePayment,
			Category:    entity.CashCategoryWage,
			Amount:      entry.PaidToday,
			Description: "Pago de jornal a " + worker.Name,
			ReferenceID: &entry.ID,
			CreatedAt:   entry.CreatedAt,
		}
		return cashRepo.Create(cashEntry)
	})
}

// Statement extracto del trabajador con saldo corrido
// (ganado − pagado acumulado línea a línea).
func (uc *WorkerUseCase) Statement(workerID string, from, to *time.Time) ([]*dto.WorkerStatementLineDTO, error) {
	worker, err := uc.workerRepo.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.wageRepo.ListByWorker(workerID, from, to)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	out := make([]*dto.WorkerStatementLineDTO, 0, len(entries))
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.WageEarned).Sub(e.PaidToday)
		out = append(out, &dto.WorkerStatementLineDTO{
			EntryDate:      dto.FormatDate(e.Date),
			AttendanceType: e.AttendanceType,
			WageEarned:     e.WageEarned,
			PaidToday:      e.PaidToday,
			RunningBalance: balance,
		})
	}
	return out, nil
}

// Summary agregados del maestro de trabajadores. La deuda laboral total es
// la suma de los saldos acumulados positivos.
func (uc *WorkerUseCase) Summary() (*dto.WorkersSummaryDTO, error) {
	workers, err := uc.workerRepo.List(false)
	if err != nil {
		return nil, err
	}

	out := &dto.WorkersSummaryDTO{
		TotalLabourLiability: decimal.Zero,
		TotalDaysWorked:      decimal.Zero,
		TotalEarned:          decimal.Zero,
		TotalPaid:            decimal.Zero,
	}
	for _, w := range workers {
		out.TotalWorkers++
		if w.Active {
			out.ActiveWorkers++
		}
		out.TotalDaysWorked = out.TotalDaysWorked.Add(w.TotalDaysWorked)
		out.TotalEarned = out.TotalEarned.Add(w.TotalEarned)
		out.TotalPaid = out.TotalPaid.Add(w.TotalPaid)
		if w.CumulativeBalance.IsPositive() {
			out.TotalLabourLiability = out.TotalLabourLiability.Add(w.CumulativeBalance)
			out.WorkersOwedMoney++
		}
	}
	return out, nil
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	return &dto.WorkerResponse{
		ID:                w.ID,
		Name:              w.Name,
		Phone:             w.Phone,
		CumulativeBalance: w.CumulativeBalance,
		TotalDaysWorked:   w.TotalDaysWorked,
		TotalEarned:       w.TotalEarned,
		TotalPaid:         w.TotalPaid,
		Active:            w.Active,
		JoinedDate:        dto.FormatDate(w.JoinedDate),
	}
}
