package payroll_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/application/payroll"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeWorkerRepo struct {
	workers map[string]*entity.Worker
}

func (r *fakeWorkerRepo) Create(w *entity.Worker) error { r.workers[w.ID] = w; return nil }
func (r *fakeWorkerRepo) GetByID(id string) (*entity.Worker, error) {
	return r.workers[id], nil
}
func (r *fakeWorkerRepo) GetByIDForUpdate(id string) (*entity.Worker, error) {
	return r.workers[id], nil
}
func (r *fakeWorkerRepo) List(onlyActive bool) ([]*entity.Worker, error) {
	out := make([]*entity.Worker, 0, len(r.workers))
	for _, w := range r.workers {
		if onlyActive && !w.Active {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}
func (r *fakeWorkerRepo) Update(w *entity.Worker) error { r.workers[w.ID] = w; return nil }
func (r *fakeWorkerRepo) SetActive(id string, set bool) error {
	r.workers[id].Active = set
	return nil
}
func (r *fakeWorkerRepo) ListWithOutstanding() ([]*entity.Worker, error) { return nil, nil }
func (r *fakeWorkerRepo) ApplyWage(workerID string, earned, paid, daysWorked decimal.Decimal) error {
	w := r.workers[workerID]
	w.CumulativeBalance = w.CumulativeBalance.Add(earned).Sub(paid)
	w.TotalEarned = w.TotalEarned.Add(earned)
	w.TotalPaid = w.TotalPaid.Add(paid)
	w.TotalDaysWorked = w.TotalDaysWorked.Add(daysWorked)
	return nil
}

type fakeWageRepo struct {
	entries []*entity.WageEntry
}

func (r *fakeWageRepo) Create(e *entity.WageEntry) error { r.entries = append(r.entries, e); return nil }
func (r *fakeWageRepo) ListByWorker(workerID string, from, to *time.Time) ([]*entity.WageEntry, error) {
	var out []*entity.WageEntry
	for _, e := range r.entries {
		if e.WorkerID != workerID {
			continue
		}
		if from != nil && e.Date.Before(*from) {
			continue
		}
		if to != nil && e.Date.After(*to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeCashRepo struct {
	entries []*entity.CashEntry
}

func (r *fakeCashRepo) Create(e *entity.CashEntry) error { r.entries = append(r.entries, e); return nil }
func (r *fakeCashRepo) List(repository.CashFilter) ([]entity.CashEntry, error) { return nil, nil }
func (r *fakeCashRepo) DeleteByReference(string) error                         { return nil }

type fakeTxRunner struct {
	workerRepo *fakeWorkerRepo
	wageRepo   *fakeWageRepo
	cashRepo   *fakeCashRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	workerRepo repository.WorkerRepository,
	wageRepo repository.WageEntryRepository,
	cashRepo repository.CashLedgerRepository,
) error) error {
	return fn(r.workerRepo, r.wageRepo, r.cashRepo)
}

func newFixture() (*payroll.WorkerUseCase, *fakeWorkerRepo, *fakeWageRepo, *fakeCashRepo) {
	workerRepo := &fakeWorkerRepo{workers: map[string]*entity.Worker{
		"w1": {ID: "w1", Name: "Suresh", Active: true},
	}}
	wageRepo := &fakeWageRepo{}
	cashRepo := &fakeCashRepo{}
	tx := &fakeTxRunner{workerRepo: workerRepo, wageRepo: wageRepo, cashRepo: cashRepo}
	return payroll.NewWorkerUseCase(tx, workerRepo, wageRepo), workerRepo, wageRepo, cashRepo
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestRecordAttendance_TarifasPorTipoDeDia(t *testing.T) {
	uc, workerRepo, _, cashRepo := newFixture()

	// Día completo sin pago: devenga 400 y no toca la caja.
	entry, err := uc.RecordAttendance(context.Background(), dto.RecordAttendanceRequest{
		WorkerID: "w1", Date: "2025-04-01", AttendanceType: entity.AttendanceFullDay,
	})
	require.NoError(t, err)
	assert.True(t, entry.WageEarned.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, entity.WagePaymentUnpaid, entry.PaymentMode)
	assert.Empty(t, cashRepo.entries)

	// Medio día cuenta 0.5 jornadas.
	_, err = uc.RecordAttendance(context.Background(), dto.RecordAttendanceRequest{
		WorkerID: "w1", Date: "2025-04-02", AttendanceType: entity.AttendanceHalfDay,
	})
	require.NoError(t, err)

	w := workerRepo.workers["w1"]
	assert.True(t, w.CumulativeBalance.Equal(decimal.NewFromInt(600)))
	assert.True(t, w.TotalDaysWorked.Equal(decimal.RequireFromString("1.5")))
}

func TestRecordAttendance_PagoParcialEscribeAsientoDeCaja(t *testing.T) {
	uc, workerRepo, _, cashRepo := newFixture()

	entry, err := uc.RecordAttendance(context.Background(), dto.RecordAttendanceRequest{
		WorkerID:       "w1",
		Date:           "2025-04-03",
		AttendanceType: entity.AttendanceOutdoor,
		PaidToday:      decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.WagePaymentCash, entry.PaymentMode)

	// devengó 450, cobró 200: saldo 250.
	assert.True(t, workerRepo.workers["w1"].CumulativeBalance.Equal(decimal.NewFromInt(250)))

	require.Len(t, cashRepo.entries, 1)
	cashEntry := cashRepo.entries[0]
	assert.Equal(t, entity.CashTypePayment, cashEntry.Type)
	assert.Equal(t, entity.CashCategoryWage, cashEntry.Category)
	assert.True(t, cashEntry.Amount.Equal(decimal.NewFromInt(200)))
	require.NotNil(t, cashEntry.ReferenceID)
	assert.Equal(t, entry.ID, *cashEntry.ReferenceID)
}

func TestRecordAttendance_CustomUsaTarifaDelLlamador(t *testing.T) {
	uc, _, _, _ := newFixture()

	entry, err := uc.RecordAttendance(context.Background(), dto.RecordAttendanceRequest{
		WorkerID:       "w1",
		Date:           "2025-04-04",
		AttendanceType: entity.AttendanceCustom,
		CustomWage:     decimal.NewFromInt(325),
	})
	require.NoError(t, err)
	assert.True(t, entry.WageEarned.Equal(decimal.NewFromInt(325)))
}

func TestRecordAttendance_TipoDesconocido(t *testing.T) {
	uc, _, _, _ := newFixture()
	_, err := uc.RecordAttendance(context.Background(), dto.RecordAttendanceRequest{
		WorkerID: "w1", Date: "2025-04-01", AttendanceType: "Night Shift",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPayWorker_TrabajadorInexistente(t *testing.T) {
	uc, _, _, _ := newFixture()
	_, err := uc.PayWorker(context.Background(), dto.PayWorkerRequest{
		WorkerID: "fantasma", Date: "2025-04-01", Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatement_SaldoCorrido(t *testing.T) {
	uc, _, _, _ := newFixture()

	ctx := context.Background()
	mustAttend := func(date, attendanceType string, paid int64) {
		_, err := uc.RecordAttendance(ctx, dto.RecordAttendanceRequest{
			WorkerID:       "w1",
			Date:           date,
			AttendanceType: attendanceType,
			PaidToday:      decimal.NewFromInt(paid),
		})
		require.NoError(t, err)
	}
	mustAttend("2025-04-01", entity.AttendanceFullDay, 0)   // +400 ⇒ 400
	mustAttend("2025-04-02", entity.AttendanceHalfDay, 100) // +200 −100 ⇒ 500
	_, err := uc.PayWorker(ctx, dto.PayWorkerRequest{
		WorkerID: "w1", Date: "2025-04-05", Amount: decimal.NewFromInt(450),
	}) // −450 ⇒ 50
	require.NoError(t, err)

	lines, err := uc.Statement("w1", nil, nil)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.True(t, lines[0].RunningBalance.Equal(decimal.NewFromInt(400)))
	assert.True(t, lines[1].RunningBalance.Equal(decimal.NewFromInt(500)))
	assert.True(t, lines[2].RunningBalance.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "2025-04-05", lines[2].EntryDate)
}

func TestSummary_DeudaLaboralSoloSaldosPositivos(t *testing.T) {
	uc, workerRepo, _, _ := newFixture()
	workerRepo.workers["w2"] = &entity.Worker{
		ID: "w2", Name: "Mahesh", Active: true,
		CumulativeBalance: decimal.NewFromInt(-300), // cobró por adelantado
	}
	workerRepo.workers["w1"].CumulativeBalance = decimal.NewFromInt(700)

	summary, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalWorkers)
	// El adelanto de w2 no descuenta la deuda con w1.
	assert.True(t, summary.TotalLabourLiability.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, 1, summary.WorkersOwedMoney)
}
