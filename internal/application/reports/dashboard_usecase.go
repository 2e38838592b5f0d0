package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/application/billing"
	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain/ledger"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
	"github.com/wallsco/firmbooks-api/pkg/logger"
)

// DashboardUseCase KPIs del día y del mes en curso. Mismo contrato fail-open
// que los reportes: cada métrica que falla entra como cero y queda nombrada.
type DashboardUseCase struct {
	dueUC      *billing.DueUseCase
	cashRepo   repository.CashLedgerRepository
	workerRepo repository.WorkerRepository
	log        *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	dueUC *billing.DueUseCase,
	cashRepo repository.CashLedgerRepository,
	workerRepo repository.WorkerRepository,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		dueUC:      dueUC,
		cashRepo:   cashRepo,
		workerRepo: workerRepo,
		log:        log,
	}
}

// GetSummary construye el resumen del dashboard.
//
// Cinco consultas en paralelo:
//  1. Totales facturado/cobrado de hoy
//  2. Totales facturado/cobrado del mes
//  3. Deuda total de clientes
//  4. Balance de caja (libro completo)
//  5. Deuda laboral (trabajadores con saldo positivo)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type totalsResult struct {
		revenue  decimal.Decimal
		received decimal.Decimal
		degraded []string
	}
	type dueResult struct {
		due []*dto.ClientDueDTO
		err error
	}
	type cashResult struct {
		balance ledger.CashBalance
		err     error
	}
	type liabilityResult struct {
		total decimal.Decimal
		err   error
	}

	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	dueCh := make(chan dueResult, 1)
	cashCh := make(chan cashResult, 1)
	liabilityCh := make(chan liabilityResult, 1)

	go func() {
		rev, rec, degraded := uc.dueUC.PeriodTotals(ctx, &todayStart, &todayEnd)
		todayCh <- totalsResult{rev, rec, degraded}
	}()
	go func() {
		rev, rec, degraded := uc.dueUC.PeriodTotals(ctx, &monthStart, &monthEnd)
		monthCh <- totalsResult{rev, rec, degraded}
	}()
	go func() {
		due, err := uc.dueUC.AllClientDues(ctx)
		dueCh <- dueResult{due, err}
	}()
	go func() {
		entries, err := uc.cashRepo.List(repository.CashFilter{})
		if err != nil {
			cashCh <- cashResult{err: err}
			return
		}
		cashCh <- cashResult{balance: ledger.FoldCash(entries)}
	}()
	go func() {
		workers, err := uc.workerRepo.ListWithOutstanding()
		if err != nil {
			liabilityCh <- liabilityResult{err: err}
			return
		}
		total := decimal.Zero
		for _, w := range workers {
			total = total.Add(w.CumulativeBalance)
		}
		liabilityCh <- liabilityResult{total: total}
	}()

	today := <-todayCh
	month := <-monthCh
	due := <-dueCh
	cash := <-cashCh
	liability := <-liabilityCh

	out := &dto.DashboardSummaryDTO{
		TodayRevenue:    today.revenue,
		TodayReceived:   today.received,
		MonthRevenue:    month.revenue,
		MonthReceived:   month.received,
		TotalDue:        decimal.Zero,
		CashBalance:     decimal.Zero,
		LabourLiability: decimal.Zero,
		DateLabel:       monthLabel(now),
	}
	for _, d := range today.degraded {
		out.Degraded = append(out.Degraded, "today:"+d)
	}
	for _, d := range month.degraded {
		out.Degraded = append(out.Degraded, "month:"+d)
	}
	if due.err != nil {
		uc.log.Warn().Err(due.err).Msg("deuda total degradada en dashboard")
		out.Degraded = append(out.Degraded, "client_dues")
	} else {
		for _, d := range due.due {
			out.TotalDue = out.TotalDue.Add(d.Due)
		}
	}
	if cash.err != nil {
		uc.log.Warn().Err(cash.err).Msg("balance de caja degradado en dashboard")
		out.Degraded = append(out.Degraded, "cash_balance")
	} else {
		out.CashBalance = cash.balance.Balance
	}
	if liability.err != nil {
		uc.log.Warn().Err(liability.err).Msg("deuda laboral degradada en dashboard")
		out.Degraded = append(out.Degraded, "labour_liability")
	} else {
		out.LabourLiability = liability.total
	}
	return out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
