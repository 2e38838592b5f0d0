// Package reports contiene el compositor de reportes: fusiona las tajadas
// de clientes, socios, caja y producción en reportes de negocio. Todas las
// tajadas son fail-open: la que falla entra como cero, queda nombrada en
// Degraded y deja un warn en el log; ninguna tumba el reporte completo.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/application/billing"
	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/application/partner"
	"github.com/wallsco/firmbooks-api/internal/domain/ledger"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
	"github.com/wallsco/firmbooks-api/pkg/logger"
)

// ReportsUseCase compositor de reportes de negocio.
type ReportsUseCase struct {
	dueUC          *billing.DueUseCase
	walletUC       *partner.WalletUseCase
	cashRepo       repository.CashLedgerRepository
	productionRepo repository.ProductionRepository
	log            *logger.Logger
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	dueUC *billing.DueUseCase,
	walletUC *partner.WalletUseCase,
	cashRepo repository.CashLedgerRepository,
	productionRepo repository.ProductionRepository,
	log *logger.Logger,
) *ReportsUseCase {
	return &ReportsUseCase{
		dueUC:          dueUC,
		walletUC:       walletUC,
		cashRepo:       cashRepo,
		productionRepo: productionRepo,
		log:            log,
	}
}

// ClientFinancialReport facturación, cobros y deuda de clientes en un rango.
// La deuda por cliente es histórica (no se acota al rango): la deuda de un
// cliente no depende del período del reporte.
func (uc *ReportsUseCase) ClientFinancialReport(ctx context.Context, from, to *time.Time) (*dto.ClientFinancialReportDTO, error) {
	out := &dto.ClientFinancialReportDTO{
		Period:        toPeriod(from, to),
		TotalRevenue:  decimal.Zero,
		TotalReceived: decimal.Zero,
		TotalDue:      decimal.Zero,
	}

	revenue, received, degraded := uc.dueUC.PeriodTotals(ctx, from, to)
	out.TotalRevenue = revenue
	out.TotalReceived = received
	out.Degraded = append(out.Degraded, degraded...)

	dues, err := uc.dueUC.AllClientDues(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("tajada de deudas por cliente degradada en reporte")
		out.Degraded = append(out.Degraded, "client_dues")
	} else {
		out.ByClient = dues
		for _, d := range dues {
			out.TotalDue = out.TotalDue.Add(d.Due)
		}
	}

	out.CollectionRate = ledger.CollectionRate(out.TotalReceived, out.TotalRevenue)
	return out, nil
}

// PartnerFinancialReport aportes y retiros por socio en un rango.
func (uc *ReportsUseCase) PartnerFinancialReport(ctx context.Context, from, to *time.Time) (*dto.PartnerFinancialReportDTO, error) {
	out := &dto.PartnerFinancialReportDTO{
		Period:            toPeriod(from, to),
		TotalContribution: decimal.Zero,
		TotalWithdrawal:   decimal.Zero,
		NetBalance:        decimal.Zero,
	}

	rows, err := uc.walletUC.Summary(ctx, repository.CashFilter{From: from, To: to})
	if err != nil {
		uc.log.Warn().Err(err).Msg("tajada de socios degradada en reporte")
		out.Degraded = append(out.Degraded, "partners")
		return out, nil
	}
	for _, row := range rows {
		out.ByPartner = append(out.ByPartner, *row)
		out.TotalContribution = out.TotalContribution.Add(row.TotalContribution)
		out.TotalWithdrawal = out.TotalWithdrawal.Add(row.TotalWithdrawal)
	}
	out.NetBalance = out.TotalContribution.Sub(out.TotalWithdrawal)
	return out, nil
}

// ProductionStockReport producción vs ventas de un rango.
func (uc *ReportsUseCase) ProductionStockReport(ctx context.Context, from, to *time.Time) (*dto.ProductionStockReportDTO, error) {
	out := &dto.ProductionStockReportDTO{
		Period:            toPeriod(from, to),
		Produced:          decimal.Zero,
		Sold:              decimal.Zero,
		Remaining:         decimal.Zero,
		TotalSalesRevenue: decimal.Zero,
	}

	totals, err := uc.productionRepo.Totals(from, to)
	if err != nil {
		uc.log.Warn().Err(err).Msg("tajada de producción degradada en reporte")
		out.Degraded = append(out.Degraded, "production")
		return out, nil
	}
	out.Produced = totals.Produced
	out.Sold = totals.Sold
	out.Remaining = totals.Produced.Sub(totals.Sold)
	out.TotalSalesRevenue = totals.SalesRevenue
	return out, nil
}

// ProfitLoss estado de resultados derivado del libro de caja del rango.
func (uc *ReportsUseCase) ProfitLoss(ctx context.Context, from, to *time.Time) (*dto.ProfitLossDTO, error) {
	out := &dto.ProfitLossDTO{
		Period:            toPeriod(from, to),
		Revenue:           decimal.Zero,
		LabourCost:        decimal.Zero,
		PartnerExpense:    decimal.Zero,
		PartnerWithdrawal: decimal.Zero,
		TotalExpenses:     decimal.Zero,
		GrossProfit:       decimal.Zero,
		ProfitMargin:      decimal.Zero,
	}

	entries, err := uc.cashRepo.List(repository.CashFilter{From: from, To: to})
	if err != nil {
		uc.log.Warn().Err(err).Msg("libro de caja degradado en estado de resultados")
		out.Degraded = append(out.Degraded, "cash_ledger")
		return out, nil
	}
	b := ledger.FoldCash(entries)

	out.Revenue = b.Income
	out.LabourCost = b.LabourCost
	out.PartnerExpense = b.PurchaseCost.Add(b.OperationalCost)
	out.PartnerWithdrawal = b.PartnerWithdrawal
	// Los retiros de socios cuentan como egreso del estado de resultados,
	// igual que la mano de obra y los gastos de socios.
	out.TotalExpenses = out.LabourCost.Add(out.PartnerExpense).Add(out.PartnerWithdrawal)
	out.GrossProfit = out.Revenue.Sub(out.TotalExpenses)
	out.ProfitMargin = ledger.Margin(out.GrossProfit, out.Revenue)
	return out, nil
}

// ComprehensiveReport fusiona clientes, socios, caja y producción. Las
// cuatro tajadas se consultan en paralelo; la lista Degraded agrega las de
// cada tajada con prefijo.
func (uc *ReportsUseCase) ComprehensiveReport(ctx context.Context, from, to *time.Time) (*dto.ComprehensiveReportDTO, error) {
	clientCh := make(chan *dto.ClientFinancialReportDTO, 1)
	partnerCh := make(chan *dto.PartnerFinancialReportDTO, 1)
	productionCh := make(chan *dto.ProductionStockReportDTO, 1)
	plCh := make(chan *dto.ProfitLossDTO, 1)

	go func() {
		r, _ := uc.ClientFinancialReport(ctx, from, to)
		clientCh <- r
	}()
	go func() {
		r, _ := uc.PartnerFinancialReport(ctx, from, to)
		partnerCh <- r
	}()
	go func() {
		r, _ := uc.ProductionStockReport(ctx, from, to)
		productionCh <- r
	}()
	go func() {
		r, _ := uc.ProfitLoss(ctx, from, to)
		plCh <- r
	}()

	client := <-clientCh
	partners := <-partnerCh
	production := <-productionCh
	pl := <-plCh

	out := &dto.ComprehensiveReportDTO{
		Period:        toPeriod(from, to),
		TotalRevenue:  client.TotalRevenue,
		TotalReceived: client.TotalReceived,
		TotalDue:      client.TotalDue,
		TotalExpenses: pl.TotalExpenses,
		// La utilidad del consolidado se mide sobre lo efectivamente
		// cobrado, no sobre lo facturado.
		ProfitLoss:    client.TotalReceived.Sub(pl.TotalExpenses),
		LabourCost:    pl.LabourCost,
		Client:        client,
		Partner:       partners,
		Production:    production,
	}
	out.ProfitMargin = ledger.Margin(out.ProfitLoss, out.TotalRevenue)

	for _, d := range client.Degraded {
		out.Degraded = append(out.Degraded, "client:"+d)
	}
	for _, d := range partners.Degraded {
		out.Degraded = append(out.Degraded, "partner:"+d)
	}
	for _, d := range production.Degraded {
		out.Degraded = append(out.Degraded, "production:"+d)
	}
	for _, d := range pl.Degraded {
		out.Degraded = append(out.Degraded, "cash:"+d)
	}
	return out, nil
}

func toPeriod(from, to *time.Time) dto.Period {
	p := dto.Period{}
	if from != nil {
		p.From = dto.FormatDate(*from)
	}
	if to != nil {
		p.To = dto.FormatDate(*to)
	}
	return p
}
