package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallsco/firmbooks-api/internal/application/billing"
	"github.com/wallsco/firmbooks-api/internal/application/partner"
	"github.com/wallsco/firmbooks-api/internal/application/reports"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
	"github.com/wallsco/firmbooks-api/pkg/logger"
)

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeClientRepo struct{ clients []*entity.Client }

func (r *fakeClientRepo) Create(*entity.Client) error            { return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeClientRepo) List(bool) ([]*entity.Client, error)    { return r.clients, nil }
func (r *fakeClientRepo) Update(*entity.Client) error            { return nil }
func (r *fakeClientRepo) SetActive(string, bool) error           { return nil }

type fakeBillRepo struct{ amounts []decimal.Decimal }

func (r *fakeBillRepo) Create(*entity.ClientBill) error { return nil }
func (r *fakeBillRepo) ListByClient(string) ([]*entity.ClientBill, error) {
	return nil, nil
}
func (r *fakeBillRepo) ListByDateRange(time.Time, time.Time) ([]*entity.ClientBill, error) {
	return nil, nil
}
func (r *fakeBillRepo) AmountsByClient(string) ([]decimal.Decimal, error) {
	return r.amounts, nil
}
func (r *fakeBillRepo) AmountsByDateRange(*time.Time, *time.Time) ([]decimal.Decimal, error) {
	return r.amounts, nil
}

type fakePaymentRepo struct{ amounts []decimal.Decimal }

func (r *fakePaymentRepo) Create(*entity.ClientPayment) error { return nil }
func (r *fakePaymentRepo) ListByClient(string) ([]*entity.ClientPayment, error) {
	return nil, nil
}
func (r *fakePaymentRepo) AmountsByClient(string) ([]decimal.Decimal, error) {
	return r.amounts, nil
}
func (r *fakePaymentRepo) AmountsByDateRange(*time.Time, *time.Time) ([]decimal.Decimal, error) {
	return r.amounts, nil
}
func (r *fakePaymentRepo) AmountsByCollector(string) ([]repository.CollectedAmount, error) {
	return nil, nil
}

type fakePartnerRepo struct{}

func (fakePartnerRepo) Create(*entity.Partner) error              { return nil }
func (fakePartnerRepo) GetByID(string) (*entity.Partner, error)   { return nil, nil }
func (fakePartnerRepo) GetByName(string) (*entity.Partner, error) { return nil, nil }
func (fakePartnerRepo) List(bool) ([]*entity.Partner, error)      { return nil, nil }

type fakeCashRepo struct{ entries []entity.CashEntry }

func (r *fakeCashRepo) Create(*entity.CashEntry) error { return nil }
func (r *fakeCashRepo) List(repository.CashFilter) ([]entity.CashEntry, error) {
	return r.entries, nil
}
func (r *fakeCashRepo) DeleteByReference(string) error { return nil }

type fakeProductionRepo struct{}

func (fakeProductionRepo) CreateEntry(*entity.ProductionEntry) error { return nil }
func (fakeProductionRepo) CreateSale(*entity.StockSale) error        { return nil }
func (fakeProductionRepo) ListEntries(*time.Time, *time.Time) ([]*entity.ProductionEntry, error) {
	return nil, nil
}
func (fakeProductionRepo) ListSales(*time.Time, *time.Time) ([]*entity.StockSale, error) {
	return nil, nil
}
func (fakeProductionRepo) Totals(*time.Time, *time.Time) (repository.ProductionTotals, error) {
	return repository.ProductionTotals{
		Produced:     decimal.Zero,
		Sold:         decimal.Zero,
		SalesRevenue: decimal.Zero,
	}, nil
}

// newReportsFixture arma el compositor con un cliente que facturó 800 y pagó
// 500, y un libro de caja con venta 500, jornal 200 y retiro de socio 50.
func newReportsFixture() *reports.ReportsUseCase {
	clientRepo := &fakeClientRepo{clients: []*entity.Client{
		{ID: "c1", Name: "Constructora Andina", Active: true},
	}}
	billRepo := &fakeBillRepo{amounts: []decimal.Decimal{decimal.NewFromInt(800)}}
	paymentRepo := &fakePaymentRepo{amounts: []decimal.Decimal{decimal.NewFromInt(500)}}
	cashRepo := &fakeCashRepo{entries: []entity.CashEntry{
		{Type: entity.CashTypeReceipt, Category: entity.CashCategorySales, Amount: decimal.NewFromInt(500)},
		{Type: entity.CashTypePayment, Category: entity.CashCategoryWage, Amount: decimal.NewFromInt(200)},
		{Type: entity.CashTypePayment, Category: entity.CashCategoryPartnerWithdrawal, Amount: decimal.NewFromInt(50)},
	}}

	log := logger.Nop()
	dueUC := billing.NewDueUseCase(clientRepo, billRepo, paymentRepo, log)
	walletUC := partner.NewWalletUseCase(fakePartnerRepo{}, cashRepo, paymentRepo, log)
	return reports.NewReportsUseCase(dueUC, walletUC, cashRepo, fakeProductionRepo{}, log)
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestProfitLoss_RetiroDeSocioCuentaComoEgreso(t *testing.T) {
	uc := newReportsFixture()

	pl, err := uc.ProfitLoss(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, pl.Revenue.Equal(decimal.NewFromInt(500)))
	assert.True(t, pl.LabourCost.Equal(decimal.NewFromInt(200)))
	assert.True(t, pl.PartnerWithdrawal.Equal(decimal.NewFromInt(50)))
	// egresos = jornales 200 + gastos de socios 0 + retiros 50
	assert.True(t, pl.TotalExpenses.Equal(decimal.NewFromInt(250)))
	assert.True(t, pl.GrossProfit.Equal(decimal.NewFromInt(250)))
	assert.True(t, pl.ProfitMargin.Equal(decimal.NewFromInt(50)))
	assert.Empty(t, pl.Degraded)
}

func TestComprehensiveReport_UtilidadSobreLoCobrado(t *testing.T) {
	uc := newReportsFixture()

	r, err := uc.ComprehensiveReport(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, r.TotalRevenue.Equal(decimal.NewFromInt(800)))
	assert.True(t, r.TotalReceived.Equal(decimal.NewFromInt(500)))
	assert.True(t, r.TotalDue.Equal(decimal.NewFromInt(300)))
	assert.True(t, r.TotalExpenses.Equal(decimal.NewFromInt(250)))
	// utilidad = cobrado 500 − egresos 250, no facturado 800 − 250
	assert.True(t, r.ProfitLoss.Equal(decimal.NewFromInt(250)))
	// margen sobre lo facturado: 250/800
	assert.True(t, r.ProfitMargin.Equal(decimal.RequireFromString("31.25")))
	assert.Empty(t, r.Degraded)
}
