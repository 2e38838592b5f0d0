package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallsco/firmbooks-api/internal/application/billing"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
	"github.com/wallsco/firmbooks-api/pkg/logger"
)

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *fakeClientRepo) List(onlyActive bool) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		if onlyActive && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeClientRepo) Update(c *entity.Client) error       { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) SetActive(id string, set bool) error { r.clients[id].Active = set; return nil }

type fakeBillRepo struct {
	amounts map[string][]decimal.Decimal
	failing bool
}

func (r *fakeBillRepo) Create(*entity.ClientBill) error { return nil }
func (r *fakeBillRepo) ListByClient(string) ([]*entity.ClientBill, error) {
	return nil, nil
}
func (r *fakeBillRepo) ListByDateRange(time.Time, time.Time) ([]*entity.ClientBill, error) {
	return nil, nil
}
func (r *fakeBillRepo) AmountsByClient(clientID string) ([]decimal.Decimal, error) {
	if r.failing {
		return nil, errors.New("tabla caída")
	}
	return r.amounts[clientID], nil
}
func (r *fakeBillRepo) AmountsByDateRange(from, to *time.Time) ([]decimal.Decimal, error) {
	if r.failing {
		return nil, errors.New("tabla caída")
	}
	var all []decimal.Decimal
	for _, amounts := range r.amounts {
		all = append(all, amounts...)
	}
	return all, nil
}

type fakePaymentRepo struct {
	amounts map[string][]decimal.Decimal
	failing bool
}

func (r *fakePaymentRepo) Create(*entity.ClientPayment) error { return nil }
func (r *fakePaymentRepo) ListByClient(string) ([]*entity.ClientPayment, error) {
	return nil, nil
}
func (r *fakePaymentRepo) AmountsByClient(clientID string) ([]decimal.Decimal, error) {
	if r.failing {
		return nil, errors.New("tabla caída")
	}
	return r.amounts[clientID], nil
}
func (r *fakePaymentRepo) AmountsByDateRange(from, to *time.Time) ([]decimal.Decimal, error) {
	if r.failing {
		return nil, errors.New("tabla caída")
	}
	var all []decimal.Decimal
	for _, amounts := range r.amounts {
		all = append(all, amounts...)
	}
	return all, nil
}
func (r *fakePaymentRepo) AmountsByCollector(string) ([]repository.CollectedAmount, error) {
	return nil, nil
}

// fakeDatedBillRepo guarda facturas con fecha y respeta el filtro de rango,
// a diferencia de fakeBillRepo que lo ignora.
type fakeDatedBillRepo struct {
	*fakeBillRepo
	bills []entity.ClientBill
}

func (r *fakeDatedBillRepo) AmountsByDateRange(from, to *time.Time) ([]decimal.Decimal, error) {
	var out []decimal.Decimal
	for _, b := range r.bills {
		if from != nil && b.Date.Before(*from) {
			continue
		}
		if to != nil && b.Date.After(*to) {
			continue
		}
		out = append(out, b.Amount)
	}
	return out, nil
}

func newDueFixture(billsFail, paymentsFail bool) *billing.DueUseCase {
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		"c1": {ID: "c1", Name: "Constructora Andina", CreditLimit: decimal.NewFromInt(1000), Active: true},
	}}
	billRepo := &fakeBillRepo{
		amounts: map[string][]decimal.Decimal{"c1": {decimal.NewFromInt(1500), decimal.NewFromInt(500)}},
		failing: billsFail,
	}
	paymentRepo := &fakePaymentRepo{
		amounts: map[string][]decimal.Decimal{"c1": {decimal.NewFromInt(600)}},
		failing: paymentsFail,
	}
	return billing.NewDueUseCase(clientRepo, billRepo, paymentRepo, logger.Nop())
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestClientDue_PlegadoNormal(t *testing.T) {
	uc := newDueFixture(false, false)

	due, err := uc.ClientDue(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, due.TotalBilled.Equal(decimal.NewFromInt(2000)))
	assert.True(t, due.TotalPaid.Equal(decimal.NewFromInt(600)))
	assert.True(t, due.Due.Equal(decimal.NewFromInt(1400)))
	assert.True(t, due.OverCreditLimit, "1400 supera el límite de crédito de 1000")
	assert.Empty(t, due.Degraded)
}

func TestClientDue_ClienteInexistente(t *testing.T) {
	uc := newDueFixture(false, false)

	_, err := uc.ClientDue(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientDue_LecturaDeFacturasDegradada(t *testing.T) {
	// La pata de facturas falla: se sustituye por cero y se anota en
	// Degraded, sin propagar el error.
	uc := newDueFixture(true, false)

	due, err := uc.ClientDue(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, due.TotalBilled.IsZero())
	assert.True(t, due.TotalPaid.Equal(decimal.NewFromInt(600)))
	assert.True(t, due.Due.Equal(decimal.NewFromInt(-600)))
	assert.Equal(t, []string{"bills"}, due.Degraded)
}

func TestClientDue_AmbasPatasDegradadas(t *testing.T) {
	uc := newDueFixture(true, true)

	due, err := uc.ClientDue(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, due.Due.IsZero())
	assert.ElementsMatch(t, []string{"bills", "payments"}, due.Degraded)
	assert.False(t, due.OverCreditLimit)
}

func TestAllClientDues_IncluyeATodosLosActivos(t *testing.T) {
	uc := newDueFixture(false, false)

	dues, err := uc.AllClientDues(context.Background())
	require.NoError(t, err)
	require.Len(t, dues, 1)
	assert.Equal(t, "c1", dues[0].ClientID)
	assert.True(t, dues[0].Due.Equal(decimal.NewFromInt(1400)))
}

func TestPeriodTotals_FacturadoNoDecreceAlEnsancharElRango(t *testing.T) {
	day := func(month time.Month, d int) time.Time {
		return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
	}
	billRepo := &fakeDatedBillRepo{
		fakeBillRepo: &fakeBillRepo{},
		bills: []entity.ClientBill{
			{Date: day(time.January, 10), Amount: decimal.NewFromInt(100)},
			{Date: day(time.February, 10), Amount: decimal.NewFromInt(250)},
			{Date: day(time.March, 10), Amount: decimal.NewFromInt(400)},
		},
	}
	uc := billing.NewDueUseCase(
		&fakeClientRepo{clients: map[string]*entity.Client{}},
		billRepo,
		&fakePaymentRepo{},
		logger.Nop(),
	)
	span := func(from, to time.Time) (decimal.Decimal, decimal.Decimal) {
		billed, paid, degraded := uc.PeriodTotals(context.Background(), &from, &to)
		require.Empty(t, degraded)
		return billed, paid
	}

	narrow, _ := span(day(time.February, 1), day(time.February, 28))
	wider, _ := span(day(time.January, 1), day(time.February, 28))
	widest, _ := span(day(time.January, 1), day(time.March, 31))

	assert.True(t, narrow.Equal(decimal.NewFromInt(250)))
	assert.True(t, wider.Equal(decimal.NewFromInt(350)))
	assert.True(t, widest.Equal(decimal.NewFromInt(750)))
	// Ensanchar el rango solo puede sumar facturas, nunca restar.
	assert.True(t, wider.GreaterThanOrEqual(narrow))
	assert.True(t, widest.GreaterThanOrEqual(wider))
}

func TestPeriodTotals_Degradado(t *testing.T) {
	uc := newDueFixture(false, true)

	billed, paid, degraded := uc.PeriodTotals(context.Background(), nil, nil)
	assert.True(t, billed.Equal(decimal.NewFromInt(2000)))
	assert.True(t, paid.IsZero())
	assert.Equal(t, []string{"payments"}, degraded)
}
