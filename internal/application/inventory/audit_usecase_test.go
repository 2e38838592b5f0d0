package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/application/inventory"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeMaterialRepo struct {
	materials map[string]*entity.Material
}

func (r *fakeMaterialRepo) Create(m *entity.Material) error { r.materials[m.Name] = m; return nil }
func (r *fakeMaterialRepo) GetByName(name string) (*entity.Material, error) {
	return r.materials[name], nil
}
func (r *fakeMaterialRepo) GetByNameForUpdate(name string) (*entity.Material, error) {
	return r.materials[name], nil
}
func (r *fakeMaterialRepo) List(bool) ([]*entity.Material, error) { return nil, nil }
func (r *fakeMaterialRepo) IncrementStock(name string, delta decimal.Decimal) error {
	m := r.materials[name]
	m.CurrentStock = m.CurrentStock.Add(delta)
	return nil
}
func (r *fakeMaterialRepo) SetStock(name string, quantity decimal.Decimal) error {
	r.materials[name].CurrentStock = quantity
	return nil
}
func (r *fakeMaterialRepo) UpdatePurchaseInfo(name string, unitCost decimal.Decimal, purchaseDate time.Time) error {
	m := r.materials[name]
	m.UnitCost = unitCost
	m.LastPurchaseDate = &purchaseDate
	m.LastPurchaseRate = unitCost
	return nil
}

type fakeAuditRepo struct {
	audits map[string]*entity.StockAudit
}

func (r *fakeAuditRepo) Create(a *entity.StockAudit) error { r.audits[a.ID] = a; return nil }
func (r *fakeAuditRepo) GetByID(id string) (*entity.StockAudit, error) {
	return r.audits[id], nil
}
func (r *fakeAuditRepo) Delete(id string) error { delete(r.audits, id); return nil }
func (r *fakeAuditRepo) ListByDateRange(from, to *time.Time) ([]*entity.StockAudit, error) {
	var out []*entity.StockAudit
	for _, a := range r.audits {
		out = append(out, a)
	}
	return out, nil
}
func (r *fakeAuditRepo) MarkApproved(id, approvedBy string) error {
	a, ok := r.audits[id]
	if !ok || a.ApprovedBy != "" {
		return domain.ErrConflict
	}
	a.ApprovedBy = approvedBy
	a.PartnersNotified = true
	return nil
}

type fakePurchaseRepo struct{}

func (fakePurchaseRepo) Create(*entity.MaterialPurchase) error { return nil }
func (fakePurchaseRepo) ListByDateRange(*time.Time, *time.Time) ([]*entity.MaterialPurchase, error) {
	return nil, nil
}
func (fakePurchaseRepo) ListByPartner(string, *time.Time, *time.Time) ([]*entity.MaterialPurchase, error) {
	return nil, nil
}

type fakeCashRepo struct{}

func (fakeCashRepo) Create(*entity.CashEntry) error                         { return nil }
func (fakeCashRepo) List(repository.CashFilter) ([]entity.CashEntry, error) { return nil, nil }
func (fakeCashRepo) DeleteByReference(string) error                         { return nil }

type fakeTxRunner struct {
	materialRepo *fakeMaterialRepo
	auditRepo    *fakeAuditRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	materialRepo repository.MaterialRepository,
	purchaseRepo repository.MaterialPurchaseRepository,
	auditRepo repository.StockAuditRepository,
	cashRepo repository.CashLedgerRepository,
) error) error {
	return fn(r.materialRepo, fakePurchaseRepo{}, r.auditRepo, fakeCashRepo{})
}

func newAuditFixture() (*inventory.AuditUseCase, *fakeMaterialRepo) {
	materialRepo := &fakeMaterialRepo{materials: map[string]*entity.Material{
		"Cemento": {
			ID:           "m1",
			Name:         "Cemento",
			Unit:         "bolsa",
			CurrentStock: decimal.NewFromInt(100),
			UnitCost:     decimal.RequireFromString("350.25"),
			Active:       true,
		},
	}}
	auditRepo := &fakeAuditRepo{audits: map[string]*entity.StockAudit{}}
	tx := &fakeTxRunner{materialRepo: materialRepo, auditRepo: auditRepo}
	return inventory.NewAuditUseCase(tx, materialRepo, auditRepo), materialRepo
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestCreateAudit_FotoDelStockYVarianza(t *testing.T) {
	uc, _ := newAuditFixture()

	audit, err := uc.Create(dto.CreateAuditRequest{
		Date:          "2025-05-10",
		MaterialName:  "Cemento",
		PhysicalCount: decimal.NewFromInt(92),
		Reason:        "conteo mensual",
	})
	require.NoError(t, err)

	assert.True(t, audit.DigitalStock.Equal(decimal.NewFromInt(100)))
	assert.True(t, audit.Variance.Equal(decimal.NewFromInt(-8)))
	assert.True(t, audit.VariancePercentage.Equal(decimal.NewFromInt(-8)))
	// impacto financiero = |varianza| × costo unitario, redondeado a 2;
	// la varianza queda con signo, el impacto en rupias es magnitud
	assert.True(t, audit.FinancialImpact.Equal(decimal.RequireFromString("2802")))
	assert.Empty(t, audit.ApprovedBy, "la auditoría nace pendiente")
}

func TestApproveAudit_SobrescribeElStock(t *testing.T) {
	uc, materialRepo := newAuditFixture()

	created, err := uc.Create(dto.CreateAuditRequest{
		Date:          "2025-05-10",
		MaterialName:  "Cemento",
		PhysicalCount: decimal.NewFromInt(92),
		Reason:        "conteo mensual",
	})
	require.NoError(t, err)

	// El stock digital se mueve entre la creación y la aprobación; la
	// aprobación debe fijar el conteo físico, no sumar la varianza.
	materialRepo.materials["Cemento"].CurrentStock = decimal.NewFromInt(120)

	approved, err := uc.Approve(context.Background(), created.ID, "Ramesh")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh", approved.ApprovedBy)
	assert.True(t, materialRepo.materials["Cemento"].CurrentStock.Equal(decimal.NewFromInt(92)),
		"current_stock = conteo físico, sin importar el stock vigente")
}

func TestApproveAudit_DobleAprobacion(t *testing.T) {
	uc, _ := newAuditFixture()

	created, err := uc.Create(dto.CreateAuditRequest{
		Date:          "2025-05-10",
		MaterialName:  "Cemento",
		PhysicalCount: decimal.NewFromInt(92),
		Reason:        "conteo mensual",
	})
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), created.ID, "Ramesh")
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), created.ID, "Suresh")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRejectAudit_NoTocaElStock(t *testing.T) {
	uc, materialRepo := newAuditFixture()

	created, err := uc.Create(dto.CreateAuditRequest{
		Date:          "2025-05-10",
		MaterialName:  "Cemento",
		PhysicalCount: decimal.NewFromInt(50),
		Reason:        "sospecha de merma",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Reject(created.ID))
	assert.True(t, materialRepo.materials["Cemento"].CurrentStock.Equal(decimal.NewFromInt(100)))

	// Ya no existe.
	assert.ErrorIs(t, uc.Reject(created.ID), domain.ErrNotFound)
}

func TestRejectAudit_AprobadaNoSePuedeRechazar(t *testing.T) {
	uc, _ := newAuditFixture()

	created, err := uc.Create(dto.CreateAuditRequest{
		Date:          "2025-05-10",
		MaterialName:  "Cemento",
		PhysicalCount: decimal.NewFromInt(92),
		Reason:        "conteo mensual",
	})
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), created.ID, "Ramesh")
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Reject(created.ID), domain.ErrConflict)
}

func TestCreateAudit_MaterialInexistente(t *testing.T) {
	uc, _ := newAuditFixture()
	_, err := uc.Create(dto.CreateAuditRequest{
		Date:          "2025-05-10",
		MaterialName:  "Grava",
		PhysicalCount: decimal.NewFromInt(10),
		Reason:        "conteo",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuditSummary_FaltantesYSobrantesNoSeCancelan(t *testing.T) {
	uc, _ := newAuditFixture()

	// Faltante: 100 → 92, impacto |−8| × 350.25 = 2802.
	_, err := uc.Create(dto.CreateAuditRequest{
		Date:          "2025-05-10",
		MaterialName:  "Cemento",
		PhysicalCount: decimal.NewFromInt(92),
		Reason:        "conteo mensual",
	})
	require.NoError(t, err)

	// Sobrante: 100 → 104, impacto |+4| × 350.25 = 1401.
	_, err = uc.Create(dto.CreateAuditRequest{
		Date:          "2025-05-17",
		MaterialName:  "Cemento",
		PhysicalCount: decimal.NewFromInt(104),
		Reason:        "reconteo",
	})
	require.NoError(t, err)

	summary, err := uc.Summary(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalAudits)
	// El valor total de varianza suma magnitudes: 2802 + 1401, nunca el neto.
	assert.True(t, summary.TotalVarianceValue.Equal(decimal.RequireFromString("4203")))

	totals := summary.ByMaterial["Cemento"]
	assert.Equal(t, 2, totals.Audits)
	// La varianza en unidades sí conserva el signo: −8 + 4 = −4.
	assert.True(t, totals.TotalVariance.Equal(decimal.NewFromInt(-4)))
	assert.True(t, totals.TotalImpact.Equal(decimal.RequireFromString("4203")))
}
