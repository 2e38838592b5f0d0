package procurement_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/application/procurement"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// ── fakes en memoria ──────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) List(bool) ([]*entity.Supplier, error)           { return nil, nil }
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error                 { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) Delete(string) error                             { return nil }
func (r *fakeSupplierRepo) ListWithOutstanding() ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) ApplyPurchase(id string, amount decimal.Decimal) error {
	s := r.suppliers[id]
	s.TotalPurchases = s.TotalPurchases.Add(amount)
	return nil
}
func (r *fakeSupplierRepo) ApplyPayment(id string, amount decimal.Decimal) error {
	s := r.suppliers[id]
	s.TotalPaid = s.TotalPaid.Add(amount)
	return nil
}

type fakeInvoiceRepo struct {
	invoices []*entity.SupplierInvoice
}

func (r *fakeInvoiceRepo) Create(inv *entity.SupplierInvoice) error {
	r.invoices = append(r.invoices, inv)
	return nil
}
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.SupplierInvoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *fakeInvoiceRepo) ListBySupplier(supplierID string) ([]*entity.SupplierInvoice, error) {
	var out []*entity.SupplierInvoice
	for _, inv := range r.invoices {
		if inv.SupplierID == supplierID {
			out = append(out, inv)
		}
	}
	return out, nil
}
func (r *fakeInvoiceRepo) ListUnpaid() ([]*entity.SupplierInvoice, error) { return nil, nil }
func (r *fakeInvoiceRepo) ListUnpaidBySupplierForUpdate(supplierID string) ([]*entity.SupplierInvoice, error) {
	// mismas garantías de orden que el SQL: fecha de factura ascendente
	var out []*entity.SupplierInvoice
	for _, inv := range r.invoices {
		if inv.SupplierID == supplierID && inv.PaymentStatus != entity.InvoiceStatusPaid {
			out = append(out, inv)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].InvoiceDate.Before(out[j-1].InvoiceDate); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}
func (r *fakeInvoiceRepo) ApplyPayment(invoiceID string, paid, outstanding decimal.Decimal, status string) error {
	for _, inv := range r.invoices {
		if inv.ID == invoiceID {
			inv.PaidAmount = paid
			inv.OutstandingAmount = outstanding
			inv.PaymentStatus = status
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSupplierPaymentRepo struct {
	payments []*entity.SupplierPayment
}

func (r *fakeSupplierPaymentRepo) Create(p *entity.SupplierPayment) error {
	r.payments = append(r.payments, p)
	return nil
}
func (r *fakeSupplierPaymentRepo) ListBySupplier(string) ([]*entity.SupplierPayment, error) {
	return r.payments, nil
}
func (r *fakeSupplierPaymentRepo) ListAll() ([]*entity.SupplierPayment, error) {
	return r.payments, nil
}

type fakeCashRepo struct {
	entries []*entity.CashEntry
}

func (r *fakeCashRepo) Create(e *entity.CashEntry) error { r.entries = append(r.entries, e); return nil }
func (r *fakeCashRepo) List(repository.CashFilter) ([]entity.CashEntry, error) {
	out := make([]entity.CashEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, *e)
	}
	return out, nil
}
func (r *fakeCashRepo) DeleteByReference(string) error { return nil }

type fakePartnerRepo struct{}

func (fakePartnerRepo) Create(*entity.Partner) error                 { return nil }
func (fakePartnerRepo) GetByID(string) (*entity.Partner, error)      { return nil, nil }
func (fakePartnerRepo) GetByName(string) (*entity.Partner, error)    { return nil, nil }
func (fakePartnerRepo) List(bool) ([]*entity.Partner, error)         { return nil, nil }

type fakePORepo struct {
	lastNumber string
	orders     map[string]*entity.PurchaseOrder
	items      map[string][]*entity.PurchaseOrderItem
}

func (r *fakePORepo) Create(po *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) error {
	r.orders[po.ID] = po
	r.items[po.ID] = items
	r.lastNumber = po.PONumber
	return nil
}
func (r *fakePORepo) GetByID(id string) (*entity.PurchaseOrder, error) { return r.orders[id], nil }
func (r *fakePORepo) GetItems(poID string) ([]*entity.PurchaseOrderItem, error) {
	return r.items[poID], nil
}
func (r *fakePORepo) List() ([]*entity.PurchaseOrder, error)               { return nil, nil }
func (r *fakePORepo) ListBySupplier(string) ([]*entity.PurchaseOrder, error) { return nil, nil }
func (r *fakePORepo) ListOpen() ([]*entity.PurchaseOrder, error)           { return nil, nil }
func (r *fakePORepo) UpdateStatus(po *entity.PurchaseOrder) error {
	r.orders[po.ID] = po
	return nil
}
func (r *fakePORepo) LastPONumber() (string, error) { return r.lastNumber, nil }

// fakeTxRunner ejecuta la función con los mismos fakes, sin transacción real.
type fakeTxRunner struct {
	supplierRepo *fakeSupplierRepo
	invoiceRepo  *fakeInvoiceRepo
	paymentRepo  *fakeSupplierPaymentRepo
	cashRepo     *fakeCashRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	invoiceRepo repository.SupplierInvoiceRepository,
	paymentRepo repository.SupplierPaymentRepository,
	cashRepo repository.CashLedgerRepository,
) error) error {
	return fn(r.supplierRepo, r.invoiceRepo, r.paymentRepo, r.cashRepo)
}

// ── fixtures ──────────────────────────────────────────────────────────────────

func newPOFixture() (*procurement.PurchaseOrderUseCase, *fakePORepo) {
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s1": {ID: "s1", Name: "Aceros del Norte", Active: true},
	}}
	poRepo := &fakePORepo{
		orders: map[string]*entity.PurchaseOrder{},
		items:  map[string][]*entity.PurchaseOrderItem{},
	}
	return procurement.NewPurchaseOrderUseCase(poRepo, supplierRepo), poRepo
}

func invoice(id, supplierID, date string, total decimal.Decimal) *entity.SupplierInvoice {
	d, _ := dto.ParseDate(date)
	return &entity.SupplierInvoice{
		ID:                id,
		SupplierID:        supplierID,
		InvoiceNumber:     "F-" + id,
		InvoiceDate:       d,
		TotalAmount:       total,
		PaidAmount:        decimal.Zero,
		OutstandingAmount: total,
		PaymentStatus:     entity.InvoiceStatusUnpaid,
	}
}

// ── tests de órdenes de compra ────────────────────────────────────────────────

func TestCreatePO_TotalesCalculadosEnServidor(t *testing.T) {
	uc, _ := newPOFixture()

	po, err := uc.Create(dto.CreatePORequest{
		SupplierID: "s1",
		OrderDate:  "2025-03-10",
		Items: []dto.POItemRequest{
			{MaterialName: "Cemento", Quantity: decimal.NewFromInt(10), Unit: "bolsa", RatePerUnit: decimal.RequireFromString("355.50"), GSTPercentage: decimal.NewFromInt(18)},
			{MaterialName: "Arena", Quantity: decimal.NewFromInt(2), Unit: "m3", RatePerUnit: decimal.NewFromInt(1200)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "PO/2025/0001", po.PONumber)
	assert.Equal(t, entity.POStatusPending, po.Status)
	// 10 × 355.50 = 3555.00; GST 18% = 639.90; 2 × 1200 = 2400 sin GST
	assert.True(t, po.Subtotal.Equal(decimal.RequireFromString("5955")))
	assert.True(t, po.GSTAmount.Equal(decimal.RequireFromString("639.90")))
	assert.True(t, po.TotalAmount.Equal(decimal.RequireFromString("6594.90")))
	require.Len(t, po.Items, 2)
	assert.True(t, po.Items[0].TotalAmount.Equal(decimal.RequireFromString("4194.90")))
}

func TestCreatePO_NumeracionSecuencialYReinicioAnual(t *testing.T) {
	uc, poRepo := newPOFixture()

	item := []dto.POItemRequest{{MaterialName: "Cemento", Quantity: decimal.NewFromInt(1), Unit: "bolsa", RatePerUnit: decimal.NewFromInt(100)}}

	po1, err := uc.Create(dto.CreatePORequest{SupplierID: "s1", OrderDate: "2024-11-02", Items: item})
	require.NoError(t, err)
	assert.Equal(t, "PO/2024/0001", po1.PONumber)

	po2, err := uc.Create(dto.CreatePORequest{SupplierID: "s1", OrderDate: "2024-12-20", Items: item})
	require.NoError(t, err)
	assert.Equal(t, "PO/2024/0002", po2.PONumber)

	// Cambio de año: la secuencia vuelve a 1.
	po3, err := uc.Create(dto.CreatePORequest{SupplierID: "s1", OrderDate: "2025-01-05", Items: item})
	require.NoError(t, err)
	assert.Equal(t, "PO/2025/0001", po3.PONumber)

	assert.Len(t, poRepo.orders, 3)
}

func TestUpdatePOStatus_TransicionInvalida(t *testing.T) {
	uc, _ := newPOFixture()
	item := []dto.POItemRequest{{MaterialName: "Cemento", Quantity: decimal.NewFromInt(1), Unit: "bolsa", RatePerUnit: decimal.NewFromInt(100)}}
	po, err := uc.Create(dto.CreatePORequest{SupplierID: "s1", OrderDate: "2025-03-10", Items: item})
	require.NoError(t, err)

	// pending → delivered salta la aprobación: rechazado.
	_, err = uc.UpdateStatus(po.ID, dto.UpdatePOStatusRequest{Status: entity.POStatusDelivered})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// pending → approved → delivered: permitido.
	approved, err := uc.UpdateStatus(po.ID, dto.UpdatePOStatusRequest{Status: entity.POStatusApproved, ApprovedBy: "Ramesh"})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusApproved, approved.Status)

	delivered, err := uc.UpdateStatus(po.ID, dto.UpdatePOStatusRequest{Status: entity.POStatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusDelivered, delivered.Status)

	// delivered es terminal.
	_, err = uc.UpdateStatus(po.ID, dto.UpdatePOStatusRequest{Status: entity.POStatusCancelled})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ── tests de pagos a proveedor ────────────────────────────────────────────────

func newBillingFixture() (*procurement.SupplierBillingUseCase, *fakeSupplierRepo, *fakeInvoiceRepo, *fakeCashRepo) {
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s1": {ID: "s1", Name: "Aceros del Norte", Active: true},
	}}
	invoiceRepo := &fakeInvoiceRepo{}
	paymentRepo := &fakeSupplierPaymentRepo{}
	cashRepo := &fakeCashRepo{}
	poRepo := &fakePORepo{orders: map[string]*entity.PurchaseOrder{}, items: map[string][]*entity.PurchaseOrderItem{}}
	tx := &fakeTxRunner{supplierRepo: supplierRepo, invoiceRepo: invoiceRepo, paymentRepo: paymentRepo, cashRepo: cashRepo}
	uc := procurement.NewSupplierBillingUseCase(tx, supplierRepo, invoiceRepo, paymentRepo, fakePartnerRepo{}, poRepo)
	return uc, supplierRepo, invoiceRepo, cashRepo
}

func TestRecordPayment_AsignaMasAntiguasPrimero(t *testing.T) {
	uc, supplierRepo, invoiceRepo, _ := newBillingFixture()

	// Desordenadas a propósito: la asignación debe ir por fecha.
	invoiceRepo.invoices = []*entity.SupplierInvoice{
		invoice("i2", "s1", "2025-02-15", decimal.NewFromInt(3000)),
		invoice("i1", "s1", "2025-01-10", decimal.NewFromInt(1000)),
		invoice("i3", "s1", "2025-03-01", decimal.NewFromInt(2000)),
	}

	_, err := uc.RecordPayment(context.Background(), dto.RecordSupplierPaymentRequest{
		SupplierID:  "s1",
		PaymentDate: "2025-03-05",
		AmountPaid:  decimal.NewFromInt(2500),
		PaymentMode: "cash",
	})
	require.NoError(t, err)

	i1, _ := invoiceRepo.GetByID("i1")
	i2, _ := invoiceRepo.GetByID("i2")
	i3, _ := invoiceRepo.GetByID("i3")

	// i1 (más antigua) saldada por completo.
	assert.Equal(t, entity.InvoiceStatusPaid, i1.PaymentStatus)
	assert.True(t, i1.OutstandingAmount.IsZero())

	// i2 recibe el resto (1500 de 3000): parcial.
	assert.Equal(t, entity.InvoiceStatusPartial, i2.PaymentStatus)
	assert.True(t, i2.PaidAmount.Equal(decimal.NewFromInt(1500)))
	assert.True(t, i2.OutstandingAmount.Equal(decimal.NewFromInt(1500)))

	// i3 intacta.
	assert.Equal(t, entity.InvoiceStatusUnpaid, i3.PaymentStatus)
	assert.True(t, i3.PaidAmount.IsZero())

	// El contador del proveedor refleja el pago completo.
	assert.True(t, supplierRepo.suppliers["s1"].TotalPaid.Equal(decimal.NewFromInt(2500)))
}

func TestRecordPayment_ExcedenteQuedaComoAnticipo(t *testing.T) {
	uc, supplierRepo, invoiceRepo, _ := newBillingFixture()
	invoiceRepo.invoices = []*entity.SupplierInvoice{
		invoice("i1", "s1", "2025-01-10", decimal.NewFromInt(1000)),
	}

	_, err := uc.RecordPayment(context.Background(), dto.RecordSupplierPaymentRequest{
		SupplierID:  "s1",
		PaymentDate: "2025-02-01",
		AmountPaid:  decimal.NewFromInt(1800),
		PaymentMode: "upi",
	})
	require.NoError(t, err)

	i1, _ := invoiceRepo.GetByID("i1")
	assert.Equal(t, entity.InvoiceStatusPaid, i1.PaymentStatus)

	// El excedente (800) no se asigna a ninguna factura: vive solo en los
	// contadores y deja el saldo del proveedor negativo.
	s := supplierRepo.suppliers["s1"]
	assert.True(t, s.TotalPaid.Equal(decimal.NewFromInt(1800)))
	assert.True(t, s.Outstanding().Equal(decimal.NewFromInt(-1800)))
}

func TestRecordPayment_AsientoDeCajaSoloSiSaleDeLaFirma(t *testing.T) {
	uc, _, invoiceRepo, cashRepo := newBillingFixture()
	invoiceRepo.invoices = []*entity.SupplierInvoice{
		invoice("i1", "s1", "2025-01-10", decimal.NewFromInt(1000)),
	}

	pocket := false
	_, err := uc.RecordPayment(context.Background(), dto.RecordSupplierPaymentRequest{
		SupplierID:       "s1",
		PaymentDate:      "2025-02-01",
		AmountPaid:       decimal.NewFromInt(500),
		PaymentMode:      "cash",
		PaidFromFirmCash: &pocket,
	})
	require.NoError(t, err)
	assert.Empty(t, cashRepo.entries, "pago de bolsillo: sin asiento de caja")

	payment, err := uc.RecordPayment(context.Background(), dto.RecordSupplierPaymentRequest{
		SupplierID:  "s1",
		PaymentDate: "2025-02-02",
		AmountPaid:  decimal.NewFromInt(300),
		PaymentMode: "cash",
	})
	require.NoError(t, err)
	require.Len(t, cashRepo.entries, 1)
	entry := cashRepo.entries[0]
	assert.Equal(t, entity.CashTypePayment, entry.Type)
	assert.Equal(t, entity.CashCategoryPurchase, entry.Category)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(300)))
	require.NotNil(t, entry.ReferenceID)
	assert.Equal(t, payment.ID, *entry.ReferenceID)
}

func TestRecordPayment_MontoNoPositivo(t *testing.T) {
	uc, _, _, _ := newBillingFixture()
	_, err := uc.RecordPayment(context.Background(), dto.RecordSupplierPaymentRequest{
		SupplierID:  "s1",
		PaymentDate: "2025-02-01",
		AmountPaid:  decimal.Zero,
		PaymentMode: "cash",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
