package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wallsco/firmbooks-api/internal/application/billing"
	"github.com/wallsco/firmbooks-api/internal/application/inventory"
	"github.com/wallsco/firmbooks-api/internal/application/payroll"
	"github.com/wallsco/firmbooks-api/internal/application/procurement"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// BillingTxRunner, InventoryTxRunner, etc. son vistas del mismo runner; cada
// flujo declara su propio puerto con los repos que necesita.
var _ billing.TxRunner = (*BillingTxRunner)(nil)
var _ procurement.TxRunner = (*ProcurementTxRunner)(nil)
var _ inventory.TxRunner = (*InventoryTxRunner)(nil)
var _ payroll.TxRunner = (*PayrollTxRunner)(nil)

// runInTx inicia una transacción, ejecuta fn y hace Commit o Rollback.
func runInTx(ctx context.Context, pool *pgxpool.Pool, fn func(q Querier) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// BillingTxRunner transacciones del flujo de cobros de clientes.
type BillingTxRunner struct {
	pool *pgxpool.Pool
}

// NewBillingTxRunner construye el runner con el pool.
func NewBillingTxRunner(pool *pgxpool.Pool) *BillingTxRunner {
	return &BillingTxRunner{pool: pool}
}

// Run ejecuta fn con repos de cobros y caja atados a una misma transacción.
func (r *BillingTxRunner) Run(ctx context.Context, fn func(
	paymentRepo repository.ClientPaymentRepository,
	cashRepo repository.CashLedgerRepository,
) error) error {
	return runInTx(ctx, r.pool, func(q Querier) error {
		return fn(NewClientPaymentRepository(q), NewCashLedgerRepository(q))
	})
}

// ProcurementTxRunner transacciones del flujo de facturas y pagos a proveedor.
type ProcurementTxRunner struct {
	pool *pgxpool.Pool
}

// NewProcurementTxRunner construye el runner con el pool.
func NewProcurementTxRunner(pool *pgxpool.Pool) *ProcurementTxRunner {
	return &ProcurementTxRunner{pool: pool}
}

// Run ejecuta fn con repos de proveedor, facturas, pagos y caja en una
// misma transacción.
func (r *ProcurementTxRunner) Run(ctx context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	invoiceRepo repository.SupplierInvoiceRepository,
	paymentRepo repository.SupplierPaymentRepository,
	cashRepo repository.CashLedgerRepository,
) error) error {
	return runInTx(ctx, r.pool, func(q Querier) error {
		return fn(
			NewSupplierRepository(q),
			NewSupplierInvoiceRepository(q),
			NewSupplierPaymentRepository(q),
			NewCashLedgerRepository(q),
		)
	})
}

// InventoryTxRunner transacciones del flujo de compras de material y
// auditorías de stock.
type InventoryTxRunner struct {
	pool *pgxpool.Pool
}

// NewInventoryTxRunner construye el runner con el pool.
func NewInventoryTxRunner(pool *pgxpool.Pool) *InventoryTxRunner {
	return &InventoryTxRunner{pool: pool}
}

// Run ejecuta fn con repos de material, compras, auditorías y caja en una
// misma transacción.
func (r *InventoryTxRunner) Run(ctx context.Context, fn func(
	materialRepo repository.MaterialRepository,
	purchaseRepo repository.MaterialPurchaseRepository,
	auditRepo repository.StockAuditRepository,
	cashRepo repository.CashLedgerRepository,
) error) error {
	return runInTx(ctx, r.pool, func(q Querier) error {
		return fn(
			NewMaterialRepository(q),
			NewMaterialPurchaseRepository(q),
			NewStockAuditRepository(q),
			NewCashLedgerRepository(q),
		)
	})
}

// PayrollTxRunner transacciones del flujo de jornales.
type PayrollTxRunner struct {
	pool *pgxpool.Pool
}

// NewPayrollTxRunner construye el runner con el pool.
func NewPayrollTxRunner(pool *pgxpool.Pool) *PayrollTxRunner {
	return &PayrollTxRunner{pool: pool}
}

// Run ejecuta fn con repos de trabajador, jornales y caja en una misma
// transacción.
func (r *PayrollTxRunner) Run(ctx context.Context, fn func(
	workerRepo repository.WorkerRepository,
	wageRepo repository.WageEntryRepository,
	cashRepo repository.CashLedgerRepository,
) error) error {
	return runInTx(ctx, r.pool, func(q Querier) error {
		return fn(NewWorkerRepository(q), NewWageEntryRepository(q), NewCashLedgerRepository(q))
	})
}
