package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, supplier_name, company_name, phone, email, gstin, address, city, state, pincode,
		opening_balance, total_purchases, total_paid, active, created_at, updated_at`

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.CompanyName, supplier.Phone, supplier.Email,
		supplier.GSTIN, supplier.Address, supplier.City, supplier.State, supplier.Pincode,
		supplier.OpeningBalance, supplier.TotalPurchases, supplier.TotalPaid,
		supplier.Active, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.CompanyName, &s.Phone, &s.Email, &s.GSTIN, &s.Address,
		&s.City, &s.State, &s.Pincode, &s.OpeningBalance, &s.TotalPurchases, &s.TotalPaid,
		&s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista proveedores ordenados por nombre.
func (r *SupplierRepo) List(onlyActive bool) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY supplier_name`
	return r.scanSuppliers(r.q.Query(context.Background(), query))
}

// ListWithOutstanding proveedores con saldo pendiente positivo.
func (r *SupplierRepo) ListWithOutstanding() ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers
		WHERE opening_balance + total_purchases - total_paid > 0
		ORDER BY supplier_name`
	return r.scanSuppliers(r.q.Query(context.Background(), query))
}

func (r *SupplierRepo) scanSuppliers(rows pgx.Rows, err error) ([]*entity.Supplier, error) {
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.CompanyName, &s.Phone, &s.Email, &s.GSTIN, &s.Address,
			&s.City, &s.State, &s.Pincode, &s.OpeningBalance, &s.TotalPurchases, &s.TotalPaid,
			&s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza los datos maestros (nunca los contadores).
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET supplier_name = $2, company_name = $3, phone = $4, email = $5,
			gstin = $6, address = $7, city = $8, state = $9, pincode = $10,
			opening_balance = $11, active = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.CompanyName, supplier.Phone, supplier.Email,
		supplier.GSTIN, supplier.Address, supplier.City, supplier.State, supplier.Pincode,
		supplier.OpeningBalance, supplier.Active, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete baja lógica del proveedor (su historial queda).
func (r *SupplierRepo) Delete(id string) error {
	query := `UPDATE suppliers SET active = false, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ApplyPurchase suma al contador total_purchases. Solo desde transacción.
func (r *SupplierRepo) ApplyPurchase(supplierID string, amount decimal.Decimal) error {
	query := `UPDATE suppliers SET total_purchases = total_purchases + $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, supplierID, amount)
	if err != nil {
		return fmt.Errorf("apply supplier purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ApplyPayment suma al contador total_paid. Solo desde transacción.
func (r *SupplierRepo) ApplyPayment(supplierID string, amount decimal.Decimal) error {
	query := `UPDATE suppliers SET total_paid = total_paid + $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, supplierID, amount)
	if err != nil {
		return fmt.Errorf("apply supplier payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.SupplierPaymentRepository = (*SupplierPaymentRepo)(nil)

const supplierPaymentColumns = `id, supplier_id, po_id, payment_date, amount_paid, payment_mode,
		cheque_number, transaction_id, bank_name, paid_by_partner_id, paid_from_firm_cash,
		invoice_number, notes, created_at`

// SupplierPaymentRepo implementación de SupplierPaymentRepository.
type SupplierPaymentRepo struct {
	q Querier
}

// NewSupplierPaymentRepository construye el adaptador.
func NewSupplierPaymentRepository(q Querier) *SupplierPaymentRepo {
	return &SupplierPaymentRepo{q: q}
}

// Create persiste un pago a proveedor.
func (r *SupplierPaymentRepo) Create(payment *entity.SupplierPayment) error {
	query := `
		INSERT INTO supplier_payments (` + supplierPaymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.SupplierID, payment.POID, payment.PaymentDate, payment.AmountPaid,
		payment.PaymentMode, payment.ChequeNumber, payment.TransactionID, payment.BankName,
		payment.PaidByPartnerID, payment.PaidFromFirmCash, payment.InvoiceNumber,
		payment.Notes, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier payment: %w", err)
	}
	return nil
}

// ListBySupplier pagos a un proveedor, más recientes primero.
func (r *SupplierPaymentRepo) ListBySupplier(supplierID string) ([]*entity.SupplierPayment, error) {
	query := `SELECT ` + supplierPaymentColumns + ` FROM supplier_payments
		WHERE supplier_id = $1 ORDER BY payment_date DESC, created_at DESC`
	return r.scanPayments(r.q.Query(context.Background(), query, supplierID))
}

// ListAll todos los pagos a proveedores.
func (r *SupplierPaymentRepo) ListAll() ([]*entity.SupplierPayment, error) {
	query := `SELECT ` + supplierPaymentColumns + ` FROM supplier_payments
		ORDER BY payment_date DESC, created_at DESC`
	return r.scanPayments(r.q.Query(context.Background(), query))
}

func (r *SupplierPaymentRepo) scanPayments(rows pgx.Rows, err error) ([]*entity.SupplierPayment, error) {
	if err != nil {
		return nil, fmt.Errorf("list supplier payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierPayment
	for rows.Next() {
		var p entity.SupplierPayment
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.POID, &p.PaymentDate, &p.AmountPaid,
			&p.PaymentMode, &p.ChequeNumber, &p.TransactionID, &p.BankName,
			&p.PaidByPartnerID, &p.PaidFromFirmCash, &p.InvoiceNumber, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

var _ repository.SupplierInvoiceRepository = (*SupplierInvoiceRepo)(nil)

const supplierInvoiceColumns = `id, supplier_id, po_id, invoice_number, invoice_date, due_date,
		subtotal, gst_amount, total_amount, paid_amount, outstanding_amount, payment_status, notes, created_at`

// SupplierInvoiceRepo implementación de SupplierInvoiceRepository.
type SupplierInvoiceRepo struct {
	q Querier
}

// NewSupplierInvoiceRepository construye el adaptador.
func NewSupplierInvoiceRepository(q Querier) *SupplierInvoiceRepo {
	return &SupplierInvoiceRepo{q: q}
}

// Create persiste una factura de proveedor.
func (r *SupplierInvoiceRepo) Create(invoice *entity.SupplierInvoice) error {
	query := `
		INSERT INTO supplier_invoices (` + supplierInvoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.SupplierID, invoice.POID, invoice.InvoiceNumber, invoice.InvoiceDate,
		invoice.DueDate, invoice.Subtotal, invoice.GSTAmount, invoice.TotalAmount,
		invoice.PaidAmount, invoice.OutstandingAmount, invoice.PaymentStatus,
		invoice.Notes, invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *SupplierInvoiceRepo) GetByID(id string) (*entity.SupplierInvoice, error) {
	query := `SELECT ` + supplierInvoiceColumns + ` FROM supplier_invoices WHERE id = $1`
	var inv entity.SupplierInvoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.SupplierID, &inv.POID, &inv.InvoiceNumber, &inv.InvoiceDate, &inv.DueDate,
		&inv.Subtotal, &inv.GSTAmount, &inv.TotalAmount, &inv.PaidAmount, &inv.OutstandingAmount,
		&inv.PaymentStatus, &inv.Notes, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier invoice: %w", err)
	}
	return &inv, nil
}

// ListBySupplier facturas de un proveedor, más antiguas primero.
func (r *SupplierInvoiceRepo) ListBySupplier(supplierID string) ([]*entity.SupplierInvoice, error) {
	query := `SELECT ` + supplierInvoiceColumns + ` FROM supplier_invoices
		WHERE supplier_id = $1 ORDER BY invoice_date, created_at`
	return r.scanInvoices(r.q.Query(context.Background(), query, supplierID))
}

// ListUnpaid facturas abiertas de todos los proveedores.
func (r *SupplierInvoiceRepo) ListUnpaid() ([]*entity.SupplierInvoice, error) {
	query := `SELECT ` + supplierInvoiceColumns + ` FROM supplier_invoices
		WHERE payment_status <> 'paid' ORDER BY invoice_date, created_at`
	return r.scanInvoices(r.q.Query(context.Background(), query))
}

// ListUnpaidBySupplierForUpdate bloquea las facturas abiertas del proveedor
// para asignarles un pago (más antiguas primero).
func (r *SupplierInvoiceRepo) ListUnpaidBySupplierForUpdate(supplierID string) ([]*entity.SupplierInvoice, error) {
	query := `SELECT ` + supplierInvoiceColumns + ` FROM supplier_invoices
		WHERE supplier_id = $1 AND payment_status <> 'paid'
		ORDER BY invoice_date, created_at
		FOR UPDATE`
	return r.scanInvoices(r.q.Query(context.Background(), query, supplierID))
}

func (r *SupplierInvoiceRepo) scanInvoices(rows pgx.Rows, err error) ([]*entity.SupplierInvoice, error) {
	if err != nil {
		return nil, fmt.Errorf("list supplier invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierInvoice
	for rows.Next() {
		var inv entity.SupplierInvoice
		if err := rows.Scan(&inv.ID, &inv.SupplierID, &inv.POID, &inv.InvoiceNumber, &inv.InvoiceDate,
			&inv.DueDate, &inv.Subtotal, &inv.GSTAmount, &inv.TotalAmount, &inv.PaidAmount,
			&inv.OutstandingAmount, &inv.PaymentStatus, &inv.Notes, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// ApplyPayment actualiza paid/outstanding/payment_status de una factura.
// Solo desde transacción, con la fila ya bloqueada.
func (r *SupplierInvoiceRepo) ApplyPayment(invoiceID string, paid, outstanding decimal.Decimal, status string) error {
	query := `
		UPDATE supplier_invoices SET paid_amount = $2, outstanding_amount = $3, payment_status = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, invoiceID, paid, outstanding, status)
	if err != nil {
		return fmt.Errorf("apply invoice payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
