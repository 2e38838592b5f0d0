package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, material_name, category, unit, current_stock, unit_cost,
		last_purchase_date, last_purchase_rate, active, created_at, updated_at`

// MaterialRepo implementación de MaterialRepository (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste una materia prima.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Category, material.Unit, material.CurrentStock,
		material.UnitCost, material.LastPurchaseDate, material.LastPurchaseRate,
		material.Active, material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByName obtiene una materia prima por nombre (clave natural).
func (r *MaterialRepo) GetByName(name string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE material_name = $1`
	return r.getOne(query, name)
}

// GetByNameForUpdate bloquea la fila (SELECT FOR UPDATE) para mutar los
// contadores sin condiciones de carrera. Solo desde transacción.
func (r *MaterialRepo) GetByNameForUpdate(name string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE material_name = $1 FOR UPDATE`
	return r.getOne(query, name)
}

func (r *MaterialRepo) getOne(query, name string) (*entity.Material, error) {
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&m.ID, &m.Name, &m.Category, &m.Unit, &m.CurrentStock, &m.UnitCost,
		&m.LastPurchaseDate, &m.LastPurchaseRate, &m.Active, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// List catálogo de materias primas ordenado por nombre.
func (r *MaterialRepo) List(onlyActive bool) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY material_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Unit, &m.CurrentStock, &m.UnitCost,
			&m.LastPurchaseDate, &m.LastPurchaseRate, &m.Active, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// IncrementStock suma delta al stock. Solo desde transacción con la fila
// bloqueada.
func (r *MaterialRepo) IncrementStock(name string, delta decimal.Decimal) error {
	query := `UPDATE materials SET current_stock = current_stock + $2, updated_at = now() WHERE material_name = $1`
	tag, err := r.q.Exec(context.Background(), query, name, delta)
	if err != nil {
		return fmt.Errorf("increment material stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStock sobrescribe current_stock (aprobación de auditoría; no suma).
func (r *MaterialRepo) SetStock(name string, quantity decimal.Decimal) error {
	query := `UPDATE materials SET current_stock = $2, updated_at = now() WHERE material_name = $1`
	tag, err := r.q.Exec(context.Background(), query, name, quantity)
	if err != nil {
		return fmt.Errorf("set material stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePurchaseInfo actualiza costo unitario y última compra.
func (r *MaterialRepo) UpdatePurchaseInfo(name string, unitCost decimal.Decimal, purchaseDate time.Time) error {
	query := `
		UPDATE materials SET unit_cost = $2, last_purchase_rate = $2, last_purchase_date = $3, updated_at = now()
		WHERE material_name = $1`
	tag, err := r.q.Exec(context.Background(), query, name, unitCost, purchaseDate)
	if err != nil {
		return fmt.Errorf("update material purchase info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.MaterialPurchaseRepository = (*MaterialPurchaseRepo)(nil)

const materialPurchaseColumns = `id, date, material_name, quantity, unit_cost, total_amount,
		vendor_name, partner_id, paid_from, invoice_number, notes, created_at`

// MaterialPurchaseRepo implementación de MaterialPurchaseRepository.
type MaterialPurchaseRepo struct {
	q Querier
}

// NewMaterialPurchaseRepository construye el adaptador.
func NewMaterialPurchaseRepository(q Querier) *MaterialPurchaseRepo {
	return &MaterialPurchaseRepo{q: q}
}

// Create persiste una compra de materia prima.
func (r *MaterialPurchaseRepo) Create(purchase *entity.MaterialPurchase) error {
	query := `
		INSERT INTO material_purchases (` + materialPurchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.Date, purchase.MaterialName, purchase.Quantity, purchase.UnitCost,
		purchase.TotalAmount, purchase.VendorName, purchase.PartnerID, purchase.PaidFrom,
		purchase.InvoiceNumber, purchase.Notes, purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material purchase: %w", err)
	}
	return nil
}

// ListByDateRange compras del rango, más recientes primero.
func (r *MaterialPurchaseRepo) ListByDateRange(from, to *time.Time) ([]*entity.MaterialPurchase, error) {
	query, args := amountsRangeQuery(`SELECT `+materialPurchaseColumns+` FROM material_purchases`, from, to)
	query += ` ORDER BY date DESC, created_at DESC`
	return r.scanPurchases(r.q.Query(context.Background(), query, args...))
}

// ListByPartner compras pagadas por un socio en el rango.
func (r *MaterialPurchaseRepo) ListByPartner(partnerID string, from, to *time.Time) ([]*entity.MaterialPurchase, error) {
	query := `SELECT ` + materialPurchaseColumns + ` FROM material_purchases WHERE partner_id = $1`
	args := []any{partnerID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND date <= $%d`, len(args))
	}
	query += ` ORDER BY date DESC, created_at DESC`
	return r.scanPurchases(r.q.Query(context.Background(), query, args...))
}

func (r *MaterialPurchaseRepo) scanPurchases(rows pgx.Rows, err error) ([]*entity.MaterialPurchase, error) {
	if err != nil {
		return nil, fmt.Errorf("list material purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialPurchase
	for rows.Next() {
		var p entity.MaterialPurchase
		if err := rows.Scan(&p.ID, &p.Date, &p.MaterialName, &p.Quantity, &p.UnitCost, &p.TotalAmount,
			&p.VendorName, &p.PartnerID, &p.PaidFrom, &p.InvoiceNumber, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

var _ repository.StockAuditRepository = (*StockAuditRepo)(nil)

const stockAuditColumns = `id, date, material_name, digital_stock, physical_count, variance,
		variance_percentage, reason, approved_by, partners_notified, financial_impact, created_at`

// StockAuditRepo implementación de StockAuditRepository.
type StockAuditRepo struct {
	q Querier
}

// NewStockAuditRepository construye el adaptador.
func NewStockAuditRepository(q Querier) *StockAuditRepo {
	return &StockAuditRepo{q: q}
}

// Create persiste una auditoría de stock.
func (r *StockAuditRepo) Create(audit *entity.StockAudit) error {
	query := `
		INSERT INTO stock_audits (` + stockAuditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		audit.ID, audit.Date, audit.MaterialName, audit.DigitalStock, audit.PhysicalCount,
		audit.Variance, audit.VariancePercentage, audit.Reason, audit.ApprovedBy,
		audit.PartnersNotified, audit.FinancialImpact, audit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock audit: %w", err)
	}
	return nil
}

// GetByID obtiene una auditoría por ID.
func (r *StockAuditRepo) GetByID(id string) (*entity.StockAudit, error) {
	query := `SELECT ` + stockAuditColumns + ` FROM stock_audits WHERE id = $1`
	var a entity.StockAudit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Date, &a.MaterialName, &a.DigitalStock, &a.PhysicalCount, &a.Variance,
		&a.VariancePercentage, &a.Reason, &a.ApprovedBy, &a.PartnersNotified,
		&a.FinancialImpact, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock audit: %w", err)
	}
	return &a, nil
}

// Delete elimina una auditoría (rechazo; nunca una aprobada).
func (r *StockAuditRepo) Delete(id string) error {
	query := `DELETE FROM stock_audits WHERE id = $1 AND approved_by = ''`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete stock audit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByDateRange auditorías del rango, más recientes primero.
func (r *StockAuditRepo) ListByDateRange(from, to *time.Time) ([]*entity.StockAudit, error) {
	query, args := amountsRangeQuery(`SELECT `+stockAuditColumns+` FROM stock_audits`, from, to)
	query += ` ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock audits: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAudit
	for rows.Next() {
		var a entity.StockAudit
		if err := rows.Scan(&a.ID, &a.Date, &a.MaterialName, &a.DigitalStock, &a.PhysicalCount,
			&a.Variance, &a.VariancePercentage, &a.Reason, &a.ApprovedBy, &a.PartnersNotified,
			&a.FinancialImpact, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock audit: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// MarkApproved estampa quién aprobó y marca socios notificados.
func (r *StockAuditRepo) MarkApproved(id, approvedBy string) error {
	query := `UPDATE stock_audits SET approved_by = $2, partners_notified = true WHERE id = $1 AND approved_by = ''`
	tag, err := r.q.Exec(context.Background(), query, id, approvedBy)
	if err != nil {
		return fmt.Errorf("approve stock audit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}
