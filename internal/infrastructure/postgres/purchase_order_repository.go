package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const poColumns = `id, po_number, supplier_id, order_date, expected_delivery_date, status,
		subtotal, gst_amount, total_amount, payment_terms, delivery_address, notes,
		approved_by, approved_at, created_at, updated_at`

// PurchaseOrderRepo implementación de PurchaseOrderRepository (usable con
// pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la orden y sus líneas.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchase_orders (` + poColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		po.ID, po.PONumber, po.SupplierID, po.OrderDate, po.ExpectedDeliveryDate, po.Status,
		po.Subtotal, po.GSTAmount, po.TotalAmount, po.PaymentTerms, po.DeliveryAddress, po.Notes,
		po.ApprovedBy, po.ApprovedAt, po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}

	itemQuery := `
		INSERT INTO purchase_order_items (id, po_id, material_name, material_category, quantity, unit,
			rate_per_unit, amount, gst_percentage, gst_amount, total_amount, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, it := range items {
		if _, err := r.q.Exec(ctx, itemQuery,
			it.ID, it.POID, it.MaterialName, it.MaterialCategory, it.Quantity, it.Unit,
			it.RatePerUnit, it.Amount, it.GSTPercentage, it.GSTAmount, it.TotalAmount,
			it.Notes, it.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert purchase order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE id = $1`
	var po entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&po.ID, &po.PONumber, &po.SupplierID, &po.OrderDate, &po.ExpectedDeliveryDate, &po.Status,
		&po.Subtotal, &po.GSTAmount, &po.TotalAmount, &po.PaymentTerms, &po.DeliveryAddress,
		&po.Notes, &po.ApprovedBy, &po.ApprovedAt, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &po, nil
}

// GetItems líneas de una orden.
func (r *PurchaseOrderRepo) GetItems(poID string) ([]*entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, po_id, material_name, material_category, quantity, unit, rate_per_unit,
			amount, gst_percentage, gst_amount, total_amount, notes, created_at
		FROM purchase_order_items WHERE po_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, poID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.ID, &it.POID, &it.MaterialName, &it.MaterialCategory, &it.Quantity,
			&it.Unit, &it.RatePerUnit, &it.Amount, &it.GSTPercentage, &it.GSTAmount,
			&it.TotalAmount, &it.Notes, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List todas las órdenes, más recientes primero.
func (r *PurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders ORDER BY order_date DESC, created_at DESC`
	return r.scanOrders(r.q.Query(context.Background(), query))
}

// ListBySupplier órdenes de un proveedor.
func (r *PurchaseOrderRepo) ListBySupplier(supplierID string) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders
		WHERE supplier_id = $1 ORDER BY order_date DESC, created_at DESC`
	return r.scanOrders(r.q.Query(context.Background(), query, supplierID))
}

// ListOpen órdenes en estado pending o approved.
func (r *PurchaseOrderRepo) ListOpen() ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders
		WHERE status IN ('pending', 'approved') ORDER BY order_date DESC, created_at DESC`
	return r.scanOrders(r.q.Query(context.Background(), query))
}

func (r *PurchaseOrderRepo) scanOrders(rows pgx.Rows, err error) ([]*entity.PurchaseOrder, error) {
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.PONumber, &po.SupplierID, &po.OrderDate, &po.ExpectedDeliveryDate,
			&po.Status, &po.Subtotal, &po.GSTAmount, &po.TotalAmount, &po.PaymentTerms,
			&po.DeliveryAddress, &po.Notes, &po.ApprovedBy, &po.ApprovedAt, &po.CreatedAt, &po.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &po)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza estado y datos de aprobación.
func (r *PurchaseOrderRepo) UpdateStatus(po *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET status = $2, approved_by = $3, approved_at = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		po.ID, po.Status, po.ApprovedBy, po.ApprovedAt, po.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LastPONumber último número de orden emitido ("" si no hay órdenes).
// El formato PO/<año>/<secuencia de ancho fijo> hace que el orden
// lexicográfico coincida con el cronológico.
func (r *PurchaseOrderRepo) LastPONumber() (string, error) {
	query := `SELECT po_number FROM purchase_orders ORDER BY po_number DESC LIMIT 1`
	var number string
	err := r.q.QueryRow(context.Background(), query).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last po number: %w", err)
	}
	return number, nil
}
