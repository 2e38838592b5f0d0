package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación de ProductionRepository sobre las tablas
// production_entries y stock_sales.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador.
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// CreateEntry persiste unidades producidas.
func (r *ProductionRepo) CreateEntry(entry *entity.ProductionEntry) error {
	query := `
		INSERT INTO production_entries (id, date, item_name, quantity, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Date, entry.ItemName, entry.Quantity, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production entry: %w", err)
	}
	return nil
}

// CreateSale persiste una venta de producto terminado.
func (r *ProductionRepo) CreateSale(sale *entity.StockSale) error {
	query := `
		INSERT INTO stock_sales (id, date, item_name, quantity, amount, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.ItemName, sale.Quantity, sale.Amount, sale.Notes, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock sale: %w", err)
	}
	return nil
}

// ListEntries producción del rango, más reciente primero.
func (r *ProductionRepo) ListEntries(from, to *time.Time) ([]*entity.ProductionEntry, error) {
	query, args := amountsRangeQuery(`SELECT id, date, item_name, quantity, notes, created_at FROM production_entries`, from, to)
	query += ` ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list production entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionEntry
	for rows.Next() {
		var e entity.ProductionEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.ItemName, &e.Quantity, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListSales ventas del rango, más recientes primero.
func (r *ProductionRepo) ListSales(from, to *time.Time) ([]*entity.StockSale, error) {
	query, args := amountsRangeQuery(`SELECT id, date, item_name, quantity, amount, notes, created_at FROM stock_sales`, from, to)
	query += ` ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockSale
	for rows.Next() {
		var s entity.StockSale
		if err := rows.Scan(&s.ID, &s.Date, &s.ItemName, &s.Quantity, &s.Amount, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Totals agregados de producción vs ventas del rango (dos consultas con
// COALESCE: rango vacío ⇒ ceros exactos).
func (r *ProductionRepo) Totals(from, to *time.Time) (repository.ProductionTotals, error) {
	var totals repository.ProductionTotals

	prodQuery, prodArgs := amountsRangeQuery(`SELECT COALESCE(SUM(quantity), 0) FROM production_entries`, from, to)
	if err := r.q.QueryRow(context.Background(), prodQuery, prodArgs...).Scan(&totals.Produced); err != nil {
		return totals, fmt.Errorf("production totals: %w", err)
	}

	salesQuery, salesArgs := amountsRangeQuery(`SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(amount), 0) FROM stock_sales`, from, to)
	if err := r.q.QueryRow(context.Background(), salesQuery, salesArgs...).Scan(&totals.Sold, &totals.SalesRevenue); err != nil {
		return totals, fmt.Errorf("sales totals: %w", err)
	}
	return totals, nil
}
