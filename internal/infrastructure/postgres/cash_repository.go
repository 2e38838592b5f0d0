package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

var _ repository.CashLedgerRepository = (*CashLedgerRepo)(nil)

// CashLedgerRepo implementación de CashLedgerRepository sobre la tabla
// firm_cash_ledger (usable con pool o tx).
type CashLedgerRepo struct {
	q Querier
}

// NewCashLedgerRepository construye el adaptador.
func NewCashLedgerRepository(q Querier) *CashLedgerRepo {
	return &CashLedgerRepo{q: q}
}

// Create persiste un asiento de caja.
func (r *CashLedgerRepo) Create(entry *entity.CashEntry) error {
	query := `
		INSERT INTO firm_cash_ledger (id, date, type, category, amount, partner_id, deposited_to_firm, description, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Date, entry.Type, entry.Category, entry.Amount,
		entry.PartnerID, entry.DepositedToFirm, entry.Description, entry.ReferenceID, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cash entry: %w", err)
	}
	return nil
}

// List asientos del filtro, más recientes primero. Los campos vacíos/nil del
// filtro no acotan.
func (r *CashLedgerRepo) List(filter repository.CashFilter) ([]entity.CashEntry, error) {
	query := `
		SELECT id, date, type, category, amount, partner_id, deposited_to_firm, description, reference_id, created_at
		FROM firm_cash_ledger`
	var args []any
	var conds []string
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, cond+" $"+strconv.Itoa(len(args)))
	}
	if filter.From != nil {
		add("date >=", *filter.From)
	}
	if filter.To != nil {
		add("date <=", *filter.To)
	}
	if filter.Type != "" {
		add("type =", filter.Type)
	}
	if filter.Category != "" {
		add("category =", filter.Category)
	}
	if filter.PartnerID != "" {
		add("partner_id =", filter.PartnerID)
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cash entries: %w", err)
	}
	defer rows.Close()
	var list []entity.CashEntry
	for rows.Next() {
		var e entity.CashEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Type, &e.Category, &e.Amount, &e.PartnerID, &e.DepositedToFirm, &e.Description, &e.ReferenceID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cash entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// DeleteByReference elimina los asientos enlazados a una fila de negocio
// (reverso de una mutación de referencia).
func (r *CashLedgerRepo) DeleteByReference(referenceID string) error {
	query := `DELETE FROM firm_cash_ledger WHERE reference_id = $1`
	if _, err := r.q.Exec(context.Background(), query, referenceID); err != nil {
		return fmt.Errorf("delete cash entries by reference: %w", err)
	}
	return nil
}
