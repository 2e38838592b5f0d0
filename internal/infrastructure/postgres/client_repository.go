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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, phone, address, credit_limit, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Phone, client.Address, client.CreditLimit,
		client.Active, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `
		SELECT id, name, phone, address, credit_limit, active, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Address, &c.CreditLimit, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List lista clientes ordenados por nombre.
func (r *ClientRepo) List(onlyActive bool) ([]*entity.Client, error) {
	query := `
		SELECT id, name, phone, address, credit_limit, active, created_at, updated_at
		FROM clients`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.CreditLimit, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos maestros del cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, phone = $3, address = $4, credit_limit = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Phone, client.Address, client.CreditLimit, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive aplica la baja/alta lógica.
func (r *ClientRepo) SetActive(id string, active bool) error {
	query := `UPDATE clients SET active = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, active)
	if err != nil {
		return fmt.Errorf("set client active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.ClientBillRepository = (*ClientBillRepo)(nil)

// ClientBillRepo implementación de ClientBillRepository (usable con pool o tx).
type ClientBillRepo struct {
	q Querier
}

// NewClientBillRepository construye el adaptador.
func NewClientBillRepository(q Querier) *ClientBillRepo {
	return &ClientBillRepo{q: q}
}

// Create persiste una factura de cliente.
func (r *ClientBillRepo) Create(bill *entity.ClientBill) error {
	query := `
		INSERT INTO client_bills (id, client_id, date, amount, entry_type, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		bill.ID, bill.ClientID, bill.Date, bill.Amount, bill.EntryType, bill.Description, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client bill: %w", err)
	}
	return nil
}

// ListByClient facturas de un cliente, más recientes primero.
func (r *ClientBillRepo) ListByClient(clientID string) ([]*entity.ClientBill, error) {
	query := `
		SELECT id, client_id, date, amount, entry_type, description, created_at
		FROM client_bills WHERE client_id = $1 ORDER BY date DESC, created_at DESC`
	return r.scanBills(r.q.Query(context.Background(), query, clientID))
}

// ListByDateRange facturas de un rango de fechas.
func (r *ClientBillRepo) ListByDateRange(from, to time.Time) ([]*entity.ClientBill, error) {
	query := `
		SELECT id, client_id, date, amount, entry_type, description, created_at
		FROM client_bills WHERE date >= $1 AND date <= $2 ORDER BY date DESC, created_at DESC`
	return r.scanBills(r.q.Query(context.Background(), query, from, to))
}

func (r *ClientBillRepo) scanBills(rows pgx.Rows, err error) ([]*entity.ClientBill, error) {
	if err != nil {
		return nil, fmt.Errorf("list client bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClientBill
	for rows.Next() {
		var b entity.ClientBill
		if err := rows.Scan(&b.ID, &b.ClientID, &b.Date, &b.Amount, &b.EntryType, &b.Description, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client bill: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// AmountsByClient montos facturados de un cliente.
func (r *ClientBillRepo) AmountsByClient(clientID string) ([]decimal.Decimal, error) {
	query := `SELECT amount FROM client_bills WHERE client_id = $1`
	return scanAmounts(r.q.Query(context.Background(), query, clientID))
}

// AmountsByDateRange montos facturados del rango; from/to nil = sin cota.
func (r *ClientBillRepo) AmountsByDateRange(from, to *time.Time) ([]decimal.Decimal, error) {
	query, args := amountsRangeQuery(`SELECT amount FROM client_bills`, from, to)
	return scanAmounts(r.q.Query(context.Background(), query, args...))
}

var _ repository.ClientPaymentRepository = (*ClientPaymentRepo)(nil)

// ClientPaymentRepo implementación de ClientPaymentRepository (usable con pool o tx).
type ClientPaymentRepo struct {
	q Querier
}

// NewClientPaymentRepository construye el adaptador.
func NewClientPaymentRepository(q Querier) *ClientPaymentRepo {
	return &ClientPaymentRepo{q: q}
}

// Create persiste un cobro de cliente.
func (r *ClientPaymentRepo) Create(payment *entity.ClientPayment) error {
	query := `
		INSERT INTO client_payments (id, client_id, date, amount_paid, collected_by_partner_id, deposited_to_firm, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.ClientID, payment.Date, payment.AmountPaid,
		payment.CollectedByPartnerID, payment.DepositedToFirm, payment.Notes, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client payment: %w", err)
	}
	return nil
}

// ListByClient cobros de un cliente, más recientes primero.
func (r *ClientPaymentRepo) ListByClient(clientID string) ([]*entity.ClientPayment, error) {
	query := `
		SELECT id, client_id, date, amount_paid, collected_by_partner_id, deposited_to_firm, notes, created_at
		FROM client_payments WHERE client_id = $1 ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list client payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClientPayment
	for rows.Next() {
		var p entity.ClientPayment
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Date, &p.AmountPaid, &p.CollectedByPartnerID, &p.DepositedToFirm, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AmountsByClient montos cobrados de un cliente.
func (r *ClientPaymentRepo) AmountsByClient(clientID string) ([]decimal.Decimal, error) {
	query := `SELECT amount_paid FROM client_payments WHERE client_id = $1`
	return scanAmounts(r.q.Query(context.Background(), query, clientID))
}

// AmountsByDateRange montos cobrados del rango; from/to nil = sin cota.
func (r *ClientPaymentRepo) AmountsByDateRange(from, to *time.Time) ([]decimal.Decimal, error) {
	query, args := amountsRangeQuery(`SELECT amount_paid FROM client_payments`, from, to)
	return scanAmounts(r.q.Query(context.Background(), query, args...))
}

// AmountsByCollector cobros recibidos por un socio con su estado de depósito.
func (r *ClientPaymentRepo) AmountsByCollector(partnerID string) ([]repository.CollectedAmount, error) {
	query := `
		SELECT amount_paid, deposited_to_firm
		FROM client_payments WHERE collected_by_partner_id = $1`
	rows, err := r.q.Query(context.Background(), query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("list collected amounts: %w", err)
	}
	defer rows.Close()
	var list []repository.CollectedAmount
	for rows.Next() {
		var row repository.CollectedAmount
		if err := rows.Scan(&row.Amount, &row.DepositedToFirm); err != nil {
			return nil, fmt.Errorf("scan collected amount: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// amountsRangeQuery arma la consulta de montos con cotas opcionales de fecha.
func amountsRangeQuery(base string, from, to *time.Time) (string, []any) {
	var args []any
	switch {
	case from != nil && to != nil:
		return base + ` WHERE date >= $1 AND date <= $2`, []any{*from, *to}
	case from != nil:
		return base + ` WHERE date >= $1`, []any{*from}
	case to != nil:
		return base + ` WHERE date <= $1`, []any{*to}
	}
	return base, args
}

// scanAmounts lee una columna de montos.
func scanAmounts(rows pgx.Rows, err error) ([]decimal.Decimal, error) {
	if err != nil {
		return nil, fmt.Errorf("query amounts: %w", err)
	}
	defer rows.Close()
	var amounts []decimal.Decimal
	for rows.Next() {
		var a decimal.Decimal
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("scan amount: %w", err)
		}
		amounts = append(amounts, a)
	}
	return amounts, rows.Err()
}
