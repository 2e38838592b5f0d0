package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia del maestro de
// materias primas. Las mutaciones de contadores (IncrementStock, SetStock,
// UpdatePurchaseInfo) solo se usan dentro de transacciones.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByName(name string) (*entity.Material, error)
	// GetByNameForUpdate bloquea la fila (SELECT FOR UPDATE) para mutar
	// los contadores sin condiciones de carrera.
	GetByNameForUpdate(name string) (*entity.Material, error)
	List(onlyActive bool) ([]*entity.Material, error)
	IncrementStock(name string, delta decimal.Decimal) error
	// SetStock sobrescribe current_stock (aprobación de auditoría).
	SetStock(name string, quantity decimal.Decimal) error
	UpdatePurchaseInfo(name string, unitCost decimal.Decimal, purchaseDate time.Time) error
}

// MaterialPurchaseRepository compras de materia prima (append-only).
type MaterialPurchaseRepository interface {
	Create(purchase *entity.MaterialPurchase) error
	ListByDateRange(from, to *time.Time) ([]*entity.MaterialPurchase, error)
	ListByPartner(partnerID string, from, to *time.Time) ([]*entity.MaterialPurchase, error)
}

// StockAuditRepository registros de auditoría de stock.
type StockAuditRepository interface {
	Create(audit *entity.StockAudit) error
	GetByID(id string) (*entity.StockAudit, error)
	Delete(id string) error
	ListByDateRange(from, to *time.Time) ([]*entity.StockAudit, error)
	// MarkApproved estampa quién aprobó y marca socios notificados.
	MarkApproved(id, approvedBy string) error
}
