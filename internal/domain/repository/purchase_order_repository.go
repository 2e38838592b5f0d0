package repository

import "github.com/wallsco/firmbooks-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia de órdenes de
// compra y sus líneas.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	GetItems(poID string) ([]*entity.PurchaseOrderItem, error)
	List() ([]*entity.PurchaseOrder, error)
	ListBySupplier(supplierID string) ([]*entity.PurchaseOrder, error)
	ListOpen() ([]*entity.PurchaseOrder, error)
	UpdateStatus(po *entity.PurchaseOrder) error
	// LastPONumber devuelve el último número de orden emitido ("" si no hay).
	LastPONumber() (string, error)
}
