// Package procurement contiene los casos de uso de compras a proveedores:
// maestro de proveedores, órdenes de compra, facturas y pagos.
package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// SupplierUseCase maestro de proveedores con contadores desnormalizados.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create da de alta un proveedor. OpeningBalance entra al saldo pendiente
// desde el primer día; los contadores arrancan en cero.
func (uc *SupplierUseCase) Create(in dto.SupplierFormRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:             uuid.New().String(),
		Name:           in.Name,
		CompanyName:    in.CompanyName,
		Phone:          in.Phone,
		Email:          in.Email,
		GSTIN:          in.GSTIN,
		Address:        in.Address,
		City:           in.City,
		State:          in.State,
		Pincode:        in.Pincode,
		OpeningBalance: in.OpeningBalance,
		TotalPurchases: decimal.Zero,
		TotalPaid:      decimal.Zero,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID devuelve un proveedor por id.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List devuelve los proveedores.
func (uc *SupplierUseCase) List(onlyActive bool) ([]*dto.SupplierResponse, error) {
	suppliers, err := uc.supplierRepo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Update modifica los datos maestros. Los contadores (TotalPurchases,
// TotalPaid) jamás se tocan por esta vía.
func (uc *SupplierUseCase) Update(id string, in dto.SupplierFormRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	supplier.Name = in.Name
	supplier.CompanyName = in.CompanyName
	supplier.Phone = in.Phone
	supplier.Email = in.Email
	supplier.GSTIN = in.GSTIN
	supplier.Address = in.Address
	supplier.City = in.City
	supplier.State = in.State
	supplier.Pincode = in.Pincode
	supplier.OpeningBalance = in.OpeningBalance
	if in.Active != nil {
		supplier.Active = *in.Active
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete baja de proveedor (lógica en el adaptador).
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.Delete(id)
}

// Summary agregados del maestro de proveedores.
func (uc *SupplierUseCase) Summary() (*dto.SuppliersSummaryDTO, error) {
	suppliers, err := uc.supplierRepo.List(false)
	if err != nil {
		return nil, err
	}

	out := &dto.SuppliersSummaryDTO{
		TotalOutstanding: decimal.Zero,
		TotalPurchases:   decimal.Zero,
		TotalPaid:        decimal.Zero,
	}
	for _, s := range suppliers {
		out.TotalSuppliers++
		if s.Active {
			out.ActiveSuppliers++
		}
		outstanding := s.Outstanding()
		out.TotalPurchases = out.TotalPurchases.Add(s.TotalPurchases)
		out.TotalPaid = out.TotalPaid.Add(s.TotalPaid)
		out.TotalOutstanding = out.TotalOutstanding.Add(outstanding)
		if outstanding.IsPositive() {
			out.SuppliersWithOutstanding++
		}
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:             s.ID,
		Name:           s.Name,
		CompanyName:    s.CompanyName,
		Phone:          s.Phone,
		Email:          s.Email,
		GSTIN:          s.GSTIN,
		City:           s.City,
		OpeningBalance: s.OpeningBalance,
		TotalPurchases: s.TotalPurchases,
		TotalPaid:      s.TotalPaid,
		Outstanding:    s.Outstanding(),
		Active:         s.Active,
	}
}
