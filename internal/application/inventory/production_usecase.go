package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// ProductionUseCase producción y venta de producto terminado. Filas
// append-only; los totales los consume el compositor de reportes.
type ProductionUseCase struct {
	productionRepo repository.ProductionRepository
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(productionRepo repository.ProductionRepository) *ProductionUseCase {
	return &ProductionUseCase{productionRepo: productionRepo}
}

// RecordEntry registra unidades producidas.
func (uc *ProductionUseCase) RecordEntry(in dto.CreateProductionEntryRequest) (*entity.ProductionEntry, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	entry := &entity.ProductionEntry{
		ID:        uuid.New().String(),
		Date:      date,
		ItemName:  in.ItemName,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.productionRepo.CreateEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordSale registra una venta de producto terminado.
func (uc *ProductionUseCase) RecordSale(in dto.CreateStockSaleRequest) (*entity.StockSale, error) {
	if !in.Quantity.IsPositive() || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	sale := &entity.StockSale{
		ID:        uuid.New().String(),
		Date:      date,
		ItemName:  in.ItemName,
		Quantity:  in.Quantity,
		Amount:    in.Amount,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.productionRepo.CreateSale(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Entries producción de un rango de fechas.
func (uc *ProductionUseCase) Entries(from, to *time.Time) ([]*entity.ProductionEntry, error) {
	return uc.productionRepo.ListEntries(from, to)
}

// Sales ventas de un rango de fechas.
func (uc *ProductionUseCase) Sales(from, to *time.Time) ([]*entity.StockSale, error) {
	return uc.productionRepo.ListSales(from, to)
}
