// Package inventory contiene los casos de uso de materias primas: catálogo,
// compras (motor transaccional de stock) y auditorías físicas.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// MaterialUseCase catálogo maestro de materias primas.
type MaterialUseCase struct {
	materialRepo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(materialRepo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{materialRepo: materialRepo}
}

// Create da de alta una materia prima. El nombre es la clave natural con la
// que compras y auditorías la referencian.
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock.IsNegative() || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.materialRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	material := &entity.Material{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Unit:         in.Unit,
		CurrentStock: in.InitialStock,
		UnitCost:     in.UnitCost,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.materialRepo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByName devuelve una materia prima por nombre.
func (uc *MaterialUseCase) GetByName(name string) (*dto.MaterialResponse, error) {
	material, err := uc.materialRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(material), nil
}

// List devuelve el catálogo.
func (uc *MaterialUseCase) List(onlyActive bool) ([]*dto.MaterialResponse, error) {
	materials, err := uc.materialRepo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, toMaterialResponse(m))
	}
	return out, nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	resp := &dto.MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Unit:         m.Unit,
		CurrentStock: m.CurrentStock,
		UnitCost:     m.UnitCost,
		Active:       m.Active,
	}
	if m.LastPurchaseDate != nil {
		resp.LastPurchaseDate = dto.FormatDate(*m.LastPurchaseDate)
	}
	return resp
}
