// Package partner contiene los casos de uso de socios: maestro y billetera
// derivada del libro de caja (el saldo nunca se almacena).
package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// PartnerUseCase maestro de socios.
type PartnerUseCase struct {
	partnerRepo repository.PartnerRepository
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(partnerRepo repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{partnerRepo: partnerRepo}
}

// Create da de alta un socio. El nombre es único.
func (uc *PartnerUseCase) Create(in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.partnerRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	partner := &entity.Partner{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.partnerRepo.Create(partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// GetByID devuelve un socio por id.
func (uc *PartnerUseCase) GetByID(id string) (*dto.PartnerResponse, error) {
	partner, err := uc.partnerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	return toPartnerResponse(partner), nil
}

// List devuelve los socios.
func (uc *PartnerUseCase) List(onlyActive bool) ([]*dto.PartnerResponse, error) {
	partners, err := uc.partnerRepo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartnerResponse, 0, len(partners))
	for _, p := range partners {
		out = append(out, toPartnerResponse(p))
	}
	return out, nil
}

func toPartnerResponse(p *entity.Partner) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:     p.ID,
		Name:   p.Name,
		Phone:  p.Phone,
		Active: p.Active,
	}
}
