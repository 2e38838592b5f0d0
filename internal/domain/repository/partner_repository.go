package repository

import "github.com/wallsco/firmbooks-api/internal/domain/entity"

// PartnerRepository define el puerto de persistencia del maestro de socios.
type PartnerRepository interface {
	Create(partner *entity.Partner) error
	GetByID(id string) (*entity.Partner, error)
	GetByName(name string) (*entity.Partner, error)
	List(onlyActive bool) ([]*entity.Partner, error)
}
