package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// ClientUseCase maestro de clientes: alta, modificación, baja lógica.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create da de alta un cliente.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CreditLimit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Phone:       in.Phone,
		Address:     in.Address,
		CreditLimit: in.CreditLimit,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID devuelve un cliente por id.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List devuelve los clientes; onlyActive filtra bajas lógicas.
func (uc *ClientUseCase) List(onlyActive bool) ([]*dto.ClientResponse, error) {
	clients, err := uc.clientRepo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update modifica los datos maestros de un cliente. Las facturas y cobros
// existentes no se tocan.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.CreditLimit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	client.Name = in.Name
	client.Phone = in.Phone
	client.Address = in.Address
	client.CreditLimit = in.CreditLimit
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Deactivate baja lógica: el cliente deja de listarse pero su historial
// de facturación queda intacto.
func (uc *ClientUseCase) Deactivate(id string) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.SetActive(id, false)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Address:     c.Address,
		CreditLimit: c.CreditLimit,
		Active:      c.Active,
	}
}
