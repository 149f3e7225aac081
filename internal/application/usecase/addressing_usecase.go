package usecase

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// AddressingUseCase CRUD de endereçamientos (posición codificada dentro de un local).
type AddressingUseCase struct {
	repo repository.AddressingRepository
}

// NewAddressingUseCase construye el caso de uso.
func NewAddressingUseCase(repo repository.AddressingRepository) *AddressingUseCase {
	return &AddressingUseCase{repo: repo}
}

// Create crea un endereçamiento.
func (uc *AddressingUseCase) Create(in dto.AddressingRequest) (*dto.AddressingResponse, error) {
	if in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	addressing := &entity.Addressing{
		ID:         uuid.New().String(),
		Code:       in.Code,
		LocationID: in.LocationID,
	}
	if err := uc.repo.Create(addressing); err != nil {
		return nil, err
	}
	return toAddressingResponse(addressing), nil
}

// List lista todos los endereçamientos.
func (uc *AddressingUseCase) List() ([]dto.AddressingResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddressingResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAddressingResponse(a))
	}
	return out, nil
}

// Update actualiza un endereçamiento.
func (uc *AddressingUseCase) Update(id string, in dto.AddressingRequest) (*dto.AddressingResponse, error) {
	addressing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if addressing == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != "" {
		addressing.Code = in.Code
	}
	addressing.LocationID = in.LocationID
	if err := uc.repo.Update(addressing); err != nil {
		return nil, err
	}
	return toAddressingResponse(addressing), nil
}

// Delete elimina un endereçamiento.
func (uc *AddressingUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAddressingResponse(a *entity.Addressing) *dto.AddressingResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressingResponse{ID: a.ID, Code: a.Code, LocationID: a.LocationID}
}
