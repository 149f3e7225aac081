package usecase

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// CatalogUseCase CRUD de las tablas de configuración simples (grupos, locais,
// tipos de entrada/salida, obras...). Todas comparten forma id+nombre; el kind
// llega en la ruta y se valida contra las colecciones conocidas.
type CatalogUseCase struct {
	repo repository.CatalogItemRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogItemRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Create crea un elemento en la colección kind.
func (uc *CatalogUseCase) Create(kind entity.CatalogKind, in dto.CatalogItemRequest) (*dto.CatalogItemResponse, error) {
	if !entity.ValidCatalogKind(kind) || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.CatalogItem{
		ID:   uuid.New().String(),
		Kind: kind,
		Name: in.Name,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toCatalogItemResponse(item), nil
}

// List lista los elementos de la colección kind.
func (uc *CatalogUseCase) List(kind entity.CatalogKind) ([]dto.CatalogItemResponse, error) {
	if !entity.ValidCatalogKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.ListByKind(kind)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toCatalogItemResponse(it))
	}
	return out, nil
}

// Update renombra un elemento.
func (uc *CatalogUseCase) Update(kind entity.CatalogKind, id string, in dto.CatalogItemRequest) (*dto.CatalogItemResponse, error) {
	if !entity.ValidCatalogKind(kind) || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(kind, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = in.Name
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toCatalogItemResponse(item), nil
}

// Delete elimina un elemento de la colección kind.
func (uc *CatalogUseCase) Delete(kind entity.CatalogKind, id string) error {
	if !entity.ValidCatalogKind(kind) {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(kind, id)
}

func toCatalogItemResponse(it *entity.CatalogItem) *dto.CatalogItemResponse {
	if it == nil {
		return nil
	}
	return &dto.CatalogItemResponse{ID: it.ID, Kind: string(it.Kind), Name: it.Name}
}
