package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// CatalogItemRepository puerto para las tablas de configuración simples
// (grupos, locais, tipos de entrada/salida, obras, etc.), parametrizado por kind.
type CatalogItemRepository interface {
	Create(item *entity.CatalogItem) error
	GetByID(kind entity.CatalogKind, id string) (*entity.CatalogItem, error)
	ListByKind(kind entity.CatalogKind) ([]*entity.CatalogItem, error)
	Update(item *entity.CatalogItem) error
	Delete(kind entity.CatalogKind, id string) error
}
