package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// AddressingRepository puerto de persistencia para endereçamientos.
type AddressingRepository interface {
	Create(addressing *entity.Addressing) error
	GetByID(id string) (*entity.Addressing, error)
	List() ([]*entity.Addressing, error)
	Update(addressing *entity.Addressing) error
	Delete(id string) error
}
