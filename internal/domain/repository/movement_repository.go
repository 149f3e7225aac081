package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// MovementRepository puerto del libro de movimientos: durable, inmutable,
// append-only. No expone Update ni Delete — un movimiento equivocado se corrige
// con un movimiento compensatorio, nunca mutando la historia.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List() ([]*entity.Movement, error)
	ListByProduct(productRef string) ([]*entity.Movement, error)
}

// MovementRelinkRepository es la excepción única y auditada a la inmutabilidad:
// la migración de religado (una sola vez, logueada movimiento por movimiento)
// reescribe product_ref de registros legados que guardaron el código visible en
// lugar del ID. Ningún otro código debe depender de este puerto.
type MovementRelinkRepository interface {
	UpdateProductRef(movementID, newProductRef string) error
}
