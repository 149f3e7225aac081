package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// CachedBalance solo se muta por los métodos dedicados de saldo: las
// transacciones de entrada/salida (vía GetForUpdate + UpdateCachedBalance dentro
// de una tx) y la reconciliación del proyector (CompareAndSetCachedBalance).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (TxRunner).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateCachedBalance fija el saldo cacheado sin condición. Uso exclusivo del
	// camino transaccional de entradas/salidas, con la fila ya bloqueada.
	UpdateCachedBalance(id string, balance decimal.Decimal) error
	// CompareAndSetCachedBalance escribe newBalance solo si el valor actual sigue
	// siendo oldBalance (dentro de la tolerancia). Devuelve false si otro proceso
	// cambió el saldo entre la lectura y la escritura.
	CompareAndSetCachedBalance(id string, oldBalance, newBalance decimal.Decimal) (bool, error)
	List() ([]*entity.Product, error)
	Delete(id string) error
}
