package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del almacén.
// CachedBalance es el saldo desnormalizado para vistas rápidas: lo mutan únicamente
// las transacciones de entrada/salida y la reconciliación del proyector, nunca a mano.
// El saldo autoritativo siempre se recalcula plegando los movimientos.
type Product struct {
	ID               string
	Code             string // código interno visible (no se garantiza único)
	GlobalCode       string // código padrão/global del fabricante
	Description      string
	Unit             string // unidad de stock (ej. "m", "un", "kg")
	PurchaseUnit     string // unidad de compra (ej. "barra", "rollo")
	Color            string
	LocationID       string
	AddressingID     string
	SupplierID       string
	GroupID          string
	ConversionRuleID string // vacío = sin conversión compra→stock
	CachedBalance    decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
