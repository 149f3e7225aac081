package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
// Se conservan los valores en el formato de los datos históricos.
const (
	MovementKindEntry = "entrada"
	MovementKindExit  = "saida"
)

// Movement es un registro inmutable del libro de movimientos (append-only).
// Nunca se actualiza ni se borra: un error se corrige con un movimiento compensatorio.
//
// ProductRef DEBE ser el ID de un producto. Los registros legados pueden traer el
// código visible del producto o un ID con espacios accidentales; esos casos se
// resuelven con la migración explícita de religado, jamás con fallbacks de lectura.
//
// Quantity se guarda como texto crudo porque los datos históricos usan coma o punto
// como separador decimal; la normalización es responsabilidad del proyector
// (inventory.ParseQuantity). Las escrituras nuevas persisten el formato con punto.
type Movement struct {
	ID         string
	Kind       string // entrada | saida
	ProductRef string
	Quantity   string
	PieceLabel string // "medida": no vacío = pieza/retazo con inventario propio
	OccurredAt time.Time
	CreatedAt  time.Time
	CreatedBy  string
	Note       string

	// Solo entradas: componentes de costo y datos de compra.
	UnitPrice        decimal.Decimal
	TaxICMS          decimal.Decimal
	TaxIPI           decimal.Decimal
	Freight          decimal.Decimal
	PurchaseQuantity decimal.Decimal     // cantidad pre-conversión digitada por el operador
	TotalEntryCost   decimal.NullDecimal // costo total congelado al escribir (recargo incluido)
	EntryTypeID      string
	InvoiceNumber    string // NF

	// Solo salidas.
	ExitTypeID string
	WorkID     string // obra destino
	Requester  string
}

// IsPiece indica si el movimiento afecta una pieza nombrada en vez del stock a granel.
func (m *Movement) IsPiece() bool {
	return strings.TrimSpace(m.PieceLabel) != ""
}

// Label devuelve la etiqueta de pieza normalizada (sin espacios accidentales).
func (m *Movement) Label() string {
	return strings.TrimSpace(m.PieceLabel)
}
