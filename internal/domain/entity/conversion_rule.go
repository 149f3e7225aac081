package entity

import "github.com/shopspring/decimal"

// ConversionRule traduce una cantidad en unidad de compra a la unidad de stock.
// Ejemplo: 1 barra X 6 m → PurchaseFactor=1, StockFactor=6.
// La conversión se aplica al ESCRIBIR la entrada; el proyector confía en la
// cantidad ya convertida que quedó en el movimiento.
type ConversionRule struct {
	ID             string
	Name           string
	PurchaseFactor decimal.Decimal // qtd de compra
	PurchaseUnit   string
	StockFactor    decimal.Decimal // qtd padrón en unidad de stock
	StockUnit      string
}

// Convert devuelve la cantidad en unidad de stock: qty / PurchaseFactor * StockFactor.
// Si la regla no es aplicable (factor de compra <= 0) devuelve la cantidad sin cambios.
func (r ConversionRule) Convert(qty decimal.Decimal) decimal.Decimal {
	if r.PurchaseFactor.LessThanOrEqual(decimal.Zero) {
		return qty
	}
	return qty.Div(r.PurchaseFactor).Mul(r.StockFactor)
}
