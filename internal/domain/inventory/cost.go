package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// EntryTotalCost calcula el costo total de una entrada al momento de ESCRIBIRLA:
// cantidad de compra * precio unitario + ICMS + IPI + flete, más el recargo de
// impuesto (ST) del proveedor aplicado exactamente una vez. El resultado se congela
// en Movement.TotalEntryCost; cambios futuros en la tasa del proveedor no alteran
// el costo histórico.
func EntryTotalCost(purchaseQty, unitPrice, icms, ipi, freight, surchargePercent decimal.Decimal) decimal.Decimal {
	total := purchaseQty.Mul(unitPrice).Add(icms).Add(ipi).Add(freight)
	if surchargePercent.GreaterThan(decimal.Zero) {
		total = total.Mul(decimal.NewFromInt(1).Add(surchargePercent.Div(hundred)))
	}
	return total
}

// movementEntryCost devuelve el costo total de un movimiento de entrada para el
// cálculo de costo promedio. Prefiere el costo congelado al escribir; para
// registros legados sin ese campo lo deriva de los componentes, SIN recargo
// (el recargo es un asunto de escritura, nunca de lectura).
func movementEntryCost(m *entity.Movement) decimal.Decimal {
	if m.TotalEntryCost.Valid {
		return m.TotalEntryCost.Decimal
	}
	qty := m.PurchaseQuantity
	if qty.IsZero() {
		qty = ParseQuantity(m.Quantity)
	}
	return qty.Mul(m.UnitPrice).Add(m.TaxICMS).Add(m.TaxIPI).Add(m.Freight)
}
