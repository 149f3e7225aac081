package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// Projection es el estado autoritativo de un producto derivado de su historial
// completo de movimientos. Es una función pura de sus entradas: sin estado oculto,
// recalculable en cualquier momento, por eso es seguro preferirla siempre sobre
// cualquier caché.
type Projection struct {
	ProductID       string
	CurrentStock    decimal.Decimal
	TotalEntries    decimal.Decimal
	TotalExits      decimal.Decimal
	WeightedAvgCost decimal.Decimal
	TotalStockValue decimal.Decimal
	// Pieces: etiqueta de medida → conteo con signo. Incluye etiquetas agotadas
	// (conteo <= 0) para auditoría; ver AvailablePieces.
	Pieces map[string]int64
	// NegativeStock marca saldo a granel negativo: advertencia de integridad de
	// datos, no un error — se muestra, nunca se recorta a cero.
	NegativeStock bool
}

// PieceBalance es el saldo de una medida concreta.
type PieceBalance struct {
	Label string
	Count int64
}

// AvailablePieces devuelve las piezas con conteo > 0, ordenadas por etiqueta.
// Las etiquetas agotadas quedan fuera de las vistas de disponibilidad.
func (p Projection) AvailablePieces() []PieceBalance {
	out := make([]PieceBalance, 0, len(p.Pieces))
	for label, count := range p.Pieces {
		if count > 0 {
			out = append(out, PieceBalance{Label: label, Count: count})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Project pliega el historial de movimientos de UN producto en su estado actual.
// Los movimientos deben pertenecer todos al mismo producto (ya resueltos por el
// CatalogIndex); el orden es irrelevante porque la suma es conmutativa.
//
// Granel: suma de cantidades de entrada menos suma de cantidades de salida, sobre
// los movimientos sin etiqueta de pieza. Piezas: ±1 (o ±cantidad explícita) por
// etiqueta. Costo promedio ponderado: Σ(costo total) / Σ(cantidad) sobre las
// entradas a granel con precio unitario positivo; 0 si no hay entradas que
// califiquen (nunca división por cero).
func Project(productID string, movements []*entity.Movement) Projection {
	proj := Projection{
		ProductID: productID,
		Pieces:    make(map[string]int64),
	}

	totalCost := decimal.Zero
	totalEntryQty := decimal.Zero

	for _, m := range movements {
		if m.IsPiece() {
			label := m.Label()
			count := ParsePieceCount(m.Quantity)
			switch m.Kind {
			case entity.MovementKindEntry:
				proj.Pieces[label] += count
			case entity.MovementKindExit:
				proj.Pieces[label] -= count
			}
			continue
		}

		qty := ParseQuantity(m.Quantity)
		switch m.Kind {
		case entity.MovementKindEntry:
			proj.TotalEntries = proj.TotalEntries.Add(qty)
			if m.UnitPrice.GreaterThan(decimal.Zero) {
				totalCost = totalCost.Add(movementEntryCost(m))
				totalEntryQty = totalEntryQty.Add(qty)
			}
		case entity.MovementKindExit:
			proj.TotalExits = proj.TotalExits.Add(qty)
		}
	}

	proj.CurrentStock = proj.TotalEntries.Sub(proj.TotalExits)
	proj.NegativeStock = proj.CurrentStock.LessThan(decimal.Zero)

	if totalEntryQty.GreaterThan(decimal.Zero) {
		proj.WeightedAvgCost = totalCost.Div(totalEntryQty)
	}
	proj.TotalStockValue = proj.CurrentStock.Mul(proj.WeightedAvgCost)

	return proj
}

// NeedsReconciliation indica si el saldo cacheado del producto difiere del
// proyectado más allá de la tolerancia y debe corregirse en el write-back.
func (p Projection) NeedsReconciliation(cached decimal.Decimal) bool {
	return !WithinTolerance(cached, p.CurrentStock)
}
