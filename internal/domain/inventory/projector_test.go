package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func entry(qty string) *entity.Movement {
	return &entity.Movement{Kind: entity.MovementKindEntry, ProductRef: "p1", Quantity: qty}
}

func exit(qty string) *entity.Movement {
	return &entity.Movement{Kind: entity.MovementKindExit, ProductRef: "p1", Quantity: qty}
}

func costedEntry(t *testing.T, qty, price, icms, ipi, freight string) *entity.Movement {
	t.Helper()
	m := entry(qty)
	m.UnitPrice = dec(t, price)
	m.TaxICMS = dec(t, icms)
	m.TaxIPI = dec(t, ipi)
	m.Freight = dec(t, freight)
	return m
}

// Historial vacío: todo en cero y sin piezas.
func TestProject_HistorialVacio(t *testing.T) {
	p := Project("p1", nil)

	assert.True(t, p.CurrentStock.IsZero(), "stock debe ser 0")
	assert.True(t, p.WeightedAvgCost.IsZero(), "costo promedio debe ser 0")
	assert.True(t, p.TotalStockValue.IsZero(), "valor total debe ser 0")
	assert.Empty(t, p.Pieces)
	assert.False(t, p.NegativeStock)
}

// Escenario de referencia: entrada 100 @ 2.00 + icms 10 + ipi 5 + flete 5, salida 40.
// Costo total de entrada = 100*2 + 10 + 5 + 5 = 220 → promedio 2.20, valor 132.00.
func TestProject_EscenarioCostoPromedio(t *testing.T) {
	movs := []*entity.Movement{
		costedEntry(t, "100", "2.00", "10", "5", "5"),
		exit("40"),
	}
	p := Project("p1", movs)

	assert.True(t, p.CurrentStock.Equal(dec(t, "60")), "stock: %s", p.CurrentStock)
	assert.True(t, p.WeightedAvgCost.Equal(dec(t, "2.2")), "promedio: %s", p.WeightedAvgCost)
	assert.True(t, p.TotalStockValue.Equal(dec(t, "132")), "valor: %s", p.TotalStockValue)
}

// El pliegue es una suma conmutativa: reordenar movimientos no cambia el saldo.
func TestProject_IndependienteDelOrden(t *testing.T) {
	a := []*entity.Movement{entry("10"), exit("4"), entry("2,5"), exit("0.5")}
	b := []*entity.Movement{exit("0.5"), entry("2,5"), exit("4"), entry("10")}

	pa := Project("p1", a)
	pb := Project("p1", b)

	assert.True(t, pa.CurrentStock.Equal(pb.CurrentStock))
	assert.True(t, pa.CurrentStock.Equal(dec(t, "8")))
}

// Entrada de Q seguida de salida de Q vuelve al saldo anterior (tolerancia 1e-4).
func TestProject_IdaYVuelta(t *testing.T) {
	base := Project("p1", []*entity.Movement{entry("3.75")})
	after := Project("p1", []*entity.Movement{entry("3.75"), entry("12,25"), exit("12.25")})

	assert.True(t, WithinTolerance(base.CurrentStock, after.CurrentStock),
		"esperado %s, obtenido %s", base.CurrentStock, after.CurrentStock)
}

// Separador decimal con coma y con punto deben producir la misma cantidad.
func TestProject_ComaYPuntoEquivalen(t *testing.T) {
	pComa := Project("p1", []*entity.Movement{entry("10,5")})
	pPunto := Project("p1", []*entity.Movement{entry("10.5")})

	assert.True(t, pComa.CurrentStock.Equal(pPunto.CurrentStock))
	assert.True(t, pComa.CurrentStock.Equal(dec(t, "10.5")))
}

// Un registro corrupto vale 0 y no interrumpe la proyección de los demás.
func TestProject_CantidadCorruptaValeCero(t *testing.T) {
	movs := []*entity.Movement{entry("10"), entry("n/a"), exit("abc"), exit("3")}
	p := Project("p1", movs)

	assert.True(t, p.CurrentStock.Equal(dec(t, "7")))
}

// Saldo negativo se reporta como advertencia, nunca se recorta.
func TestProject_SaldoNegativoSeSurface(t *testing.T) {
	p := Project("p1", []*entity.Movement{entry("5"), exit("8")})

	assert.True(t, p.CurrentStock.Equal(dec(t, "-3")))
	assert.True(t, p.NegativeStock)
}

// Pieza sin cantidad explícita cuenta 1; entrada+salida con la misma medida
// vuelve a 0 y la etiqueta sale de las piezas disponibles (pero queda en el mapa).
func TestProject_PiezaIdaYVuelta(t *testing.T) {
	in := entry("")
	in.PieceLabel = "1500mm"
	out := exit("")
	out.PieceLabel = "1500mm"

	p := Project("p1", []*entity.Movement{in, out})

	assert.Equal(t, int64(0), p.Pieces["1500mm"], "el mapa crudo conserva la etiqueta")
	assert.Empty(t, p.AvailablePieces(), "etiqueta agotada no debe estar disponible")
	assert.True(t, p.CurrentStock.IsZero(), "las piezas no tocan el stock a granel")
}

// Piezas con cantidad explícita suman/restan esa cantidad.
func TestProject_PiezasConCantidad(t *testing.T) {
	in := entry("3")
	in.PieceLabel = "2000mm"
	out := exit("1")
	out.PieceLabel = " 2000mm " // etiqueta con espacios accidentales se normaliza

	p := Project("p1", []*entity.Movement{in, out})

	assert.Equal(t, int64(2), p.Pieces["2000mm"])
	avail := p.AvailablePieces()
	require.Len(t, avail, 1)
	assert.Equal(t, PieceBalance{Label: "2000mm", Count: 2}, avail[0])
}

// Entradas sin precio unitario positivo no califican para el costo promedio.
func TestProject_EntradasSinPrecioNoCalifican(t *testing.T) {
	movs := []*entity.Movement{
		entry("50"), // sin precio
		costedEntry(t, "10", "3.00", "0", "0", "0"),
	}
	p := Project("p1", movs)

	assert.True(t, p.CurrentStock.Equal(dec(t, "60")))
	assert.True(t, p.WeightedAvgCost.Equal(dec(t, "3")), "promedio: %s", p.WeightedAvgCost)
}

// El costo congelado al escribir (TotalEntryCost) tiene prioridad sobre derivarlo.
func TestProject_CostoCongeladoTienePrioridad(t *testing.T) {
	m := costedEntry(t, "10", "2.00", "99", "99", "99")
	m.TotalEntryCost = decimal.NewNullDecimal(dec(t, "25"))

	p := Project("p1", []*entity.Movement{m})

	assert.True(t, p.WeightedAvgCost.Equal(dec(t, "2.5")), "promedio: %s", p.WeightedAvgCost)
}

// Para entradas con conversión, el costo usa la cantidad de compra pre-conversión
// pero el denominador usa la cantidad en unidad de stock.
func TestProject_EntradaConvertida(t *testing.T) {
	m := costedEntry(t, "12", "30.00", "0", "0", "0") // 2 barras → 12 m
	m.PurchaseQuantity = dec(t, "2")

	p := Project("p1", []*entity.Movement{m})

	assert.True(t, p.CurrentStock.Equal(dec(t, "12")))
	assert.True(t, p.WeightedAvgCost.Equal(dec(t, "5")), "2*30 / 12 m = 5/m, obtuvo %s", p.WeightedAvgCost)
}
