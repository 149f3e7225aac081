package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BalanceTolerance es la tolerancia absoluta al comparar el saldo cacheado con el
// proyectado: absorbe ruido de punto flotante acumulado por los datos históricos.
var BalanceTolerance = decimal.New(1, -4) // 0.0001

// ParseQuantity normaliza y parsea una cantidad serializada con coma o punto como
// separador decimal ("10,5" y "10.5" producen 10.5). Un valor no parseable vale 0:
// un registro legado corrupto nunca debe tumbar la proyección completa.
func ParseQuantity(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParsePieceCount interpreta la cantidad de un movimiento de pieza: vacío cuenta
// como 1 unidad; con cantidad explícita se usa su parte entera.
func ParsePieceCount(s string) int64 {
	if strings.TrimSpace(s) == "" {
		return 1
	}
	return ParseQuantity(s).IntPart()
}

// WithinTolerance indica si a y b difieren menos que la tolerancia de saldo.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(BalanceTolerance)
}
