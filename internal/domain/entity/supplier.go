package entity

import "github.com/shopspring/decimal"

// Supplier representa un proveedor. SurchargePercent es el recargo de impuesto (ST)
// en porcentaje que se aplica exactamente una vez, al registrar la entrada.
type Supplier struct {
	ID               string
	Name             string
	SurchargePercent decimal.Decimal
}
