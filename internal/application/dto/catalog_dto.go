package dto

import "github.com/shopspring/decimal"

// CatalogItemRequest entrada para crear/actualizar un elemento de configuración
// simple (grupos, locais, tipos de entrada/salida, obras...).
type CatalogItemRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// CatalogItemResponse salida de un elemento de configuración.
type CatalogItemResponse struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// SupplierRequest entrada para crear/actualizar un proveedor.
// SurchargePercent viaja como texto por el separador decimal legado.
type SupplierRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=200"`
	SurchargePercent string `json:"surcharge_percent" validate:"omitempty"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	SurchargePercent decimal.Decimal `json:"surcharge_percent"`
}

// ConversionRuleRequest entrada para crear/actualizar una regla de conversión
// compra→stock. Factores como texto (separador decimal legado).
type ConversionRuleRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	PurchaseFactor string `json:"purchase_factor" validate:"required"`
	PurchaseUnit   string `json:"purchase_unit" validate:"required,max=20"`
	StockFactor    string `json:"stock_factor" validate:"required"`
	StockUnit      string `json:"stock_unit" validate:"required,max=20"`
}

// ConversionRuleResponse salida de una regla de conversión.
type ConversionRuleResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	PurchaseFactor decimal.Decimal `json:"purchase_factor"`
	PurchaseUnit   string          `json:"purchase_unit"`
	StockFactor    decimal.Decimal `json:"stock_factor"`
	StockUnit      string          `json:"stock_unit"`
}

// AddressingRequest entrada para crear/actualizar un endereçamiento.
type AddressingRequest struct {
	Code       string `json:"code" validate:"required,min=1,max=50"`
	LocationID string `json:"location_id" validate:"omitempty,max=64"`
}

// AddressingResponse salida de un endereçamiento.
type AddressingResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	LocationID string `json:"location_id,omitempty"`
}
