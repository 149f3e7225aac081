package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El saldo no se acepta
// aquí: nace en 0 y solo lo mueven entradas y salidas.
type CreateProductRequest struct {
	Code             string `json:"code" validate:"required,min=1,max=50"`
	GlobalCode       string `json:"global_code" validate:"omitempty,max=50"`
	Description      string `json:"description" validate:"required,min=1,max=300"`
	Unit             string `json:"unit" validate:"required,max=20"`
	PurchaseUnit     string `json:"purchase_unit" validate:"omitempty,max=20"`
	Color            string `json:"color" validate:"omitempty,max=50"`
	LocationID       string `json:"location_id" validate:"omitempty,max=64"`
	AddressingID     string `json:"addressing_id" validate:"omitempty,max=64"`
	SupplierID       string `json:"supplier_id" validate:"omitempty,max=64"`
	GroupID          string `json:"group_id" validate:"omitempty,max=64"`
	ConversionRuleID string `json:"conversion_rule_id" validate:"omitempty,max=64"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// No permite tocar el saldo cacheado.
type UpdateProductRequest struct {
	Code             *string `json:"code" validate:"omitempty,min=1,max=50"`
	GlobalCode       *string `json:"global_code" validate:"omitempty,max=50"`
	Description      *string `json:"description" validate:"omitempty,min=1,max=300"`
	Unit             *string `json:"unit" validate:"omitempty,max=20"`
	PurchaseUnit     *string `json:"purchase_unit" validate:"omitempty,max=20"`
	Color            *string `json:"color" validate:"omitempty,max=50"`
	LocationID       *string `json:"location_id" validate:"omitempty,max=64"`
	AddressingID     *string `json:"addressing_id" validate:"omitempty,max=64"`
	SupplierID       *string `json:"supplier_id" validate:"omitempty,max=64"`
	GroupID          *string `json:"group_id" validate:"omitempty,max=64"`
	ConversionRuleID *string `json:"conversion_rule_id" validate:"omitempty,max=64"`
}

// ProductResponse salida de un producto. CachedBalance es el saldo
// desnormalizado; las vistas de consulta devuelven además el proyectado.
type ProductResponse struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	GlobalCode       string          `json:"global_code,omitempty"`
	Description      string          `json:"description"`
	Unit             string          `json:"unit"`
	PurchaseUnit     string          `json:"purchase_unit,omitempty"`
	Color            string          `json:"color,omitempty"`
	LocationID       string          `json:"location_id,omitempty"`
	AddressingID     string          `json:"addressing_id,omitempty"`
	SupplierID       string          `json:"supplier_id,omitempty"`
	GroupID          string          `json:"group_id,omitempty"`
	ConversionRuleID string          `json:"conversion_rule_id,omitempty"`
	CachedBalance    decimal.Decimal `json:"cached_balance"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
