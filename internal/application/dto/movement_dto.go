package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterEntryRequest entrada para registrar un ingreso de mercadería.
// Los campos numéricos viajan como texto porque los formularios legados usan
// coma como separador decimal; el caso de uso los normaliza.
type RegisterEntryRequest struct {
	ProductID     string `json:"product_id" validate:"required"`
	Quantity      string `json:"quantity" validate:"required"`
	PieceLabel    string `json:"piece_label" validate:"omitempty,max=100"`
	UnitPrice     string `json:"unit_price" validate:"omitempty"`
	TaxICMS       string `json:"tax_icms" validate:"omitempty"`
	TaxIPI        string `json:"tax_ipi" validate:"omitempty"`
	Freight       string `json:"freight" validate:"omitempty"`
	EntryTypeID   string `json:"entry_type_id" validate:"omitempty,max=64"`
	InvoiceNumber string `json:"invoice_number" validate:"omitempty,max=60"`
	Note          string `json:"note" validate:"omitempty,max=500"`
}

// RegisterExitRequest entrada para registrar una salida de mercadería.
type RegisterExitRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	Quantity   string `json:"quantity" validate:"required"`
	PieceLabel string `json:"piece_label" validate:"omitempty,max=100"`
	ExitTypeID string `json:"exit_type_id" validate:"omitempty,max=64"`
	WorkID     string `json:"work_id" validate:"omitempty,max=64"`
	Requester  string `json:"requester" validate:"omitempty,max=200"`
	Note       string `json:"note" validate:"omitempty,max=500"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID               string              `json:"id"`
	Kind             string              `json:"kind"`
	ProductRef       string              `json:"product_ref"`
	Quantity         string              `json:"quantity"`
	PieceLabel       string              `json:"piece_label,omitempty"`
	OccurredAt       time.Time           `json:"occurred_at"`
	CreatedAt        time.Time           `json:"created_at"`
	CreatedBy        string              `json:"created_by,omitempty"`
	Note             string              `json:"note,omitempty"`
	UnitPrice        decimal.Decimal     `json:"unit_price,omitempty"`
	TaxICMS          decimal.Decimal     `json:"tax_icms,omitempty"`
	TaxIPI           decimal.Decimal     `json:"tax_ipi,omitempty"`
	Freight          decimal.Decimal     `json:"freight,omitempty"`
	PurchaseQuantity decimal.Decimal     `json:"purchase_quantity,omitempty"`
	TotalEntryCost   decimal.NullDecimal `json:"total_entry_cost,omitempty"`
	EntryTypeID      string              `json:"entry_type_id,omitempty"`
	InvoiceNumber    string              `json:"invoice_number,omitempty"`
	ExitTypeID       string              `json:"exit_type_id,omitempty"`
	WorkID           string              `json:"work_id,omitempty"`
	Requester        string              `json:"requester,omitempty"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
