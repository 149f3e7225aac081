package dto

import "github.com/shopspring/decimal"

// PieceBalanceResponse saldo de una medida de pieza/retazo.
type PieceBalanceResponse struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// ProductBalanceResponse saldo proyectado de un producto, siempre recalculado
// desde el libro de movimientos. CachedBalance se incluye para diagnóstico; si
// Drift es true, el write-back de reconciliación quedó agendado.
type ProductBalanceResponse struct {
	ProductID       string                 `json:"product_id"`
	Code            string                 `json:"code"`
	Description     string                 `json:"description"`
	Unit            string                 `json:"unit"`
	Addressing      string                 `json:"addressing,omitempty"`
	CurrentStock    decimal.Decimal        `json:"current_stock"`
	TotalEntries    decimal.Decimal        `json:"total_entries"`
	TotalExits      decimal.Decimal        `json:"total_exits"`
	WeightedAvgCost decimal.Decimal        `json:"weighted_avg_cost"`
	TotalStockValue decimal.Decimal        `json:"total_stock_value"`
	CachedBalance   decimal.Decimal        `json:"cached_balance"`
	NegativeStock   bool                   `json:"negative_stock"`
	Drift           bool                   `json:"drift"`
	Pieces          []PieceBalanceResponse `json:"pieces,omitempty"`
}

// OrphanMovementResponse movimiento cuyo product_ref no resolvió a ningún
// producto del catálogo.
type OrphanMovementResponse struct {
	MovementID string `json:"movement_id"`
	ProductRef string `json:"product_ref"`
	Kind       string `json:"kind"`
	Quantity   string `json:"quantity"`
	Reason     string `json:"reason"`
}

// BalanceListResponse vista completa de saldos: un renglón por producto más los
// movimientos huérfanos que quedaron fuera de la proyección.
type BalanceListResponse struct {
	Items      []ProductBalanceResponse `json:"items"`
	Orphans    []OrphanMovementResponse `json:"orphans,omitempty"`
	TotalValue decimal.Decimal          `json:"total_value"`
}

// RelinkEntryResponse un movimiento religado (o religable) por la migración.
type RelinkEntryResponse struct {
	MovementID string `json:"movement_id"`
	OldRef     string `json:"old_ref"`
	NewRef     string `json:"new_ref"`
	Code       string `json:"code"`
}

// RelinkReportResponse resultado de la migración de religado.
type RelinkReportResponse struct {
	DryRun    bool                  `json:"dry_run"`
	Scanned   int                   `json:"scanned"`
	Relinked  []RelinkEntryResponse `json:"relinked"`
	Unmatched []OrphanMovementResponse `json:"unmatched"`
}
