package dto

import "github.com/shopspring/decimal"

// ReorderSuggestionDTO una sugerencia de reposición para un (producto, bodega)
// por debajo de su punto de reorden. Derivada y efímera: no se persiste hasta
// convertirse en orden de compra.
type ReorderSuggestionDTO struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku"`
	ProductName  string          `json:"product_name"`
	WarehouseID  string          `json:"warehouse_id"`
	Available    decimal.Decimal `json:"available"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	SafetyStock  decimal.Decimal `json:"safety_stock"`
	SuggestedQty decimal.Decimal `json:"suggested_qty"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	PolicySource string          `json:"policy_source"` // product_defaults | policy_override | fallback
}

// GeneratePurchaseOrdersResponse salida de POST /api/inventory/purchase-orders/draft.
type GeneratePurchaseOrdersResponse struct {
	POCount int      `json:"po_count"`
	POIDs   []string `json:"po_ids"`
}
