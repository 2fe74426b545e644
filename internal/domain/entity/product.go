package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// ReorderPoint y ReorderQty son los defaults del producto; un StockItem
// puede traer overrides por bodega.
type Product struct {
	ID           string
	CompanyID    string
	SKU          string // código único por empresa
	Name         string
	Description  string
	Price        decimal.Decimal  // precio de venta
	Cost         decimal.Decimal  // costo unitario promedio
	ReorderPoint *decimal.Decimal // nil = el producto no define punto de reorden
	ReorderQty   decimal.Decimal  // cantidad mínima de pedido por defecto
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
