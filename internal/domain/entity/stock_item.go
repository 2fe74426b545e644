package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa el inventario de un producto en una bodega.
// Available (OnHand - Reserved) se deriva en el cálculo, no se persiste.
type StockItem struct {
	ProductID    string
	WarehouseID  string
	CompanyID    string
	OnHand       decimal.Decimal
	Reserved     decimal.Decimal
	SafetyStock  decimal.Decimal
	ReorderPoint *decimal.Decimal // override por bodega; nil = usar el default del producto
	UpdatedAt    time.Time
}
