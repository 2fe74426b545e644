package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	POStatusDraft     = "draft"
	POStatusApproved  = "approved"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder representa la cabecera de una orden de compra (borrador al
// generarse desde sugerencias de reposición; una por bodega).
type PurchaseOrder struct {
	ID          string
	CompanyID   string
	WarehouseID string
	Number      string
	Status      string
	Subtotal    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PurchaseOrderLine representa una línea de una orden de compra,
// uno a uno con la sugerencia de reposición que la originó.
type PurchaseOrderLine struct {
	ID              string
	PurchaseOrderID string
	ProductID       string
	Quantity        decimal.Decimal
	UnitCost        decimal.Decimal
	LineTotal       decimal.Decimal
}
