package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
)

// POLineForDocument línea de orden de compra enriquecida con los datos de
// producto que necesitan los documentos de salida (PDF, cXML).
type POLineForDocument struct {
	SKU         string
	ProductName string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	LineTotal   decimal.Decimal
}

// PurchaseOrderPDFGenerator puerto de generación de la representación gráfica
// de una orden de compra.
type PurchaseOrderPDFGenerator interface {
	GeneratePurchaseOrderPDF(
		ctx context.Context,
		po *entity.PurchaseOrder,
		company *entity.Company,
		warehouse *entity.Warehouse,
		lines []POLineForDocument,
	) ([]byte, error)
}

// PurchaseOrderCXMLExporter puerto de exportación cXML para proveedores que
// reciben órdenes por intercambio electrónico.
type PurchaseOrderCXMLExporter interface {
	ExportPurchaseOrderCXML(
		po *entity.PurchaseOrder,
		company *entity.Company,
		warehouse *entity.Warehouse,
		lines []POLineForDocument,
	) ([]byte, error)
}
