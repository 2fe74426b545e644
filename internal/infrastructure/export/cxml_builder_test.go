package export

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/dynastyos/dynasty-ops-api/internal/application/inventory"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
)

func buildFixture() (*entity.PurchaseOrder, *entity.Company, *entity.Warehouse, []appinv.POLineForDocument) {
	po := &entity.PurchaseOrder{
		ID:          "po-1",
		CompanyID:   "emp-1",
		WarehouseID: "bod-1",
		Number:      "OC-20250901-AB12CD34",
		Status:      entity.POStatusDraft,
		Subtotal:    decimal.NewFromInt(240),
		CreatedAt:   time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	company := &entity.Company{ID: "emp-1", Name: "Distribuidora Dynasty", NIT: "900123456-7"}
	warehouse := &entity.Warehouse{ID: "bod-1", Name: "Bodega Norte", Address: "Calle 80 # 12-34"}
	lines := []appinv.POLineForDocument{
		{SKU: "SKU-1", ProductName: "Gaseosa 1.5L", Quantity: decimal.NewFromInt(40), UnitCost: decimal.NewFromInt(3), LineTotal: decimal.NewFromInt(120)},
		{SKU: "SKU-2", ProductName: "Galletas surtidas", Quantity: decimal.NewFromInt(30), UnitCost: decimal.NewFromInt(4), LineTotal: decimal.NewFromInt(120)},
	}
	return po, company, warehouse, lines
}

func TestExportPurchaseOrderCXML(t *testing.T) {
	svc := NewCXMLBuilderService()
	po, company, warehouse, lines := buildFixture()

	out, err := svc.ExportPurchaseOrderCXML(po, company, warehouse, lines)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("cXML")
	require.NotNil(t, root)
	assert.Equal(t, "po-1@900123456-7", root.SelectAttrValue("payloadID", ""))

	header := root.FindElement("./Request/OrderRequest/OrderRequestHeader")
	require.NotNil(t, header)
	assert.Equal(t, "OC-20250901-AB12CD34", header.SelectAttrValue("orderID", ""))
	assert.Equal(t, "new", header.SelectAttrValue("type", ""))
	assert.Equal(t, "240.00", header.FindElement("./Total/Money").Text())
	assert.Equal(t, "COP", header.FindElement("./Total/Money").SelectAttrValue("currency", ""))
	assert.Equal(t, "Bodega Norte", header.FindElement("./ShipTo/Address/Name").Text())

	items := root.FindElements("./Request/OrderRequest/ItemOut")
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].SelectAttrValue("lineNumber", ""))
	assert.Equal(t, "40", items[0].SelectAttrValue("quantity", ""))
	assert.Equal(t, "SKU-1", items[0].FindElement("./ItemID/SupplierPartID").Text())
	assert.Equal(t, "3.00", items[0].FindElement("./ItemDetail/UnitPrice/Money").Text())
	assert.Equal(t, "Galletas surtidas", items[1].FindElement("./ItemDetail/Description").Text())
}

func TestExportPurchaseOrderCXML_EntradaIncompleta(t *testing.T) {
	svc := NewCXMLBuilderService()
	po, company, _, lines := buildFixture()

	_, err := svc.ExportPurchaseOrderCXML(po, company, nil, lines)

	require.Error(t, err)
}
