// Package export genera el documento cXML OrderRequest de una orden de compra
// para proveedores que reciben pedidos por intercambio electrónico.
package export

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	appinv "github.com/dynastyos/dynasty-ops-api/internal/application/inventory"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
)

var _ appinv.PurchaseOrderCXMLExporter = (*CXMLBuilderService)(nil)

const (
	cxmlVersion  = "1.2.014"
	cxmlDoctype  = `cXML SYSTEM "http://xml.cxml.org/schemas/cXML/1.2.014/cXML.dtd"`
	currencyCode = "COP"
)

// CXMLBuilderService construye documentos cXML OrderRequest.
type CXMLBuilderService struct{}

// NewCXMLBuilderService crea el servicio.
func NewCXMLBuilderService() *CXMLBuilderService {
	return &CXMLBuilderService{}
}

// ExportPurchaseOrderCXML genera el []byte del OrderRequest según cXML 1.2.
// El payloadID combina el ID de la orden con el NIT del comprador para ser
// único entre redes.
func (s *CXMLBuilderService) ExportPurchaseOrderCXML(
	po *entity.PurchaseOrder,
	company *entity.Company,
	warehouse *entity.Warehouse,
	lines []appinv.POLineForDocument,
) ([]byte, error) {
	if po == nil || company == nil || warehouse == nil {
		return nil, fmt.Errorf("cxml: faltan orden, empresa o bodega")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective("DOCTYPE " + cxmlDoctype)

	root := doc.CreateElement("cXML")
	root.CreateAttr("version", cxmlVersion)
	root.CreateAttr("payloadID", fmt.Sprintf("%s@%s", po.ID, company.NIT))
	root.CreateAttr("timestamp", time.Now().Format(time.RFC3339))
	root.CreateAttr("xml:lang", "es-CO")

	s.writeHeader(root, company)
	s.writeOrderRequest(root, po, warehouse, lines)

	doc.Indent(2)
	return doc.WriteToBytes()
}

// writeHeader: credenciales From/To/Sender. El receptor concreto lo resuelve
// la red del proveedor; aquí va la identidad del comprador.
func (s *CXMLBuilderService) writeHeader(root *etree.Element, company *entity.Company) {
	header := root.CreateElement("Header")

	from := header.CreateElement("From")
	fromCred := from.CreateElement("Credential")
	fromCred.CreateAttr("domain", "NetworkID")
	fromCred.CreateElement("Identity").SetText(company.NIT)

	to := header.CreateElement("To")
	toCred := to.CreateElement("Credential")
	toCred.CreateAttr("domain", "NetworkID")
	toCred.CreateElement("Identity").SetText("supplier-network")

	sender := header.CreateElement("Sender")
	senderCred := sender.CreateElement("Credential")
	senderCred.CreateAttr("domain", "NetworkID")
	senderCred.CreateElement("Identity").SetText(company.NIT)
	sender.CreateElement("UserAgent").SetText("dynasty-ops-api")
}

func (s *CXMLBuilderService) writeOrderRequest(
	root *etree.Element,
	po *entity.PurchaseOrder,
	warehouse *entity.Warehouse,
	lines []appinv.POLineForDocument,
) {
	request := root.CreateElement("Request")
	request.CreateAttr("deploymentMode", "production")

	orderReq := request.CreateElement("OrderRequest")

	orderHeader := orderReq.CreateElement("OrderRequestHeader")
	orderHeader.CreateAttr("orderID", po.Number)
	orderHeader.CreateAttr("orderDate", po.CreatedAt.Format(time.RFC3339))
	orderHeader.CreateAttr("type", "new")

	total := orderHeader.CreateElement("Total")
	totalMoney := total.CreateElement("Money")
	totalMoney.CreateAttr("currency", currencyCode)
	totalMoney.SetText(po.Subtotal.StringFixed(2))

	shipTo := orderHeader.CreateElement("ShipTo")
	address := shipTo.CreateElement("Address")
	address.CreateAttr("addressID", po.WarehouseID)
	name := address.CreateElement("Name")
	name.CreateAttr("xml:lang", "es")
	name.SetText(warehouse.Name)
	postal := address.CreateElement("PostalAddress")
	postal.CreateElement("Street").SetText(warehouse.Address)
	postal.CreateElement("Country").CreateAttr("isoCountryCode", "CO")

	for i, l := range lines {
		item := orderReq.CreateElement("ItemOut")
		item.CreateAttr("lineNumber", fmt.Sprintf("%d", i+1))
		item.CreateAttr("quantity", l.Quantity.String())

		itemID := item.CreateElement("ItemID")
		itemID.CreateElement("SupplierPartID").SetText(l.SKU)

		detail := item.CreateElement("ItemDetail")
		unitPrice := detail.CreateElement("UnitPrice")
		money := unitPrice.CreateElement("Money")
		money.CreateAttr("currency", currencyCode)
		money.SetText(l.UnitCost.StringFixed(2))
		desc := detail.CreateElement("Description")
		desc.CreateAttr("xml:lang", "es")
		desc.SetText(l.ProductName)
		detail.CreateElement("UnitOfMeasure").SetText("EA")
	}
}
