package inventory

import (
	"context"

	"github.com/dynastyos/dynasty-ops-api/internal/domain"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

// DocumentUseCase arma los documentos de salida de una orden de compra
// (PDF para humanos, cXML para proveedores) a partir de sus datos persistidos.
type DocumentUseCase struct {
	poRepo        repository.PurchaseOrderRepository
	productRepo   repository.ProductRepository
	companyRepo   repository.CompanyRepository
	warehouseRepo repository.WarehouseRepository
	pdfGen        PurchaseOrderPDFGenerator
	cxmlExporter  PurchaseOrderCXMLExporter
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	poRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
	warehouseRepo repository.WarehouseRepository,
	pdfGen PurchaseOrderPDFGenerator,
	cxmlExporter PurchaseOrderCXMLExporter,
) *DocumentUseCase {
	return &DocumentUseCase{
		poRepo:        poRepo,
		productRepo:   productRepo,
		companyRepo:   companyRepo,
		warehouseRepo: warehouseRepo,
		pdfGen:        pdfGen,
		cxmlExporter:  cxmlExporter,
	}
}

// PurchaseOrderPDF genera el PDF de la orden. ErrNotFound si no existe,
// ErrForbidden si pertenece a otra empresa.
func (uc *DocumentUseCase) PurchaseOrderPDF(ctx context.Context, companyID, poID string) ([]byte, error) {
	po, company, warehouse, lines, err := uc.load(ctx, companyID, poID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GeneratePurchaseOrderPDF(ctx, po, company, warehouse, lines)
}

// PurchaseOrderCXML genera el documento cXML de la orden con las mismas
// reglas de tenencia que el PDF.
func (uc *DocumentUseCase) PurchaseOrderCXML(ctx context.Context, companyID, poID string) ([]byte, error) {
	po, company, warehouse, lines, err := uc.load(ctx, companyID, poID)
	if err != nil {
		return nil, err
	}
	return uc.cxmlExporter.ExportPurchaseOrderCXML(po, company, warehouse, lines)
}

// load trae la orden con sus líneas y resuelve nombres de producto.
func (uc *DocumentUseCase) load(ctx context.Context, companyID, poID string) (
	*entity.PurchaseOrder, *entity.Company, *entity.Warehouse, []POLineForDocument, error,
) {
	po, err := uc.poRepo.GetByID(ctx, poID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if po == nil {
		return nil, nil, nil, nil, domain.ErrNotFound
	}
	if po.CompanyID != companyID {
		return nil, nil, nil, nil, domain.ErrForbidden
	}

	company, err := uc.companyRepo.GetByID(po.CompanyID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	warehouse, err := uc.warehouseRepo.GetByID(po.WarehouseID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	rawLines, err := uc.poRepo.GetLines(ctx, poID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	lines := make([]POLineForDocument, 0, len(rawLines))
	for _, l := range rawLines {
		doc := POLineForDocument{
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
			LineTotal: l.LineTotal,
		}
		if p, err := uc.productRepo.GetByID(l.ProductID); err == nil && p != nil {
			doc.SKU = p.SKU
			doc.ProductName = p.Name
		} else {
			doc.SKU = l.ProductID
			doc.ProductName = l.ProductID
		}
		lines = append(lines, doc)
	}
	return po, company, warehouse, lines, nil
}
