package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dynastyos/dynasty-ops-api/internal/application/dto"
	appinv "github.com/dynastyos/dynasty-ops-api/internal/application/inventory"
	"github.com/dynastyos/dynasty-ops-api/internal/domain"
)

// PurchaseOrderHandler sirve los documentos de salida de una orden de compra.
type PurchaseOrderHandler struct {
	docUC *appinv.DocumentUseCase
}

// NewPurchaseOrderHandler construye el handler de documentos de órdenes.
func NewPurchaseOrderHandler(docUC *appinv.DocumentUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{docUC: docUC}
}

// PDF godoc
// @Summary      PDF de una orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "purchase order id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/pdf [get]
func (h *PurchaseOrderHandler) PDF(c *fiber.Ctx) error {
	poID := c.Params("id")
	data, err := h.docUC.PurchaseOrderPDF(c.Context(), GetCompanyID(c), poID)
	if err != nil {
		return poDocumentError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="orden-%s.pdf"`, poID))
	return c.Send(data)
}

// CXML godoc
// @Summary      cXML OrderRequest de una orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      application/xml
// @Param        id  path  string  true  "purchase order id"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/cxml [get]
func (h *PurchaseOrderHandler) CXML(c *fiber.Ctx) error {
	poID := c.Params("id")
	data, err := h.docUC.PurchaseOrderCXML(c.Context(), GetCompanyID(c), poID)
	if err != nil {
		return poDocumentError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Send(data)
}

func poDocumentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la orden de compra no existe"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la orden pertenece a otra empresa"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
