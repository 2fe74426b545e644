package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dynastyos/dynasty-ops-api/internal/application/dto"
	appinv "github.com/dynastyos/dynasty-ops-api/internal/application/inventory"
	"github.com/dynastyos/dynasty-ops-api/internal/metrics"
)

// InventoryHandler maneja sugerencias de reposición y generación de borradores.
type InventoryHandler struct {
	reorderUC *appinv.ReorderUseCase
	poUC      *appinv.PurchaseOrderUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(reorderUC *appinv.ReorderUseCase, poUC *appinv.PurchaseOrderUseCase) *InventoryHandler {
	return &InventoryHandler{reorderUC: reorderUC, poUC: poUC}
}

// Suggestions godoc
// @Summary      Sugerencias de reposición
// @Description  Evalúa el stock de la empresa contra puntos de reorden y
//               políticas por bodega. Las más agotadas van primero. Resultado
//               derivado: no se persiste.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "filtrar por bodega"
// @Success      200   {array}  dto.ReorderSuggestionDTO
// @Router       /api/inventory/reorder-suggestions [get]
func (h *InventoryHandler) Suggestions(c *fiber.Ctx) error {
	out, err := h.reorderUC.Suggestions(c.Context(), GetCompanyID(c), c.Query("warehouse_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GenerateDrafts godoc
// @Summary      Generar órdenes de compra borrador
// @Description  Convierte las sugerencias vigentes en borradores: una orden
//               por bodega, líneas uno a uno con las sugerencias, subtotal
//               calculado. El lote se persiste atómicamente. Sin sugerencias
//               responde po_count 0.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "filtrar por bodega"
// @Success      201   {object}  dto.GeneratePurchaseOrdersResponse
// @Router       /api/inventory/purchase-orders/draft [post]
func (h *InventoryHandler) GenerateDrafts(c *fiber.Ctx) error {
	out, err := h.poUC.GenerateDrafts(c.Context(), GetCompanyID(c), c.Query("warehouse_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.PurchaseOrdersGenerated.Add(float64(out.POCount))
	return c.Status(fiber.StatusCreated).JSON(out)
}
