package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dynastyos/dynasty-ops-api/internal/application/dto"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	dominv "github.com/dynastyos/dynasty-ops-api/internal/domain/inventory"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

// PurchaseOrderUseCase convierte las sugerencias de reposición vigentes en
// órdenes de compra borrador: una por (empresa, bodega), con líneas uno a uno
// con las sugerencias y subtotal calculado. El lote completo se persiste en
// una transacción.
type PurchaseOrderUseCase struct {
	reorder  *ReorderUseCase
	txRunner TxRunner
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(reorder *ReorderUseCase, txRunner TxRunner) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{reorder: reorder, txRunner: txRunner}
}

// GenerateDrafts recalcula las sugerencias y genera los borradores.
// Sin sugerencias vigentes devuelve POCount 0 sin error (no hay nada que hacer).
func (uc *PurchaseOrderUseCase) GenerateDrafts(ctx context.Context, companyID, warehouseID string) (*dto.GeneratePurchaseOrdersResponse, error) {
	suggestions, err := uc.reorder.rawSuggestions(ctx, companyID, warehouseID)
	if err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		return &dto.GeneratePurchaseOrdersResponse{POCount: 0, POIDs: []string{}}, nil
	}

	// Agrupar por bodega conservando el orden de primera aparición
	// (las sugerencias ya vienen ordenadas por disponibilidad ascendente).
	groups := make(map[string][]dominv.Suggestion)
	order := make([]string, 0)
	for _, s := range suggestions {
		if _, ok := groups[s.WarehouseID]; !ok {
			order = append(order, s.WarehouseID)
		}
		groups[s.WarehouseID] = append(groups[s.WarehouseID], s)
	}

	now := time.Now()
	pos := make([]*entity.PurchaseOrder, 0, len(order))
	lines := make(map[string][]entity.PurchaseOrderLine, len(order))

	for _, wh := range order {
		po := &entity.PurchaseOrder{
			ID:          uuid.New().String(),
			CompanyID:   companyID,
			WarehouseID: wh,
			Number:      draftNumber(now),
			Status:      entity.POStatusDraft,
			Subtotal:    decimal.Zero,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		for _, s := range groups[wh] {
			lineTotal := s.SuggestedQty.Mul(s.UnitCost)
			lines[po.ID] = append(lines[po.ID], entity.PurchaseOrderLine{
				ID:              uuid.New().String(),
				PurchaseOrderID: po.ID,
				ProductID:       s.ProductID,
				Quantity:        s.SuggestedQty,
				UnitCost:        s.UnitCost,
				LineTotal:       lineTotal,
			})
			po.Subtotal = po.Subtotal.Add(lineTotal)
		}
		pos = append(pos, po)
	}

	err = uc.txRunner.Run(ctx, func(poRepo repository.PurchaseOrderRepository) error {
		for _, po := range pos {
			if err := poRepo.Create(ctx, po, lines[po.ID]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generar órdenes de compra: %w", err)
	}

	ids := make([]string, 0, len(pos))
	for _, po := range pos {
		ids = append(ids, po.ID)
	}
	return &dto.GeneratePurchaseOrdersResponse{POCount: len(pos), POIDs: ids}, nil
}

// draftNumber consecutivo legible para el borrador; la numeración definitiva
// se asigna al aprobar.
func draftNumber(t time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("OC-%s-%s", t.Format("20060102"), suffix)
}
