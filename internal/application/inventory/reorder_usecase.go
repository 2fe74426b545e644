package inventory

import (
	"context"

	"github.com/dynastyos/dynasty-ops-api/internal/application/dto"
	dominv "github.com/dynastyos/dynasty-ops-api/internal/domain/inventory"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

// ReorderUseCase calcula las sugerencias de reposición de una empresa:
// junta stock, defaults de producto y políticas por bodega y delega el
// cálculo puro al servicio de dominio.
type ReorderUseCase struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
	policyRepo  repository.ReorderPolicyRepository
}

// NewReorderUseCase construye el caso de uso.
func NewReorderUseCase(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	policyRepo repository.ReorderPolicyRepository,
) *ReorderUseCase {
	return &ReorderUseCase{stockRepo: stockRepo, productRepo: productRepo, policyRepo: policyRepo}
}

// Suggestions devuelve las sugerencias ordenadas por disponibilidad ascendente
// (las más agotadas primero). warehouseID vacío = todas las bodegas.
func (uc *ReorderUseCase) Suggestions(ctx context.Context, companyID, warehouseID string) ([]dto.ReorderSuggestionDTO, error) {
	rows, err := uc.stockRepo.ListForReorder(ctx, companyID, warehouseID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []dto.ReorderSuggestionDTO{}, nil
	}

	products, err := uc.productRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	defaults := make(map[string]dominv.ProductDefaults, len(products))
	type productInfo struct{ sku, name string }
	info := make(map[string]productInfo, len(products))
	for _, p := range products {
		defaults[p.ID] = dominv.ProductDefaults{
			ReorderPoint: p.ReorderPoint,
			ReorderQty:   p.ReorderQty,
			UnitCost:     p.Cost,
		}
		info[p.ID] = productInfo{sku: p.SKU, name: p.Name}
	}

	policies, err := uc.policyRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	suggestions := dominv.CalculateSuggestions(rows, defaults, policies)

	out := make([]dto.ReorderSuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		pi := info[s.ProductID]
		out = append(out, dto.ReorderSuggestionDTO{
			ProductID:    s.ProductID,
			SKU:          pi.sku,
			ProductName:  pi.name,
			WarehouseID:  s.WarehouseID,
			Available:    s.Available,
			ReorderPoint: s.ReorderPoint,
			SafetyStock:  s.SafetyStock,
			SuggestedQty: s.SuggestedQty,
			UnitCost:     s.UnitCost,
			PolicySource: s.PolicySource,
		})
	}
	return out, nil
}

// rawSuggestions expone las sugerencias de dominio para la generación de
// órdenes de compra (evita recomputar el join de productos en el caller).
func (uc *ReorderUseCase) rawSuggestions(ctx context.Context, companyID, warehouseID string) ([]dominv.Suggestion, error) {
	rows, err := uc.stockRepo.ListForReorder(ctx, companyID, warehouseID)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	defaults := make(map[string]dominv.ProductDefaults, len(products))
	for _, p := range products {
		defaults[p.ID] = dominv.ProductDefaults{
			ReorderPoint: p.ReorderPoint,
			ReorderQty:   p.ReorderQty,
			UnitCost:     p.Cost,
		}
	}
	policies, err := uc.policyRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return dominv.CalculateSuggestions(rows, defaults, policies), nil
}
