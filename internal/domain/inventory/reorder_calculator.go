// Package inventory contiene los servicios de dominio del motor de inventario.
package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Fuentes de la política que resolvió el punto de reorden de una sugerencia.
const (
	SourcePolicyOverride  = "policy_override"  // override en el registro de stock
	SourceProductDefaults = "product_defaults" // default del producto
	SourceFallback        = "fallback"         // safety stock usado como punto de reorden
)

// StockRow es la fila tipada (producto, bodega) que evalúa el calculador.
// Se valida en la frontera del repositorio; aquí se asume completa.
type StockRow struct {
	ProductID    string
	WarehouseID  string
	CompanyID    string
	OnHand       decimal.Decimal
	Reserved     decimal.Decimal
	SafetyStock  decimal.Decimal
	ReorderPoint *decimal.Decimal // override por bodega; nil = usar default del producto
}

// ProductDefaults agrupa los defaults de reposición definidos a nivel producto.
type ProductDefaults struct {
	ReorderPoint *decimal.Decimal // nil = el producto no define punto de reorden
	ReorderQty   decimal.Decimal  // cantidad mínima sugerida por defecto
	UnitCost     decimal.Decimal
}

// ReorderPolicy restricciones de pedido específicas de (bodega, producto).
type ReorderPolicy struct {
	MinQty   decimal.Decimal
	MaxQty   decimal.Decimal // Zero = sin tope
	Multiple decimal.Decimal // Zero = sin redondeo por múltiplo
}

// PolicyKey identifica la política por bodega y producto.
type PolicyKey struct {
	WarehouseID string
	ProductID   string
}

// Suggestion es una sugerencia de reposición derivada y efímera: no se
// persiste hasta convertirse explícitamente en orden de compra.
type Suggestion struct {
	ProductID    string
	WarehouseID  string
	CompanyID    string
	Available    decimal.Decimal
	ReorderPoint decimal.Decimal
	SafetyStock  decimal.Decimal
	SuggestedQty decimal.Decimal
	UnitCost     decimal.Decimal
	PolicySource string // policy_override | product_defaults | fallback
}

// CalculateSuggestions evalúa cada fila de stock contra su política de
// reposición y devuelve las sugerencias, ordenadas de menor a mayor
// disponibilidad (las más agotadas primero).
//
// Reglas por fila:
//   - available = onHand - reserved
//   - punto de reorden: override del stock → default del producto → safety
//     stock como fallback; sin ninguno, la fila se omite
//   - se omite si available > reorderPoint
//   - suggested = max(defaultQty del producto, (reorderPoint + safetyStock) - available)
//   - con política (bodega, producto): clamp a [min, max] y redondeo hacia
//     arriba al múltiplo configurado
//   - se omite si la cantidad final queda en cero o negativa
func CalculateSuggestions(
	rows []StockRow,
	products map[string]ProductDefaults,
	policies map[PolicyKey]ReorderPolicy,
) []Suggestion {
	suggestions := make([]Suggestion, 0, len(rows))

	for _, row := range rows {
		prod, hasProduct := products[row.ProductID]

		reorderPoint, source, ok := resolveReorderPoint(row, prod, hasProduct)
		if !ok {
			continue
		}

		available := row.OnHand.Sub(row.Reserved)
		if available.GreaterThan(reorderPoint) {
			continue
		}

		targetStock := reorderPoint.Add(row.SafetyStock)
		suggested := targetStock.Sub(available)
		if hasProduct && prod.ReorderQty.GreaterThan(suggested) {
			suggested = prod.ReorderQty
		}
		if suggested.LessThan(decimal.Zero) {
			suggested = decimal.Zero
		}

		if policy, okPol := policies[PolicyKey{WarehouseID: row.WarehouseID, ProductID: row.ProductID}]; okPol {
			suggested = applyPolicy(suggested, policy)
		}

		if suggested.LessThanOrEqual(decimal.Zero) {
			continue
		}

		var unitCost decimal.Decimal
		if hasProduct {
			unitCost = prod.UnitCost
		}

		suggestions = append(suggestions, Suggestion{
			ProductID:    row.ProductID,
			WarehouseID:  row.WarehouseID,
			CompanyID:    row.CompanyID,
			Available:    available,
			ReorderPoint: reorderPoint,
			SafetyStock:  row.SafetyStock,
			SuggestedQty: suggested,
			UnitCost:     unitCost,
			PolicySource: source,
		})
	}

	// Las más agotadas primero; estable para conservar el orden de entrada en empates.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Available.LessThan(suggestions[j].Available)
	})

	return suggestions
}

// resolveReorderPoint aplica la cadena de resolución documentada:
// override del stock → default del producto → safety stock (fallback).
func resolveReorderPoint(row StockRow, prod ProductDefaults, hasProduct bool) (decimal.Decimal, string, bool) {
	if row.ReorderPoint != nil {
		return *row.ReorderPoint, SourcePolicyOverride, true
	}
	if hasProduct && prod.ReorderPoint != nil {
		return *prod.ReorderPoint, SourceProductDefaults, true
	}
	if row.SafetyStock.GreaterThan(decimal.Zero) {
		return row.SafetyStock, SourceFallback, true
	}
	return decimal.Zero, "", false
}

// applyPolicy aplica clamp [min, max] y redondeo hacia arriba al múltiplo.
func applyPolicy(qty decimal.Decimal, policy ReorderPolicy) decimal.Decimal {
	if policy.MinQty.GreaterThan(decimal.Zero) && qty.LessThan(policy.MinQty) {
		qty = policy.MinQty
	}
	if policy.MaxQty.GreaterThan(decimal.Zero) && qty.GreaterThan(policy.MaxQty) {
		qty = policy.MaxQty
	}
	if policy.Multiple.GreaterThan(decimal.Zero) {
		// Ceil(qty / multiple) * multiple. Se redondea después del clamp:
		// el múltiplo puede superar el tope y eso es intencional (lotes cerrados).
		qty = qty.Div(policy.Multiple).Ceil().Mul(policy.Multiple)
	}
	return qty
}
