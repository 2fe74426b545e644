package postgres

import (
	"context"
	"fmt"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/inventory"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// ListForReorder devuelve las filas (producto, bodega) de la empresa para el
// calculador de reposición. warehouseID vacío = todas las bodegas.
// COALESCE asegura cantidades no nulas; el punto de reorden del stock queda
// nil cuando la bodega no define override.
func (r *StockRepo) ListForReorder(ctx context.Context, companyID, warehouseID string) ([]inventory.StockRow, error) {
	query := `
		SELECT product_id, warehouse_id, company_id,
		       COALESCE(on_hand, 0), COALESCE(reserved, 0), COALESCE(safety_stock, 0),
		       reorder_point
		FROM stock_items
		WHERE company_id = $1 AND ($2 = '' OR warehouse_id = $2)
		ORDER BY warehouse_id, product_id`
	rows, err := r.q.Query(ctx, query, companyID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list stock for reorder: %w", err)
	}
	defer rows.Close()

	var list []inventory.StockRow
	for rows.Next() {
		var s inventory.StockRow
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.CompanyID,
			&s.OnHand, &s.Reserved, &s.SafetyStock, &s.ReorderPoint); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

var _ repository.ReorderPolicyRepository = (*ReorderPolicyRepo)(nil)

// ReorderPolicyRepo lectura de políticas de pedido por (bodega, producto).
type ReorderPolicyRepo struct {
	q Querier
}

// NewReorderPolicyRepository construye el adaptador de políticas.
func NewReorderPolicyRepository(q Querier) *ReorderPolicyRepo {
	return &ReorderPolicyRepo{q: q}
}

// ListByCompany devuelve todas las políticas de la empresa indexadas por
// (bodega, producto). Zero en max o multiple significa sin restricción.
func (r *ReorderPolicyRepo) ListByCompany(ctx context.Context, companyID string) (map[inventory.PolicyKey]inventory.ReorderPolicy, error) {
	query := `
		SELECT warehouse_id, product_id,
		       COALESCE(min_qty, 0), COALESCE(max_qty, 0), COALESCE(order_multiple, 0)
		FROM reorder_policies WHERE company_id = $1`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list reorder policies: %w", err)
	}
	defer rows.Close()

	policies := make(map[inventory.PolicyKey]inventory.ReorderPolicy)
	for rows.Next() {
		var key inventory.PolicyKey
		var pol inventory.ReorderPolicy
		if err := rows.Scan(&key.WarehouseID, &key.ProductID, &pol.MinQty, &pol.MaxQty, &pol.Multiple); err != nil {
			return nil, fmt.Errorf("scan reorder policy: %w", err)
		}
		policies[key] = pol
	}
	return policies, rows.Err()
}
