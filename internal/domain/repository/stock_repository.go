package repository

import (
	"context"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/inventory"
)

// StockRepository define el puerto de lectura de stock para el calculador de
// reposición (DIP). Devuelve filas tipadas ya validadas en la frontera.
type StockRepository interface {
	// ListForReorder devuelve las filas (producto, bodega) de la empresa.
	// warehouseID vacío = todas las bodegas.
	ListForReorder(ctx context.Context, companyID, warehouseID string) ([]inventory.StockRow, error)
}

// ReorderPolicyRepository define el puerto de lectura de políticas de pedido
// por (bodega, producto).
type ReorderPolicyRepository interface {
	ListByCompany(ctx context.Context, companyID string) (map[inventory.PolicyKey]inventory.ReorderPolicy, error)
}
