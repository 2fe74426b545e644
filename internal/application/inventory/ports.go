package inventory

import (
	"context"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el
// repositorio de órdenes de compra atado a esa tx. Garantiza que un lote de
// órdenes generado desde sugerencias se persista completo o no se persista.
type TxRunner interface {
	Run(ctx context.Context, fn func(poRepo repository.PurchaseOrderRepository) error) error
}
