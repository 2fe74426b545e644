package repository

import (
	"context"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para órdenes de
// compra (DIP). Create inserta cabecera y líneas; se usa dentro del TxRunner
// para que un lote de órdenes sea atómico.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder, lines []entity.PurchaseOrderLine) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	GetLines(ctx context.Context, poID string) ([]entity.PurchaseOrderLine, error)
}
