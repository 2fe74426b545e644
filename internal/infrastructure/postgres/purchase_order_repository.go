package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dynastyos/dynasty-ops-api/internal/domain"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre
// PostgreSQL (usable con pool o tx; el TxRunner lo ata a una transacción).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create inserta la cabecera y sus líneas. Sin tx propia: el caller decide el
// alcance transaccional (un lote de borradores comparte una sola tx).
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder, lines []entity.PurchaseOrderLine) error {
	headerQ := `
		INSERT INTO purchase_orders (id, company_id, warehouse_id, number, status, subtotal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, headerQ,
		po.ID, po.CompanyID, po.WarehouseID, po.Number, po.Status, po.Subtotal,
		po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}

	lineQ := `
		INSERT INTO purchase_order_lines (id, purchase_order_id, product_id, quantity, unit_cost, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, l := range lines {
		if _, err := r.q.Exec(ctx, lineQ,
			l.ID, l.PurchaseOrderID, l.ProductID, l.Quantity, l.UnitCost, l.LineTotal); err != nil {
			return fmt.Errorf("insert purchase order line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de una orden de compra.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, company_id, warehouse_id, number, status, subtotal, created_at, updated_at
		FROM purchase_orders WHERE id = $1`
	var po entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&po.ID, &po.CompanyID, &po.WarehouseID, &po.Number, &po.Status, &po.Subtotal,
		&po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &po, nil
}

// GetLines obtiene las líneas de una orden de compra.
func (r *PurchaseOrderRepo) GetLines(ctx context.Context, poID string) ([]entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, purchase_order_id, product_id, quantity, unit_cost, line_total
		FROM purchase_order_lines WHERE purchase_order_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, poID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.PurchaseOrderID, &l.ProductID, &l.Quantity, &l.UnitCost, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan purchase order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
