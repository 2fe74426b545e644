package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/dynastyos/dynasty-ops-api/internal/application/inventory"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	dominv "github.com/dynastyos/dynasty-ops-api/internal/domain/inventory"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

// ── Fakes in-memory ───────────────────────────────────────────────────────────

type fakeStockRepo struct{ rows []dominv.StockRow }

func (f *fakeStockRepo) ListForReorder(_ context.Context, _, warehouseID string) ([]dominv.StockRow, error) {
	if warehouseID == "" {
		return f.rows, nil
	}
	out := make([]dominv.StockRow, 0)
	for _, r := range f.rows {
		if r.WarehouseID == warehouseID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeProductRepo struct{ products []*entity.Product }

func (f *fakeProductRepo) Create(_ *entity.Product) error { return nil }

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListByCompany(_ context.Context, _ string) ([]*entity.Product, error) {
	return f.products, nil
}

type fakePolicyRepo struct {
	policies map[dominv.PolicyKey]dominv.ReorderPolicy
}

func (f *fakePolicyRepo) ListByCompany(_ context.Context, _ string) (map[dominv.PolicyKey]dominv.ReorderPolicy, error) {
	if f.policies == nil {
		return map[dominv.PolicyKey]dominv.ReorderPolicy{}, nil
	}
	return f.policies, nil
}

type fakePORepo struct {
	created []*entity.PurchaseOrder
	lines   map[string][]entity.PurchaseOrderLine
}

func (f *fakePORepo) Create(_ context.Context, po *entity.PurchaseOrder, lines []entity.PurchaseOrderLine) error {
	if f.lines == nil {
		f.lines = make(map[string][]entity.PurchaseOrderLine)
	}
	f.created = append(f.created, po)
	f.lines[po.ID] = lines
	return nil
}

func (f *fakePORepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	for _, po := range f.created {
		if po.ID == id {
			return po, nil
		}
	}
	return nil, nil
}

func (f *fakePORepo) GetLines(_ context.Context, poID string) ([]entity.PurchaseOrderLine, error) {
	return f.lines[poID], nil
}

// fakeTxRunner ejecuta el callback directo contra el repo in-memory.
type fakeTxRunner struct{ poRepo *fakePORepo }

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.PurchaseOrderRepository) error) error {
	return fn(f.poRepo)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func stockRow(productID, warehouseID string, onHand int64, reorderPoint *decimal.Decimal) dominv.StockRow {
	return dominv.StockRow{
		ProductID:    productID,
		WarehouseID:  warehouseID,
		CompanyID:    "emp-1",
		OnHand:       dec(onHand),
		Reserved:     decimal.Zero,
		ReorderPoint: reorderPoint,
	}
}

func product(id, sku string, cost int64) *entity.Product {
	return &entity.Product{ID: id, CompanyID: "emp-1", SKU: sku, Name: "Producto " + sku, Cost: dec(cost)}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

// Escenario punta a punta del orden de salida: disponibles 5, 50 y 20, todos
// bajo reorden, deben volver como 5, 20, 50.
func TestSuggestions_OrdenPorDisponible(t *testing.T) {
	uc := appinv.NewReorderUseCase(
		&fakeStockRepo{rows: []dominv.StockRow{
			stockRow("p1", "bod-1", 5, decPtr(100)),
			stockRow("p2", "bod-1", 50, decPtr(100)),
			stockRow("p3", "bod-1", 20, decPtr(100)),
		}},
		&fakeProductRepo{products: []*entity.Product{
			product("p1", "SKU-1", 10), product("p2", "SKU-2", 10), product("p3", "SKU-3", 10),
		}},
		&fakePolicyRepo{},
	)

	out, err := uc.Suggestions(context.Background(), "emp-1", "")

	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"p1", "p3", "p2"}, []string{out[0].ProductID, out[1].ProductID, out[2].ProductID})
	assert.Equal(t, "SKU-1", out[0].SKU)
	assert.Equal(t, "Producto SKU-1", out[0].ProductName)
}

func TestSuggestions_SinStock(t *testing.T) {
	uc := appinv.NewReorderUseCase(&fakeStockRepo{}, &fakeProductRepo{}, &fakePolicyRepo{})

	out, err := uc.Suggestions(context.Background(), "emp-1", "")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSuggestions_FiltraPorBodega(t *testing.T) {
	uc := appinv.NewReorderUseCase(
		&fakeStockRepo{rows: []dominv.StockRow{
			stockRow("p1", "bod-1", 5, decPtr(100)),
			stockRow("p1", "bod-2", 5, decPtr(100)),
		}},
		&fakeProductRepo{products: []*entity.Product{product("p1", "SKU-1", 10)}},
		&fakePolicyRepo{},
	)

	out, err := uc.Suggestions(context.Background(), "emp-1", "bod-2")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "bod-2", out[0].WarehouseID)
}
