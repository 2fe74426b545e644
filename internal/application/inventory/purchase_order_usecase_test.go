package inventory_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/dynastyos/dynasty-ops-api/internal/application/inventory"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	dominv "github.com/dynastyos/dynasty-ops-api/internal/domain/inventory"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

// failingPORepo falla al crear la segunda orden, para probar atomicidad.
type failingPORepo struct {
	fakePORepo
	failAfter int
}

func (f *failingPORepo) Create(ctx context.Context, po *entity.PurchaseOrder, lines []entity.PurchaseOrderLine) error {
	if len(f.created) >= f.failAfter {
		return errors.New("conexión perdida")
	}
	return f.fakePORepo.Create(ctx, po, lines)
}

// rollbackTxRunner simula el rollback: si el callback falla, descarta lo escrito.
type rollbackTxRunner struct{ poRepo *failingPORepo }

func (r *rollbackTxRunner) Run(_ context.Context, fn func(repository.PurchaseOrderRepository) error) error {
	if err := fn(r.poRepo); err != nil {
		r.poRepo.created = nil
		r.poRepo.lines = nil
		return err
	}
	return nil
}

func newPOUseCase(rows []dominv.StockRow, products []*entity.Product) (*appinv.PurchaseOrderUseCase, *fakePORepo) {
	reorder := appinv.NewReorderUseCase(
		&fakeStockRepo{rows: rows},
		&fakeProductRepo{products: products},
		&fakePolicyRepo{},
	)
	poRepo := &fakePORepo{}
	return appinv.NewPurchaseOrderUseCase(reorder, &fakeTxRunner{poRepo: poRepo}), poRepo
}

func TestGenerateDrafts_UnaOrdenPorBodega(t *testing.T) {
	uc, poRepo := newPOUseCase(
		[]dominv.StockRow{
			stockRow("p1", "bod-1", 10, decPtr(50)), // sugiere 40
			stockRow("p2", "bod-1", 20, decPtr(50)), // sugiere 30
			stockRow("p3", "bod-2", 5, decPtr(50)),  // sugiere 45
		},
		[]*entity.Product{
			product("p1", "SKU-1", 3), product("p2", "SKU-2", 4), product("p3", "SKU-3", 5),
		},
	)

	out, err := uc.GenerateDrafts(context.Background(), "emp-1", "")

	require.NoError(t, err)
	assert.Equal(t, 2, out.POCount)
	require.Len(t, poRepo.created, 2)

	byWarehouse := make(map[string]*entity.PurchaseOrder)
	for _, po := range poRepo.created {
		byWarehouse[po.WarehouseID] = po
		assert.Equal(t, entity.POStatusDraft, po.Status)
		assert.Equal(t, "emp-1", po.CompanyID)
		assert.True(t, strings.HasPrefix(po.Number, "OC-"), "número de borrador con prefijo OC-")
	}
	require.Contains(t, byWarehouse, "bod-1")
	require.Contains(t, byWarehouse, "bod-2")

	// bod-1: 40*3 + 30*4 = 240; bod-2: 45*5 = 225
	assert.True(t, decimal.NewFromInt(240).Equal(byWarehouse["bod-1"].Subtotal),
		"subtotal bod-1: esperado 240, obtenido %s", byWarehouse["bod-1"].Subtotal)
	assert.True(t, decimal.NewFromInt(225).Equal(byWarehouse["bod-2"].Subtotal))

	assert.Len(t, poRepo.lines[byWarehouse["bod-1"].ID], 2)
	assert.Len(t, poRepo.lines[byWarehouse["bod-2"].ID], 1)
}

func TestGenerateDrafts_LineasUnoAUno(t *testing.T) {
	uc, poRepo := newPOUseCase(
		[]dominv.StockRow{stockRow("p1", "bod-1", 10, decPtr(50))},
		[]*entity.Product{product("p1", "SKU-1", 7)},
	)

	out, err := uc.GenerateDrafts(context.Background(), "emp-1", "")

	require.NoError(t, err)
	require.Len(t, out.POIDs, 1)

	lines := poRepo.lines[out.POIDs[0]]
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.True(t, decimal.NewFromInt(40).Equal(lines[0].Quantity))
	assert.True(t, decimal.NewFromInt(7).Equal(lines[0].UnitCost))
	assert.True(t, decimal.NewFromInt(280).Equal(lines[0].LineTotal))
	assert.Equal(t, out.POIDs[0], lines[0].PurchaseOrderID)
}

func TestGenerateDrafts_SinSugerencias(t *testing.T) {
	uc, poRepo := newPOUseCase(
		[]dominv.StockRow{stockRow("p1", "bod-1", 200, decPtr(50))}, // sobre el punto de reorden
		[]*entity.Product{product("p1", "SKU-1", 3)},
	)

	out, err := uc.GenerateDrafts(context.Background(), "emp-1", "")

	require.NoError(t, err)
	assert.Equal(t, 0, out.POCount)
	assert.Empty(t, out.POIDs)
	assert.Empty(t, poRepo.created)
}

// Si una inserción del lote falla, ninguna orden queda persistida.
func TestGenerateDrafts_LoteAtomico(t *testing.T) {
	reorder := appinv.NewReorderUseCase(
		&fakeStockRepo{rows: []dominv.StockRow{
			stockRow("p1", "bod-1", 10, decPtr(50)),
			stockRow("p2", "bod-2", 10, decPtr(50)),
		}},
		&fakeProductRepo{products: []*entity.Product{
			product("p1", "SKU-1", 3), product("p2", "SKU-2", 3),
		}},
		&fakePolicyRepo{},
	)
	poRepo := &failingPORepo{failAfter: 1}
	uc := appinv.NewPurchaseOrderUseCase(reorder, &rollbackTxRunner{poRepo: poRepo})

	out, err := uc.GenerateDrafts(context.Background(), "emp-1", "")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.Empty(t, poRepo.created, "el rollback descarta las órdenes del lote")
}
