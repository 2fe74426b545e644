package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/inventory"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func row(productID string, onHand, reserved int64) inventory.StockRow {
	return inventory.StockRow{
		ProductID:   productID,
		WarehouseID: "bod-1",
		CompanyID:   "emp-1",
		OnHand:      dec(onHand),
		Reserved:    dec(reserved),
	}
}

// Disponible por encima del punto de reorden: no se emite sugerencia.
func TestCalculate_NoSugiereConStockSuficiente(t *testing.T) {
	r := row("p1", 100, 0)
	r.ReorderPoint = decPtr(50)

	out := inventory.CalculateSuggestions([]inventory.StockRow{r}, nil, nil)

	assert.Empty(t, out)
}

// available=10, reorderPoint=50, safetyStock=20, defaultQty=0 → sugerido = (50+20)-10 = 60.
func TestCalculate_CantidadSugerida(t *testing.T) {
	r := row("p1", 10, 0)
	r.ReorderPoint = decPtr(50)
	r.SafetyStock = dec(20)

	out := inventory.CalculateSuggestions([]inventory.StockRow{r}, nil, nil)

	require.Len(t, out, 1)
	assert.True(t, dec(60).Equal(out[0].SuggestedQty), "esperaba 60, fue %s", out[0].SuggestedQty)
	assert.Equal(t, inventory.SourcePolicyOverride, out[0].PolicySource)
}

// La política (bodega, producto) con tope 40 recorta la cantidad calculada de 60.
func TestCalculate_ClampAlMaximoDePolitica(t *testing.T) {
	r := row("p1", 10, 0)
	r.ReorderPoint = decPtr(50)
	r.SafetyStock = dec(20)

	policies := map[inventory.PolicyKey]inventory.ReorderPolicy{
		{WarehouseID: "bod-1", ProductID: "p1"}: {MaxQty: dec(40)},
	}

	out := inventory.CalculateSuggestions([]inventory.StockRow{r}, nil, policies)

	require.Len(t, out, 1)
	assert.True(t, dec(40).Equal(out[0].SuggestedQty), "esperaba 40, fue %s", out[0].SuggestedQty)
}

// Cantidad calculada 45 con múltiplo 10 → redondeo hacia arriba a 50.
func TestCalculate_RedondeoAlMultiplo(t *testing.T) {
	r := row("p1", 25, 0)
	r.ReorderPoint = decPtr(50)
	r.SafetyStock = dec(20)
	// (50+20) - 25 = 45

	policies := map[inventory.PolicyKey]inventory.ReorderPolicy{
		{WarehouseID: "bod-1", ProductID: "p1"}: {Multiple: dec(10)},
	}

	out := inventory.CalculateSuggestions([]inventory.StockRow{r}, nil, policies)

	require.Len(t, out, 1)
	assert.True(t, dec(50).Equal(out[0].SuggestedQty), "esperaba 50, fue %s", out[0].SuggestedQty)
}

// El mínimo de la política eleva cantidades pequeñas.
func TestCalculate_MinimoDePolitica(t *testing.T) {
	r := row("p1", 48, 0)
	r.ReorderPoint = decPtr(50)
	// (50+0) - 48 = 2

	policies := map[inventory.PolicyKey]inventory.ReorderPolicy{
		{WarehouseID: "bod-1", ProductID: "p1"}: {MinQty: dec(12)},
	}

	out := inventory.CalculateSuggestions([]inventory.StockRow{r}, nil, policies)

	require.Len(t, out, 1)
	assert.True(t, dec(12).Equal(out[0].SuggestedQty))
}

// Reserved se descuenta del disponible antes de comparar contra el reorden.
func TestCalculate_DescuentaReservado(t *testing.T) {
	r := row("p1", 60, 20) // available = 40 ≤ 50
	r.ReorderPoint = decPtr(50)

	out := inventory.CalculateSuggestions([]inventory.StockRow{r}, nil, nil)

	require.Len(t, out, 1)
	assert.True(t, dec(40).Equal(out[0].Available))
	assert.True(t, dec(10).Equal(out[0].SuggestedQty))
}

// Cadena de resolución: sin override de stock manda el default del producto.
func TestCalculate_DefaultDelProducto(t *testing.T) {
	r := row("p1", 10, 0)

	products := map[string]inventory.ProductDefaults{
		"p1": {ReorderPoint: decPtr(30), UnitCost: dec(5)},
	}

	out := inventory.CalculateSuggestions([]inventory.StockRow{r}, products, nil)

	require.Len(t, out, 1)
	assert.Equal(t, inventory.SourceProductDefaults, out[0].PolicySource)
	assert.True(t, dec(20).Equal(out[0].SuggestedQty)) // (30+0) - 10
	assert.True(t, dec(5).Equal(out[0].UnitCost))
}

// Sin override ni default, el safety stock actúa como punto de reorden (fallback).
func TestCalculate_FallbackASafetyStock(t *testing.T) {
	r := row("p1", 5, 0)
	r.SafetyStock = dec(15)

	out := inventory.CalculateSuggestions([]inventory.StockRow{r}, nil, nil)

	require.Len(t, out, 1)
	assert.Equal(t, inventory.SourceFallback, out[0].PolicySource)
	assert.True(t, dec(15).Equal(out[0].ReorderPoint))
	// target = 15 + 15, available = 5 → 25
	assert.True(t, dec(25).Equal(out[0].SuggestedQty))
}

// Sin punto de reorden resoluble la fila se omite en silencio.
func TestCalculate_OmiteSinPuntoDeReorden(t *testing.T) {
	out := inventory.CalculateSuggestions([]inventory.StockRow{row("p1", 5, 0)}, nil, nil)
	assert.Empty(t, out)
}

// El default de cantidad del producto manda si supera el déficit calculado.
func TestCalculate_DefaultQtyDelProducto(t *testing.T) {
	r := row("p1", 45, 0)
	r.ReorderPoint = decPtr(50)
	// déficit = (50+0) - 45 = 5, pero el producto pide mínimo 24

	products := map[string]inventory.ProductDefaults{
		"p1": {ReorderQty: dec(24)},
	}

	out := inventory.CalculateSuggestions([]inventory.StockRow{r}, products, nil)

	require.Len(t, out, 1)
	assert.True(t, dec(24).Equal(out[0].SuggestedQty))
}

// Orden de salida: ascendente por disponible (las más agotadas primero).
func TestCalculate_OrdenPorDisponible(t *testing.T) {
	r1 := row("p1", 5, 0)
	r1.ReorderPoint = decPtr(100)
	r2 := row("p2", 50, 0)
	r2.ReorderPoint = decPtr(100)
	r3 := row("p3", 20, 0)
	r3.ReorderPoint = decPtr(100)

	out := inventory.CalculateSuggestions([]inventory.StockRow{r1, r2, r3}, nil, nil)

	require.Len(t, out, 3)
	assert.Equal(t, []string{"p1", "p3", "p2"},
		[]string{out[0].ProductID, out[1].ProductID, out[2].ProductID})
}
