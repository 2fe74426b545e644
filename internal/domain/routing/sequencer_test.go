package routing_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/geo"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/routing"
)

func TestSequence_EntradaVacia(t *testing.T) {
	seq := routing.NewNearestNeighbor()

	ordered, km := seq.Sequence(nil)

	assert.Empty(t, ordered)
	assert.Zero(t, km)
}

func TestSequence_UnaParada(t *testing.T) {
	seq := routing.NewNearestNeighbor()
	stops := []entity.Stop{{ID: "s1", Lat: 4.7, Lng: -74.1}}

	ordered, km := seq.Sequence(stops)

	require.Len(t, ordered, 1)
	assert.Equal(t, "s1", ordered[0].ID)
	assert.Zero(t, km)
}

// La salida debe ser una permutación de la entrada: mismos IDs, misma longitud,
// sin duplicados ni paradas perdidas.
func TestSequence_EsPermutacion(t *testing.T) {
	seq := routing.NewNearestNeighbor()
	rng := rand.New(rand.NewSource(7))

	stops := make([]entity.Stop, 40)
	for i := range stops {
		stops[i] = entity.Stop{
			ID:  string(rune('A' + i%26)) + string(rune('0'+i/26)),
			Lat: 4.0 + rng.Float64(),
			Lng: -74.0 - rng.Float64(),
		}
	}

	ordered, _ := seq.Sequence(stops)

	require.Len(t, ordered, len(stops))
	seen := make(map[string]int)
	for _, s := range ordered {
		seen[s.ID]++
	}
	for _, s := range stops {
		assert.Equal(t, 1, seen[s.ID], "la parada %s debe aparecer exactamente una vez", s.ID)
	}
}

// La distancia total reportada debe ser la suma de los tramos consecutivos
// del orden devuelto (consistencia interna, no optimalidad).
func TestSequence_DistanciaConsistente(t *testing.T) {
	seq := routing.NewNearestNeighbor()
	stops := []entity.Stop{
		{ID: "a", Lat: 4.60, Lng: -74.08},
		{ID: "b", Lat: 4.65, Lng: -74.05},
		{ID: "c", Lat: 4.70, Lng: -74.11},
		{ID: "d", Lat: 4.62, Lng: -74.15},
	}

	ordered, totalKm := seq.Sequence(stops)

	sum := 0.0
	for i := 1; i < len(ordered); i++ {
		sum += geo.HaversineKm(
			geo.Point{Lat: ordered[i-1].Lat, Lng: ordered[i-1].Lng},
			geo.Point{Lat: ordered[i].Lat, Lng: ordered[i].Lng},
		)
	}
	assert.InDelta(t, sum, totalKm, 1e-9)
}

// La semilla es la primera parada en orden de entrada, no la "mejor".
func TestSequence_SemillaEsLaPrimera(t *testing.T) {
	seq := routing.NewNearestNeighbor()
	stops := []entity.Stop{
		{ID: "lejana", Lat: 10.0, Lng: -75.0},
		{ID: "centro1", Lat: 4.60, Lng: -74.08},
		{ID: "centro2", Lat: 4.61, Lng: -74.09},
	}

	ordered, _ := seq.Sequence(stops)

	assert.Equal(t, "lejana", ordered[0].ID)
}

// En empate exacto de distancia gana la primera candidata en orden de entrada
// (la comparación es estricta "<").
func TestSequence_EmpateGanaLaPrimera(t *testing.T) {
	seq := routing.NewNearestNeighbor()
	// b y c equidistan de a (simétricos en longitud).
	stops := []entity.Stop{
		{ID: "a", Lat: 0, Lng: 0},
		{ID: "b", Lat: 0, Lng: 1},
		{ID: "c", Lat: 0, Lng: -1},
	}

	ordered, _ := seq.Sequence(stops)

	require.Len(t, ordered, 3)
	assert.Equal(t, "b", ordered[1].ID, "en empate debe ganar la primera en orden de entrada")
	assert.Equal(t, "c", ordered[2].ID)
}

// El greedy debe elegir siempre la parada no visitada más cercana a la última añadida.
func TestSequence_EligeLaMasCercana(t *testing.T) {
	seq := routing.NewNearestNeighbor()
	stops := []entity.Stop{
		{ID: "inicio", Lat: 0, Lng: 0},
		{ID: "lejos", Lat: 0, Lng: 5},
		{ID: "cerca", Lat: 0, Lng: 1},
	}

	ordered, _ := seq.Sequence(stops)

	assert.Equal(t, []string{"inicio", "cerca", "lejos"},
		[]string{ordered[0].ID, ordered[1].ID, ordered[2].ID})
}
