// Package routing contiene los servicios de dominio de secuenciación de rutas.
package routing

import (
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/geo"
)

// Sequencer ordena un conjunto de paradas en una secuencia visitable.
// Es una interfaz para poder sustituir el greedy por un 2-opt o un solver
// exacto sin tocar a los callers.
type Sequencer interface {
	// Sequence devuelve una permutación de stops en orden de visita y la
	// distancia total en km (suma de los tramos consecutivos elegidos).
	Sequence(stops []entity.Stop) ([]entity.Stop, float64)
}

// NearestNeighbor implementa Sequencer con vecino-más-cercano greedy sobre
// distancia haversine. Es una aproximación O(n²): minimiza el tramo inmediato
// en cada paso, sin garantía de mínimo global.
//
// La semilla es la primera parada en el orden de entrada y los empates se
// resuelven a favor de la primera encontrada (comparación estricta "<").
// Ambas decisiones replican el comportamiento histórico del optimizador;
// cambiarlas altera las rutas emitidas, así que se conservan a propósito.
type NearestNeighbor struct{}

// NewNearestNeighbor construye el secuenciador greedy.
func NewNearestNeighbor() *NearestNeighbor { return &NearestNeighbor{} }

var _ Sequencer = (*NearestNeighbor)(nil)

// Sequence ordena las paradas con el greedy. Entrada vacía → ruta vacía y 0 km.
func (s *NearestNeighbor) Sequence(stops []entity.Stop) ([]entity.Stop, float64) {
	if len(stops) == 0 {
		return []entity.Stop{}, 0
	}

	ordered := make([]entity.Stop, 0, len(stops))
	visited := make([]bool, len(stops))

	// Semilla: primera parada en orden de entrada.
	ordered = append(ordered, stops[0])
	visited[0] = true
	current := stops[0]
	totalKm := 0.0

	for len(ordered) < len(stops) {
		bestIdx := -1
		bestKm := 0.0

		for i, candidate := range stops {
			if visited[i] {
				continue
			}
			d := geo.HaversineKm(
				geo.Point{Lat: current.Lat, Lng: current.Lng},
				geo.Point{Lat: candidate.Lat, Lng: candidate.Lng},
			)
			// Estricto "<": en empate gana la primera candidata encontrada.
			if bestIdx == -1 || d < bestKm {
				bestIdx = i
				bestKm = d
			}
		}

		visited[bestIdx] = true
		ordered = append(ordered, stops[bestIdx])
		totalKm += bestKm
		current = stops[bestIdx]
	}

	return ordered, totalKm
}
