// Package geo contiene utilidades geográficas puras (servicios de dominio).
package geo

import "math"

// earthRadiusKm radio medio de la Tierra usado por la fórmula haversine.
const earthRadiusKm = 6371.0

// Point coordenada geográfica WGS-84 en grados.
type Point struct {
	Lat float64
	Lng float64
}

// HaversineKm distancia de círculo máximo entre dos coordenadas, en kilómetros.
// Función pura y determinista. El comportamiento fuera de los rangos
// lat ∈ [-90, 90], lng ∈ [-180, 180] es indefinido (no se valida aquí;
// la validación ocurre en la frontera de los repositorios).
func HaversineKm(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
