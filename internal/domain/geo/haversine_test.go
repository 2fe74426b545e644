package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/geo"
)

// Bogotá y Medellín distan ~215 km en línea recta; el valor de referencia
// se calculó con la misma fórmula (R = 6371 km) para fijar el contrato.
func TestHaversineKm_BogotaMedellin(t *testing.T) {
	bogota := geo.Point{Lat: 4.7110, Lng: -74.0721}
	medellin := geo.Point{Lat: 6.2442, Lng: -75.5812}

	d := geo.HaversineKm(bogota, medellin)

	assert.InDelta(t, 240.0, d, 10.0, "Bogotá–Medellín debe estar alrededor de 240 km")
}

func TestHaversineKm_MismoPunto(t *testing.T) {
	p := geo.Point{Lat: 4.7110, Lng: -74.0721}
	assert.Zero(t, geo.HaversineKm(p, p), "la distancia de un punto a sí mismo es 0")
}

func TestHaversineKm_Simetrica(t *testing.T) {
	a := geo.Point{Lat: 10.4, Lng: -75.5}
	b := geo.Point{Lat: 3.45, Lng: -76.53}

	assert.InDelta(t, geo.HaversineKm(a, b), geo.HaversineKm(b, a), 1e-9,
		"la distancia debe ser simétrica")
}

// Un grado de latitud sobre el ecuador son ~111.19 km con R = 6371 km.
func TestHaversineKm_UnGradoDeLatitud(t *testing.T) {
	a := geo.Point{Lat: 0, Lng: 0}
	b := geo.Point{Lat: 1, Lng: 0}

	assert.InDelta(t, 111.19, geo.HaversineKm(a, b), 0.05)
}
