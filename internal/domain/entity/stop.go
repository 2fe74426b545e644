package entity

import "time"

// Stop representa una parada pendiente de visita (tienda o incidencia abierta).
// El optimizador la consume como solo-lectura: nunca la muta.
// Lat/Lng se validan en la frontera del repositorio; dentro del dominio
// se asumen números finitos en rango WGS-84.
type Stop struct {
	ID        string
	CompanyID string
	StoreID   string
	IssueID   string // vacío si la parada no nace de una incidencia
	Lat       float64
	Lng       float64
	Urgency   float64 // score derivado; ver routing.RankStops
	CreatedAt time.Time
}
