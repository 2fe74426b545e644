package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una ruta. El ciclo permitido es
// planned → in_progress → completed; cualquier otro salto es inválido.
const (
	RouteStatusPlanned    = "planned"
	RouteStatusInProgress = "in_progress"
	RouteStatusCompleted  = "completed"
)

// RouteStop es una parada dentro de una ruta, con su posición de visita (0-based).
type RouteStop struct {
	StopID   string
	StoreID  string
	Position int
	Lat      float64
	Lng      float64
}

// Route representa la secuencia ordenada de paradas asignada a un worker para un día.
// Se persiste una sola vez al optimizar; después solo cambia Status.
type Route struct {
	ID              string
	CompanyID       string
	WorkerID        string
	Date            time.Time
	Stops           []RouteStop // orden de visita; el primero es la semilla del greedy
	TotalDistanceKm float64
	EstimatedMin    float64         // duración estimada en minutos
	EstimatedProfit decimal.Decimal // score derivado de la urgencia acumulada
	Score           float64         // score de optimización (combinación ponderada)
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanTransitionTo valida el ciclo de estados de la ruta.
func (r *Route) CanTransitionTo(next string) bool {
	switch r.Status {
	case RouteStatusPlanned:
		return next == RouteStatusInProgress
	case RouteStatusInProgress:
		return next == RouteStatusCompleted
	default:
		return false
	}
}
