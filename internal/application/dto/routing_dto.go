package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OptimizeRoutesRequest body para POST /api/routes/optimize.
// Date en formato YYYY-MM-DD; vacío = hoy.
type OptimizeRoutesRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// RouteStopDTO una parada dentro de una ruta, en orden de visita.
type RouteStopDTO struct {
	StopID   string  `json:"stop_id"`
	StoreID  string  `json:"store_id"`
	Position int     `json:"position"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// RouteDTO una ruta generada por el optimizador.
type RouteDTO struct {
	ID              string          `json:"id"`
	WorkerID        string          `json:"worker_id"`
	Date            time.Time       `json:"date"`
	Stops           []RouteStopDTO  `json:"stops"`
	TotalDistanceKm float64         `json:"total_distance_km"`
	EstimatedMin    float64         `json:"estimated_minutes"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`
	Score           float64         `json:"optimization_score"`
	Status          string          `json:"status"`
}

// OptimizeRoutesResponse salida de la optimización.
type OptimizeRoutesResponse struct {
	Routes        []RouteDTO `json:"routes"`
	TotalStops    int        `json:"total_stops"`
	TotalRoutes   int        `json:"total_routes"`
	UnassignedIDs []string   `json:"unassigned_stop_ids,omitempty"`
}

// UpdateRouteStatusRequest body para PATCH /api/routes/:id/status.
type UpdateRouteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress completed"`
}
