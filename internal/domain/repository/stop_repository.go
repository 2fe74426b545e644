package repository

import "context"

// PendingStop es la fila cruda que consume el optimizador: la parada junto con
// las señales de urgencia ya unidas por la consulta (tienda e incidencia).
// El adaptador valida coordenadas al escanear; una fila con lat/lng fuera de
// rango o nulos no llega al dominio.
type PendingStop struct {
	ID                 string
	StoreID            string
	IssueID            string // vacío si no nace de una incidencia
	Lat                float64
	Lng                float64
	DaysSinceLastVisit int    // 0 si la tienda nunca se ha visitado hoy mismo
	IssueSeverity      int    // 0 = sin incidencia abierta; 1..3 = leve..crítica
	StoreStatus        string // ver entity.StoreStatus*
}

// StopRepository define el puerto de lectura de paradas pendientes (DIP).
type StopRepository interface {
	// ListPending devuelve las paradas sin ruta asignada de la empresa,
	// en orden estable (created_at).
	ListPending(ctx context.Context, companyID string) ([]PendingStop, error)
}
