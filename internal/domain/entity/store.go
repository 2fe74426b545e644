package entity

import "time"

// Estados de ciclo de vida de una tienda.
const (
	StoreStatusProspect = "prospect"
	StoreStatusActive   = "active"
	StoreStatusAtRisk   = "at_risk"
	StoreStatusChurned  = "churned"
)

// Store representa una tienda/cliente de la distribuidora (CRM).
// LastVisitAt alimenta la señal de urgencia del optimizador de rutas.
type Store struct {
	ID          string
	CompanyID   string
	Name        string
	Address     string
	Lat         float64
	Lng         float64
	Status      string // ver constantes StoreStatus*
	LastVisitAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
