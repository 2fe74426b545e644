package entity

import "time"

// Roles de campo válidos para Worker.
const (
	WorkerRoleDriver = "driver"
	WorkerRoleBiker  = "biker"
)

// Worker representa un agente de campo (conductor o biker) que ejecuta rutas.
// El optimizador lo trata como entrada fija: no lo crea ni lo modifica.
type Worker struct {
	ID        string
	CompanyID string
	Name      string
	Role      string // driver, biker
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
