package repository

import (
	"context"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
)

// WorkerRepository define el puerto de persistencia para Worker (DIP).
// El optimizador solo lee el pool; nunca lo muta.
type WorkerRepository interface {
	GetByID(id string) (*entity.Worker, error)
	// ListActive devuelve los workers activos de la empresa, en orden estable
	// (created_at): el particionador asigna ventanas en ese orden.
	ListActive(ctx context.Context, companyID string) ([]*entity.Worker, error)
}
