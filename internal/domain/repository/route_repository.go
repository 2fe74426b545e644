package repository

import (
	"context"
	"time"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
)

// RouteRepository define el puerto de persistencia para Route (DIP).
// Las rutas se insertan una sola vez al optimizar; después solo cambia Status.
type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) error
	GetByID(ctx context.Context, id string) (*entity.Route, error)
	ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]*entity.Route, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
