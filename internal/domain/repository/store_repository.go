package repository

import (
	"context"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Store, error)
}
