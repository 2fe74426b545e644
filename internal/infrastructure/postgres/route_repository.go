package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

var _ repository.RouteRepository = (*RouteRepo)(nil)

// RouteRepo implementación del puerto RouteRepository sobre PostgreSQL.
// Cabecera en routes, paradas ordenadas en route_stops.
type RouteRepo struct {
	pool *pgxpool.Pool
}

// NewRouteRepository construye el adaptador de persistencia para rutas.
func NewRouteRepository(pool *pgxpool.Pool) *RouteRepo {
	return &RouteRepo{pool: pool}
}

// Create persiste la ruta con sus paradas en una transacción: la cabecera
// sin paradas no tiene sentido operativo.
func (r *RouteRepo) Create(ctx context.Context, route *entity.Route) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	headerQ := `
		INSERT INTO routes (id, company_id, worker_id, date, total_distance_km, estimated_min,
		                    estimated_profit, score, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.Exec(ctx, headerQ,
		route.ID, route.CompanyID, route.WorkerID, route.Date,
		route.TotalDistanceKm, route.EstimatedMin, route.EstimatedProfit, route.Score,
		route.Status, route.CreatedAt, route.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert route: %w", err)
	}

	stopQ := `
		INSERT INTO route_stops (route_id, stop_id, store_id, position, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6)`
	markQ := `UPDATE stops SET route_id = $1 WHERE id = $2`
	for _, s := range route.Stops {
		if _, err := tx.Exec(ctx, stopQ, route.ID, s.StopID, s.StoreID, s.Position, s.Lat, s.Lng); err != nil {
			return fmt.Errorf("insert route stop: %w", err)
		}
		if _, err := tx.Exec(ctx, markQ, route.ID, s.StopID); err != nil {
			return fmt.Errorf("mark stop assigned: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una ruta con sus paradas en orden de visita.
func (r *RouteRepo) GetByID(ctx context.Context, id string) (*entity.Route, error) {
	query := `
		SELECT id, company_id, worker_id, date, total_distance_km, estimated_min,
		       estimated_profit, score, status, created_at, updated_at
		FROM routes WHERE id = $1`
	var rt entity.Route
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rt.ID, &rt.CompanyID, &rt.WorkerID, &rt.Date,
		&rt.TotalDistanceKm, &rt.EstimatedMin, &rt.EstimatedProfit, &rt.Score,
		&rt.Status, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get route: %w", err)
	}

	stops, err := r.listStops(ctx, rt.ID)
	if err != nil {
		return nil, err
	}
	rt.Stops = stops
	return &rt, nil
}

// ListByCompanyAndDate lista las rutas de la empresa para un día, con paradas.
func (r *RouteRepo) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]*entity.Route, error) {
	query := `
		SELECT id, company_id, worker_id, date, total_distance_km, estimated_min,
		       estimated_profit, score, status, created_at, updated_at
		FROM routes WHERE company_id = $1 AND date = $2
		ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Route
	for rows.Next() {
		var rt entity.Route
		if err := rows.Scan(&rt.ID, &rt.CompanyID, &rt.WorkerID, &rt.Date,
			&rt.TotalDistanceKm, &rt.EstimatedMin, &rt.EstimatedProfit, &rt.Score,
			&rt.Status, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		list = append(list, &rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, rt := range list {
		stops, err := r.listStops(ctx, rt.ID)
		if err != nil {
			return nil, err
		}
		rt.Stops = stops
	}
	return list, nil
}

// UpdateStatus actualiza solo el estado de la ruta; la validación del ciclo
// de estados vive en el caso de uso.
func (r *RouteRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE routes SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update route status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update route status: ruta %s no existe", id)
	}
	return nil
}

func (r *RouteRepo) listStops(ctx context.Context, routeID string) ([]entity.RouteStop, error) {
	query := `
		SELECT stop_id, store_id, position, lat, lng
		FROM route_stops WHERE route_id = $1 ORDER BY position ASC`
	rows, err := r.pool.Query(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("list route stops: %w", err)
	}
	defer rows.Close()
	var stops []entity.RouteStop
	for rows.Next() {
		var s entity.RouteStop
		if err := rows.Scan(&s.StopID, &s.StoreID, &s.Position, &s.Lat, &s.Lng); err != nil {
			return nil, fmt.Errorf("scan route stop: %w", err)
		}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}
