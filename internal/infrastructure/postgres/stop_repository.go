package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

var _ repository.StopRepository = (*StopRepo)(nil)

// StopRepo implementación del puerto StopRepository sobre PostgreSQL.
// Une cada parada pendiente con las señales de urgencia de su tienda e
// incidencia en una sola consulta.
type StopRepo struct {
	pool *pgxpool.Pool
}

// NewStopRepository construye el adaptador de lectura de paradas pendientes.
func NewStopRepository(pool *pgxpool.Pool) *StopRepo {
	return &StopRepo{pool: pool}
}

// ListPending devuelve las paradas sin ruta asignada de la empresa, en orden
// estable (created_at). Las filas con coordenadas nulas o fuera de rango
// WGS-84 se descartan aquí: el dominio asume números finitos válidos.
func (r *StopRepo) ListPending(ctx context.Context, companyID string) ([]repository.PendingStop, error) {
	query := `
		SELECT
		    st.id,
		    st.store_id,
		    COALESCE(st.issue_id::TEXT, '')                                        AS issue_id,
		    s.lat,
		    s.lng,
		    COALESCE(EXTRACT(DAY FROM now() - s.last_visit_at)::INT, 0)            AS days_since_visit,
		    COALESCE(i.severity, 0)                                                AS issue_severity,
		    s.status                                                               AS store_status
		FROM stops st
		JOIN stores s       ON s.id = st.store_id
		LEFT JOIN issues i  ON i.id = st.issue_id AND i.status = 'open'
		WHERE st.company_id = $1 AND st.route_id IS NULL
		ORDER BY st.created_at ASC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list pending stops: %w", err)
	}
	defer rows.Close()

	var list []repository.PendingStop
	for rows.Next() {
		var p repository.PendingStop
		if err := rows.Scan(&p.ID, &p.StoreID, &p.IssueID, &p.Lat, &p.Lng,
			&p.DaysSinceLastVisit, &p.IssueSeverity, &p.StoreStatus); err != nil {
			return nil, fmt.Errorf("scan pending stop: %w", err)
		}
		if !validCoords(p.Lat, p.Lng) {
			log.Warn().Str("stop_id", p.ID).Float64("lat", p.Lat).Float64("lng", p.Lng).
				Msg("parada descartada: coordenadas inválidas")
			continue
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// validCoords acepta solo números finitos en rango WGS-84.
func validCoords(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
