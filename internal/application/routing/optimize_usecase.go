package routing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dynastyos/dynasty-ops-api/internal/application/dto"
	"github.com/dynastyos/dynasty-ops-api/internal/domain"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	domrouting "github.com/dynastyos/dynasty-ops-api/internal/domain/routing"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

// OptimizeRoutesUseCase genera las rutas del día: rankea paradas por urgencia,
// las particiona en ventanas consecutivas por worker y secuencia cada ventana
// con el Sequencer inyectado.
type OptimizeRoutesUseCase struct {
	stopRepo   repository.StopRepository
	workerRepo repository.WorkerRepository
	routeRepo  repository.RouteRepository
	sequencer  domrouting.Sequencer
	policy     RoutingPolicy
	ranking    RankingPolicy
}

// NewOptimizeRoutesUseCase construye el caso de uso.
func NewOptimizeRoutesUseCase(
	stopRepo repository.StopRepository,
	workerRepo repository.WorkerRepository,
	routeRepo repository.RouteRepository,
	sequencer domrouting.Sequencer,
	policy RoutingPolicy,
	ranking RankingPolicy,
) *OptimizeRoutesUseCase {
	return &OptimizeRoutesUseCase{
		stopRepo:   stopRepo,
		workerRepo: workerRepo,
		routeRepo:  routeRepo,
		sequencer:  sequencer,
		policy:     policy,
		ranking:    ranking,
	}
}

// Generate corre la optimización para una empresa y una fecha.
//
// Con pool de workers vacío retorna domain.ErrNoWorkersAvailable: el caller
// necesita distinguir "no hay nada que hacer" (cero paradas, respuesta vacía
// sin error) de "no se puede hacer".
//
// Las ventanas se cortan en orden de ranking, así las paradas más urgentes
// quedan al frente, en las rutas de los primeros workers. Los workers que no
// alcanzan ventana no producen ruta (no es error). Si las paradas exceden
// workers × MaxStopsPerRoute, el sobrante queda sin asignar y se reporta.
func (uc *OptimizeRoutesUseCase) Generate(ctx context.Context, companyID string, date time.Time) (*dto.OptimizeRoutesResponse, error) {
	workers, err := uc.workerRepo.ListActive(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if len(workers) == 0 {
		return nil, domain.ErrNoWorkersAvailable
	}

	pending, err := uc.stopRepo.ListPending(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return &dto.OptimizeRoutesResponse{Routes: []dto.RouteDTO{}}, nil
	}

	ranked := RankStops(uc.ranking, pending)

	perWorker := stopsPerWorker(len(ranked), len(workers), uc.policy)

	out := &dto.OptimizeRoutesResponse{
		Routes:     []dto.RouteDTO{},
		TotalStops: len(ranked),
	}

	assigned := 0
	for _, worker := range workers {
		if assigned >= len(ranked) {
			break
		}
		end := assigned + perWorker
		if end > len(ranked) {
			end = len(ranked)
		}
		window := ranked[assigned:end]
		assigned = end

		route, err := uc.buildRoute(ctx, companyID, worker.ID, date, window)
		if err != nil {
			return nil, err
		}
		out.Routes = append(out.Routes, toRouteDTO(route))
	}
	out.TotalRoutes = len(out.Routes)

	for _, s := range ranked[assigned:] {
		out.UnassignedIDs = append(out.UnassignedIDs, s.ID)
	}

	return out, nil
}

// buildRoute secuencia una ventana y deriva las métricas estimadas de la ruta.
func (uc *OptimizeRoutesUseCase) buildRoute(ctx context.Context, companyID, workerID string, date time.Time, window []entity.Stop) (*entity.Route, error) {
	ordered, totalKm := uc.sequencer.Sequence(window)

	sumUrgency := 0.0
	routeStops := make([]entity.RouteStop, 0, len(ordered))
	for i, s := range ordered {
		sumUrgency += s.Urgency
		routeStops = append(routeStops, entity.RouteStop{
			StopID:   s.ID,
			StoreID:  s.StoreID,
			Position: i,
			Lat:      s.Lat,
			Lng:      s.Lng,
		})
	}

	// Duración lineal en distancia y número de paradas.
	estimatedMin := totalKm/uc.policy.AvgSpeedKmh*60 + float64(len(ordered))*uc.policy.ServiceMinPerStop
	// Profit lineal en la urgencia acumulada.
	profit := decimal.NewFromFloat(sumUrgency * uc.policy.ProfitPerUrgency).Round(2)
	// Score: combinación ponderada de paradas, distancia inversa y profit.
	score := uc.policy.ScoreStopsWeight*float64(len(ordered)) +
		uc.policy.ScoreDistWeight/(1+totalKm) +
		uc.policy.ScoreProfitWeight*sumUrgency*uc.policy.ProfitPerUrgency

	now := time.Now()
	route := &entity.Route{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		WorkerID:        workerID,
		Date:            date,
		Stops:           routeStops,
		TotalDistanceKm: totalKm,
		EstimatedMin:    estimatedMin,
		EstimatedProfit: profit,
		Score:           score,
		Status:          entity.RouteStatusPlanned,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.routeRepo.Create(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

// List devuelve las rutas de una empresa para una fecha.
func (uc *OptimizeRoutesUseCase) List(ctx context.Context, companyID string, date time.Time) ([]dto.RouteDTO, error) {
	routes, err := uc.routeRepo.ListByCompanyAndDate(ctx, companyID, date)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RouteDTO, 0, len(routes))
	for _, r := range routes {
		out = append(out, toRouteDTO(r))
	}
	return out, nil
}

// UpdateStatus aplica una transición del ciclo planned → in_progress → completed.
func (uc *OptimizeRoutesUseCase) UpdateStatus(ctx context.Context, companyID, routeID, status string) error {
	route, err := uc.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		return err
	}
	if route == nil {
		return domain.ErrNotFound
	}
	if route.CompanyID != companyID {
		return domain.ErrForbidden
	}
	if !route.CanTransitionTo(status) {
		return domain.ErrInvalidTransition
	}
	return uc.routeRepo.UpdateStatus(ctx, routeID, status)
}

// stopsPerWorker = ceil(total/workers), recortado a la banda configurada.
func stopsPerWorker(total, workers int, p RoutingPolicy) int {
	per := (total + workers - 1) / workers
	if per < p.MinStopsPerRoute {
		per = p.MinStopsPerRoute
	}
	if per > p.MaxStopsPerRoute {
		per = p.MaxStopsPerRoute
	}
	return per
}

func toRouteDTO(r *entity.Route) dto.RouteDTO {
	stops := make([]dto.RouteStopDTO, 0, len(r.Stops))
	for _, s := range r.Stops {
		stops = append(stops, dto.RouteStopDTO{
			StopID:   s.StopID,
			StoreID:  s.StoreID,
			Position: s.Position,
			Lat:      s.Lat,
			Lng:      s.Lng,
		})
	}
	return dto.RouteDTO{
		ID:              r.ID,
		WorkerID:        r.WorkerID,
		Date:            r.Date,
		Stops:           stops,
		TotalDistanceKm: r.TotalDistanceKm,
		EstimatedMin:    r.EstimatedMin,
		EstimatedProfit: r.EstimatedProfit,
		Score:           r.Score,
		Status:          r.Status,
	}
}
