package routing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	approuting "github.com/dynastyos/dynasty-ops-api/internal/application/routing"
	"github.com/dynastyos/dynasty-ops-api/internal/domain"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	domrouting "github.com/dynastyos/dynasty-ops-api/internal/domain/routing"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

// ── Fakes in-memory ───────────────────────────────────────────────────────────

type fakeStopRepo struct{ stops []repository.PendingStop }

func (f *fakeStopRepo) ListPending(_ context.Context, _ string) ([]repository.PendingStop, error) {
	return f.stops, nil
}

type fakeWorkerRepo struct{ workers []*entity.Worker }

func (f *fakeWorkerRepo) GetByID(id string) (*entity.Worker, error) {
	for _, w := range f.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkerRepo) ListActive(_ context.Context, _ string) ([]*entity.Worker, error) {
	return f.workers, nil
}

type fakeRouteRepo struct {
	created []*entity.Route
}

func (f *fakeRouteRepo) Create(_ context.Context, r *entity.Route) error {
	f.created = append(f.created, r)
	return nil
}

func (f *fakeRouteRepo) GetByID(_ context.Context, id string) (*entity.Route, error) {
	for _, r := range f.created {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRouteRepo) ListByCompanyAndDate(_ context.Context, _ string, _ time.Time) ([]*entity.Route, error) {
	return f.created, nil
}

func (f *fakeRouteRepo) UpdateStatus(_ context.Context, id, status string) error {
	for _, r := range f.created {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func nWorkers(n int) []*entity.Worker {
	out := make([]*entity.Worker, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &entity.Worker{
			ID: fmt.Sprintf("w%d", i+1), CompanyID: "emp-1",
			Role: entity.WorkerRoleDriver, Active: true,
		})
	}
	return out
}

func nStops(n int) []repository.PendingStop {
	out := make([]repository.PendingStop, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, repository.PendingStop{
			ID:      fmt.Sprintf("s%d", i+1),
			StoreID: fmt.Sprintf("t%d", i+1),
			Lat:     4.6 + float64(i)*0.01,
			Lng:     -74.1 - float64(i)*0.01,
		})
	}
	return out
}

func newUC(stops []repository.PendingStop, workers []*entity.Worker) (*approuting.OptimizeRoutesUseCase, *fakeRouteRepo) {
	routeRepo := &fakeRouteRepo{}
	uc := approuting.NewOptimizeRoutesUseCase(
		&fakeStopRepo{stops: stops},
		&fakeWorkerRepo{workers: workers},
		routeRepo,
		domrouting.NewNearestNeighbor(),
		approuting.DefaultRoutingPolicy(),
		approuting.DefaultRankingPolicy(),
	)
	return uc, routeRepo
}

var anyDate = time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)

// ── Tests ─────────────────────────────────────────────────────────────────────

// Pool vacío: error explícito, no cero rutas en silencio.
func TestGenerate_SinWorkers(t *testing.T) {
	uc, _ := newUC(nStops(5), nil)

	_, err := uc.Generate(context.Background(), "emp-1", anyDate)

	assert.ErrorIs(t, err, domain.ErrNoWorkersAvailable)
}

// Cero paradas pendientes no es error: respuesta vacía.
func TestGenerate_SinParadas(t *testing.T) {
	uc, repo := newUC(nil, nWorkers(3))

	out, err := uc.Generate(context.Background(), "emp-1", anyDate)

	require.NoError(t, err)
	assert.Empty(t, out.Routes)
	assert.Empty(t, repo.created)
}

// Cobertura del particionado: la unión de las rutas contiene cada parada
// exactamente una vez (ninguna perdida, ninguna duplicada).
func TestGenerate_CoberturaExacta(t *testing.T) {
	stops := nStops(20)
	uc, _ := newUC(stops, nWorkers(3))

	out, err := uc.Generate(context.Background(), "emp-1", anyDate)

	require.NoError(t, err)
	seen := make(map[string]int)
	for _, r := range out.Routes {
		for _, s := range r.Stops {
			seen[s.StopID]++
		}
	}
	require.Len(t, seen, len(stops))
	for _, s := range stops {
		assert.Equal(t, 1, seen[s.ID], "la parada %s debe asignarse exactamente una vez", s.ID)
	}
	assert.Empty(t, out.UnassignedIDs)
}

// 20 paradas / 3 workers → ceil = 7: ventanas de 7, 7 y 6.
func TestGenerate_TamanoDeVentanas(t *testing.T) {
	uc, _ := newUC(nStops(20), nWorkers(3))

	out, err := uc.Generate(context.Background(), "emp-1", anyDate)

	require.NoError(t, err)
	require.Len(t, out.Routes, 3)
	assert.Len(t, out.Routes[0].Stops, 7)
	assert.Len(t, out.Routes[1].Stops, 7)
	assert.Len(t, out.Routes[2].Stops, 6)
}

// La banda [6, 15] recorta el tamaño de ventana: con pocas paradas la ventana
// mínima es 6, así que un solo worker se lleva todo y el resto no produce ruta.
func TestGenerate_ClampMinimoDeVentana(t *testing.T) {
	uc, _ := newUC(nStops(4), nWorkers(2))

	out, err := uc.Generate(context.Background(), "emp-1", anyDate)

	require.NoError(t, err)
	require.Len(t, out.Routes, 1, "workers sin ventana no producen ruta")
	assert.Len(t, out.Routes[0].Stops, 4)
}

// Con exceso de paradas el tope de 15 por ruta deja sobrante sin asignar.
func TestGenerate_ClampMaximoDejaSobrante(t *testing.T) {
	uc, _ := newUC(nStops(40), nWorkers(2))

	out, err := uc.Generate(context.Background(), "emp-1", anyDate)

	require.NoError(t, err)
	require.Len(t, out.Routes, 2)
	assert.Len(t, out.Routes[0].Stops, 15)
	assert.Len(t, out.Routes[1].Stops, 15)
	assert.Len(t, out.UnassignedIDs, 10)
}

// Las paradas más urgentes deben quedar en la ruta del primer worker
// (las ventanas se cortan en orden de ranking).
func TestGenerate_UrgentesAlFrente(t *testing.T) {
	stops := nStops(12)
	// s12 arrastra una incidencia crítica y tienda en riesgo: máxima urgencia.
	stops[11].IssueSeverity = 3
	stops[11].StoreStatus = entity.StoreStatusAtRisk
	uc, _ := newUC(stops, nWorkers(2))

	out, err := uc.Generate(context.Background(), "emp-1", anyDate)

	require.NoError(t, err)
	require.Len(t, out.Routes, 2)
	first := make(map[string]bool)
	for _, s := range out.Routes[0].Stops {
		first[s.StopID] = true
	}
	assert.True(t, first["s12"], "la parada más urgente debe ir en la ruta del primer worker")
}

// Las métricas derivadas deben ser coherentes: distancia consistente con el
// orden y duración/score positivos.
func TestGenerate_MetricasDerivadas(t *testing.T) {
	uc, repo := newUC(nStops(8), nWorkers(1))

	out, err := uc.Generate(context.Background(), "emp-1", anyDate)

	require.NoError(t, err)
	require.Len(t, out.Routes, 1)
	r := out.Routes[0]
	assert.Positive(t, r.TotalDistanceKm)
	assert.Positive(t, r.EstimatedMin)
	assert.Positive(t, r.Score)
	require.Len(t, repo.created, 1)
	assert.Equal(t, entity.RouteStatusPlanned, repo.created[0].Status)
}

// ── Transiciones de estado ────────────────────────────────────────────────────

func TestUpdateStatus_CicloValido(t *testing.T) {
	uc, repo := newUC(nStops(6), nWorkers(1))
	_, err := uc.Generate(context.Background(), "emp-1", anyDate)
	require.NoError(t, err)
	routeID := repo.created[0].ID

	require.NoError(t, uc.UpdateStatus(context.Background(), "emp-1", routeID, entity.RouteStatusInProgress))
	require.NoError(t, uc.UpdateStatus(context.Background(), "emp-1", routeID, entity.RouteStatusCompleted))
}

func TestUpdateStatus_SaltoInvalido(t *testing.T) {
	uc, repo := newUC(nStops(6), nWorkers(1))
	_, err := uc.Generate(context.Background(), "emp-1", anyDate)
	require.NoError(t, err)
	routeID := repo.created[0].ID

	err = uc.UpdateStatus(context.Background(), "emp-1", routeID, entity.RouteStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_OtraEmpresa(t *testing.T) {
	uc, repo := newUC(nStops(6), nWorkers(1))
	_, err := uc.Generate(context.Background(), "emp-1", anyDate)
	require.NoError(t, err)

	err = uc.UpdateStatus(context.Background(), "emp-2", repo.created[0].ID, entity.RouteStatusInProgress)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
