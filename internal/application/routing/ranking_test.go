package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	approuting "github.com/dynastyos/dynasty-ops-api/internal/application/routing"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

func TestUrgencyScore_SumaPonderada(t *testing.T) {
	p := approuting.RankingPolicy{
		DaysSinceVisitWeight: 1.0,
		IssueSeverityWeight:  5.0,
		AtRiskBonus:          10.0,
		ProspectBonus:        4.0,
	}
	s := repository.PendingStop{
		DaysSinceLastVisit: 7,
		IssueSeverity:      2,
		StoreStatus:        entity.StoreStatusAtRisk,
	}

	// 7*1 + 2*5 + 10 = 27
	assert.InDelta(t, 27.0, approuting.UrgencyScore(p, s), 1e-9)
}

func TestRankStops_DescendentePorUrgencia(t *testing.T) {
	p := approuting.DefaultRankingPolicy()
	pending := []repository.PendingStop{
		{ID: "bajo", DaysSinceLastVisit: 1},
		{ID: "alto", DaysSinceLastVisit: 30},
		{ID: "medio", DaysSinceLastVisit: 10},
	}

	ranked := approuting.RankStops(p, pending)

	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"alto", "medio", "bajo"},
		[]string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

// Sort estable: en empate de urgencia se conserva el orden de entrada.
func TestRankStops_EmpateConservaOrden(t *testing.T) {
	p := approuting.DefaultRankingPolicy()
	pending := []repository.PendingStop{
		{ID: "a", DaysSinceLastVisit: 5},
		{ID: "b", DaysSinceLastVisit: 5},
		{ID: "c", DaysSinceLastVisit: 5},
	}

	ranked := approuting.RankStops(p, pending)

	assert.Equal(t, []string{"a", "b", "c"},
		[]string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}
