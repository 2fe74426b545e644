package routing

import (
	"sort"

	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/repository"
)

// UrgencyScore calcula la urgencia de una parada como suma ponderada de
// señales independientes: días sin visita, severidad de incidencia abierta
// y estado de ciclo de vida de la tienda.
func UrgencyScore(p RankingPolicy, s repository.PendingStop) float64 {
	score := float64(s.DaysSinceLastVisit) * p.DaysSinceVisitWeight
	score += float64(s.IssueSeverity) * p.IssueSeverityWeight

	switch s.StoreStatus {
	case entity.StoreStatusAtRisk:
		score += p.AtRiskBonus
	case entity.StoreStatusProspect:
		score += p.ProspectBonus
	}
	return score
}

// RankStops convierte las filas crudas en paradas de dominio con su urgencia
// y las ordena descendente. Sort estable: en empate se conserva el orden de
// entrada del repositorio (created_at).
func RankStops(p RankingPolicy, pending []repository.PendingStop) []entity.Stop {
	stops := make([]entity.Stop, 0, len(pending))
	for _, row := range pending {
		stops = append(stops, entity.Stop{
			ID:      row.ID,
			StoreID: row.StoreID,
			IssueID: row.IssueID,
			Lat:     row.Lat,
			Lng:     row.Lng,
			Urgency: UrgencyScore(p, row),
		})
	}
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Urgency > stops[j].Urgency
	})
	return stops
}
