// Package routing orquesta el optimizador de rutas: ranking de urgencia,
// particionado por worker y secuenciación greedy.
package routing

// RoutingPolicy parámetros del particionador y de las métricas derivadas.
// Explícita a propósito: nada de literales inline en el algoritmo.
type RoutingPolicy struct {
	MinStopsPerRoute int // banda inferior del tamaño de ventana por worker
	MaxStopsPerRoute int // banda superior
	AvgSpeedKmh      float64
	ServiceMinPerStop float64 // minutos estimados de atención por parada
	ProfitPerUrgency  float64 // factor lineal urgencia acumulada → profit estimado
	ScoreStopsWeight  float64
	ScoreDistWeight   float64
	ScoreProfitWeight float64
}

// DefaultRoutingPolicy valores observados en operación: rutas de 6 a 15
// paradas, velocidad urbana de 22 km/h y 8 minutos de atención por tienda.
func DefaultRoutingPolicy() RoutingPolicy {
	return RoutingPolicy{
		MinStopsPerRoute:  6,
		MaxStopsPerRoute:  15,
		AvgSpeedKmh:       22,
		ServiceMinPerStop: 8,
		ProfitPerUrgency:  1.5,
		ScoreStopsWeight:  2.0,
		ScoreDistWeight:   10.0,
		ScoreProfitWeight: 0.5,
	}
}

// RankingPolicy pesos de la suma ponderada de urgencia. Sin garantía de
// normalización entre corridas: el score solo ordena dentro de una corrida.
type RankingPolicy struct {
	DaysSinceVisitWeight float64
	IssueSeverityWeight  float64
	AtRiskBonus          float64 // tiendas en estado at_risk
	ProspectBonus        float64 // prospectos pendientes de primera visita
}

// DefaultRankingPolicy pesos por defecto del ranking de urgencia.
func DefaultRankingPolicy() RankingPolicy {
	return RankingPolicy{
		DaysSinceVisitWeight: 1.0,
		IssueSeverityWeight:  5.0,
		AtRiskBonus:          10.0,
		ProspectBonus:        4.0,
	}
}
