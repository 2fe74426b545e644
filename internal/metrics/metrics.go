package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry es el registro Prometheus dedicado de la API.
	Registry = prometheus.NewRegistry()

	// HTTPRequests cuenta requests por método, ruta y status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total de requests HTTP."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration registra la duración de los requests en segundos.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "Duración de requests HTTP en segundos.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// RoutesOptimized cuenta corridas del optimizador por resultado.
	RoutesOptimized = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "routes_optimized_total", Help: "Corridas del optimizador de rutas por resultado."},
		[]string{"result"},
	)
	// RouteStopsAssigned registra cuántas paradas quedaron asignadas por corrida.
	RouteStopsAssigned = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "route_stops_assigned", Help: "Paradas asignadas por corrida del optimizador.", Buckets: []float64{5, 10, 25, 50, 100, 250, 500}},
	)

	// PurchaseOrdersGenerated cuenta órdenes de compra borrador generadas.
	PurchaseOrdersGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "purchase_orders_generated_total", Help: "Órdenes de compra borrador generadas desde sugerencias."},
	)
)

// RegisterDefault registra los collectors en el registro de la API.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(RoutesOptimized)
		Registry.MustRegister(RouteStopsAssigned)
		Registry.MustRegister(PurchaseOrdersGenerated)
		// Collectors de Go y del proceso en nuestro registro
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
