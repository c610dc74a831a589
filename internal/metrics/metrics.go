package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graph_explainer_requests_total",
		Help: "HTTP requests received, by handler.",
	}, []string{"handler"})

	CategoriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graph_explainer_categories_total",
		Help: "Detected chart categories.",
	}, []string{"category"})

	GraphTypesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graph_explainer_graph_types_total",
		Help: "Detected chart subtypes.",
	}, []string{"graph_type"})

	NoticesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graph_explainer_notices_total",
		Help: "Requests that resolved to a notice instead of a narrative.",
	})
)

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
