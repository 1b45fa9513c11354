package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"order-grouping-service/internal/api/handlers"
	"order-grouping-service/internal/metrics"
	"order-grouping-service/internal/ports"
	"order-grouping-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(repo ports.OrderRepository, engine *services.Engine) http.Handler {
	mux := http.NewServeMux()

	orderHandler := &handlers.OrderHandler{Repo: repo}
	suggestionHandler := &handlers.SuggestionHandler{Repo: repo, Engine: engine}
	mergeHandler := &handlers.MergeHandler{Repo: repo, Engine: engine}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/orders", orderHandler.List)
	mux.HandleFunc("/suggestions", suggestionHandler.Compute)
	mux.HandleFunc("/merges", mergeHandler.Plan)

	metrics.Register()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
