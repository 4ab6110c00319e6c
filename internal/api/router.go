package api

import (
	"net/http"

	"installation-route-service/internal/api/handlers"
	"installation-route-service/internal/ports"
	"installation-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.OrderRepository, resolver *services.Resolver, sequencer ports.RouteSequencer) http.Handler {
	mux := http.NewServeMux()

	orderHandler := &handlers.OrderHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:      repo,
		Resolver:  resolver,
		Sequencer: sequencer,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/orders", orderHandler.List)
	mux.HandleFunc("/routes/plan", planHandler.Plan)

	return requestIDMiddleware(loggingMiddleware(mux))
}
