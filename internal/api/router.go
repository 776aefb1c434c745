package api

import (
	"net/http"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/api/handlers"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/ports"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(engine *services.Optimizer, store ports.RouteStore) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Engine: engine,
		Store:  store,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.List)
	mux.HandleFunc("/routes/optimize", routeHandler.Optimize)
	mux.HandleFunc("/routes/alternatives", routeHandler.Alternatives)
	mux.HandleFunc("/routes/eta", routeHandler.Estimate)

	return requestIDMiddleware(loggingMiddleware(mux))
}
