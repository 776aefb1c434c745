package ports

import (
	"context"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

// Port: a boundary for persisting optimized routes so dispatchers can review
// recent planning results. The engine itself never reads stored routes.
type RouteStore interface {
	// Persist one optimization result.
	SaveRoute(ctx context.Context, route *domain.OptimizedRoute) error
	// Return the most recently created routes, newest first.
	ListRoutes(ctx context.Context, limit int) ([]*domain.OptimizedRoute, error)
}
