package services

import (
	"slices"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

// sequenceStops produces the initial visiting order for stops, walking out
// from start. The depot parameter anchors priority tie-breaking: stops that
// share a priority are ordered by distance from the depot, not from each
// other.
func sequenceStops(start, depot domain.DeliveryStop, stops []domain.DeliveryStop, strategy domain.Strategy) []domain.DeliveryStop {
	switch strategy {
	case domain.StrategyNearest:
		return nearestNeighborOrder(start, stops)
	case domain.StrategyPriority:
		return priorityOrder(depot, stops)
	default:
		// Hybrid: priority establishes the candidate pool, nearest-neighbor
		// determines the final walk.
		return nearestNeighborOrder(start, priorityOrder(depot, stops))
	}
}

// nearestNeighborOrder repeatedly appends the unvisited stop closest to the
// last placed stop. Equal distances break toward the smaller stop ID so the
// ordering is deterministic.
func nearestNeighborOrder(start domain.DeliveryStop, stops []domain.DeliveryStop) []domain.DeliveryStop {
	remaining := slices.Clone(stops)
	ordered := make([]domain.DeliveryStop, 0, len(stops))
	current := start

	for len(remaining) > 0 {
		best := 0
		bestDist := current.Coordinates.DistanceKm(remaining[0].Coordinates)
		for i := 1; i < len(remaining); i++ {
			d := current.Coordinates.DistanceKm(remaining[i].Coordinates)
			if d < bestDist || (d == bestDist && remaining[i].ID < remaining[best].ID) {
				best = i
				bestDist = d
			}
		}
		current = remaining[best]
		ordered = append(ordered, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return ordered
}

// priorityOrder sorts stops by priority rank (high > medium > low), then by
// ascending depot distance within a rank, then by ID. The sort is stable so
// identical inputs always yield identical output.
func priorityOrder(depot domain.DeliveryStop, stops []domain.DeliveryStop) []domain.DeliveryStop {
	ordered := slices.Clone(stops)
	slices.SortStableFunc(ordered, func(a, b domain.DeliveryStop) int {
		if a.Priority != b.Priority {
			if a.Priority > b.Priority {
				return -1
			}
			return 1
		}
		da := depot.Coordinates.DistanceKm(a.Coordinates)
		db := depot.Coordinates.DistanceKm(b.Coordinates)
		if da < db {
			return -1
		}
		if da > db {
			return 1
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return ordered
}

// sequenceClustered builds the full route across pre-partitioned clusters.
// Clusters are visited in order of centroid distance from the depot; each
// cluster's walk starts from the last stop of the previous one (the depot for
// the first), so the concatenation has no duplicate boundary stops.
func sequenceClustered(depot domain.DeliveryStop, clusters []cluster, strategy domain.Strategy) domain.Route {
	route := domain.Route{depot}
	start := depot
	for _, cl := range orderClusters(clusters, depot) {
		sub := sequenceStops(start, depot, cl.stops, strategy)
		route = append(route, sub...)
		if len(sub) > 0 {
			start = sub[len(sub)-1]
		}
	}
	return route
}
