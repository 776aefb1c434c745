package services

import (
	"slices"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

const (
	// Stop counts above this trigger spatial partitioning when clustering is
	// requested; below it the O(n²) sequencing cost is acceptable as-is.
	clusteringThreshold = 12

	maxClusterIterations = 20
	centroidEpsilonKm    = 1e-6
)

// cluster is a transient grouping of stops by geographic proximity.
// It only exists inside the partitioning phase and is never visible to callers.
type cluster struct {
	centroid domain.Coordinates
	stops    []domain.DeliveryStop
}

// clusterCountFor derives the number of clusters for a stop count.
// An explicit request of 1 (or a request that already covers every stop)
// disables partitioning; otherwise the count scales with stop density,
// capped at the requested count or 3 when none was given.
func clusterCountFor(stopCount, requested int) int {
	if requested == 1 || (requested > 0 && stopCount <= requested) {
		return 1
	}
	limit := 3
	if requested > 0 {
		limit = requested
	}
	k := stopCount / 6
	if k > limit {
		k = limit
	}
	if k < 2 {
		k = 2
	}
	return k
}

// partitionStops groups stops into at most k geographic clusters using
// iterative centroid assignment (k-means over latitude/longitude).
// Centroids start at the first k stops; assignment and recomputation repeat
// until membership stabilizes, centroids stop moving, or the iteration cap
// is hit. Empty clusters are dropped. Degenerate inputs (k <= 1 or too few
// stops) degrade to a single cluster rather than failing.
func partitionStops(stops []domain.DeliveryStop, k int) []cluster {
	if k <= 1 || len(stops) <= k {
		return []cluster{{centroid: meanCoordinate(stops), stops: stops}}
	}

	centroids := make([]domain.Coordinates, k)
	for i := 0; i < k; i++ {
		centroids[i] = stops[i].Coordinates
	}

	assignment := make([]int, len(stops))
	for i := range assignment {
		assignment[i] = -1
	}

	for iter := 0; iter < maxClusterIterations; iter++ {
		moved := false
		for i, stop := range stops {
			best := 0
			bestDist := stop.Coordinates.DistanceKm(centroids[0])
			for c := 1; c < k; c++ {
				if d := stop.Coordinates.DistanceKm(centroids[c]); d < bestDist {
					best = c
					bestDist = d
				}
			}
			if assignment[i] != best {
				assignment[i] = best
				moved = true
			}
		}

		shifted := false
		for c := 0; c < k; c++ {
			var latSum, lonSum float64
			n := 0
			for i := range stops {
				if assignment[i] == c {
					latSum += stops[i].Coordinates.Lat
					lonSum += stops[i].Coordinates.Lon
					n++
				}
			}
			if n == 0 {
				continue
			}
			next := domain.Coordinates{Lat: latSum / float64(n), Lon: lonSum / float64(n)}
			if centroids[c].DistanceKm(next) > centroidEpsilonKm {
				shifted = true
			}
			centroids[c] = next
		}

		if !moved || !shifted {
			break
		}
	}

	clusters := make([]cluster, 0, k)
	for c := 0; c < k; c++ {
		var members []domain.DeliveryStop
		for i := range stops {
			if assignment[i] == c {
				members = append(members, stops[i])
			}
		}
		if len(members) == 0 {
			continue
		}
		clusters = append(clusters, cluster{centroid: centroids[c], stops: members})
	}
	return clusters
}

// orderClusters sorts clusters by ascending centroid distance from the depot.
// The sort is stable, so exact ties keep their partition order.
func orderClusters(clusters []cluster, depot domain.DeliveryStop) []cluster {
	ordered := slices.Clone(clusters)
	slices.SortStableFunc(ordered, func(a, b cluster) int {
		da := depot.Coordinates.DistanceKm(a.centroid)
		db := depot.Coordinates.DistanceKm(b.centroid)
		if da < db {
			return -1
		}
		if da > db {
			return 1
		}
		return 0
	})
	return ordered
}

func meanCoordinate(stops []domain.DeliveryStop) domain.Coordinates {
	if len(stops) == 0 {
		return domain.Coordinates{}
	}
	var latSum, lonSum float64
	for _, s := range stops {
		latSum += s.Coordinates.Lat
		lonSum += s.Coordinates.Lon
	}
	n := float64(len(stops))
	return domain.Coordinates{Lat: latSum / n, Lon: lonSum / n}
}
