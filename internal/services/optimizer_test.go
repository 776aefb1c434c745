package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

// gridStops fans n stops out around the depot in a deterministic pattern.
func gridStops(n int) []domain.DeliveryStop {
	stops := make([]domain.DeliveryStop, 0, n)
	for i := 0; i < n; i++ {
		stops = append(stops, domain.DeliveryStop{
			ID:                 fmt.Sprintf("s%02d", i+1),
			Coordinates:        domain.Coordinates{Lat: 28.50 + 0.03*float64(i%5), Lon: 77.05 + 0.04*float64(i/5)},
			Priority:           domain.Priority(i%3 + 1),
			ServiceTimeMinutes: 5,
		})
	}
	return stops
}

func TestOptimizeRejectsEmptyStopList(t *testing.T) {
	engine := NewOptimizer()
	_, err := engine.Optimize("p1", testDepot(), nil, domain.StrategyNearest, DefaultOptions())
	require.ErrorIs(t, err, ErrNoStops)
}

func TestOptimizeDepotFirstAndUniqueStops(t *testing.T) {
	engine := NewOptimizer()

	for _, strategy := range []domain.Strategy{domain.StrategyNearest, domain.StrategyPriority, domain.StrategyHybrid} {
		route, err := engine.Optimize("p1", testDepot(), gridStops(15), strategy, DefaultOptions())
		require.NoError(t, err, "strategy %s", strategy)

		require.NotEmpty(t, route.Stops)
		assert.Equal(t, "depot", route.Stops[0].ID, "strategy %s", strategy)

		seen := make(map[string]bool)
		for _, s := range route.Stops[1:] {
			assert.NotEqual(t, "depot", s.ID, "depot reappears, strategy %s", strategy)
			assert.False(t, seen[s.ID], "duplicate stop %s, strategy %s", s.ID, strategy)
			seen[s.ID] = true
		}
		assert.Len(t, seen, 15, "strategy %s", strategy)
	}
}

func TestOptimizeAppliesClusteringAboveThreshold(t *testing.T) {
	engine := NewOptimizer()

	route, err := engine.Optimize("p1", testDepot(), gridStops(15), domain.StrategyNearest, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, route.Clustered)
	assert.Equal(t, 2, route.ClusterCount) // 15 stops / 6 = 2 clusters
}

func TestOptimizeSkipsClusteringBelowThreshold(t *testing.T) {
	engine := NewOptimizer()

	route, err := engine.Optimize("p1", testDepot(), gridStops(8), domain.StrategyNearest, DefaultOptions())
	require.NoError(t, err)

	assert.False(t, route.Clustered)
	assert.Zero(t, route.ClusterCount)
}

func TestOptimizeSingleClusterMatchesUnclustered(t *testing.T) {
	engine := NewOptimizer()
	stops := gridStops(15)

	clustered := DefaultOptions()
	clustered.ClustersCount = 1
	clustered.ImproveWithTwoOpt = false

	unclustered := DefaultOptions()
	unclustered.UseClustering = false
	unclustered.ImproveWithTwoOpt = false

	a, err := engine.Optimize("p1", testDepot(), stops, domain.StrategyNearest, clustered)
	require.NoError(t, err)
	b, err := engine.Optimize("p1", testDepot(), stops, domain.StrategyNearest, unclustered)
	require.NoError(t, err)

	assert.Equal(t, stopIDs(a.Stops), stopIDs(b.Stops))
	assert.False(t, a.Clustered)
}

func TestOptimizeCapacityTruncation(t *testing.T) {
	engine := NewOptimizer()

	opts := DefaultOptions()
	opts.VehicleCapacity = 3

	route, err := engine.Optimize("p1", testDepot(), gridStops(5), domain.StrategyNearest, opts)
	require.NoError(t, err)

	assert.Len(t, route.Stops, 4) // depot + capacity
	assert.True(t, route.CapacityLimited)
	assert.Equal(t, 3, route.VehicleCapacity)
}

func TestOptimizeCapacityNotExceededLeavesRouteAlone(t *testing.T) {
	engine := NewOptimizer()

	opts := DefaultOptions()
	opts.VehicleCapacity = 10

	route, err := engine.Optimize("p1", testDepot(), gridStops(5), domain.StrategyNearest, opts)
	require.NoError(t, err)

	assert.Len(t, route.Stops, 6)
	assert.False(t, route.CapacityLimited)
}

func TestOptimizeDeterministicOrdering(t *testing.T) {
	engine := NewOptimizer()
	stops := gridStops(15)

	for _, strategy := range []domain.Strategy{domain.StrategyNearest, domain.StrategyPriority, domain.StrategyHybrid} {
		first, err := engine.Optimize("p1", testDepot(), stops, strategy, DefaultOptions())
		require.NoError(t, err)
		second, err := engine.Optimize("p1", testDepot(), stops, strategy, DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, stopIDs(first.Stops), stopIDs(second.Stops), "strategy %s", strategy)
		assert.Equal(t, first.Metrics, second.Metrics, "strategy %s", strategy)
	}
}

func TestOptimizeSingleStopIsStable(t *testing.T) {
	engine := NewOptimizer()
	stops := gridStops(1)

	route, err := engine.Optimize("p1", testDepot(), stops, domain.StrategyNearest, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"depot", "s01"}, stopIDs(route.Stops))
	assert.False(t, route.Improved) // length <= 3, 2-opt is a no-op
	assert.False(t, route.Clustered)
}

func TestOptimizeUnknownStrategyFallsBackToHybrid(t *testing.T) {
	engine := NewOptimizer()

	route, err := engine.Optimize("p1", testDepot(), gridStops(3), domain.Strategy("genetic"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyHybrid, route.Strategy)
}

func TestOptimizeRouteIDCarriesPartner(t *testing.T) {
	engine := NewOptimizer()

	route, err := engine.Optimize("partner-42", testDepot(), gridStops(2), domain.StrategyNearest, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(route.RouteID, "route_partner-42_"), "route id %q", route.RouteID)
	assert.Equal(t, "partner-42", route.PartnerID)
}

func TestOptimizeTwoOptNeverWorsensRoute(t *testing.T) {
	engine := NewOptimizer()
	stops := gridStops(10)

	improved := DefaultOptions()
	improved.UseClustering = false

	plain := improved
	plain.ImproveWithTwoOpt = false

	a, err := engine.Optimize("p1", testDepot(), stops, domain.StrategyPriority, improved)
	require.NoError(t, err)
	b, err := engine.Optimize("p1", testDepot(), stops, domain.StrategyPriority, plain)
	require.NoError(t, err)

	assert.LessOrEqual(t, a.Metrics.TotalDistanceKm, b.Metrics.TotalDistanceKm)
}
