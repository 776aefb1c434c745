package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

// Depot -> s1 is 14.4423 km, s1 -> s2 is 33.8298 km; at 30 km/h the legs take
// 28.88 and 67.66 minutes. Expectations below are the literal haversine values.
func metricsRoute() domain.Route {
	return domain.Route{
		{ID: "depot", Coordinates: domain.Coordinates{Lat: 28.6139, Lon: 77.2090}},
		{ID: "s1", Coordinates: domain.Coordinates{Lat: 28.7041, Lon: 77.1025}, ServiceTimeMinutes: 5},
		{ID: "s2", Coordinates: domain.Coordinates{Lat: 28.5355, Lon: 77.3910}, ServiceTimeMinutes: 10},
	}
}

func TestCalculateMetrics(t *testing.T) {
	m := calculateMetrics(metricsRoute(), true)

	assert.InDelta(t, 48.27, m.TotalDistanceKm, 1e-9)
	assert.Equal(t, 112, m.EstimatedDurationMinutes)
	assert.Equal(t, 15.0, m.FuelEfficiencyKmPerLiter)
	assert.InDelta(t, 7.40, m.CarbonFootprintKg, 1e-9)
	assert.InDelta(t, 0.52, m.EfficiencyScore, 1e-9)
	assert.Equal(t, 0, m.TimeWindowViolations)
}

func TestCalculateMetricsCarbonDerivation(t *testing.T) {
	m := calculateMetrics(metricsRoute(), true)
	assert.InDelta(t, round2(m.TotalDistanceKm/15*2.3), m.CarbonFootprintKg, 1e-9)
}

func TestCalculateMetricsWaitsForEarliestArrival(t *testing.T) {
	route := metricsRoute()
	// Simulated arrival at s1 is minute 508.88; an earliest bound of 520 adds
	// ~11.1 minutes of waiting.
	route[1].Window = &domain.TimeWindow{Earliest: 520, Latest: 530}

	m := calculateMetrics(route, true)
	assert.Equal(t, 123, m.EstimatedDurationMinutes)
	assert.Equal(t, 0, m.TimeWindowViolations)
}

func TestCalculateMetricsCountsLateArrival(t *testing.T) {
	route := metricsRoute()
	route[1].Window = &domain.TimeWindow{Earliest: 520, Latest: 530}
	// With the wait at s1, arrival at s2 is minute 592.66; a latest bound of
	// 580 is violated but the route is still returned.
	route[2].Window = &domain.TimeWindow{Earliest: 0, Latest: 580}

	m := calculateMetrics(route, true)
	assert.Equal(t, 1, m.TimeWindowViolations)
	assert.Equal(t, 123, m.EstimatedDurationMinutes)
}

func TestCalculateMetricsIgnoresWindowsWhenDisabled(t *testing.T) {
	route := metricsRoute()
	route[1].Window = &domain.TimeWindow{Earliest: 520, Latest: 530}
	route[2].Window = &domain.TimeWindow{Earliest: 0, Latest: 580}

	m := calculateMetrics(route, false)
	assert.Equal(t, 112, m.EstimatedDurationMinutes)
	assert.Equal(t, 0, m.TimeWindowViolations)
}

func TestCalculateMetricsSingleStop(t *testing.T) {
	route := domain.Route{
		{ID: "depot", Coordinates: domain.Coordinates{Lat: 28.6139, Lon: 77.2090}},
	}

	m := calculateMetrics(route, true)
	assert.Zero(t, m.TotalDistanceKm)
	assert.Zero(t, m.EstimatedDurationMinutes)
	assert.Zero(t, m.CarbonFootprintKg)
	assert.Zero(t, m.EfficiencyScore)
}

func TestEfficiencyScoreClampedToOne(t *testing.T) {
	// 100 km in 60 minutes is 100 km/h effective, well past the ceiling.
	assert.Equal(t, 1.0, efficiencyScore(100, 60))
	assert.Equal(t, 0.0, efficiencyScore(10, 0))
}
