package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

func TestEstimateDeliveryTimeChainsServiceTimes(t *testing.T) {
	engine := NewOptimizer()
	here := domain.Coordinates{Lat: 28.6139, Lon: 77.2090}

	// All stops share one location, so only service time moves the clock.
	route := &domain.OptimizedRoute{Stops: domain.Route{
		{ID: "depot", Coordinates: here},
		{ID: "s1", Coordinates: here, ServiceTimeMinutes: 5},
		{ID: "s2", Coordinates: here, ServiceTimeMinutes: 10},
	}}

	start := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	schedule, err := engine.EstimateDeliveryTime(route, start)
	require.NoError(t, err)

	require.Len(t, schedule.Stops, 3)
	assert.Equal(t, start, schedule.StartTime)
	assert.Equal(t, start, schedule.Stops[0].ArrivalTime)
	assert.Equal(t, start, schedule.Stops[1].ArrivalTime)
	assert.Equal(t, start.Add(5*time.Minute), schedule.Stops[2].ArrivalTime)
	assert.Equal(t, start.Add(15*time.Minute), schedule.EndTime)
}

func TestEstimateDeliveryTimeTravelLeg(t *testing.T) {
	engine := NewOptimizer()

	// Depot to stop is 14.4423 km; at 30 km/h that leg takes ~1733 seconds.
	route := &domain.OptimizedRoute{Stops: domain.Route{
		{ID: "depot", Coordinates: domain.Coordinates{Lat: 28.6139, Lon: 77.2090}},
		{ID: "s1", Address: "North Campus Gate", Coordinates: domain.Coordinates{Lat: 28.7041, Lon: 77.1025}, ServiceTimeMinutes: 5},
	}}

	start := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	schedule, err := engine.EstimateDeliveryTime(route, start)
	require.NoError(t, err)

	require.Len(t, schedule.Stops, 2)
	assert.Equal(t, "North Campus Gate", schedule.Stops[1].Location)
	assert.InDelta(t, 1733.07, schedule.Stops[1].ArrivalTime.Sub(start).Seconds(), 0.5)
	assert.Equal(t, schedule.Stops[1].ArrivalTime.Add(5*time.Minute), schedule.EndTime)
}

func TestEstimateDeliveryTimeRejectsEmptyRoute(t *testing.T) {
	engine := NewOptimizer()

	_, err := engine.EstimateDeliveryTime(nil, time.Now())
	require.Error(t, err)

	_, err = engine.EstimateDeliveryTime(&domain.OptimizedRoute{}, time.Now())
	require.Error(t, err)
}
