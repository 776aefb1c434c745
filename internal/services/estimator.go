package services

import (
	"errors"
	"time"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

// StopETA is the projected visit at a single stop.
type StopETA struct {
	Location       string
	ArrivalTime    time.Time
	ServiceMinutes int
}

// DeliverySchedule projects an optimized route onto real wall-clock time.
type DeliverySchedule struct {
	StartTime time.Time
	EndTime   time.Time
	Stops     []StopETA
}

// EstimateDeliveryTime walks a finished route from startTime. The depot's
// arrival is the start timestamp itself; each later stop arrives after the
// travel leg at the constant average speed, and its service time elapses
// before the next leg departs. EndTime is the clock after the final stop has
// been served.
func (o *Optimizer) EstimateDeliveryTime(route *domain.OptimizedRoute, startTime time.Time) (*DeliverySchedule, error) {
	if route == nil || len(route.Stops) == 0 {
		return nil, errors.New("estimate delivery time: route has no stops")
	}

	clock := startTime
	etas := make([]StopETA, 0, len(route.Stops))

	for i, stop := range route.Stops {
		if i > 0 {
			d := route.Stops[i-1].Coordinates.DistanceKm(stop.Coordinates)
			clock = clock.Add(travelDuration(d))
		}
		etas = append(etas, StopETA{
			Location:       stop.Label(),
			ArrivalTime:    clock,
			ServiceMinutes: stop.ServiceTimeMinutes,
		})
		clock = clock.Add(time.Duration(stop.ServiceTimeMinutes) * time.Minute)
	}

	return &DeliverySchedule{
		StartTime: startTime,
		EndTime:   clock,
		Stops:     etas,
	}, nil
}

func travelDuration(distanceKm float64) time.Duration {
	return time.Duration(distanceKm / averageSpeedKmh * float64(time.Hour))
}
