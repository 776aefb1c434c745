package services

import (
	"math"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

const (
	// Constant travel model: average speed and per-liter figures are fixed
	// fleet-wide rather than measured per vehicle.
	averageSpeedKmh          = 30.0
	fuelEfficiencyKmPerLiter = 15.0
	carbonKgPerLiter         = 2.3

	// Wall-clock simulation for time windows starts at 08:00.
	dayStartMinutes = 480.0

	// Normalization ceiling for the efficiency score, km/h.
	maxEfficiencyKmh = 50.0
)

// calculateMetrics walks the finished route in order and accumulates
// distance, duration, fuel and emission figures, plus time-window compliance.
//
// Duration is travel time at the constant average speed plus per-stop service
// time. When respectTimeWindows is set, a simulated clock starting at minute
// 480 evaluates each stop's window: arriving before the earliest bound adds
// waiting time to the duration, arriving after the latest bound counts a
// violation. Violations are informational; the route is never rejected or
// reordered because of them.
func calculateMetrics(route domain.Route, respectTimeWindows bool) domain.RouteMetrics {
	var totalDistance, duration float64
	clock := dayStartMinutes
	violations := 0

	for i, stop := range route {
		if i > 0 {
			d := route[i-1].Coordinates.DistanceKm(stop.Coordinates)
			travel := d / averageSpeedKmh * 60
			totalDistance += d
			duration += travel
			clock += travel
		}

		if respectTimeWindows && stop.Window != nil {
			if earliest := float64(stop.Window.Earliest); clock < earliest {
				duration += earliest - clock
				clock = earliest
			}
			if clock > float64(stop.Window.Latest) {
				violations++
			}
		}

		duration += float64(stop.ServiceTimeMinutes)
		clock += float64(stop.ServiceTimeMinutes)
	}

	distanceKm := round2(totalDistance)
	durationMinutes := int(math.Round(duration))

	return domain.RouteMetrics{
		TotalDistanceKm:          distanceKm,
		EstimatedDurationMinutes: durationMinutes,
		FuelEfficiencyKmPerLiter: fuelEfficiencyKmPerLiter,
		CarbonFootprintKg:        round2(distanceKm / fuelEfficiencyKmPerLiter * carbonKgPerLiter),
		EfficiencyScore:          efficiencyScore(distanceKm, durationMinutes),
		TimeWindowViolations:     violations,
	}
}

// efficiencyScore normalizes the route's effective speed against a fixed
// ceiling, yielding a 0..1 figure (higher is better).
func efficiencyScore(distanceKm float64, durationMinutes int) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	effectiveSpeed := distanceKm / (float64(durationMinutes) / 60)
	return round2(math.Min(1, effectiveSpeed/maxEfficiencyKmh))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
