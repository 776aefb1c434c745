package domain

import (
	"fmt"
	"strings"
	"time"
)

// Strategy selects how the sequencer orders stops.
type Strategy string

const (
	StrategyNearest  Strategy = "nearest"
	StrategyPriority Strategy = "priority"
	StrategyHybrid   Strategy = "hybrid"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyNearest:
		return StrategyNearest, nil
	case StrategyPriority:
		return StrategyPriority, nil
	case StrategyHybrid:
		return StrategyHybrid, nil
	default:
		return "", fmt.Errorf("parse strategy: unknown value %q", s)
	}
}

func (s Strategy) Valid() bool {
	return s == StrategyNearest || s == StrategyPriority || s == StrategyHybrid
}

// Route is an ordered visiting sequence. The first element is always the
// fixed depot stop; it never reappears later and non-depot stop identifiers
// are unique within the route.
type Route []DeliveryStop

// TotalDistanceKm sums the great-circle distance between consecutive stops.
func (r Route) TotalDistanceKm() float64 {
	total := 0.0
	for i := 1; i < len(r); i++ {
		total += r[i-1].Coordinates.DistanceKm(r[i].Coordinates)
	}
	return total
}

func (r Route) Clone() Route {
	out := make(Route, len(r))
	copy(out, r)
	return out
}

// RouteMetrics are read-only numbers derived from a finished ordering.
type RouteMetrics struct {
	TotalDistanceKm          float64
	EstimatedDurationMinutes int
	FuelEfficiencyKmPerLiter float64
	CarbonFootprintKg        float64
	EfficiencyScore          float64
	TimeWindowViolations     int
}

// OptimizedRoute is the planning result handed to presentation and
// persistence collaborators. It is immutable planning data: the engine
// computes it in a single synchronous pass and never touches it again.
type OptimizedRoute struct {
	RouteID         string
	PartnerID       string
	Strategy        Strategy
	Stops           Route
	Metrics         RouteMetrics
	Clustered       bool
	ClusterCount    int
	Improved        bool
	CapacityLimited bool
	VehicleCapacity int
	CreatedAt       time.Time
}
