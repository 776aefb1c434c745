package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

// Flat row shape shared by the SQLite and Postgres stores.
type routeRow struct {
	routeID         string
	partnerID       string
	strategy        string
	stopsJSON       string
	distanceKm      float64
	durationMinutes int
	fuelEfficiency  float64
	carbonKg        float64
	efficiencyScore float64
	violations      int
	clustered       int
	clusterCount    int
	improved        int
	capacityLimited int
	vehicleCapacity int
	createdAt       string
}

type stopRecord struct {
	ID                 string  `json:"id"`
	Address            string  `json:"address,omitempty"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	Priority           string  `json:"priority"`
	ServiceTimeMinutes int     `json:"service_time_minutes"`
	EarliestArrival    *int    `json:"earliest_arrival,omitempty"`
	LatestArrival      *int    `json:"latest_arrival,omitempty"`
}

func rowFromRoute(route *domain.OptimizedRoute) (routeRow, error) {
	records := make([]stopRecord, 0, len(route.Stops))
	for _, s := range route.Stops {
		rec := stopRecord{
			ID:                 s.ID,
			Address:            s.Address,
			Latitude:           s.Coordinates.Lat,
			Longitude:          s.Coordinates.Lon,
			Priority:           s.Priority.String(),
			ServiceTimeMinutes: s.ServiceTimeMinutes,
		}
		if s.Window != nil {
			earliest, latest := s.Window.Earliest, s.Window.Latest
			rec.EarliestArrival = &earliest
			rec.LatestArrival = &latest
		}
		records = append(records, rec)
	}

	encoded, err := json.Marshal(records)
	if err != nil {
		return routeRow{}, fmt.Errorf("encode route %s: marshal stops: %w", route.RouteID, err)
	}

	return routeRow{
		routeID:         route.RouteID,
		partnerID:       route.PartnerID,
		strategy:        string(route.Strategy),
		stopsJSON:       string(encoded),
		distanceKm:      route.Metrics.TotalDistanceKm,
		durationMinutes: route.Metrics.EstimatedDurationMinutes,
		fuelEfficiency:  route.Metrics.FuelEfficiencyKmPerLiter,
		carbonKg:        route.Metrics.CarbonFootprintKg,
		efficiencyScore: route.Metrics.EfficiencyScore,
		violations:      route.Metrics.TimeWindowViolations,
		clustered:       boolToInt(route.Clustered),
		clusterCount:    route.ClusterCount,
		improved:        boolToInt(route.Improved),
		capacityLimited: boolToInt(route.CapacityLimited),
		vehicleCapacity: route.VehicleCapacity,
		createdAt:       route.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func (r routeRow) toRoute() (*domain.OptimizedRoute, error) {
	var records []stopRecord
	if err := json.Unmarshal([]byte(r.stopsJSON), &records); err != nil {
		return nil, fmt.Errorf("decode route %s: unmarshal stops: %w", r.routeID, err)
	}

	stops := make(domain.Route, 0, len(records))
	for _, rec := range records {
		priority, err := domain.ParsePriority(rec.Priority)
		if err != nil {
			return nil, fmt.Errorf("decode route %s: stop %s: %w", r.routeID, rec.ID, err)
		}
		stop := domain.DeliveryStop{
			ID:                 rec.ID,
			Address:            rec.Address,
			Coordinates:        domain.Coordinates{Lat: rec.Latitude, Lon: rec.Longitude},
			Priority:           priority,
			ServiceTimeMinutes: rec.ServiceTimeMinutes,
		}
		if rec.EarliestArrival != nil && rec.LatestArrival != nil {
			stop.Window = &domain.TimeWindow{Earliest: *rec.EarliestArrival, Latest: *rec.LatestArrival}
		}
		stops = append(stops, stop)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, r.createdAt)
	if err != nil {
		return nil, fmt.Errorf("decode route %s: parse created_at %q: %w", r.routeID, r.createdAt, err)
	}

	return &domain.OptimizedRoute{
		RouteID:   r.routeID,
		PartnerID: r.partnerID,
		Strategy:  domain.Strategy(r.strategy),
		Stops:     stops,
		Metrics: domain.RouteMetrics{
			TotalDistanceKm:          r.distanceKm,
			EstimatedDurationMinutes: r.durationMinutes,
			FuelEfficiencyKmPerLiter: r.fuelEfficiency,
			CarbonFootprintKg:        r.carbonKg,
			EfficiencyScore:          r.efficiencyScore,
			TimeWindowViolations:     r.violations,
		},
		Clustered:       r.clustered != 0,
		ClusterCount:    r.clusterCount,
		Improved:        r.improved != 0,
		CapacityLimited: r.capacityLimited != 0,
		VehicleCapacity: r.vehicleCapacity,
		CreatedAt:       createdAt,
	}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
