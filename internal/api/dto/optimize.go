package dto

import "time"

// Optional per-request tuning. Pointer fields distinguish "omitted" (engine
// default applies) from an explicit false.
type OptimizeOptionsRequest struct {
	UseClustering      *bool `json:"use_clustering"`
	ClustersCount      int   `json:"clusters_count"`
	VehicleCapacity    int   `json:"vehicle_capacity"`
	RespectTimeWindows *bool `json:"respect_time_windows"`
	ImproveWithTwoOpt  *bool `json:"improve_with_two_opt"`
}

type OptimizeRequest struct {
	PartnerID string                  `json:"partner_id"`
	Depot     StopRequest             `json:"depot"`
	Stops     []StopRequest           `json:"stops"`
	Strategy  string                  `json:"strategy"`
	Options   *OptimizeOptionsRequest `json:"options"`
}

type AlternativesRequest struct {
	PartnerID string        `json:"partner_id"`
	Depot     StopRequest   `json:"depot"`
	Stops     []StopRequest `json:"stops"`
}

type MetricsResponse struct {
	TotalDistanceKm          float64 `json:"total_distance_km"`
	EstimatedDurationMinutes int     `json:"estimated_duration_minutes"`
	FuelEfficiencyKmPerLiter float64 `json:"fuel_efficiency_km_per_liter"`
	CarbonFootprintKg        float64 `json:"carbon_footprint_kg"`
	EfficiencyScore          float64 `json:"efficiency_score"`
	TimeWindowViolations     int     `json:"time_window_violations"`
}

type RouteResponse struct {
	RouteID         string          `json:"route_id"`
	PartnerID       string          `json:"partner_id"`
	Strategy        string          `json:"strategy"`
	Stops           []StopResponse  `json:"stops"`
	Metrics         MetricsResponse `json:"metrics"`
	Clustered       bool            `json:"clustered"`
	ClusterCount    int             `json:"cluster_count"`
	Improved        bool            `json:"improved"`
	CapacityLimited bool            `json:"capacity_limited"`
	VehicleCapacity int             `json:"vehicle_capacity,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type AlternativesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}
