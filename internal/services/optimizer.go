package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

// ErrNoStops is returned when an optimization request carries no stops.
// It is the only input condition the engine actively rejects.
var ErrNoStops = errors.New("optimize route: stop list must not be empty")

// OptimizeOptions tunes a single optimization request. The zero value runs
// plain sequencing with no clustering, improvement, or capacity limit.
type OptimizeOptions struct {
	UseClustering      bool
	ClustersCount      int
	VehicleCapacity    int
	RespectTimeWindows bool
	ImproveWithTwoOpt  bool
}

// DefaultOptions are used when a caller supplies none, and by the
// alternatives generator.
func DefaultOptions() OptimizeOptions {
	return OptimizeOptions{
		UseClustering:      true,
		ClustersCount:      3,
		RespectTimeWindows: true,
		ImproveWithTwoOpt:  true,
	}
}

// Optimizer is the single entry point for route optimization. It is
// stateless: every method is a pure function of its explicit parameters, so
// any number of requests may run concurrently without coordination.
type Optimizer struct{}

func NewOptimizer() *Optimizer { return &Optimizer{} }

// Optimize computes a visiting order for the given stops starting at depot,
// then derives operational metrics for the result.
//
// Pipeline: clustering (when requested and the stop count warrants it),
// per-cluster or direct sequencing under the chosen strategy, an optional
// 2-opt sweep, capacity truncation, and metrics. Unknown strategies fall back
// to hybrid rather than failing.
func (o *Optimizer) Optimize(
	partnerID string,
	depot domain.DeliveryStop,
	stops []domain.DeliveryStop,
	strategy domain.Strategy,
	opts OptimizeOptions,
) (*domain.OptimizedRoute, error) {
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	if !strategy.Valid() {
		strategy = domain.StrategyHybrid
	}

	var route domain.Route
	clusterCount := 0

	if opts.UseClustering && len(stops) > clusteringThreshold {
		k := clusterCountFor(len(stops), opts.ClustersCount)
		clusters := partitionStops(stops, k)
		route = sequenceClustered(depot, clusters, strategy)
		clusterCount = len(clusters)
	} else {
		route = append(domain.Route{depot}, sequenceStops(depot, depot, stops, strategy)...)
	}

	improved := false
	if opts.ImproveWithTwoOpt {
		route, improved = improveRoute(route)
	}

	capacityLimited := false
	if opts.VehicleCapacity > 0 && len(route) > opts.VehicleCapacity+1 {
		// +1 keeps the depot in addition to the capacity's worth of stops.
		route = route[:opts.VehicleCapacity+1]
		capacityLimited = true
	}

	return &domain.OptimizedRoute{
		RouteID:         routeID(partnerID),
		PartnerID:       partnerID,
		Strategy:        strategy,
		Stops:           route,
		Metrics:         calculateMetrics(route, opts.RespectTimeWindows),
		Clustered:       clusterCount > 1,
		ClusterCount:    clusterCount,
		Improved:        improved,
		CapacityLimited: capacityLimited,
		VehicleCapacity: opts.VehicleCapacity,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

func routeID(partnerID string) string {
	return fmt.Sprintf("route_%s_%d", partnerID, time.Now().UnixMilli())
}
