package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/api/dto"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/platform/obs"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/ports"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/services"
)

// RouteHandler exposes the route optimization engine over HTTP and records
// results in the route history store.
type RouteHandler struct {
	Engine *services.Optimizer
	Store  ports.RouteStore
}

// Optimize runs a single optimization request and persists the result.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if req.PartnerID == "" {
		writeError(w, r, http.StatusBadRequest, "partner_id is required")
		return
	}

	depot, stops, err := stopsFromRequest(req.Depot, req.Stops)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	strategy := domain.StrategyHybrid
	if req.Strategy != "" {
		strategy, err = domain.ParseStrategy(req.Strategy)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	var optimizeErr error
	defer obs.Time(r.Context(), "optimize route")(&optimizeErr)

	route, optimizeErr := h.Engine.Optimize(req.PartnerID, depot, stops, strategy, optionsFromRequest(req.Options))
	if optimizeErr != nil {
		if errors.Is(optimizeErr, services.ErrNoStops) {
			writeError(w, r, http.StatusBadRequest, optimizeErr.Error())
			return
		}
		logrus.WithError(optimizeErr).Error("optimize route failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// Persistence is best-effort: the computed route is still valid and is
	// returned even when the history write fails.
	if err := h.Store.SaveRoute(r.Context(), route); err != nil {
		logrus.WithError(err).WithField("route_id", route.RouteID).Warn("save route failed")
	}

	writeJSON(w, r, http.StatusOK, routeResponse(route))
}

// Alternatives runs the engine once per base strategy and returns the ranked
// results.
func (h *RouteHandler) Alternatives(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AlternativesRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.PartnerID == "" {
		writeError(w, r, http.StatusBadRequest, "partner_id is required")
		return
	}

	depot, stops, err := stopsFromRequest(req.Depot, req.Stops)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	routes, err := h.Engine.GenerateAlternatives(req.PartnerID, depot, stops)
	if err != nil {
		if errors.Is(err, services.ErrNoStops) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		logrus.WithError(err).Error("generate alternatives failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.AlternativesResponse{Routes: make([]dto.RouteResponse, 0, len(routes))}
	for _, route := range routes {
		res.Routes = append(res.Routes, routeResponse(route))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Estimate projects wall-clock arrival times along a finished route.
func (h *RouteHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EstimateRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if len(req.Stops) == 0 {
		writeError(w, r, http.StatusBadRequest, "stops are required")
		return
	}

	route := make(domain.Route, 0, len(req.Stops))
	for i, s := range req.Stops {
		stop, err := stopFromRequest(s)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("stop #%d: %v", i+1, err))
			return
		}
		route = append(route, stop)
	}

	startTime := req.StartTime
	if startTime.IsZero() {
		startTime = time.Now()
	}

	schedule, err := h.Engine.EstimateDeliveryTime(&domain.OptimizedRoute{Stops: route}, startTime)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res := dto.EstimateResponse{
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
		Stops:     make([]dto.StopETAResponse, 0, len(schedule.Stops)),
	}
	for _, eta := range schedule.Stops {
		res.Stops = append(res.Stops, dto.StopETAResponse{
			Location:       eta.Location,
			ArrivalTime:    eta.ArrivalTime,
			ServiceMinutes: eta.ServiceMinutes,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

// List returns recently persisted routes, newest first.
func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	routes, err := h.Store.ListRoutes(r.Context(), limit)
	if err != nil {
		logrus.WithError(err).Error("list routes failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{Routes: make([]dto.RouteResponse, 0, len(routes))}
	for _, route := range routes {
		res.Routes = append(res.Routes, routeResponse(route))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// stopsFromRequest converts and validates the depot plus pending stops.
func stopsFromRequest(depotReq dto.StopRequest, stopReqs []dto.StopRequest) (domain.DeliveryStop, []domain.DeliveryStop, error) {
	depot, err := stopFromRequest(depotReq)
	if err != nil {
		return domain.DeliveryStop{}, nil, fmt.Errorf("depot: %w", err)
	}

	stops := make([]domain.DeliveryStop, 0, len(stopReqs))
	seen := make(map[string]struct{}, len(stopReqs))
	for i, s := range stopReqs {
		stop, err := stopFromRequest(s)
		if err != nil {
			return domain.DeliveryStop{}, nil, fmt.Errorf("stop #%d: %w", i+1, err)
		}
		if _, ok := seen[stop.ID]; ok {
			return domain.DeliveryStop{}, nil, fmt.Errorf("stop #%d: duplicate id %q", i+1, stop.ID)
		}
		seen[stop.ID] = struct{}{}
		stops = append(stops, stop)
	}
	return depot, stops, nil
}

func stopFromRequest(req dto.StopRequest) (domain.DeliveryStop, error) {
	priority := domain.PriorityMedium
	if req.Priority != "" {
		var err error
		priority, err = domain.ParsePriority(req.Priority)
		if err != nil {
			return domain.DeliveryStop{}, err
		}
	}

	stop := domain.DeliveryStop{
		ID:                 req.ID,
		Address:            req.Address,
		Coordinates:        domain.Coordinates{Lat: req.Latitude, Lon: req.Longitude},
		Priority:           priority,
		ServiceTimeMinutes: req.ServiceTimeMinutes,
	}

	if (req.EarliestArrival == nil) != (req.LatestArrival == nil) {
		return domain.DeliveryStop{}, fmt.Errorf("stop %s: time window requires both earliest and latest arrival", req.ID)
	}
	if req.EarliestArrival != nil {
		stop.Window = &domain.TimeWindow{Earliest: *req.EarliestArrival, Latest: *req.LatestArrival}
	}

	if err := stop.Validate(); err != nil {
		return domain.DeliveryStop{}, err
	}
	return stop, nil
}

func optionsFromRequest(req *dto.OptimizeOptionsRequest) services.OptimizeOptions {
	opts := services.DefaultOptions()
	if req == nil {
		return opts
	}
	if req.UseClustering != nil {
		opts.UseClustering = *req.UseClustering
	}
	if req.ClustersCount > 0 {
		opts.ClustersCount = req.ClustersCount
	}
	if req.VehicleCapacity > 0 {
		opts.VehicleCapacity = req.VehicleCapacity
	}
	if req.RespectTimeWindows != nil {
		opts.RespectTimeWindows = *req.RespectTimeWindows
	}
	if req.ImproveWithTwoOpt != nil {
		opts.ImproveWithTwoOpt = *req.ImproveWithTwoOpt
	}
	return opts
}

func routeResponse(route *domain.OptimizedRoute) dto.RouteResponse {
	stops := make([]dto.StopResponse, 0, len(route.Stops))
	for _, s := range route.Stops {
		res := dto.StopResponse{
			ID:                 s.ID,
			Address:            s.Address,
			Latitude:           s.Coordinates.Lat,
			Longitude:          s.Coordinates.Lon,
			Priority:           s.Priority.String(),
			ServiceTimeMinutes: s.ServiceTimeMinutes,
		}
		if s.Window != nil {
			earliest, latest := s.Window.Earliest, s.Window.Latest
			res.EarliestArrival = &earliest
			res.LatestArrival = &latest
		}
		stops = append(stops, res)
	}

	return dto.RouteResponse{
		RouteID:   route.RouteID,
		PartnerID: route.PartnerID,
		Strategy:  string(route.Strategy),
		Stops:     stops,
		Metrics: dto.MetricsResponse{
			TotalDistanceKm:          route.Metrics.TotalDistanceKm,
			EstimatedDurationMinutes: route.Metrics.EstimatedDurationMinutes,
			FuelEfficiencyKmPerLiter: route.Metrics.FuelEfficiencyKmPerLiter,
			CarbonFootprintKg:        route.Metrics.CarbonFootprintKg,
			EfficiencyScore:          route.Metrics.EfficiencyScore,
			TimeWindowViolations:     route.Metrics.TimeWindowViolations,
		},
		Clustered:       route.Clustered,
		ClusterCount:    route.ClusterCount,
		Improved:        route.Improved,
		CapacityLimited: route.CapacityLimited,
		VehicleCapacity: route.VehicleCapacity,
		CreatedAt:       route.CreatedAt,
	}
}
