package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

// SQLite-backed implementation of the RouteStore port. The default choice for
// local runs; a single file (or :memory: in tests) holds the route history.
type SqliteRouteStore struct{ DB *sql.DB }

func NewSqliteRouteStore(db *sql.DB) *SqliteRouteStore {
	return &SqliteRouteStore{DB: db}
}

func (s *SqliteRouteStore) SaveRoute(ctx context.Context, route *domain.OptimizedRoute) error {
	if s.DB == nil {
		return errors.New("sqlite route store: DB is nil")
	}

	row, err := rowFromRoute(route)
	if err != nil {
		return fmt.Errorf("save route: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO optimized_routes (
		route_id, partner_id, strategy, stops,
		total_distance_km, duration_minutes, fuel_efficiency, carbon_kg,
		efficiency_score, window_violations,
		clustered, cluster_count, improved, capacity_limited, vehicle_capacity,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		row.routeID, row.partnerID, row.strategy, row.stopsJSON,
		row.distanceKm, row.durationMinutes, row.fuelEfficiency, row.carbonKg,
		row.efficiencyScore, row.violations,
		row.clustered, row.clusterCount, row.improved, row.capacityLimited, row.vehicleCapacity,
		row.createdAt,
	)
	if err != nil {
		return fmt.Errorf("save route: insert %s: %w", route.RouteID, err)
	}
	return nil
}

func (s *SqliteRouteStore) ListRoutes(ctx context.Context, limit int) ([]*domain.OptimizedRoute, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite route store: DB is nil")
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
	SELECT
		route_id, partner_id, strategy, stops,
		total_distance_km, duration_minutes, fuel_efficiency, carbon_kg,
		efficiency_score, window_violations,
		clustered, cluster_count, improved, capacity_limited, vehicle_capacity,
		created_at
	FROM optimized_routes
	ORDER BY created_at DESC
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list routes: query optimized_routes: %w", err)
	}
	defer rows.Close()

	return scanRoutes(rows)
}

// scanRoutes converts result rows back into OptimizedRoutes. Shared with the
// Postgres store, whose SELECT produces the same column layout.
func scanRoutes(rows *sql.Rows) ([]*domain.OptimizedRoute, error) {
	routes := make([]*domain.OptimizedRoute, 0, 16)
	for rows.Next() {
		var row routeRow
		err := rows.Scan(
			&row.routeID, &row.partnerID, &row.strategy, &row.stopsJSON,
			&row.distanceKm, &row.durationMinutes, &row.fuelEfficiency, &row.carbonKg,
			&row.efficiencyScore, &row.violations,
			&row.clustered, &row.clusterCount, &row.improved, &row.capacityLimited, &row.vehicleCapacity,
			&row.createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}

		route, err := row.toRoute()
		if err != nil {
			return nil, fmt.Errorf("list routes: %w", err)
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}
	return routes, nil
}
