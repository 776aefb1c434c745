package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

// Postgres-backed implementation of the RouteStore port, for deployments that
// already run the marketplace database. Same row layout as the SQLite store;
// only the placeholder syntax and upsert form differ.
type PostgresRouteStore struct{ DB *sql.DB }

func NewPostgresRouteStore(db *sql.DB) *PostgresRouteStore {
	return &PostgresRouteStore{DB: db}
}

func (s *PostgresRouteStore) SaveRoute(ctx context.Context, route *domain.OptimizedRoute) error {
	if s.DB == nil {
		return errors.New("postgres route store: DB is nil")
	}

	row, err := rowFromRoute(route)
	if err != nil {
		return fmt.Errorf("save route: %w", err)
	}

	query := `
	INSERT INTO optimized_routes (
		route_id, partner_id, strategy, stops,
		total_distance_km, duration_minutes, fuel_efficiency, carbon_kg,
		efficiency_score, window_violations,
		clustered, cluster_count, improved, capacity_limited, vehicle_capacity,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	ON CONFLICT (route_id) DO UPDATE SET
		stops = EXCLUDED.stops,
		created_at = EXCLUDED.created_at;
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

func (s *PostgresRouteStore) ListRoutes(ctx context.Context, limit int) ([]*domain.OptimizedRoute, error) {
	if s.DB == nil {
		return nil, errors.New("postgres route store: DB is nil")
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
	LIMIT $1;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list routes: query optimized_routes: %w", err)
	}
	defer rows.Close()

	return scanRoutes(rows)
}
