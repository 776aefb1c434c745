package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the route-history schema. The SQL sticks to the portable subset
// shared by SQLite and Postgres, so both stores run the same statements.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS optimized_routes (
		route_id TEXT PRIMARY KEY,
		partner_id TEXT NOT NULL,
		strategy TEXT NOT NULL,
		stops TEXT NOT NULL,
		total_distance_km REAL NOT NULL,
		duration_minutes INTEGER NOT NULL,
		fuel_efficiency REAL NOT NULL,
		carbon_kg REAL NOT NULL,
		efficiency_score REAL NOT NULL,
		window_violations INTEGER NOT NULL,
		clustered INTEGER NOT NULL,
		cluster_count INTEGER NOT NULL,
		improved INTEGER NOT NULL,
		capacity_limited INTEGER NOT NULL,
		vehicle_capacity INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_optimized_routes_partner_created
	ON optimized_routes(partner_id, created_at);
	`

	statements := []string{
		createRoutesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
