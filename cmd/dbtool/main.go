package main

import (
	"database/sql"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/adapters/repositories"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/config"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/platform/db"
)

// dbtool initializes the route history schema against either backend so
// deployments do not depend on server startup for migrations.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found (using environment variables)")
	}

	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		conn, err := db.OpenPostgres(databaseURL)
		if err != nil {
			logrus.Fatal(err)
		}
		defer conn.Close()

		initSchema(conn)
		return
	}

	conn, err := db.OpenSqlite(config.Get("DB_PATH", "data/routes.db"))
	if err != nil {
		logrus.Fatal(err)
	}
	defer conn.Close()

	initSchema(conn)
}

func initSchema(conn *sql.DB) {
	logrus.Info("initializing route history schema")
	if err := repositories.InitSchema(conn); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("schema ready")
}
