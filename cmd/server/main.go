package main

import (
	"database/sql"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/adapters/repositories"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/api"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/config"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/platform/db"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/ports"
	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/services"
)

// main is the application composition root.
// It wires the route store adapter behind its port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found (using environment variables)")
	}

	configureLogging(config.Get("LOG_LEVEL", "info"))

	port := config.Get("PORT", "8080")

	conn, store, err := openStore()
	if err != nil {
		logrus.Fatal(err)
	}
	defer conn.Close()

	if err := repositories.InitSchema(conn); err != nil {
		logrus.Fatal(err)
	}

	router := api.NewRouter(services.NewOptimizer(), store)

	logrus.WithField("addr", ":"+port).Info("server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logrus.Fatal(srv.ListenAndServe())
}

// openStore picks the route history backend: Postgres when DATABASE_URL is
// set, otherwise a local SQLite file.
func openStore() (*sql.DB, ports.RouteStore, error) {
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		conn, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return conn, repositories.NewPostgresRouteStore(conn), nil
	}

	conn, err := db.OpenSqlite(config.Get("DB_PATH", "data/routes.db"))
	if err != nil {
		return nil, nil, err
	}
	return conn, repositories.NewSqliteRouteStore(conn), nil
}

func configureLogging(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
