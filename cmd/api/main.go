// Package main is the entry point for the Control Car API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/controlcar/backend/internal/auth"
	"github.com/controlcar/backend/internal/config"
	"github.com/controlcar/backend/internal/handler"
	"github.com/controlcar/backend/internal/middleware"
	"github.com/controlcar/backend/internal/repo"
	"github.com/controlcar/backend/internal/service"
	"github.com/controlcar/backend/migrations"
)

// maxRequestBodyBytes caps incoming JSON payloads. Record and vehicle bodies
// are well under 1 KiB, so 1 MiB leaves generous headroom.
const maxRequestBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// .env is optional and only used for local development; real deployments
	// set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use slog's default handler before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Migrations -------------------------------------------------------
	if err := runMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Auth -------------------------------------------------------------
	authSvc, err := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		slog.Error("failed to create auth service", "error", err)
		os.Exit(1)
	}

	// --- Repositories & services ------------------------------------------
	vehicleRepo := repo.NewVehicleRepo(pool)
	fuelRepo := repo.NewFuelLoadRepo(pool)
	oilRepo := repo.NewOilChangeRepo(pool)
	maintRepo := repo.NewMaintenanceRepo(pool)
	userRepo := repo.NewUserRepo(pool)

	vehicleSvc := service.NewVehicleService(vehicleRepo)
	recordSvc := service.NewRecordService(fuelRepo, oilRepo, maintRepo)
	reportSvc := service.NewReportService(fuelRepo, oilRepo, maintRepo)
	userSvc := service.NewUserService(userRepo, authSvc)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body-size limit. Route-level auth is applied inside Routes so
	// the health and auth endpoints stay open.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBodyBytes))

	srvHandler := handler.NewServer(vehicleSvc, recordSvc, reportSvc, userSvc)
	r.Mount("/", srvHandler.Routes(middleware.NewAuthenticator(authSvc)))

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runMigrations applies all pending schema migrations embedded in the binary.
// goose needs a database/sql connection, so a short-lived one is opened here
// separately from the pgx pool.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}

	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "path", res.Source.Path)
	}
	return nil
}
