package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aryanmangrule402/docassist/internal/api/router"
	"github.com/aryanmangrule402/docassist/internal/appointments"
	"github.com/aryanmangrule402/docassist/internal/auth"
	appconfig "github.com/aryanmangrule402/docassist/internal/config"
	"github.com/aryanmangrule402/docassist/internal/directory"
	"github.com/aryanmangrule402/docassist/internal/doctors"
	"github.com/aryanmangrule402/docassist/internal/notify"
	"github.com/aryanmangrule402/docassist/internal/observability/metrics"
	"github.com/aryanmangrule402/docassist/internal/patients"
	"github.com/aryanmangrule402/docassist/internal/places"
	"github.com/aryanmangrule402/docassist/internal/triage"
	appmigrations "github.com/aryanmangrule402/docassist/migrations"
	"github.com/aryanmangrule402/docassist/pkg/logging"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	var logger *logging.Logger
	if cfg.Env == "development" {
		logger = logging.NewText(cfg.LogLevel)
	} else {
		logger = logging.New(cfg.LogLevel)
	}
	logger.Info("starting docassist API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database schema up to date")

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to reach database", "error", err)
		os.Exit(1)
	}

	// Repositories
	doctorsRepo := doctors.NewPostgresRepository(pool)
	patientsRepo := patients.NewPostgresRepository(pool)
	apptsRepo := appointments.NewPostgresRepository(pool)

	// Metrics
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	// Gemini symptom analysis
	gemini, err := triage.NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.GeminiModelID)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	defer gemini.Close()
	analyzer := triage.NewAnalyzer(gemini, logger, m)

	// Serper places search (optional)
	var searcher directory.PlacesSearcher
	if cfg.SerperAPIKey != "" {
		client, err := places.NewClient(cfg.SerperAPIKey, logger, places.WithTimeout(cfg.SerperTimeout))
		if err != nil {
			logger.Error("failed to create places client", "error", err)
			os.Exit(1)
		}
		searcher = client
	} else {
		logger.Warn("SERPER_API_KEY not set, directory supplementation disabled")
	}

	// Email (optional)
	var emailSender notify.EmailSender
	if smtp := notify.NewSMTPSender(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Address:  cfg.EmailAddress,
		Password: cfg.EmailPassword,
	}, logger); smtp != nil {
		emailSender = smtp
	} else {
		logger.Warn("EMAIL_ADDRESS not set, using stub email sender")
		emailSender = notify.NewStubEmailSender(logger)
	}

	// Services and handlers
	discovery := directory.NewService(doctorsRepo, searcher, logger, m)
	booking := appointments.NewService(apptsRepo, doctorsRepo, patientsRepo, emailSender, logger, m)

	routerCfg := &router.Config{
		Logger:              logger,
		TriageHandler:       triage.NewHandler(analyzer, logger),
		DirectoryHandler:    directory.NewHandler(discovery, logger),
		AppointmentsHandler: appointments.NewHandler(booking, apptsRepo, logger),
		AuthHandler:         auth.NewHandler(patientsRepo, doctorsRepo, logger),
		MetricsHandler:      metricsHandler,
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// runMigrations applies the embedded migrations so a fresh database is usable
// without a separate migrate step.
func runMigrations(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	dbDriver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return err
	}
	srcDriver, err := iofs.New(appmigrations.FS, ".")
	if err != nil {
		return err
	}
	migrator, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return err
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	srcErr, dbErr := migrator.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}
