package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/admVeloHub/call-analytics/internal/aggregator"
	"github.com/admVeloHub/call-analytics/internal/api"
	"github.com/admVeloHub/call-analytics/internal/cache"
	"github.com/admVeloHub/call-analytics/internal/config"
	"github.com/admVeloHub/call-analytics/internal/ingest"
	"github.com/admVeloHub/call-analytics/internal/metrics"
	"github.com/admVeloHub/call-analytics/internal/storage"
	"github.com/admVeloHub/call-analytics/internal/websocket"
	"github.com/admVeloHub/call-analytics/pkg/middleware"
)

func main() {
	// Configure logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("default_period", cfg.DefaultPeriod).
		Str("log_level", cfg.LogLevel).
		Msg("starting call analytics server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Archive store (DynamoDB or noop, per DYNAMO_MODE)
	store, err := storage.NewStore(ctx, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage")
	}

	// WebSocket hub for dashboard snapshot pushes
	hub := websocket.NewHub(log.Logger)
	go hub.Run()
	wsHandler := websocket.NewHandler(hub, cfg, log.Logger)

	// In-memory record collection
	recordCache := cache.NewRecordCache()

	// Periodic export pull; disabled when no SOURCE_URL is configured, in
	// which case records arrive only through POST /internal/records
	var source aggregator.RecordSource
	if cfg.SourceURL != "" {
		source = ingest.NewSourceClient(cfg.SourceURL, cfg.SourceTimeout, log.Logger)
	}
	refreshService := aggregator.NewService(source, recordCache, store, hub, cfg, log.Logger)
	go refreshService.Start(ctx)

	// HTTP handlers
	dashboardHandler := api.NewDashboardHandler(recordCache, cfg, log.Logger)
	comparisonHandler := api.NewComparisonHandler(recordCache, log.Logger)
	recordsHandler := api.NewRecordsHandler(recordCache, store, refreshService, log.Logger)
	historyHandler := api.NewHistoryHandler(store, log.Logger)
	adminHandler := api.NewAdminHandler(refreshService, recordCache, store, log.Logger)

	// Create router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.Get("/health", healthHandler)
	r.Get("/metrics", metrics.Get().Handler())
	r.Get("/ws", wsHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", dashboardHandler.GetDashboard)
		r.Get("/comparison", comparisonHandler.GetComparison)
		r.Get("/records", historyHandler.GetRecordsByDate)
		r.Get("/operators/{operator}/history", historyHandler.GetOperatorHistory)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/refresh", adminHandler.TriggerRefresh)
			r.Post("/reset", adminHandler.Reset)
		})
	})

	// Internal routes for the telephony export uploader
	r.Route("/internal", func(r chi.Router) {
		r.Post("/records", recordsHandler.ReceiveRecords)
		r.Get("/records/stats", recordsHandler.GetStats)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Msgf("server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// healthHandler handles health check requests
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","service":"call-analytics"}`)
}
