/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/friendsincode/openhours/internal/api"
	"github.com/friendsincode/openhours/internal/config"
	"github.com/friendsincode/openhours/internal/db"
	"github.com/friendsincode/openhours/internal/hours"
	"github.com/friendsincode/openhours/internal/store"
	"github.com/friendsincode/openhours/internal/telemetry"
)

// Server bundles the HTTP surface and its dependencies.
type Server struct {
	cfg        *config.Config
	logger     zerolog.Logger
	router     chi.Router
	httpServer *http.Server
	metricsSrv *http.Server
	closers    []func() error

	store store.RecordStore
	hours *hours.Service
}

// New constructs the server and wires dependencies.
func New(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	for _, warn := range cfg.LegacyEnvWarnings {
		logger.Warn().Msg(warn)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(securityHeadersMiddleware)
	router.Use(telemetry.TracingMiddleware("openhours-api"))
	router.Use(telemetry.MetricsMiddleware)
	router.Use(middleware.Timeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second))

	srv := &Server{
		cfg:    cfg,
		logger: logger,
		router: router,
	}

	if err := srv.initStore(); err != nil {
		return nil, err
	}

	srv.hours = hours.NewService(srv.store, cfg.Location(), cfg.EarlyOpenMargin(), logger)
	api.New(srv.hours, cfg.DefaultScope, logger).Routes(router)

	srv.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTPBind, cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", telemetry.Handler())
	srv.metricsSrv = &http.Server{
		Addr:              cfg.MetricsBind,
		Handler:           metricsMux,
		ReadHeaderTimeout: 15 * time.Second,
	}

	return srv, nil
}

// initStore selects the record-store backend from configuration.
func (s *Server) initStore() error {
	switch s.cfg.StoreBackend {
	case config.StoreDynamoDB:
		st, err := store.NewDynamoStore(context.Background(), store.DynamoConfig{
			Region:          s.cfg.AWSRegion,
			Table:           s.cfg.ScheduleTable,
			Endpoint:        s.cfg.AWSEndpoint,
			AccessKeyID:     s.cfg.AWSAccessKeyID,
			SecretAccessKey: s.cfg.AWSSecretAccessKey,
		}, s.logger)
		if err != nil {
			return fmt.Errorf("init dynamodb store: %w", err)
		}
		s.store = st
		s.logger.Info().Str("table", s.cfg.ScheduleTable).Str("region", s.cfg.AWSRegion).Msg("dynamodb record store ready")

	case config.StorePostgres, config.StoreMySQL, config.StoreSQLite:
		database, err := db.Connect(s.cfg)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		s.DeferClose(func() error { return db.Close(database) })

		st := store.NewGormStore(database)
		if err := st.Migrate(); err != nil {
			return fmt.Errorf("migrate schedule table: %w", err)
		}
		s.store = st
		s.logger.Info().Str("backend", string(s.cfg.StoreBackend)).Msg("sql record store ready")

	default:
		return fmt.Errorf("unsupported store backend %q", s.cfg.StoreBackend)
	}
	return nil
}

// Store exposes the wired record store (used by the import command).
func (s *Server) Store() store.RecordStore { return s.store }

// HTTPServer returns the configured API server.
func (s *Server) HTTPServer() *http.Server { return s.httpServer }

// MetricsServer returns the Prometheus listener.
func (s *Server) MetricsServer() *http.Server { return s.metricsSrv }

// DeferClose registers cleanup to run on shutdown.
func (s *Server) DeferClose(fn func() error) {
	s.closers = append(s.closers, fn)
}

// Close runs registered cleanups in reverse order.
func (s *Server) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'; base-uri 'self'")

		// Only advertise HSTS for requests served over HTTPS.
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
