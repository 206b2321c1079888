package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flare/internal/api/handlers/http/admin"
	"flare/internal/api/handlers/http/public"
	"flare/internal/api/handlers/http/system"
	"flare/internal/config"
	"flare/internal/middleware"
	"flare/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	adminHandler := admin.NewHandler(logger, svc.AdminStationService, svc.StatsService)
	publicHandler := public.NewHandler(logger, svc.ReportService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)

			ar.Route("/stations", func(sr chi.Router) {
				sr.Post("/", adminHandler.AdminStationCreate)
				sr.Get("/", adminHandler.AdminStationList)

				sr.Route("/{key}", func(kr chi.Router) {
					kr.Get("/", adminHandler.AdminStationGet)
					kr.Put("/", adminHandler.AdminStationUpdate)
					kr.Delete("/", adminHandler.AdminStationDelete)
					kr.Get("/reports", adminHandler.AdminStationReports)
				})
			})

			ar.Post("/reports/{id}/read", adminHandler.AdminReportMarkRead)
		})

		// PUBLIC
		api.Route("/location", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/confirm", publicHandler.PublicConfirmLocation)
		})
		api.Route("/reports", func(pr chi.Router) {
			pr.Use(middleware.Limit(5, 10, 5*time.Minute, logger))
			pr.Post("/", publicHandler.PublicSubmitReport)
		})
		api.Get("/report-types", publicHandler.PublicReportTypes)

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
