package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"flare/internal/api"
	"flare/internal/config"
	"flare/internal/domain"
	"flare/internal/geocoder"
	"flare/internal/observability"
	"flare/internal/photo"
	"flare/internal/redis"
	"flare/internal/service"
	"flare/internal/storage/postgres"
	"flare/internal/workers"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Notifier   *service.Notifier
	Probe      *workers.ConnectivityProbe
	NotifyOn   bool
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	metrics := observability.NewMetrics()

	throttleStore := redis.NewThrottleStore(redisClient)
	notifyQueue := redis.NewNotifyQueue(redisClient.Client, "notifications:queue")

	geoClient := geocoder.NewClient(cfg.Geocoder.BaseURL, cfg.Geocoder.Timeout, logger)

	confirmer := service.NewConfirmer(domain.ServiceArea{
		Center:       domain.Coordinate{Lat: cfg.Fence.CenterLat, Lng: cfg.Fence.CenterLng},
		RadiusMeters: cfg.Fence.RadiusMeters,
		AddressMatch: cfg.Fence.AddressMatch,
	}, logger)

	reducer := photo.NewReducer(cfg.Photo.MaxDimension, cfg.Photo.StartQuality, cfg.Photo.ByteBudget)

	reportSvc := service.NewReportService(
		confirmer,
		reducer,
		geoClient,
		storage.UserRepo,
		storage.StationRepo,
		storage.ReportRepo,
		throttleStore,
		notifyQueue,
		clockwork.NewRealClock(),
		cfg.Throttle.Window,
		logger,
		metrics,
	)
	adminSvc := service.NewAdminStationService(storage.StationRepo, storage.ReportRepo)
	statsSvc := service.NewStatsService(storage.StatRepo)

	srv := service.NewService(reportSvc, adminSvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	notifier := service.NewNotifier(logger, cfg.Notify, notifyQueue)

	probe := workers.NewConnectivityProbe(logger, metrics, 30*time.Second)
	probe.Register("postgres", storage.Pool.Ping)
	probe.Register("redis", func(ctx context.Context) error {
		return redisClient.Client.Ping(ctx).Err()
	})

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Notifier:   notifier,
		Probe:      probe,
		NotifyOn:   !cfg.Notify.Disabled && cfg.Notify.URL != "",
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
