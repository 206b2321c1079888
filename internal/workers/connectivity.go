package workers

import (
	"context"
	"log/slog"
	"time"

	"flare/internal/observability"
)

// ConnectivityProbe periodically pings the backing stores and publishes the
// result as a gauge. Purely informational: pipeline correctness never depends
// on it. The loop is timer-driven and stops with the hosting context so no
// orphaned tickers outlive a session.
type ConnectivityProbe struct {
	logger   *slog.Logger
	metrics  *observability.Metrics
	interval time.Duration
	probes   map[string]func(context.Context) error
}

func NewConnectivityProbe(logger *slog.Logger, metrics *observability.Metrics, interval time.Duration) *ConnectivityProbe {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ConnectivityProbe{
		logger:   logger,
		metrics:  metrics,
		interval: interval,
		probes:   make(map[string]func(context.Context) error),
	}
}

// Register adds a named store probe. Not safe to call after Run starts.
func (p *ConnectivityProbe) Register(name string, probe func(context.Context) error) {
	p.probes[name] = probe
}

func (p *ConnectivityProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("connectivity probe stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			p.checkAll(ctx)
		}
	}
}

func (p *ConnectivityProbe) checkAll(ctx context.Context) {
	for name, probe := range p.probes {
		probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := probe(probeCtx)
		cancel()

		online := 1.0
		if err != nil {
			online = 0
			p.logger.Warn("store unreachable",
				slog.String("store", name),
				slog.Any("error", err),
			)
		}
		if p.metrics != nil {
			p.metrics.StoreOnline.WithLabelValues(name).Set(online)
		}
	}
}
