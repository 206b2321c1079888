package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"flare/internal/config"
	"flare/internal/domain"
	"flare/pkg/e"
)

type NotificationSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (domain.StationNotification, error)
}

// Notifier drains the station notification queue and pings the dispatch
// endpoint for each persisted report. Best-effort with bounded retry;
// dropped notifications never affect the stored report.
type Notifier struct {
	logger *slog.Logger
	cfg    config.NotifyConfig
	queue  NotificationSource
	http   *http.Client
}

func NewNotifier(logger *slog.Logger, cfg config.NotifyConfig, q NotificationSource) *Notifier {
	return &Notifier{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *Notifier) Run(ctx context.Context) {
	n.logger.Info("notifier STARTED", slog.String("url", n.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			n.logger.Info("notifier STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		notification, err := n.queue.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			n.logger.Error("dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		n.logger.Info("sending station notification",
			slog.String("report_id", notification.ReportID),
			slog.String("station", notification.StationName),
		)
		n.sendWithRetry(ctx, notification)
	}
}

func (n *Notifier) sendWithRetry(ctx context.Context, p domain.StationNotification) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		n.logger.Error("marshal notification failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			n.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.URL, bytes.NewReader(body))
		if err != nil {
			n.logger.Error("create notification request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := n.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		n.logger.Warn("station notification failed",
			slog.Int("attempt", attempt),
			slog.String("url", n.cfg.URL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
