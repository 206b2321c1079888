package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"flare/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AdminStations interface {
	Create(ctx context.Context, req domain.CreateStationRequest) (string, error)
	List(ctx context.Context) ([]domain.Station, error)
	Get(ctx context.Context, key string) (*domain.Station, error)
	Update(ctx context.Context, key string, req domain.UpdateStationRequest) error
	Delete(ctx context.Context, key string) error
	ListReports(ctx context.Context, req domain.ListReportsRequest) ([]*domain.FireReport, int64, error)
	MarkReportRead(ctx context.Context, reportID string) error
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error)
}

type Handler struct {
	logger   *slog.Logger
	Stations AdminStations
	Stats    StatsGetter
}

func NewHandler(logger *slog.Logger, stations AdminStations, stats StatsGetter) *Handler {
	return &Handler{
		logger:   logger,
		Stations: stations,
		Stats:    stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminStationCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("creating station",
		slog.String("name", req.Name),
		slog.String("status", string(req.Status)),
	)

	key, err := h.Stations.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("station created", slog.String("key", key))
	h.writeJSON(w, http.StatusCreated, map[string]string{"key": key})
}

func (h *Handler) AdminStationList(w http.ResponseWriter, r *http.Request) {
	stations, err := h.Stations.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"stations": stations})
}

func (h *Handler) AdminStationGet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	station, err := h.Stations.Get(r.Context(), key)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, station)
}

func (h *Handler) AdminStationUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	key := chi.URLParam(r, "key")

	var req domain.UpdateStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Stations.Update(r.Context(), key, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("station updated", slog.String("key", key))
	h.writeJSON(w, http.StatusOK, map[string]string{"key": key})
}

func (h *Handler) AdminStationDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	key := chi.URLParam(r, "key")

	if err := h.Stations.Delete(r.Context(), key); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("station deactivated", slog.String("key", key))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStationReports(w http.ResponseWriter, r *http.Request) {
	req := domain.ListReportsRequest{
		StationKey: chi.URLParam(r, "key"),
		Page:       parseInt(r.URL.Query().Get("page"), 1),
		Limit:      parseInt(r.URL.Query().Get("limit"), 20),
	}

	reports, total, err := h.Stations.ListReports(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"total":   total,
		"page":    req.Page,
		"limit":   req.Limit,
	})
}

func (h *Handler) AdminReportMarkRead(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id := chi.URLParam(r, "id")

	if err := h.Stations.MarkReportRead(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report marked read", slog.String("id", id))
	h.writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	req := domain.StatsRequest{
		Minutes: parseInt(r.URL.Query().Get("minutes"), 60),
	}

	stats, err := h.Stats.GetStats(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
