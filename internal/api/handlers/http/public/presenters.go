package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"flare/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	var throttled *e.ThrottledError
	if errors.As(err, &throttled) {
		l.Info("submission throttled", slog.Duration("wait", throttled.Wait))
		h.writeJSON(w, http.StatusTooManyRequests, map[string]any{
			"error":               "submission throttled",
			"retry_after_seconds": int(throttled.Wait.Seconds()),
		})
		return
	}

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrValidation):
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, e.ErrOutsideServiceArea):
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "outside service area"})
	case errors.Is(err, e.ErrNoStationAvailable):
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no station available"})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrTransient):
		h.writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
