package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"flare/internal/domain"
	"flare/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportHandler interface {
	ConfirmLocation(ctx context.Context, req domain.ConfirmLocationRequest) (domain.ConfirmLocationResponse, error)
	Submit(ctx context.Context, req domain.SubmitReportRequest) (domain.SubmitReportResponse, error)
	ReportTypes() []string
}

type Handler struct {
	logger  *slog.Logger
	Reports ReportHandler
}

func NewHandler(logger *slog.Logger, reports ReportHandler) *Handler {
	return &Handler{
		logger:  logger,
		Reports: reports,
	}
}

func (h *Handler) PublicConfirmLocation(w http.ResponseWriter, r *http.Request) {
	var req domain.ConfirmLocationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Reports.ConfirmLocation(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) PublicSubmitReport(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitReportRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Reports.Submit(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) PublicReportTypes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string][]string{"types": h.Reports.ReportTypes()})
}

// decodeJSON rejects malformed bodies, trailing garbage, and requests that
// fail struct validation. Returns false once the error response is written.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := validator.ValidateStruct(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}
