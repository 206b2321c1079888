package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"flare/internal/domain"
	"flare/internal/observability"
	"flare/pkg/e"
)

// External collaborators, specified at the interface only. Each network
// round-trip in a submission attempt goes through exactly one of these.
//
//go:generate mockgen -source=submitter.go -destination=mocks/mock_collaborators.go
type Geocoder interface {
	Resolve(ctx context.Context, coord domain.Coordinate) (string, error)
}

type UserRepository interface {
	GetByDevice(ctx context.Context, deviceID string) (*domain.User, error)
}

type StationRepository interface {
	// Snapshot returns the full candidate list for the current attempt.
	// Never cached: operating status can change between reports.
	Snapshot(ctx context.Context) ([]domain.Station, error)
}

type ReportRepository interface {
	// Push appends the report under its station's collection with a
	// generated key and returns that key.
	Push(ctx context.Context, report *domain.FireReport) (string, error)
}

type ThrottleStore interface {
	LastSubmission(ctx context.Context, deviceID string) (time.Time, error)
	SetLastSubmission(ctx context.Context, deviceID string, t time.Time) error
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, n domain.StationNotification) error
}

type PhotoReducer interface {
	Reduce(data []byte) ([]byte, error)
}

type submitService struct {
	confirmer *Confirmer
	reducer   PhotoReducer
	geocoder  Geocoder
	users     UserRepository
	stations  StationRepository
	reports   ReportRepository
	throttle  ThrottleStore
	queue     NotificationQueue
	clock     clockwork.Clock
	window    time.Duration
	logger    *slog.Logger
	metrics   *observability.Metrics
}

func NewReportService(
	confirmer *Confirmer,
	reducer PhotoReducer,
	geocoder Geocoder,
	users UserRepository,
	stations StationRepository,
	reports ReportRepository,
	throttle ThrottleStore,
	queue NotificationQueue,
	clock clockwork.Clock,
	window time.Duration,
	logger *slog.Logger,
	metrics *observability.Metrics,
) ReportService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &submitService{
		confirmer: confirmer,
		reducer:   reducer,
		geocoder:  geocoder,
		users:     users,
		stations:  stations,
		reports:   reports,
		throttle:  throttle,
		queue:     queue,
		clock:     clock,
		window:    window,
		logger:    logger,
		metrics:   metrics,
	}
}

func (s *submitService) ReportTypes() []string {
	out := make([]string, len(domain.FireTypes))
	copy(out, domain.FireTypes)
	return out
}

func (s *submitService) ConfirmLocation(ctx context.Context, req domain.ConfirmLocationRequest) (domain.ConfirmLocationResponse, error) {
	coord := domain.Coordinate{Lat: req.Lat, Lng: req.Lng}

	verdict := s.confirmCoordinate(ctx, coord)
	return domain.ConfirmLocationResponse{
		State:   verdict.State,
		Address: verdict.Address,
		MapLink: verdict.MapLink,
		Reason:  verdict.Reason,
	}, nil
}

// confirmCoordinate runs one full confirmation cycle: a fresh pending verdict,
// one reverse-geocode call, one fence check. A geocoder failure is not fatal;
// the distance path still applies with a blank address.
func (s *submitService) confirmCoordinate(ctx context.Context, coord domain.Coordinate) *domain.LocationVerdict {
	address, err := s.geocoder.Resolve(ctx, coord)
	if err != nil {
		s.logger.Warn("reverse geocode failed, falling back to distance check",
			slog.Float64("lat", coord.Lat),
			slog.Float64("lng", coord.Lng),
			slog.Any("error", err),
		)
		address = ""
	}
	return s.confirmer.Confirm(coord, address)
}

func (s *submitService) Submit(ctx context.Context, req domain.SubmitReportRequest) (domain.SubmitReportResponse, error) {
	s.logger.Info("report submission START",
		slog.String("device_id", req.DeviceID),
		slog.String("type", req.Type),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	// Local validation never touches the network.
	if strings.TrimSpace(req.DeviceID) == "" {
		return domain.SubmitReportResponse{}, fmt.Errorf("device id required: %w", e.ErrValidation)
	}
	incidentType := strings.TrimSpace(req.Type)
	if incidentType == "" {
		return domain.SubmitReportResponse{}, fmt.Errorf("incident type required: %w", e.ErrValidation)
	}
	if !domain.ValidFireType(incidentType) {
		return domain.SubmitReportResponse{}, fmt.Errorf("unknown incident type %q: %w", incidentType, e.ErrValidation)
	}

	photoRaw, err := decodePhoto(req.Photo)
	if err != nil {
		return domain.SubmitReportResponse{}, err
	}

	// Cheap gates first: the throttle read happens before any other
	// external round-trip of this attempt.
	now := s.clock.Now()
	last, err := s.throttle.LastSubmission(ctx, req.DeviceID)
	if err != nil {
		return domain.SubmitReportResponse{}, e.Transient("read throttle state", err)
	}
	decision := DecideThrottle(now, last, s.window)

	flow := NewFlow()
	if err := flow.Fire(EventSendRequested); err != nil {
		return domain.SubmitReportResponse{}, e.Wrap("submit", err)
	}

	coord := domain.Coordinate{Lat: req.Lat, Lng: req.Lng}
	verdict := s.confirmCoordinate(ctx, coord)
	if !verdict.Confirmed() {
		_ = flow.Fire(EventRejected)
		if s.metrics != nil {
			s.metrics.SubmissionsRejected.Inc()
		}
		return domain.SubmitReportResponse{}, fmt.Errorf("%s: %w", verdict.Reason, e.ErrOutsideServiceArea)
	}
	if err := flow.Fire(EventConfirmed); err != nil {
		return domain.SubmitReportResponse{}, e.Wrap("submit", err)
	}

	if !decision.Allowed {
		_ = flow.Fire(EventThrottleBlocked)
		if s.metrics != nil {
			s.metrics.SubmissionsThrottled.Inc()
		}
		s.logger.Info("submission throttled",
			slog.String("device_id", req.DeviceID),
			slog.Duration("wait", decision.Wait),
		)
		return domain.SubmitReportResponse{}, &e.ThrottledError{Wait: decision.Wait}
	}

	if err := flow.Fire(EventSubmitStarted); err != nil {
		return domain.SubmitReportResponse{}, e.Wrap("submit", err)
	}

	resp, err := s.submit(ctx, req, incidentType, coord, verdict, photoRaw, now)
	if err != nil {
		_ = flow.Fire(EventStepFailed)
		if s.metrics != nil {
			s.metrics.SubmissionsFailed.Inc()
		}
		return domain.SubmitReportResponse{}, err
	}
	_ = flow.Fire(EventPersistComplete)
	if s.metrics != nil {
		s.metrics.SubmissionsSent.Inc()
	}

	s.logger.Info("report submission SENT",
		slog.String("device_id", req.DeviceID),
		slog.String("report_id", resp.ReportID),
		slog.String("station", resp.StationName),
	)
	return resp, nil
}

// submit runs the Submitting leg: every step is an awaited external call, and
// a failure at any step aborts the rest without advancing the throttle.
func (s *submitService) submit(
	ctx context.Context,
	req domain.SubmitReportRequest,
	incidentType string,
	coord domain.Coordinate,
	verdict *domain.LocationVerdict,
	photoRaw []byte,
	now time.Time,
) (domain.SubmitReportResponse, error) {
	payload := ""
	if len(photoRaw) > 0 {
		reduced, err := s.reducer.Reduce(photoRaw)
		if err != nil {
			return domain.SubmitReportResponse{}, fmt.Errorf("reduce photo: %v: %w", err, e.ErrValidation)
		}
		payload = base64.StdEncoding.EncodeToString(reduced)
		if s.metrics != nil {
			s.metrics.PhotoPayloadBytes.Observe(float64(len(reduced)))
		}
	}

	user, err := s.users.GetByDevice(ctx, req.DeviceID)
	if err != nil {
		return domain.SubmitReportResponse{}, e.Transient("fetch reporter profile", err)
	}

	candidates, err := s.stations.Snapshot(ctx)
	if err != nil {
		return domain.SubmitReportResponse{}, e.Transient("fetch stations", err)
	}

	station, err := SelectStation(coord, candidates)
	if err != nil {
		return domain.SubmitReportResponse{}, err
	}

	report := &domain.FireReport{
		DeviceID:      req.DeviceID,
		Name:          user.Name,
		Contact:       user.Contact,
		Type:          incidentType,
		Latitude:      coord.Lat,
		Longitude:     coord.Lng,
		ExactLocation: verdict.Address,
		Location:      verdict.MapLink,
		PhotoPayload:  payload,
		Status:        domain.ReportPending,
		StationKey:    station.Key,
		StationName:   station.Name,
	}
	report.StampTimes(now)

	key, err := s.reports.Push(ctx, report)
	if err != nil {
		return domain.SubmitReportResponse{}, e.Transient("persist report", err)
	}

	// The record is durable from here; throttle and notification bookkeeping
	// must not fail the submission.
	if err := s.throttle.SetLastSubmission(ctx, req.DeviceID, now); err != nil {
		s.logger.Error("advance throttle failed",
			slog.String("device_id", req.DeviceID),
			slog.Any("error", err),
		)
	}

	notification := domain.StationNotification{
		ReportID:    key,
		StationKey:  station.Key,
		StationName: station.Name,
		Type:        incidentType,
		MapLink:     verdict.MapLink,
		QueuedAt:    now.UTC(),
	}
	if err := s.queue.Enqueue(ctx, notification); err != nil {
		s.logger.Error("enqueue station notification failed",
			slog.String("report_id", key),
			slog.Any("error", err),
		)
	}

	return domain.SubmitReportResponse{
		ReportID:    key,
		StationKey:  station.Key,
		StationName: station.Name,
		Status:      domain.ReportPending,
	}, nil
}

func decodePhoto(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("photo is not valid base64: %w", e.ErrValidation)
	}
	return raw, nil
}
