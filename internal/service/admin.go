package service

import (
	"context"

	"flare/internal/domain"
)

type StationAdminRepository interface {
	Create(ctx context.Context, station *domain.Station) error
	List(ctx context.Context) ([]domain.Station, error)
	Get(ctx context.Context, key string) (*domain.Station, error)
	Update(ctx context.Context, station *domain.Station) error
	Delete(ctx context.Context, key string) error
}

type ReportAdminRepository interface {
	ListByStation(ctx context.Context, stationKey string, page, limit int) ([]*domain.FireReport, int64, error)
	MarkRead(ctx context.Context, reportID string) error
}

type AdminService struct {
	stations StationAdminRepository
	reports  ReportAdminRepository
}

func NewAdminStationService(stations StationAdminRepository, reports ReportAdminRepository) *AdminService {
	return &AdminService{stations: stations, reports: reports}
}

func (s *AdminService) Create(ctx context.Context, req domain.CreateStationRequest) (string, error) {
	status := req.Status
	if status == "" {
		status = domain.StationActive
	}
	st := &domain.Station{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    status,
	}
	if err := s.stations.Create(ctx, st); err != nil {
		return "", err
	}
	return st.Key, nil
}

func (s *AdminService) List(ctx context.Context) ([]domain.Station, error) {
	return s.stations.List(ctx)
}

func (s *AdminService) Get(ctx context.Context, key string) (*domain.Station, error) {
	return s.stations.Get(ctx, key)
}

func (s *AdminService) Update(ctx context.Context, key string, req domain.UpdateStationRequest) error {
	st, err := s.stations.Get(ctx, key)
	if err != nil {
		return err
	}
	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Latitude != nil {
		st.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		st.Longitude = *req.Longitude
	}
	if req.Status != nil {
		st.Status = *req.Status
	}
	return s.stations.Update(ctx, st)
}

func (s *AdminService) Delete(ctx context.Context, key string) error {
	return s.stations.Delete(ctx, key)
}

func (s *AdminService) ListReports(ctx context.Context, req domain.ListReportsRequest) ([]*domain.FireReport, int64, error) {
	return s.reports.ListByStation(ctx, req.StationKey, req.Page, req.Limit)
}

func (s *AdminService) MarkReportRead(ctx context.Context, reportID string) error {
	return s.reports.MarkRead(ctx, reportID)
}
