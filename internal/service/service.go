package service

import (
	"context"

	"flare/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type ReportService interface {
	ConfirmLocation(ctx context.Context, req domain.ConfirmLocationRequest) (domain.ConfirmLocationResponse, error)
	Submit(ctx context.Context, req domain.SubmitReportRequest) (domain.SubmitReportResponse, error)
	ReportTypes() []string
}

type AdminStationService interface {
	Create(ctx context.Context, req domain.CreateStationRequest) (string, error)
	List(ctx context.Context) ([]domain.Station, error)
	Get(ctx context.Context, key string) (*domain.Station, error)
	Update(ctx context.Context, key string, req domain.UpdateStationRequest) error
	Delete(ctx context.Context, key string) error
	ListReports(ctx context.Context, req domain.ListReportsRequest) ([]*domain.FireReport, int64, error)
	MarkReportRead(ctx context.Context, reportID string) error
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error)
}

type Service struct {
	ReportService       ReportService
	AdminStationService AdminStationService
	StatsService        StatsService
}

func NewService(
	reportService ReportService,
	adminStationService AdminStationService,
	statsService StatsService,
) *Service {
	return &Service{
		ReportService:       reportService,
		AdminStationService: adminStationService,
		StatsService:        statsService,
	}
}
