package service

import (
	"context"

	"flare/internal/domain"
)

func (s *Service) CreateStation(ctx context.Context, req domain.CreateStationRequest) (string, error) {
	return s.AdminStationService.Create(ctx, req)
}

func (s *Service) ListStations(ctx context.Context) ([]domain.Station, error) {
	return s.AdminStationService.List(ctx)
}

func (s *Service) GetStation(ctx context.Context, key string) (*domain.Station, error) {
	return s.AdminStationService.Get(ctx, key)
}

func (s *Service) UpdateStation(ctx context.Context, key string, req domain.UpdateStationRequest) error {
	return s.AdminStationService.Update(ctx, key, req)
}

func (s *Service) DeleteStation(ctx context.Context, key string) error {
	return s.AdminStationService.Delete(ctx, key)
}

func (s *Service) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error) {
	return s.StatsService.GetStats(ctx, req)
}
