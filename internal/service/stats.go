package service

import (
	"context"

	"flare/internal/domain"
)

type StatsRepository interface {
	CountReports(ctx context.Context, minutes int) (int64, error)
	CountUniqueDevices(ctx context.Context, minutes int) (int64, error)
	CountPerStation(ctx context.Context, minutes int) (map[string]int64, error)
}

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	total, err := s.repo.CountReports(ctx, minutes)
	if err != nil {
		return nil, err
	}

	unique, err := s.repo.CountUniqueDevices(ctx, minutes)
	if err != nil {
		return nil, err
	}

	perStation, err := s.repo.CountPerStation(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.ReportStats{
		ReportCount:   total,
		UniqueDevices: unique,
		PerStation:    perStation,
		Minutes:       minutes,
	}, nil
}
