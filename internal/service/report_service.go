package service

import (
	"context"

	"flare/internal/domain"
)

func (s *Service) Submit(ctx context.Context, req domain.SubmitReportRequest) (domain.SubmitReportResponse, error) {
	return s.ReportService.Submit(ctx, req)
}

func (s *Service) ConfirmLocation(ctx context.Context, req domain.ConfirmLocationRequest) (domain.ConfirmLocationResponse, error) {
	return s.ReportService.ConfirmLocation(ctx, req)
}

func (s *Service) ReportTypes() []string {
	return s.ReportService.ReportTypes()
}
