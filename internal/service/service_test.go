package service_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"

	"flare/internal/domain"
	"flare/internal/service"
	mock_service "flare/internal/service/mocks"
)

func TestService_Submit_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportService(ctrl)

	req := domain.SubmitReportRequest{
		DeviceID: "device-1",
		Type:     "Grass Fire",
		Lat:      7.45,
		Lng:      125.8,
	}
	want := domain.SubmitReportResponse{
		ReportID:    "key-1",
		StationKey:  "station-a",
		StationName: "Tagum Central",
		Status:      domain.ReportPending,
	}

	reports.EXPECT().
		Submit(gomock.Any(), req).
		Return(want, nil).
		Times(1)

	svc := service.NewService(reports, nil, nil)

	got, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestService_GetStats_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsService(ctrl)

	req := domain.StatsRequest{Minutes: 30}
	want := &domain.ReportStats{ReportCount: 4, UniqueDevices: 2, Minutes: 30}

	stats.EXPECT().
		GetStats(gomock.Any(), req).
		Return(want, nil).
		Times(1)

	svc := service.NewService(nil, nil, stats)

	got, err := svc.GetStats(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected stats: got=%+v want=%+v", got, want)
	}
}
