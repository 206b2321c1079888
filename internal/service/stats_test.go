package service_test

import (
	"context"
	"errors"
	"testing"

	"flare/internal/domain"
	"flare/internal/service"
)

type fakeStatsRepo struct {
	minutes int
	fail    bool
}

func (f *fakeStatsRepo) CountReports(_ context.Context, minutes int) (int64, error) {
	f.minutes = minutes
	if f.fail {
		return 0, errors.New("boom")
	}
	return 7, nil
}

func (f *fakeStatsRepo) CountUniqueDevices(_ context.Context, minutes int) (int64, error) {
	return 3, nil
}

func (f *fakeStatsRepo) CountPerStation(_ context.Context, minutes int) (map[string]int64, error) {
	return map[string]int64{"station-a": 5, "station-b": 2}, nil
}

func TestGetStats_DefaultsWindow(t *testing.T) {
	t.Parallel()

	repo := &fakeStatsRepo{}
	svc := service.NewStatsService(repo)

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.minutes != 60 {
		t.Fatalf("zero minutes must default to 60, got %d", repo.minutes)
	}
	if got.ReportCount != 7 || got.UniqueDevices != 3 || got.PerStation["station-a"] != 5 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestGetStats_RepoFailure(t *testing.T) {
	t.Parallel()

	svc := service.NewStatsService(&fakeStatsRepo{fail: true})
	if _, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 15}); err == nil {
		t.Fatalf("expected repo error to surface")
	}
}
