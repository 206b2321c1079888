package service_test

import (
	"errors"
	"strconv"
	"testing"

	"flare/internal/domain"
	"flare/internal/service"
	"flare/pkg/e"
)

// Offsets along latitude from the reporter position; 0.008983 degrees of
// latitude is close to 1 km on the ground.
var reporterAt = domain.Coordinate{Lat: 7.447725, Lng: 125.804150}

func stationAtKm(name string, km float64, status domain.StationStatus) domain.Station {
	lat := reporterAt.Lat + km*0.008983
	return domain.Station{
		Key:       name,
		Name:      name,
		Latitude:  floatStr(lat),
		Longitude: floatStr(reporterAt.Lng),
		Status:    status,
	}
}

func floatStr(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func TestSelectStation_NoCandidates(t *testing.T) {
	t.Parallel()

	_, err := service.SelectStation(reporterAt, nil)
	if !errors.Is(err, e.ErrNoStationAvailable) {
		t.Fatalf("expected ErrNoStationAvailable, got %v", err)
	}
}

func TestSelectStation_NearestActiveWins(t *testing.T) {
	t.Parallel()

	candidates := []domain.Station{
		stationAtKm("inactive-5km", 5, domain.StationInactive),
		stationAtKm("active-9km", 9, domain.StationActive),
		stationAtKm("inactive-1km", 1, domain.StationInactive),
	}

	got, err := service.SelectStation(reporterAt, candidates)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Key != "active-9km" {
		t.Fatalf("expected the farther Active station to win, got %q", got.Key)
	}
}

func TestSelectStation_AllInactive_NearestWins(t *testing.T) {
	t.Parallel()

	candidates := []domain.Station{
		stationAtKm("inactive-5km", 5, domain.StationInactive),
		stationAtKm("inactive-1km", 1, domain.StationInactive),
		stationAtKm("inactive-9km", 9, domain.StationInactive),
	}

	got, err := service.SelectStation(reporterAt, candidates)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Key != "inactive-1km" {
		t.Fatalf("expected the nearest station as fallback, got %q", got.Key)
	}
}

func TestSelectStation_UnparseableCoordinatesSkipped(t *testing.T) {
	t.Parallel()

	broken := domain.Station{
		Key:       "broken",
		Name:      "broken",
		Latitude:  "not-a-number",
		Longitude: "125.8",
		Status:    domain.StationActive,
	}
	candidates := []domain.Station{
		broken,
		stationAtKm("active-5km", 5, domain.StationActive),
	}

	got, err := service.SelectStation(reporterAt, candidates)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Key != "active-5km" {
		t.Fatalf("expected parseable station, got %q", got.Key)
	}
}

func TestSelectStation_OnlyUnparseable(t *testing.T) {
	t.Parallel()

	candidates := []domain.Station{
		{Key: "a", Latitude: "", Longitude: ""},
		{Key: "b", Latitude: "7.4", Longitude: "east"},
	}

	_, err := service.SelectStation(reporterAt, candidates)
	if !errors.Is(err, e.ErrNoStationAvailable) {
		t.Fatalf("expected ErrNoStationAvailable, got %v", err)
	}
}

func TestSelectStation_StatusCaseInsensitive(t *testing.T) {
	t.Parallel()

	st := stationAtKm("lowercase-active", 3, domain.StationStatus("active"))
	got, err := service.SelectStation(reporterAt, []domain.Station{
		stationAtKm("inactive-1km", 1, domain.StationInactive),
		st,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Key != "lowercase-active" {
		t.Fatalf("expected case-insensitive Active match, got %q", got.Key)
	}
}
