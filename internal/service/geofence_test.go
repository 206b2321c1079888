package service_test

import (
	"bytes"
	"log/slog"
	"testing"

	"flare/internal/domain"
	"flare/internal/service"
)

func testArea() domain.ServiceArea {
	return domain.ServiceArea{
		Center:       domain.Coordinate{Lat: 7.447725, Lng: 125.804150},
		RadiusMeters: 11000,
		AddressMatch: "tagum",
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestConfirm_WithinRadius_BlankAddress(t *testing.T) {
	t.Parallel()

	c := service.NewConfirmer(testArea(), testLogger())

	coord := domain.Coordinate{Lat: 7.447725, Lng: 125.804150}
	v := c.Confirm(coord, "")

	if !v.Confirmed() {
		t.Fatalf("expected confirmed verdict, got %+v", v)
	}
	if v.MapLink != coord.MapLink() {
		t.Fatalf("unexpected map link: %q", v.MapLink)
	}
	// No readable address: the stored address falls back to the map link.
	if v.Address != v.MapLink {
		t.Fatalf("expected address to fall back to map link, got address=%q link=%q", v.Address, v.MapLink)
	}
}

func TestConfirm_AddressMatch_OverridesDistance(t *testing.T) {
	t.Parallel()

	c := service.NewConfirmer(testArea(), testLogger())

	// Manila is roughly 960 km from the fence center.
	coord := domain.Coordinate{Lat: 14.5995, Lng: 120.9842}
	v := c.Confirm(coord, "Purok 5, Tagum City, Davao del Norte")

	if !v.Confirmed() {
		t.Fatalf("expected address match to confirm, got %+v", v)
	}
	if v.Address != "Purok 5, Tagum City, Davao del Norte" {
		t.Fatalf("expected resolved address to be kept, got %q", v.Address)
	}
}

func TestConfirm_AddressMatch_CaseInsensitive(t *testing.T) {
	t.Parallel()

	c := service.NewConfirmer(testArea(), testLogger())

	v := c.Confirm(domain.Coordinate{Lat: 14.5995, Lng: 120.9842}, "TAGUM city proper")
	if !v.Confirmed() {
		t.Fatalf("expected case-insensitive address match, got %+v", v)
	}
}

func TestConfirm_ZeroCoordinate_NeverDistanceMatched(t *testing.T) {
	t.Parallel()

	// Fence centered on the origin would otherwise contain (0,0).
	area := domain.ServiceArea{
		Center:       domain.Coordinate{Lat: 0.0001, Lng: 0.0001},
		RadiusMeters: 50000,
		AddressMatch: "tagum",
	}
	c := service.NewConfirmer(area, testLogger())

	v := c.Confirm(domain.Coordinate{}, "")
	if v.Confirmed() {
		t.Fatalf("zero coordinate must never confirm by distance")
	}
	if v.State != domain.VerdictRejected {
		t.Fatalf("expected rejected state, got %q", v.State)
	}
}

func TestConfirm_OutsideRadius_NoMatch_Rejected(t *testing.T) {
	t.Parallel()

	c := service.NewConfirmer(testArea(), testLogger())

	v := c.Confirm(domain.Coordinate{Lat: 14.5995, Lng: 120.9842}, "Quiapo, Manila")
	if v.Confirmed() {
		t.Fatalf("expected rejection, got %+v", v)
	}
	if v.Reason == "" {
		t.Fatalf("rejected verdict must carry a reason")
	}
}

func TestVerdict_SingleTransition(t *testing.T) {
	t.Parallel()

	v := domain.NewPendingVerdict()
	if err := v.Confirm("addr", "link"); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	if err := v.Reject("late"); err != domain.ErrVerdictSettled {
		t.Fatalf("expected ErrVerdictSettled, got %v", err)
	}
	if err := v.Confirm("other", "link"); err != domain.ErrVerdictSettled {
		t.Fatalf("expected ErrVerdictSettled, got %v", err)
	}
}
