package config_test

import (
	"testing"
	"time"

	"flare/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Http.Port != ":8080" {
		t.Errorf("unexpected default port: %q", cfg.Http.Port)
	}
	if cfg.Fence.RadiusMeters != 11000 {
		t.Errorf("unexpected fence radius: %v", cfg.Fence.RadiusMeters)
	}
	if cfg.Fence.AddressMatch != "tagum" {
		t.Errorf("unexpected address match: %q", cfg.Fence.AddressMatch)
	}
	if cfg.Throttle.Window != 5*time.Minute {
		t.Errorf("unexpected throttle window: %s", cfg.Throttle.Window)
	}
	if cfg.Photo.MaxDimension != 1024 || cfg.Photo.StartQuality != 75 || cfg.Photo.ByteBudget != 400*1024 {
		t.Errorf("unexpected photo defaults: %+v", cfg.Photo)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("FENCE_RADIUS_METERS", "5000")
	t.Setenv("THROTTLE_WINDOW", "2m")
	t.Setenv("NOTIFY_DISABLED", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Http.Port != ":9090" {
		t.Errorf("port override ignored: %q", cfg.Http.Port)
	}
	if cfg.Fence.RadiusMeters != 5000 {
		t.Errorf("radius override ignored: %v", cfg.Fence.RadiusMeters)
	}
	if cfg.Throttle.Window != 2*time.Minute {
		t.Errorf("window override ignored: %s", cfg.Throttle.Window)
	}
	if !cfg.Notify.Disabled {
		t.Errorf("notify disable override ignored")
	}
}

func TestLoad_RejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")

	if _, err := config.Load(); err == nil {
		t.Fatalf("port without leading colon must be rejected")
	}
}

func TestLoad_RejectsBadThrottleWindow(t *testing.T) {
	t.Setenv("THROTTLE_WINDOW", "-1m")

	if _, err := config.Load(); err == nil {
		t.Fatalf("negative throttle window must be rejected")
	}
}
