package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if s.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", s.Port)
	}
	if s.StoreName != "Green Grocer" {
		t.Errorf("expected default store name, got %q", s.StoreName)
	}
	if s.NotificationTTL != 3*time.Second {
		t.Errorf("expected 3s notification ttl, got %s", s.NotificationTTL)
	}
	if s.StatsCompletedBaseline != 8 || s.StatsAvgPrepMinutes != 14 {
		t.Errorf("unexpected stats defaults: %d, %d", s.StatsCompletedBaseline, s.StatsAvgPrepMinutes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("VANHUB_PORT", "9090")
	t.Setenv("VANHUB_STORE_NAME", "Spice Lane")
	t.Setenv("VANHUB_NOTIFICATION_TTL", "500ms")
	t.Setenv("VANHUB_INSIGHT_MOCK", "true")

	s, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if s.Port != 9090 || s.StoreName != "Spice Lane" {
		t.Errorf("overrides not applied: %+v", s)
	}
	if s.NotificationTTL != 500*time.Millisecond {
		t.Errorf("expected 500ms ttl, got %s", s.NotificationTTL)
	}
	if !s.InsightMock {
		t.Error("expected insight mock enabled")
	}
}
