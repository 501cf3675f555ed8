package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.HTTPPort != 3002 || cfg.GRPCPort != 50051 || cfg.MetricsPort != 9102 {
		t.Fatalf("unexpected default ports: %+v", cfg)
	}
	if cfg.ReservationTimeout != 30*time.Second {
		t.Fatalf("unexpected reservation timeout: %v", cfg.ReservationTimeout)
	}
	if cfg.IdempotencyTTL != 24*time.Hour {
		t.Fatalf("unexpected idempotency ttl: %v", cfg.IdempotencyTTL)
	}
	if cfg.RakeBasisPoints != 500 || cfg.RakeCapChips != 5 || cfg.RakeMinPotChips != 20 {
		t.Fatalf("unexpected rake defaults: %+v", cfg)
	}
}

func TestFromEnvOverridesAndValidation(t *testing.T) {
	t.Setenv("BALANCE_HTTP_PORT", "8080")
	t.Setenv("BALANCE_RESERVATION_TIMEOUT_MS", "1500")
	t.Setenv("BALANCE_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("load overridden config: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("http port override ignored: %d", cfg.HTTPPort)
	}
	if cfg.ReservationTimeout != 1500*time.Millisecond {
		t.Fatalf("reservation timeout override ignored: %v", cfg.ReservationTimeout)
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Fatalf("redis url override ignored: %q", cfg.RedisURL)
	}

	t.Setenv("BALANCE_RAKE_BASIS_POINTS", "20000")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected validation failure for rake basis points > 10000")
	}
}
