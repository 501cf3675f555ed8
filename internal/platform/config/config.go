// Package config loads the balance service configuration from the
// environment. All variables carry the BALANCE_ prefix and fall back to the
// documented deployment defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort    int
	GRPCPort    int
	MetricsPort int

	// RedisURL selects the Redis store backend when set; empty runs the
	// in-memory backend (single-instance deployments and tests).
	RedisURL string
	// DatabaseURL enables the Postgres write-behind archive when set.
	DatabaseURL string

	ReservationTimeout         time.Duration
	IdempotencyTTL             time.Duration
	IdempotencyCacheMaxEntries int
	ReservationExpiryInterval  time.Duration
	LedgerVerificationInterval time.Duration

	RakeBasisPoints int64
	RakeCapChips    int64
	RakeMinPotChips int64

	LogLevel string
	// OTELExporterEndpoint is consumed by the tracing sidecar deployment, not
	// by this process; it is parsed here so one config surface covers the pod.
	OTELExporterEndpoint string
	JWTSecret            string

	TLSEnabled           bool
	TLSCertFile          string
	TLSKeyFile           string
	TLSClientCAFile      string
	TLSRequireClientCert bool
}

func FromEnv() (Config, error) {
	cfg := Config{
		HTTPPort:                   envInt("BALANCE_HTTP_PORT", 3002),
		GRPCPort:                   envInt("BALANCE_GRPC_PORT", 50051),
		MetricsPort:                envInt("BALANCE_METRICS_PORT", 9102),
		RedisURL:                   envOr("BALANCE_REDIS_URL", ""),
		DatabaseURL:                envOr("BALANCE_DATABASE_URL", ""),
		ReservationTimeout:         envMillis("BALANCE_RESERVATION_TIMEOUT_MS", 30_000),
		IdempotencyTTL:             envMillis("BALANCE_IDEMPOTENCY_TTL_MS", 86_400_000),
		IdempotencyCacheMaxEntries: envInt("BALANCE_IDEMPOTENCY_CACHE_MAX_ENTRIES", 100_000),
		ReservationExpiryInterval:  envMillis("BALANCE_RESERVATION_EXPIRY_INTERVAL_MS", 5_000),
		LedgerVerificationInterval: envMillis("BALANCE_LEDGER_VERIFICATION_INTERVAL_MS", 60_000),
		RakeBasisPoints:            envInt64("BALANCE_RAKE_BASIS_POINTS", 500),
		RakeCapChips:               envInt64("BALANCE_RAKE_CAP_CHIPS", 5),
		RakeMinPotChips:            envInt64("BALANCE_RAKE_MIN_POT_CHIPS", 20),
		LogLevel:                   envOr("BALANCE_LOG_LEVEL", "info"),
		OTELExporterEndpoint:       envOr("BALANCE_OTEL_EXPORTER_ENDPOINT", ""),
		JWTSecret:                  envOr("BALANCE_JWT_SECRET", ""),
		TLSEnabled:                 envOr("BALANCE_TLS_ENABLED", "false") == "true",
		TLSCertFile:                envOr("BALANCE_TLS_CERT_FILE", ""),
		TLSKeyFile:                 envOr("BALANCE_TLS_KEY_FILE", ""),
		TLSClientCAFile:            envOr("BALANCE_TLS_CLIENT_CA_FILE", ""),
		TLSRequireClientCert:       envOr("BALANCE_TLS_REQUIRE_CLIENT_CERT", "false") == "true",
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.RakeBasisPoints > 10_000 {
		return fmt.Errorf("rake basis points %d exceed 10000", c.RakeBasisPoints)
	}
	if c.ReservationTimeout <= 0 {
		return fmt.Errorf("reservation timeout must be positive")
	}
	if c.IdempotencyTTL <= 0 {
		return fmt.Errorf("idempotency ttl must be positive")
	}
	if c.IdempotencyCacheMaxEntries <= 0 {
		return fmt.Errorf("idempotency cache max entries must be positive")
	}
	for _, p := range []int{c.HTTPPort, c.GRPCPort, c.MetricsPort} {
		if p <= 0 || p > 65535 {
			return fmt.Errorf("port %d out of range", p)
		}
	}
	return nil
}

func envOr(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func envMillis(key string, def int64) time.Duration {
	return time.Duration(envInt64(key, def)) * time.Millisecond
}
