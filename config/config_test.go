package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "DB_DRIVER", "DB_URL", "ENV", "CACHE_TTL", "REDIS_URL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Addr() != ":3000" {
			t.Errorf("Addr = %q", cfg.Addr())
		}
		if cfg.DBDriver != DriverSQLite || cfg.DBURL != "healthcare.db" {
			t.Errorf("store = %s %s", cfg.DBDriver, cfg.DBURL)
		}
		if cfg.CacheTTL != 10*time.Minute {
			t.Errorf("CacheTTL = %v", cfg.CacheTTL)
		}
		if cfg.Redis.Enabled() || cfg.RateLimit.Enabled() {
			t.Error("cache and limiter should be off by default")
		}
		if cfg.IsDevelopment() {
			t.Error("IsDevelopment with ENV unset")
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("DB_DRIVER", DriverPostgres)
		t.Setenv("DB_URL", "postgres://localhost/healthbook")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		t.Setenv("RATE_LIMIT_RPS", "2.5")
		t.Setenv("RATE_LIMIT_BURST", "not-a-number")
		t.Setenv("CACHE_TTL", "30s")
		t.Setenv("ENV", "development")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Port != "8080" || cfg.DBDriver != DriverPostgres || cfg.CacheTTL != 30*time.Second {
			t.Errorf("cfg = %+v", cfg)
		}
		if !cfg.Redis.Enabled() || !cfg.RateLimit.Enabled() || !cfg.IsDevelopment() {
			t.Errorf("redis %v limiter %v dev %v", cfg.Redis.Enabled(), cfg.RateLimit.Enabled(), cfg.IsDevelopment())
		}
		if cfg.RateLimit.RequestsPerSecond != 2.5 || cfg.RateLimit.Burst != 30 {
			t.Errorf("rate limit = %+v", cfg.RateLimit)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv("DB_URL", "")

		t.Setenv("DB_DRIVER", "mysql")
		if _, err := Load(); err == nil {
			t.Error("unknown driver accepted")
		}

		t.Setenv("DB_DRIVER", DriverPostgres)
		if _, err := Load(); err == nil {
			t.Error("postgres without DB_URL accepted")
		}
	})
}
