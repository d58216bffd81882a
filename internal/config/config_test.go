package config

import (
	"testing"

	"github.com/WillyV3/pilotprogress/internal/storage"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"STORE", "STORE_PATH", "REDIS_URL", "REDIS_KEY", "BOARD", "LOG_LEVEL", "LOG_JSON", "LOG_FILE"} {
		t.Setenv(envPrefix+k, "")
	}

	cfg := Load()
	if cfg.StoreDriver != storage.DriverJSON {
		t.Fatalf("StoreDriver=%q, want json", cfg.StoreDriver)
	}
	if cfg.LogLevel != "info" || cfg.LogJSON {
		t.Fatalf("log defaults=%q/%v", cfg.LogLevel, cfg.LogJSON)
	}
	if cfg.RedisKey != storage.DefaultRedisKey {
		t.Fatalf("RedisKey=%q", cfg.RedisKey)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PILOTPROGRESS_STORE", "SQLite")
	t.Setenv("PILOTPROGRESS_STORE_PATH", "/tmp/pp.db")
	t.Setenv("PILOTPROGRESS_REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("PILOTPROGRESS_BOARD", "/tmp/board.yaml")
	t.Setenv("PILOTPROGRESS_LOG_LEVEL", "debug")
	t.Setenv("PILOTPROGRESS_LOG_JSON", "yes")

	cfg := Load()
	opts := cfg.StoreOptions()
	if opts.Driver != storage.DriverSQLite || opts.Path != "/tmp/pp.db" {
		t.Fatalf("store options=%+v", opts)
	}
	if opts.RedisURL != "redis://localhost:6379/2" {
		t.Fatalf("RedisURL=%q", opts.RedisURL)
	}
	if cfg.BoardPath != "/tmp/board.yaml" || cfg.LogLevel != "debug" || !cfg.LogJSON {
		t.Fatalf("cfg=%+v", cfg)
	}
}
