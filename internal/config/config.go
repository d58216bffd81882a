package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/WillyV3/pilotprogress/internal/storage"
)

const envPrefix = "PILOTPROGRESS_"

// Config holds runtime settings for the CLI and board.
type Config struct {
	StoreDriver string
	StorePath   string
	RedisURL    string
	RedisKey    string
	BoardPath   string
	LogLevel    string
	LogJSON     bool
	LogFile     string
}

// Load reads .env files (if present) and PILOTPROGRESS_* variables.
// Missing values fall back to defaults; paths left empty are resolved by the
// storage and board packages.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		StoreDriver: strings.ToLower(getEnv("STORE", storage.DriverJSON)),
		StorePath:   getEnv("STORE_PATH", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		RedisKey:    getEnv("REDIS_KEY", storage.DefaultRedisKey),
		BoardPath:   getEnv("BOARD", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogJSON:     getEnvBool("LOG_JSON", false),
		LogFile:     getEnv("LOG_FILE", ""),
	}
}

// StoreOptions converts the config into storage options.
func (c *Config) StoreOptions() storage.Options {
	return storage.Options{
		Driver:   c.StoreDriver,
		Path:     c.StorePath,
		RedisURL: c.RedisURL,
		RedisKey: c.RedisKey,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
