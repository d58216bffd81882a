package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the durable key-value state behind the tracker. Values are plain
// strings; callers own the encoding.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Clear removes every key written through this store.
	Clear(ctx context.Context) error
	Close() error
}

// Driver names accepted by Open.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Options selects and configures a store driver.
type Options struct {
	Driver   string
	Path     string // json and sqlite
	RedisURL string
	RedisKey string
}

// DefaultPath returns the per-driver default file under the home directory.
func DefaultPath(driver string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	switch driver {
	case DriverSQLite:
		return filepath.Join(home, ".pilotprogress.db"), nil
	default:
		return filepath.Join(home, ".pilotprogress.json"), nil
	}
}

// Open returns the store named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	path := opts.Path
	if path == "" && (opts.Driver == DriverJSON || opts.Driver == DriverSQLite || opts.Driver == "") {
		p, err := DefaultPath(opts.Driver)
		if err != nil {
			return nil, err
		}
		path = p
	}

	var (
		s   Store
		err error
	)
	switch opts.Driver {
	case DriverJSON, "":
		s, err = OpenFile(path)
	case DriverSQLite:
		s, err = OpenSQLite(ctx, path)
	case DriverRedis:
		s, err = OpenRedis(ctx, opts.RedisURL, opts.RedisKey)
	case DriverMemory:
		s = NewMemory()
	default:
		err = fmt.Errorf("unknown store driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
