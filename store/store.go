// Package store persists the ledger between runs.
//
// A Store is a tiny string key-value interface with three backends: a JSON
// file (the default), a SQLite database and an in-memory map. Repository
// sits on top of a Store and maps the two slots the application uses,
// "budget" and "expenses", to and from a ledger.Snapshot.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

// Backend names accepted by Open and Path.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Backends lists every supported backend name.
var Backends = []string{BackendJSON, BackendSQLite, BackendMemory}

// ErrUnknownBackend is returned for a backend name Open does not know.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is durable string storage keyed by slot name.
type Store interface {
	// Get returns the value of key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the value of key.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// batchSetter is implemented by stores that can replace several slots at once.
type batchSetter interface {
	SetAll(ctx context.Context, values map[string]string) error
}

// Open returns the store for backend at path. The memory backend ignores path.
func Open(backend, path string) (Store, error) {
	logger().Debug("opening store", "backend", backend, "path", path)

	switch backend {
	case BackendJSON, "":
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Path returns where backend keeps its data inside dataDir.
func Path(backend, dataDir string) string {
	switch backend {
	case BackendSQLite:
		return filepath.Join(dataDir, "capita.db")
	case BackendMemory:
		return ""
	default:
		return filepath.Join(dataDir, "capita.json")
	}
}

func logger() *slog.Logger {
	return slog.Default().With("component", "store")
}
