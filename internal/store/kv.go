// Package store persists small string values, such as the last search term,
// between runs.
package store

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// KV is a last-write-wins string store
type KV interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Options selects and configures a backend
type Options struct {
	Backend string
	Path    string
}

// Open creates the backend named by opts.Backend. An empty backend means file.
func Open(opts Options, logger *zap.SugaredLogger) (KV, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Path)
	case BackendBadger:
		return NewBadgerStore(BadgerConfig{Path: opts.Path, SyncWrites: true, Logger: logger})
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.Newf("unknown store backend %q", opts.Backend)
	}
}
