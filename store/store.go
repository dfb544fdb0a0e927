// Package store provides the key/value backends records are persisted to.
//
// Three backends are available:
//   - Dir: a folder with one file per key, human-readable and git-friendly.
//   - SQLite: a single table in a SQLite database.
//   - Memory: a map, lost when the process exits.
package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Store is a key/value store that must be closed after use.
type Store interface {
	// Get returns the value stored under key, and false if there is none.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Open opens the store described by dsn:
//
//	dir:<path>      a Dir store
//	sqlite:<file>   a SQLite store
//	mem:            a Memory store
//
// Any other dsn is the path of a Dir store.
func Open(dsn string) (Store, error) {
	scheme, rest, found := strings.Cut(dsn, ":")
	if !found {
		return OpenDir(dsn)
	}
	switch scheme {
	case "dir":
		return OpenDir(rest)
	case "sqlite":
		return OpenSQLite(rest)
	case "mem":
		return NewMemory(), nil
	default:
		return OpenDir(dsn)
	}
}

var validKey = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// checkKey rejects keys that cannot be used as a file name.
func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
