// Package kvstore provides string-keyed stores of serialized blobs.
//
// A Store holds one value per key with no cross-key transactions. Callers
// own serialization; the store only moves strings.
package kvstore

import (
	"context"
	"errors"
)

// ErrEmptyKey is returned when a caller passes an empty key.
var ErrEmptyKey = errors.New("kvstore: empty key")

// Store is the capability the repositories depend on.
type Store interface {
	// Get returns the value stored at key. found is false when the key has
	// never been written; that is not an error.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set replaces the value stored at key.
	Set(ctx context.Context, key string, value string) error
}

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`
