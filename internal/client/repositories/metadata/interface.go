// Package metadata is the durable key-value storage behind the session
// store. Values are opaque bytes; an absent key reads as (nil, nil).
//
// Two backends are provided: SQLiteRepository (the default, a local file
// migrated with goose) and RedisRepository (for shared kiosks or several
// terminals working against one session).
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// SetMany writes all values or none of them.
	SetMany(ctx context.Context, values map[string][]byte) error
	// Delete removes the given keys; absent keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
