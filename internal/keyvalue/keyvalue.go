// Package keyvalue defines the persistence port the record stores are
// written against: a named-slot string medium with Get and Set. Production
// media (redis, gorm-backed sql, s3) and the in-memory test medium all
// implement the same interface.
package keyvalue

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the slot has never been written.
var ErrNotFound = errors.New("keyvalue: slot not found")

// Store is a slot-keyed persistence medium. Implementations must treat Set
// as a full overwrite of the slot.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
