package cache

import (
	"context"
	"time"
)

// Entry is a cached payload together with its absolute expiry.
type Entry struct {
	Value     []byte
	ExpiresAt time.Time
}

// Fresh reports whether the entry is still valid at the supplied instant.
// An entry whose expiry equals now is already stale.
func (e Entry) Fresh(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

// Store persists opaque payloads keyed by a string with a fixed TTL.
//
// Get returns entries even when they have expired; freshness is the caller's
// decision so read-through consumers can distinguish "stale" from "absent".
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
