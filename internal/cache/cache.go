// Package cache is a tag-indexed response cache backing the storefront's
// on-demand revalidation. Entries are keyed by request URL, carry the
// cache tags of the content they hold, and are dropped when any of those
// tags is invalidated.
package cache

import (
	"context"
	"time"
)

type Entry struct {
	Status      int       `json:"status"`
	ContentType string    `json:"contentType"`
	Body        []byte    `json:"body"`
	Tags        []string  `json:"tags"`
	StoredAt    time.Time `json:"storedAt"`
}

type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, e Entry, ttl time.Duration) error
	// Invalidate drops every entry holding any of the tags and reports
	// how many entries were removed.
	Invalidate(ctx context.Context, tags ...string) (int, error)
	Ping(ctx context.Context) error
}
