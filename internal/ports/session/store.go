package session

import (
	"context"
	"time"
)

// Store tracks revoked auth tokens. A token stays revoked until its
// own expiry, after which the entry may be dropped.
type Store interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
