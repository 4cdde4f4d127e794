package session

import (
	"context"
	"fmt"
	"time"
)

const (
	// Session payload: session:{id} -> JSON-encoded Data
	keySession = "session:%s"

	// CookieName carries the session id in the browser.
	CookieName = "session_id"
)

// DefaultTTL is how long an idle session survives. Refreshed on every save.
var DefaultTTL = 24 * time.Hour

func sessionKey(id string) string {
	return fmt.Sprintf(keySession, id)
}

// Store is the key-value backend holding serialized session payloads.
// Implementations must expire entries after the given TTL.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
