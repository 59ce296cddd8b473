// Package cache stores computed balance reports. Entries are keyed by group
// and ledger version, so a ledger change makes old entries unreachable
// instead of requiring invalidation.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Cache defines a generic cache interface.
type Cache[T any] interface {
	// Get retrieves a value. A miss is (zero, false, nil).
	Get(ctx context.Context, key string) (T, bool, error)

	// Set stores a value.
	Set(ctx context.Context, key string, value T) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error
}

// ReportKey is the cache key for a group's balance report at a ledger version.
func ReportKey(groupID string, ledgerVersion int64) string {
	return fmt.Sprintf("report:%s:%d", groupID, ledgerVersion)
}

// Cleaner is implemented by caches that hold expired entries in memory.
type Cleaner interface {
	CleanExpired() int
}

// RunCleanup periodically evicts expired entries until ctx is cancelled.
func RunCleanup(ctx context.Context, c Cleaner, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.CleanExpired(); n > 0 {
				logger.Debug("Evicted expired cache entries", "count", n)
			}
		}
	}
}
