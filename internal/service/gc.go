package service

import (
	"context"
	"sync"
	"time"

	"github.com/ryuk156/backend-AOL/internal/logger"
)

// TokenGarbageCollector purges expired verification tokens in the background.
// Lookups already filter on expiry, so the purge only keeps the table small;
// its cadence never affects correctness.
type TokenGarbageCollector struct {
	tokens TokenStorage

	mu        sync.Mutex
	lastStats CleanupStats
}

// CleanupStats tracks metrics from the last garbage collection run.
type CleanupStats struct {
	RunAt         time.Time
	TokensDeleted int64
	DurationMs    int64
}

func NewTokenGarbageCollector(tokens TokenStorage) *TokenGarbageCollector {
	return &TokenGarbageCollector{tokens: tokens}
}

// StartBackgroundCleanup starts a goroutine that runs cleanup periodically
// until the context is cancelled.
func (gc *TokenGarbageCollector) StartBackgroundCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	logger.Log.Info("started verification token cleanup", "interval", interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := gc.RunCleanup(); err != nil {
					logger.Log.Error("token cleanup failed", "error", err)
				} else {
					stats := gc.GetLastCleanupStats()
					logger.Log.Info("token cleanup completed",
						"deleted", stats.TokensDeleted,
						"duration_ms", stats.DurationMs)
				}
			case <-ctx.Done():
				logger.Log.Info("token cleanup shutting down")
				return
			}
		}
	}()
}

// RunCleanup executes a single purge. It can be called manually for
// maintenance or testing.
func (gc *TokenGarbageCollector) RunCleanup() error {
	start := time.Now()

	deleted, err := gc.tokens.DeleteExpiredTokens()
	if err != nil {
		return err
	}

	gc.mu.Lock()
	gc.lastStats = CleanupStats{
		RunAt:         start,
		TokensDeleted: deleted,
		DurationMs:    time.Since(start).Milliseconds(),
	}
	gc.mu.Unlock()
	return nil
}

func (gc *TokenGarbageCollector) GetLastCleanupStats() CleanupStats {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.lastStats
}
