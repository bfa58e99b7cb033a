package sessionpool_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionpool"
)

// autoExpiryStore pretends to be a backend with native TTL support so the
// cleaner's skip path can be observed.
type autoExpiryStore struct {
	sessionpool.Store
	sweeps atomic.Int32
}

func (s *autoExpiryStore) DeleteExpired(ctx context.Context) ([]string, error) {
	s.sweeps.Add(1)
	return nil, nil
}

func (s *autoExpiryStore) AutoHandlesExpiry() bool {
	return true
}

func TestNewCleaner(t *testing.T) {
	t.Run("nil store", func(t *testing.T) {
		_, err := sessionpool.NewCleaner(nil, time.Minute, nil)
		assert.ErrorIs(t, err, sessionpool.ErrNilStore)
	})

	t.Run("defaults applied", func(t *testing.T) {
		cleaner, err := sessionpool.NewCleaner(sessionpool.NewMemoryStore(), 0, nil)
		require.NoError(t, err)
		assert.NotNil(t, cleaner)
	})
}

func TestCleaner_Run(t *testing.T) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("sweeps expired records until cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		store := sessionpool.NewMemoryStore()
		require.NoError(t, store.Save(ctx, "stale", "payload", time.Now().Add(-time.Hour)))
		require.NoError(t, store.Save(ctx, "live", "payload", time.Now().Add(time.Hour)))

		cleaner, err := sessionpool.NewCleaner(store, 10*time.Millisecond, discard)
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() { done <- cleaner.Run(ctx) }()

		assert.Eventually(t, func() bool {
			count, err := store.Count(context.Background())
			return err == nil && count == 1
		}, time.Second, 5*time.Millisecond)

		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)

		_, ok, err := store.Load(context.Background(), "live")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("skips backends that auto-handle expiry", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		store := &autoExpiryStore{}
		cleaner, err := sessionpool.NewCleaner(store, time.Millisecond, discard)
		require.NoError(t, err)

		assert.ErrorIs(t, cleaner.Run(ctx), context.DeadlineExceeded)
		assert.Zero(t, store.sweeps.Load())
	})
}
