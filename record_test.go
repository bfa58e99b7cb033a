package sessionpool_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sessionpool"
)

func TestRecord_Expired(t *testing.T) {
	now := time.Now()

	t.Run("zero expiry never expires", func(t *testing.T) {
		rec := sessionpool.Record{ID: "sid"}
		assert.False(t, rec.Expired(now))
		assert.False(t, rec.Expired(now.Add(100*365*24*time.Hour)))
	})

	t.Run("future expiry is live", func(t *testing.T) {
		rec := sessionpool.Record{ID: "sid", ExpiresAt: now.Add(time.Minute)}
		assert.False(t, rec.Expired(now))
	})

	t.Run("past expiry is expired", func(t *testing.T) {
		rec := sessionpool.Record{ID: "sid", ExpiresAt: now.Add(-time.Minute)}
		assert.True(t, rec.Expired(now))
	})

	t.Run("expiry exactly now is expired", func(t *testing.T) {
		rec := sessionpool.Record{ID: "sid", ExpiresAt: now}
		assert.True(t, rec.Expired(now))
	})
}
