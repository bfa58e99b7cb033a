package sessionpool

import (
	"context"
	"time"
)

// Store is the persistence contract shared by every backend. Implementations
// are safe for concurrent use and treat the payload as an opaque string.
//
// A zero expiry means the record never expires. Load and Exists apply the
// same liveness rule: a record is live when it has no expiry or its expiry is
// strictly in the future. Count deliberately differs - it reports everything
// stored, including expired records that have not been swept yet.
type Store interface {
	// Init performs idempotent backend setup, such as creating the
	// underlying table. Safe to call more than once.
	Init(ctx context.Context) error

	// Save inserts or replaces the record for id, overwriting the payload
	// and expiry of any existing record with the same id.
	Save(ctx context.Context, id, payload string, expiresAt time.Time) error

	// Load returns the payload of a live record. Missing and expired
	// records both yield ok == false; neither is an error, so callers
	// cannot tell "never stored" from "expired".
	Load(ctx context.Context, id string) (payload string, ok bool, err error)

	// Exists reports whether a live record is stored under id.
	Exists(ctx context.Context, id string) (bool, error)

	// Delete removes the record for id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every record unconditionally.
	DeleteAll(ctx context.Context) error

	// Count returns the number of stored records, expired or not.
	Count(ctx context.Context) (int64, error)

	// IDs returns the ids of all live records.
	IDs(ctx context.Context) ([]string, error)

	// DeleteExpired removes every record whose expiry is at or before the
	// current time and returns exactly the removed ids. Records without an
	// expiry are never swept, and an id is reported at most once across
	// consecutive sweeps.
	DeleteExpired(ctx context.Context) ([]string, error)

	// AutoHandlesExpiry reports whether the backend reclaims expired
	// records on its own. When it returns false the host must run
	// DeleteExpired on a schedule, e.g. via Cleaner.
	AutoHandlesExpiry() bool
}
