package sessionpool

import "time"

// Record is a single stored session entry. The payload is never interpreted
// by the store; a zero ExpiresAt means the record never expires.
type Record struct {
	ID        string
	Payload   string
	ExpiresAt time.Time
}

// Expired reports whether the record's expiry has passed at the given
// instant. Records without an expiry never expire.
func (r Record) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !r.ExpiresAt.After(now)
}

// quantize truncates an expiry to whole seconds, the resolution shared by
// all backends. The zero time passes through unchanged.
func quantize(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.Truncate(time.Second)
}
