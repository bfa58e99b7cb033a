package sessionpool

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-memory Store backend. Records live in a primary
// id -> Record map; a secondary index keyed by expiry second maps each
// instant to the ids expiring then, so a sweep visits only the due buckets
// instead of scanning every record.
//
// One RWMutex guards both maps, so every operation observes the two
// structures in a single consistent state: an id with an expiry is always in
// exactly the bucket matching its current expiry, and never in more than
// one. The store is volatile - contents do not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	buckets map[int64][]string // expiry unix second -> ids expiring then
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
		buckets: make(map[int64][]string),
	}
}

// Init is a no-op; the in-memory backend needs no setup.
func (m *MemoryStore) Init(ctx context.Context) error {
	return nil
}

// Save inserts or replaces the record for id. On replace the id is moved out
// of its previous expiry bucket first, so stale bucket entries never
// accumulate across upserts.
func (m *MemoryStore) Save(ctx context.Context, id, payload string, expiresAt time.Time) error {
	if id == "" {
		return ErrEmptyID
	}

	rec := Record{ID: id, Payload: payload, ExpiresAt: quantize(expiresAt)}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.records[id]; ok && !old.ExpiresAt.IsZero() {
		m.unbucket(old.ExpiresAt.Unix(), id)
	}

	m.records[id] = rec
	if !rec.ExpiresAt.IsZero() {
		key := rec.ExpiresAt.Unix()
		m.buckets[key] = append(m.buckets[key], id)
	}
	return nil
}

// Load returns the payload for id if the record exists and is unexpired.
func (m *MemoryStore) Load(ctx context.Context, id string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok || rec.Expired(time.Now()) {
		return "", false, nil
	}
	return rec.Payload, true, nil
}

// Exists reports whether a live record is stored under id, by the same rule
// as Load.
func (m *MemoryStore) Exists(ctx context.Context, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	return ok && !rec.Expired(time.Now()), nil
}

// Delete removes the record for id along with its expiry-bucket membership.
// Absent ids are a no-op.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok {
		return nil
	}
	delete(m.records, id)
	if !rec.ExpiresAt.IsZero() {
		m.unbucket(rec.ExpiresAt.Unix(), id)
	}
	return nil
}

// DeleteAll clears every record and every expiry bucket.
func (m *MemoryStore) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = make(map[string]Record)
	m.buckets = make(map[int64][]string)
	return nil
}

// Count returns the number of stored records, including expired records
// that have not been swept yet.
func (m *MemoryStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.records)), nil
}

// IDs returns the ids of all live records.
func (m *MemoryStore) IDs(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	ids := make([]string, 0, len(m.records))
	for id, rec := range m.records {
		if !rec.Expired(now) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// DeleteExpired removes every record whose expiry is at or before now and
// returns the removed ids. Both maps are mutated under one write lock, so
// the sweep decision for each id is based on a single consistent snapshot
// of its expiry: a concurrent Save that pushes an expiry into the future
// either lands before the sweep (the id survives) or after it (the id was
// already reported and removed, and the Save re-creates it).
func (m *MemoryStore) DeleteExpired(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().Unix()
	var removed []string
	for key, ids := range m.buckets {
		if key > now {
			continue
		}
		for _, id := range ids {
			// Skip ids whose record is gone or was re-stored under a
			// different expiry; their membership here is stale.
			rec, ok := m.records[id]
			if !ok || rec.ExpiresAt.IsZero() || rec.ExpiresAt.Unix() != key {
				continue
			}
			delete(m.records, id)
			removed = append(removed, id)
		}
		delete(m.buckets, key)
	}
	return removed, nil
}

// AutoHandlesExpiry returns false: expired records linger until a sweep, so
// the host must call DeleteExpired on a schedule.
func (m *MemoryStore) AutoHandlesExpiry() bool {
	return false
}

// unbucket removes id from the expiry bucket for key, dropping the bucket
// once empty. Caller must hold the write lock.
func (m *MemoryStore) unbucket(key int64, id string) {
	ids := m.buckets[key]
	for i, v := range ids {
		if v == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(m.buckets, key)
	} else {
		m.buckets[key] = ids
	}
}
