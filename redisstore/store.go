package redisstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionpool"
)

// DefaultKeyPrefix namespaces session keys when no prefix is configured.
const DefaultKeyPrefix = "session:"

// Store is the Redis sessionpool.Store backend. Each record is one string
// key (prefix + id) whose TTL is the record's expiry, so Redis reclaims
// expired records on its own and AutoHandlesExpiry reports true.
type Store struct {
	client redis.UniversalClient
	prefix string
}

var _ sessionpool.Store = (*Store)(nil)

// New creates a Redis-backed session store. All keys are namespaced under
// prefix (DefaultKeyPrefix when empty) so enumeration and DeleteAll never
// touch unrelated keys in the same database.
func New(client redis.UniversalClient, prefix string) (*Store, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{client: client, prefix: prefix}, nil
}

// Init verifies the server is reachable; Redis needs no schema.
func (s *Store) Init(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrRedisNotReady, err)
	}
	return nil
}

// Save inserts or replaces the record for id. A zero expiry stores the key
// without a TTL. An expiry at or before now would be rejected by Redis as a
// non-positive TTL, so the key is deleted instead - observably identical,
// since such a record is already expired for every read and this backend
// reclaims expired records transparently.
func (s *Store) Save(ctx context.Context, id, payload string, expiresAt time.Time) error {
	if id == "" {
		return sessionpool.ErrEmptyID
	}

	key := s.prefix + id
	if expiresAt.IsZero() {
		if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
			return errors.Join(ErrCommandFailed, err)
		}
		return nil
	}

	ttl := time.Until(expiresAt.Truncate(time.Second))
	if ttl <= 0 {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return errors.Join(ErrCommandFailed, err)
		}
		return nil
	}

	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return errors.Join(ErrCommandFailed, err)
	}
	return nil
}

// Load returns the payload for id if the record exists and is unexpired.
func (s *Store) Load(ctx context.Context, id string) (string, bool, error) {
	payload, err := s.client.Get(ctx, s.prefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(ErrCommandFailed, err)
	}
	return payload, true, nil
}

// Exists reports whether a live record is stored under id.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+id).Result()
	if err != nil {
		return false, errors.Join(ErrCommandFailed, err)
	}
	return n > 0, nil
}

// Delete removes the record for id. Absent ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.prefix+id).Err(); err != nil {
		return errors.Join(ErrCommandFailed, err)
	}
	return nil
}

// DeleteAll removes every record in the store's namespace.
func (s *Store) DeleteAll(ctx context.Context) error {
	keys, err := s.scanKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Join(ErrCommandFailed, err)
	}
	return nil
}

// Count returns the number of stored records. Redis evicts expired keys
// itself, so unlike the other backends the count never includes expired
// records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	keys, err := s.scanKeys(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(keys)), nil
}

// IDs returns the ids of all live records.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	keys, err := s.scanKeys(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, strings.TrimPrefix(key, s.prefix))
	}
	return ids, nil
}

// DeleteExpired is a no-op: Redis reclaims expired keys transparently, so
// there is never anything to sweep or report.
func (s *Store) DeleteExpired(ctx context.Context) ([]string, error) {
	return nil, nil
}

// AutoHandlesExpiry returns true: expiry is enforced by key TTLs and the
// host needs no sweep schedule for this backend.
func (s *Store) AutoHandlesExpiry() bool {
	return true
}

// scanKeys enumerates every key in the store's namespace with cursor-based
// SCAN, never the blocking KEYS command.
func (s *Store) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Join(ErrScanFailed, err)
	}
	return keys, nil
}
