package pgstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/sessionpool"
)

// identRe matches the table names New accepts. The table name is spliced
// into query text, so it must be a plain identifier, never user input.
var identRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Store is the PostgreSQL sessionpool.Store backend. Records live in a
// single table: id VARCHAR(128) primary key, expires_at BIGINT (unix
// seconds, NULL = never expires) with a secondary index, payload TEXT.
type Store struct {
	pool  *pgxpool.Pool
	table string

	sqlSave    string
	sqlLoad    string
	sqlExists  string
	sqlDelete  string
	sqlPurge   string
	sqlCount   string
	sqlIDs     string
	sqlExpired string
}

var _ sessionpool.Store = (*Store)(nil)

// New creates a PostgreSQL-backed session store writing to the given table.
// Query text is built once here; Init creates the table on demand.
func New(pool *pgxpool.Pool, table string) (*Store, error) {
	if pool == nil {
		return nil, ErrNilPool
	}
	if !identRe.MatchString(table) {
		return nil, ErrInvalidTableName
	}

	return &Store{
		pool:  pool,
		table: table,
		sqlSave: fmt.Sprintf(`INSERT INTO %s (id, payload, expires_at) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, expires_at = EXCLUDED.expires_at`, table),
		sqlLoad:    fmt.Sprintf(`SELECT payload FROM %s WHERE id = $1 AND (expires_at IS NULL OR expires_at > $2)`, table),
		sqlExists:  fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1 AND (expires_at IS NULL OR expires_at > $2))`, table),
		sqlDelete:  fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table),
		sqlPurge:   fmt.Sprintf(`DELETE FROM %s`, table),
		sqlCount:   fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table),
		sqlIDs:     fmt.Sprintf(`SELECT id FROM %s WHERE expires_at IS NULL OR expires_at > $1`, table),
		sqlExpired: fmt.Sprintf(`DELETE FROM %s WHERE expires_at IS NOT NULL AND expires_at <= $1 RETURNING id`, table),
	}, nil
}

// Init creates the session table and its expiry index if they do not exist.
// Idempotent, safe to run on every startup.
func (s *Store) Init(ctx context.Context) error {
	createTable := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id VARCHAR(128) PRIMARY KEY,
		expires_at BIGINT,
		payload TEXT NOT NULL
	)`, s.table)
	if _, err := s.pool.Exec(ctx, createTable); err != nil {
		return errors.Join(ErrCreateFailed, err)
	}

	createIndex := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_expires_at_idx ON %s (expires_at)`, s.table, s.table)
	if _, err := s.pool.Exec(ctx, createIndex); err != nil {
		return errors.Join(ErrCreateFailed, err)
	}
	return nil
}

// Save inserts or replaces the record for id.
func (s *Store) Save(ctx context.Context, id, payload string, expiresAt time.Time) error {
	if id == "" {
		return sessionpool.ErrEmptyID
	}

	var expires any
	if !expiresAt.IsZero() {
		expires = expiresAt.Truncate(time.Second).Unix()
	}

	if _, err := s.pool.Exec(ctx, s.sqlSave, id, payload, expires); err != nil {
		return errors.Join(ErrInsertFailed, err)
	}
	return nil
}

// Load returns the payload for id if the record exists and is unexpired.
func (s *Store) Load(ctx context.Context, id string) (string, bool, error) {
	var payload string
	err := s.pool.QueryRow(ctx, s.sqlLoad, id, time.Now().Unix()).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(ErrSelectFailed, err)
	}
	return payload, true, nil
}

// Exists reports whether a live record is stored under id.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, s.sqlExists, id, time.Now().Unix()).Scan(&exists); err != nil {
		return false, errors.Join(ErrSelectFailed, err)
	}
	return exists, nil
}

// Delete removes the record for id. Absent ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, s.sqlDelete, id); err != nil {
		return errors.Join(ErrDeleteFailed, err)
	}
	return nil
}

// DeleteAll removes every record unconditionally.
func (s *Store) DeleteAll(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, s.sqlPurge); err != nil {
		return errors.Join(ErrDeleteFailed, err)
	}
	return nil
}

// Count returns the number of stored records, expired or not.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.pool.QueryRow(ctx, s.sqlCount).Scan(&count); err != nil {
		return 0, errors.Join(ErrSelectFailed, err)
	}
	return count, nil
}

// IDs returns the ids of all live records.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, s.sqlIDs, time.Now().Unix())
	if err != nil {
		return nil, errors.Join(ErrSelectFailed, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.Join(ErrSelectFailed, err)
	}
	return ids, nil
}

// DeleteExpired removes every record whose expiry is at or before now and
// returns the removed ids. Delete-with-returning runs as one statement, so
// each id is decided on a single snapshot of its expiry and is never
// reported twice across sweeps. Records without an expiry are kept.
func (s *Store) DeleteExpired(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, s.sqlExpired, time.Now().Unix())
	if err != nil {
		return nil, errors.Join(ErrDeleteFailed, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.Join(ErrDeleteFailed, err)
	}
	return ids, nil
}

// AutoHandlesExpiry returns false: expired rows linger until a sweep, so
// the host must call DeleteExpired on a schedule.
func (s *Store) AutoHandlesExpiry() bool {
	return false
}
