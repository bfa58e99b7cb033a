// Package sessionpool provides pluggable persistence for opaque, expiring
// session records keyed by a session id: store a serialized blob, fetch it
// back while unexpired, enumerate live ids, count records, and reclaim space
// from records past their expiry. Every backend satisfies the same Store
// contract, so a hosting web layer can swap persistence strategy without
// code changes.
//
// The package ships a concurrent in-memory backend out of the box. Durable
// backends live in subpackages: pgstore (PostgreSQL via pgx) and redisstore
// (Redis via go-redis). All three are drop-in substitutes for one another.
//
// # Architecture
//
// The in-memory backend keeps two structures under a single RWMutex: the
// primary id -> record map, the source of truth for existence and payload
// lookup, and a secondary index from expiry second to the ids expiring at
// that instant. The secondary index lets DeleteExpired visit only the due
// buckets instead of scanning every record, while the shared lock keeps the
// two structures consistent under concurrent reads, writes and deletes.
//
//	┌────────┐  Save / Load / Delete   ┌───────────────────────────┐
//	│  Host  │ ──────────────────────► │           Store           │
//	└────────┘                         │ memory · pgstore · redis  │
//	     │                             └───────────────────────────┘
//	     │ DeleteExpired (scheduled)                │
//	     ▼                                          ▼
//	┌─────────┐                        primary index + expiry index
//	│ Cleaner │                        (or the backend's native TTL)
//	└─────────┘
//
// Expiry reclamation is always host-triggered: no store runs a timer of its
// own. Cleaner is the host-side scheduler; AutoHandlesExpiry tells it which
// backends (e.g. Redis, with native TTLs) need no sweeping at all.
//
// # Usage
//
//	store := sessionpool.NewMemoryStore()
//
//	id := sessionpool.NewID()
//	_ = store.Save(ctx, id, payload, time.Now().Add(30*time.Minute))
//
//	payload, ok, err := store.Load(ctx, id)
//
//	cleaner, _ := sessionpool.NewCleaner(store, 5*time.Minute, nil)
//	go cleaner.Run(ctx)
//
// Swapping in a durable backend changes construction only:
//
//	pool, _ := pgstore.Connect(ctx, pgCfg)
//	store, _ := pgstore.New(pool, "sessions")
//	_ = store.Init(ctx)
//
// # Semantics
//
// Save is an upsert. A zero expiry means "never expires"; such records are
// never swept. Load and Exists report only live records and never error on
// absence - errors are reserved for infrastructure failures. Count includes
// expired-but-unswept records; IDs does not.
package sessionpool
