// Package pgstore implements the sessionpool.Store contract on PostgreSQL
// using the pgx/v5 driver. Every capability maps to a single CRUD statement
// against one table (id primary key, indexed expires_at column, opaque
// payload), which makes the backend a drop-in durable substitute for the
// in-memory store.
//
// The package follows the same shape as the other backends: a Config struct
// populated from environment variables, Connect to open a pgxpool.Pool with
// retry, Healthcheck for readiness probes, and New to build the store
// itself. Init owns the schema - it issues idempotent CREATE TABLE / CREATE
// INDEX statements, so no external migration tooling is required.
//
// # Usage
//
//	var cfg pgstore.Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
//	pool, err := pgstore.Connect(ctx, cfg)
//	if err != nil {
//		// handle error
//	}
//	defer pool.Close()
//
//	store, err := pgstore.New(pool, cfg.Table)
//	if err != nil {
//		// handle error
//	}
//	if err := store.Init(ctx); err != nil {
//		// handle error
//	}
//
// Expired rows are reclaimed by DeleteExpired, typically driven by a
// sessionpool.Cleaner; reads already filter expired rows out, so unswept
// rows are invisible everywhere except Count.
package pgstore
