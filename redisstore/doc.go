// Package redisstore implements the sessionpool.Store contract on Redis
// using go-redis/v9. Each record is a single string key whose TTL mirrors
// the record's expiry, which makes this the one backend where
// AutoHandlesExpiry reports true: Redis evicts expired keys itself, no
// sweep schedule required.
//
// Keys are namespaced under a configurable prefix so enumeration (IDs,
// Count) and DeleteAll only ever see session keys, even on a shared Redis
// database. Enumeration uses cursor-based SCAN, never KEYS.
//
// # Usage
//
//	var cfg redisstore.Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
//	client, err := redisstore.Connect(ctx, cfg)
//	if err != nil {
//		// handle error
//	}
//	defer client.Close()
//
//	store, err := redisstore.New(client, cfg.KeyPrefix)
//	if err != nil {
//		// handle error
//	}
//
// Behavioral note: storing a record whose expiry is already in the past
// deletes the key instead, because Redis rejects non-positive TTLs. The
// difference is unobservable - such a record is expired for every read, and
// this backend reclaims expired records transparently.
package redisstore
