package sessionpool

import "time"

// Config holds host-facing session persistence settings.
type Config struct {
	// Table is the table name or key namespace the backend keeps records
	// in. Passed explicitly to the backend that needs it at construction
	// time.
	Table string `env:"SESSION_TABLE" envDefault:"sessions"`

	// CleanupInterval is how often the Cleaner sweeps expired records.
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig returns the default session persistence configuration.
func DefaultConfig() Config {
	return Config{
		Table:           "sessions",
		CleanupInterval: 5 * time.Minute,
	}
}
