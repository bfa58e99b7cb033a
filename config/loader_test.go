package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionpool/config"
)

type storeConfig struct {
	Table    string `env:"CFGTEST_TABLE" envDefault:"sessions"`
	MaxConns int    `env:"CFGTEST_MAX_CONNS" envDefault:"10"`
	URL      string `env:"CFGTEST_URL,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults and environment", func(t *testing.T) {
		t.Setenv("CFGTEST_URL", "postgres://localhost:5432/app")
		t.Setenv("CFGTEST_MAX_CONNS", "25")

		var cfg storeConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "sessions", cfg.Table)
		assert.Equal(t, 25, cfg.MaxConns)
		assert.Equal(t, "postgres://localhost:5432/app", cfg.URL)
	})

	t.Run("missing required variable", func(t *testing.T) {
		type requiredConfig struct {
			Value string `env:"CFGTEST_ABSENT,required"`
		}

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[storeConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads named file", func(t *testing.T) {
		t.Setenv("CFGTEST_FILE_VALUE", "")

		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		type fileConfig struct {
			Value string `env:"CFGTEST_FILE_VALUE"`
		}
		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from_file", cfg.Value)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does_not_exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		type requiredConfig struct {
			Value string `env:"CFGTEST_MUST_ABSENT,required"`
		}

		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("loads valid config", func(t *testing.T) {
		t.Setenv("CFGTEST_URL", "redis://localhost:6379/0")

		assert.NotPanics(t, func() {
			var cfg storeConfig
			config.MustLoad(&cfg)
		})
	})
}
