// Package config loads backend configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind a
// small generic API: LoadEnv pulls one or more .env files into the process
// environment, Load parses the environment into any struct with `env` field
// tags, and MustLoad panics when configuration is required for startup.
//
// The backend packages (pgstore, redisstore) each expose a Config struct
// designed to be populated through this package:
//
//	var cfg redisstore.Config
//	config.MustLoad(&cfg)
//
//	client, err := redisstore.Connect(ctx, cfg)
package config
