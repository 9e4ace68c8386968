// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: Load
// reads the optional default .env file, parses the environment into any
// struct annotated with `env` tags and caches the result per type. LoadEnv
// loads explicit .env files first. Package configs in this module (cookie,
// identity, logger, redis, httpserver, telemetry) all follow this pattern and
// pair their Config struct with a NewFromConfig constructor.
//
//	var cfg identity.Config
//	config.MustLoad(&cfg)
//	resolver := identity.NewFromConfig(cfg)
//
// Errors are sentinels comparable with errors.Is: ErrParsingConfig,
// ErrConfigNotLoaded, ErrNilPointer and ErrEnvFile.
//
// ResetCache and ForceReload exist for tests that change the environment.
package config
