// Package config loads application configuration from environment variables
// into typed structs and caches the result per struct type.
//
// It wraps `github.com/joho/godotenv` for `.env` files and
// `github.com/caarlos0/env/v11` for tag-driven parsing:
//
//	type LogConfig struct {
//	    Level string `env:"GYM_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg LogConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load reads the default `.env` file once (a missing file is fine), parses the
// environment into the struct and caches a copy keyed by the struct's type.
// Later calls for the same type are served from the cache. LoadEnv loads
// explicit `.env` files; ForceReload re-parses one type afterwards and
// ResetCache drops every cached value, which tests use after t.Setenv.
//
// Sentinel errors (ErrParsingConfig, ErrLoadingEnv, ErrConfigNotLoaded,
// ErrNilPointer) can be matched with errors.Is.
package config
