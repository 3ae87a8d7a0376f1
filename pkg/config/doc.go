// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// Load parses the environment into any struct with env tags and caches
// the result per type, so every later Load of the same type is a copy
// from memory.
//
//	var cfg config.Kit
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The default .env file is read once, on the first Load, unless LoadEnv
// was called with explicit paths before. Existing variables always win
// over values from files.
//
// Kit is the config of the kit tooling itself (KIT_LANG, KIT_INFO_LEVEL,
// KIT_LOG_LEVEL, KIT_LOG_FORMAT and KIT_TRANSLATIONS_DIR). LoadKit loads
// and validates it.
//
// ResetCache and ForceReload exist for tests that change the environment
// between runs.
package config
