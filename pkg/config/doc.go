// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - the working directory's `.env` is read once per process when present;
//   - extra dotenv files can be requested with WithEnvFiles;
//   - env tags can share a prefix with WithPrefix;
//   - each configuration type is parsed once per prefix and env file list
//     and then served from a cache, which ResetCache clears.
//
// # Usage
//
//	type Config struct {
//	    Env      string     `env:"APP_ENV" envDefault:"development"`
//	    LogLevel slog.Level `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// matched with errors.Is.
package config
