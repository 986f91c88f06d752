package cli

import (
	"log/slog"

	"github.com/dmitrymomot/formvalidator/pkg/logger"
)

// Config is read from the environment by Execute.
type Config struct {
	Env       string        `env:"APP_ENV" envDefault:"development"`
	LogLevel  slog.Level    `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"FORMCHECK_LOG_FORMAT" envDefault:"text"`
	Output    string        `env:"FORMCHECK_OUTPUT" envDefault:"json"`
}
