package gym

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/gymkit/pkg/config"
	"github.com/dmitrymomot/gymkit/pkg/environment"
	"github.com/dmitrymomot/gymkit/pkg/logger"
)

// Config holds the environment-driven settings of the gym module.
type Config struct {
	Environment  string `env:"APP_ENV" envDefault:"development"`
	ServiceName  string `env:"GYM_SERVICE_NAME" envDefault:"gym"`
	LogLevel     string `env:"GYM_LOG_LEVEL" envDefault:"info"`
	RecordFormat string `env:"GYM_RECORD_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from the environment and the default .env file,
// if present. When envFiles are given they are loaded first and the cached
// Config is re-parsed so their values take effect. Variables already set in
// the process environment win over values from the files.
func LoadConfig(envFiles ...string) (Config, error) {
	var cfg Config
	if len(envFiles) == 0 {
		if err := config.Load(&cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	if err := config.LoadEnv(envFiles...); err != nil {
		return Config{}, err
	}
	if err := config.ForceReload(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger builds a logger for the configured environment writing to w.
// GYM_LOG_LEVEL overrides the environment's default level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(environment.Parse(c.Environment), c.ServiceName),
		logger.WithLevelString(c.LogLevel),
		logger.WithOutput(w),
	)
}

// Codec builds a Codec for the configured record format.
func (c Config) Codec(log *slog.Logger) (*Codec, error) {
	format, err := ParseFormat(c.RecordFormat)
	if err != nil {
		return nil, err
	}
	return NewCodec(WithFormat(format), WithLogger(log)), nil
}
