package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv       string   `envconfig:"APP_ENV" default:"local"`
	Port         int      `envconfig:"PORT" default:"8080"`
	Debug        bool     `envconfig:"DEBUG" default:"false"`
	SentryDSN    string   `envconfig:"SENTRY_DSN"`
	AllowOrigins string   `envconfig:"ALLOW_ORIGINS"`
	TraceEvents  []string `envconfig:"TRACE_EVENTS"`

	DB struct {
		DSN          string `envconfig:"DSN"`
		MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"10"`
		MaxIdleConns int    `envconfig:"MAX_IDLE_CONNS" default:"5"`
	}

	Redis struct {
		Addr     string `envconfig:"ADDR"`
		Password string `envconfig:"PASSWORD"`
		DB       int    `envconfig:"DB" default:"0"`
	}

	Relay struct {
		Channel string   `envconfig:"CHANNEL" default:"flux-container"`
		Events  []string `envconfig:"EVENTS"`
	}
}

// LoadConfig reads the environment. The given env files (".env" when none
// is given) are loaded first; missing files are ignored.
func LoadConfig(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) IsLocal() bool {
	return strings.ToLower(c.AppEnv) == "local"
}
