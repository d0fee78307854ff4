// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"5175"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	NodeEnv        string        `env:"NODE_ENV" envDefault:"development"`
	DatabasePath   string        `env:"DATABASE_PATH" envDefault:"./data/boggle.db"`
	WordsFile      string        `env:"WORDS_FILE"`
	BoardSize      int           `env:"BOARD_SIZE" envDefault:"5"`
	SessionSecret  string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	SessionDays    int           `env:"SESSION_EXPIRES_DAYS" envDefault:"14"`
	CookieName     string        `env:"COOKIE_NAME" envDefault:"boggle_session"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	DailySalt      string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	RoundTTL       time.Duration `env:"ROUND_TTL" envDefault:"1h"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BoardSize < 1 {
		return fmt.Errorf("config: BOARD_SIZE must be at least 1, got %d", c.BoardSize)
	}
	if c.SessionDays < 1 {
		return fmt.Errorf("config: SESSION_EXPIRES_DAYS must be at least 1, got %d", c.SessionDays)
	}
	if c.SessionSecret == "" {
		return errors.New("config: SESSION_SECRET is empty")
	}
	return nil
}

func (c Config) Production() bool {
	return c.NodeEnv == "production"
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionDays) * 24 * time.Hour
}
