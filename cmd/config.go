package cmd

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/log"
)

const productionEnv = "production"

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"orders"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	CORSAllowOrigins  []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	HeartbeatSchedule string   `envconfig:"HEARTBEAT_SCHEDULE" default:"*/30 * * * * *"`
}

// LoadConfig processes the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// DatabaseURL renders the connection settings as a postgres:// URL, which both
// lib/pq and golang-migrate accept.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// IsProduction reports whether error details must be hidden from clients.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, productionEnv)
}

// SlogLevel parses LOG_LEVEL, falling back to info on unknown values.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// EchoLogLevel maps LOG_LEVEL onto echo's logger levels.
func (c Config) EchoLogLevel() log.Lvl {
	switch level := c.SlogLevel(); {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
