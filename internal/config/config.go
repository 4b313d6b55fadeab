package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"FinChat"`
		Port     int    `envconfig:"PORT" default:"8080"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"finchat"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS"`
	}

	// Gateway is the messaging bridge that posts user messages to the API
	// and receives reminder notifications back.
	Gateway struct {
		JWTSecret   string        `envconfig:"GATEWAY_JWT_SECRET"`
		CallbackURL string        `envconfig:"GATEWAY_CALLBACK_URL"`
		Token       string        `envconfig:"GATEWAY_TOKEN"`
		Timeout     time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
	}

	Chart struct {
		URL     string        `envconfig:"CHART_URL"`
		Timeout time.Duration `envconfig:"CHART_TIMEOUT" default:"15s"`
	}

	Flow struct {
		TTL           time.Duration `envconfig:"FLOW_TTL" default:"30m"`
		SweepInterval time.Duration `envconfig:"FLOW_SWEEP_INTERVAL" default:"1m"`
	}

	Reminder struct {
		Interval time.Duration `envconfig:"REMINDER_INTERVAL" default:"1h"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
