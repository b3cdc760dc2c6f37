package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
}

type AppConfig struct {
	Env string `env:"APP_ENV" env-default:"production"`
}

type HTTPConfig struct {
	Port string `env:"HTTP_PORT" env-default:"8080"`
	// Comma-separated proxy IPs for correct client IP handling behind a
	// reverse proxy. Empty means loopback only.
	TrustedProxies string `env:"TRUSTED_PROXIES" env-default:""`
}

type StoreConfig struct {
	// DataFile is the local snapshot path, the tracker's single source
	// of durable state.
	DataFile string `env:"DATA_FILE" env-default:"sport-tracker-state.json"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
