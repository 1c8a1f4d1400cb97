package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config aggregates the service configuration.
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Metrics MetricsConfig
}

// ServerConfig describes the HTTP listener and static front-end.
type ServerConfig struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	StaticDir   string   `env:"POKEDEX_STATIC_DIR" envDefault:"static"`
	CORSOrigins []string `env:"POKEDEX_CORS_ORIGINS" envDefault:"*" envSeparator:","`

	// Addr is derived from Port.
	Addr string
}

// DataConfig describes where the initial records come from.
type DataConfig struct {
	// File is a CSV or JSON dataset. Empty means the built-in seed.
	File            string `env:"POKEDEX_DATA_FILE"`
	IconURLTemplate string `env:"POKEDEX_ICON_URL_TEMPLATE" envDefault:"https://img.pokemondb.net/sprites/silver/normal/{name}.png"`
}

// MetricsConfig toggles the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `env:"POKEDEX_METRICS_ENABLED" envDefault:"true"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	addr, err := listenAddr(cfg.Server.Port)
	if err != nil {
		return nil, err
	}
	cfg.Server.Addr = addr
	cfg.Server.CORSOrigins = trimAll(cfg.Server.CORSOrigins)

	return &cfg, nil
}

// listenAddr accepts "8080", ":8080" or "127.0.0.1:8080".
func listenAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}
	if strings.Contains(port, ":") {
		return port, nil
	}
	return ":" + port, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
