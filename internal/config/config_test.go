package config

import (
	"slices"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("POKEDEX_CORS_ORIGINS", "")
	t.Setenv("POKEDEX_DATA_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.StaticDir != "static" {
		t.Fatalf("expected static dir default, got %s", cfg.Server.StaticDir)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("POKEDEX_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("POKEDEX_DATA_FILE", "data/pokemon.csv")
	t.Setenv("POKEDEX_METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr %s", cfg.Server.Addr)
	}
	if !slices.Equal(cfg.Server.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("unexpected origins %v", cfg.Server.CORSOrigins)
	}
	if cfg.Data.File != "data/pokemon.csv" {
		t.Fatalf("unexpected data file %s", cfg.Data.File)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "80 80")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for PORT with spaces")
	}
}

func TestLoadRejectsBadBool(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("POKEDEX_METRICS_ENABLED", "maybe")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid bool")
	}
}
