package config_test

import (
	"context"
	"testing"

	"github.com/quizbox/quizbox/internal/config"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := config.FromEnv()
	if cfg.StoreDriver != "fs" || cfg.FSBasePath != "./data" {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.PassingScore != 50 || !cfg.SeedDemoData {
		t.Fatalf("defaults: %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("STORE_DSN", "file:test.db")
	t.Setenv("PASSING_SCORE", "70")
	t.Setenv("SEED_DEMO_DATA", "no")

	cfg := config.FromEnv()
	if cfg.StoreDriver != "sqlite" || cfg.DSN != "file:test.db" {
		t.Fatalf("overrides: %+v", cfg)
	}
	if cfg.PassingScore != 70 || cfg.SeedDemoData {
		t.Fatalf("overrides: %+v", cfg)
	}
}

func TestFromEnvBadFloatFallsBack(t *testing.T) {
	t.Setenv("PASSING_SCORE", "not-a-number")
	if cfg := config.FromEnv(); cfg.PassingScore != 50 {
		t.Fatalf("want default threshold, got %v", cfg.PassingScore)
	}
}

func TestOpenStoreMemory(t *testing.T) {
	s, err := config.OpenStore(context.Background(), config.Config{StoreDriver: "memory"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
}
