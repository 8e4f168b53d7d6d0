package config

import (
	"context"
	"os"
	"strconv"

	"github.com/quizbox/quizbox/internal/kvstore"
)

type Config struct {
	StoreDriver  string // memory|fs|sqlite|postgres
	DSN          string // sqlite/postgres only
	FSBasePath   string
	PassingScore float64
	SeedDemoData bool
}

func FromEnv() Config {
	return Config{
		StoreDriver:  envOr("STORE_DRIVER", "fs"),
		DSN:          envOr("STORE_DSN", ""),
		FSBasePath:   envOr("FS_BASE_PATH", "./data"),
		PassingScore: envFloat("PASSING_SCORE", 50),
		SeedDemoData: envBool("SEED_DEMO_DATA", true),
	}
}

// OpenStore opens the configured storage medium.
func OpenStore(ctx context.Context, cfg Config) (kvstore.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return kvstore.NewMemory(), nil
	case "sqlite":
		return kvstore.OpenSQL(ctx, kvstore.DriverSQLite, cfg.DSN)
	case "postgres":
		return kvstore.OpenSQL(ctx, kvstore.DriverPostgres, cfg.DSN)
	default:
		return kvstore.NewFS(cfg.FSBasePath)
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
