// Package web boots the browser-facing wiki server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/louisbranch/hephaestus/internal/platform/config"
	"github.com/louisbranch/hephaestus/internal/platform/otel"
	"github.com/louisbranch/hephaestus/internal/storage/sqlite"
	"github.com/louisbranch/hephaestus/internal/web"
)

const defaultHTTPAddr = ":8080"

// Config carries the web process settings.
type Config struct {
	HTTPAddr     string
	DBPath       string
	QueryTimeout time.Duration
}

type storeEnv struct {
	DBPath       string        `env:"HEPHAESTUS_DB_PATH" envDefault:"data/hephaestus.db"`
	QueryTimeout time.Duration `env:"HEPHAESTUS_QUERY_TIMEOUT" envDefault:"5s"`
}

// EnvLookup reports an environment variable and whether it is set.
type EnvLookup func(string) (string, bool)

// ParseConfig reads flags and environment variables. Flags win over
// environment values, which win over defaults.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		HTTPAddr: envOrDefault(lookup, "HEPHAESTUS_WEB_HTTP_ADDR", defaultHTTPAddr),
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var store storeEnv
	if err := config.ParseEnv(&store); err != nil {
		return Config{}, err
	}
	cfg.DBPath = store.DBPath
	cfg.QueryTimeout = store.QueryTimeout
	return cfg, nil
}

func envOrDefault(lookup EnvLookup, key, fallback string) string {
	if lookup != nil {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
	}
	return fallback
}

// Run opens the store and serves HTTP until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "web")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr:     cfg.HTTPAddr,
		QueryTimeout: cfg.QueryTimeout,
		WorldStore:   store,
		MemberStore:  store,
	})
	if err != nil {
		return fmt.Errorf("new server: %w", err)
	}

	log.Printf("listening addr=%s db=%s", cfg.HTTPAddr, cfg.DBPath)
	return server.ListenAndServe(ctx)
}
