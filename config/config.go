// Package config loads the client configuration from the environment and an
// optional .env file.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/mww/cartolafc/cache"
	"github.com/mww/cartolafc/cartola"
	"github.com/mww/cartolafc/db"
)

type Config struct {
	Email              string
	Password           string
	Attempts           int
	APIURL             string
	RedisURL           string
	PostgresConnString string
	MemoryCache        bool
	CacheTTL           time.Duration
	LogLevel           slog.Level
	MetricsPort        int // 0 disables the metrics server
}

// rawEnv holds the values as found in the environment. Attempts and the cache
// ttl are kept as strings so that garbage falls back to the defaults instead
// of failing.
type rawEnv struct {
	Email              string `env:"CARTOLA_EMAIL"`
	Password           string `env:"CARTOLA_PASSWORD"`
	Attempts           string `env:"CARTOLA_ATTEMPTS"          envDefault:"1"`
	APIURL             string `env:"CARTOLA_API_URL"           envDefault:"https://api.cartolafc.globo.com"`
	RedisURL           string `env:"CARTOLA_REDIS_URL"`
	PostgresConnString string `env:"CARTOLA_POSTGRES_CONN_STR"`
	MemoryCache        bool   `env:"CARTOLA_MEMORY_CACHE"`
	CacheTTL           string `env:"CARTOLA_CACHE_TTL"         envDefault:"10"`
	LogLevel           string `env:"CARTOLA_LOG_LEVEL"         envDefault:"info"`
	MetricsPort        int    `env:"CARTOLA_METRICS_PORT"`
}

// Load reads the given .env files (".env" when none is given) and then the
// environment. Missing files are ignored, and variables already set in the
// environment win over the files.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}
	return Parse()
}

// Parse reads the configuration from the environment only.
func Parse() (Config, error) {
	var raw rawEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("error parsing environment: %w", err)
	}

	cfg := Config{
		Email:              raw.Email,
		Password:           raw.Password,
		Attempts:           parseAttempts(raw.Attempts),
		APIURL:             raw.APIURL,
		RedisURL:           raw.RedisURL,
		PostgresConnString: raw.PostgresConnString,
		MemoryCache:        raw.MemoryCache,
		CacheTTL:           parseTTL(raw.CacheTTL),
		MetricsPort:        raw.MetricsPort,
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(raw.LogLevel)); err != nil {
		return Config{}, fmt.Errorf("error parsing CARTOLA_LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

func parseAttempts(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// parseTTL reads a number of seconds.
func parseTTL(s string) time.Duration {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return cache.DefaultTTL
	}
	return time.Duration(n) * time.Second
}

// Logger returns a text logger on stderr at the configured level.
func (c Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}

// Options translates the configuration into client options. The cache store,
// if any, is opened here: redis wins over postgres, which wins over the
// in-memory cache. The returned function releases the store.
func (c Config) Options(ctx context.Context) ([]cartola.Option, func(), error) {
	opts := []cartola.Option{
		cartola.WithAttempts(c.Attempts),
		cartola.WithURLs(c.APIURL, ""),
		cartola.WithLogger(c.Logger()),
		cartola.WithCredentials(c.Email, c.Password),
	}
	closer := func() {}

	switch {
	case c.RedisURL != "":
		r, err := cache.NewRedis(ctx, c.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, cartola.WithCache(r, c.CacheTTL))
		closer = func() { r.Close() }
	case c.PostgresConnString != "":
		store, err := db.New(ctx, c.PostgresConnString, clock.New())
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, cartola.WithCache(store, c.CacheTTL))
		closer = store.Close
	case c.MemoryCache:
		opts = append(opts, cartola.WithCache(cache.NewMemory(clock.New()), c.CacheTTL))
	}

	return opts, closer, nil
}
