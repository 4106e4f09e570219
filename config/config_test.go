package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestParse_defaults(t *testing.T) {
	for _, name := range []string{
		"CARTOLA_EMAIL", "CARTOLA_PASSWORD", "CARTOLA_ATTEMPTS", "CARTOLA_API_URL", "CARTOLA_REDIS_URL",
		"CARTOLA_POSTGRES_CONN_STR", "CARTOLA_MEMORY_CACHE", "CARTOLA_CACHE_TTL", "CARTOLA_LOG_LEVEL",
		"CARTOLA_METRICS_PORT",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Config{
		Attempts: 1,
		APIURL:   "https://api.cartolafc.globo.com",
		CacheTTL: 10 * time.Second,
		LogLevel: slog.LevelInfo,
	}
	if cfg != expected {
		t.Errorf("expected %+v, got %+v", expected, cfg)
	}
}

func TestParse_values(t *testing.T) {
	t.Setenv("CARTOLA_EMAIL", "cartoleiro@example.com")
	t.Setenv("CARTOLA_PASSWORD", "s3nha")
	t.Setenv("CARTOLA_ATTEMPTS", "3")
	t.Setenv("CARTOLA_API_URL", "http://localhost:8080")
	t.Setenv("CARTOLA_REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("CARTOLA_MEMORY_CACHE", "true")
	t.Setenv("CARTOLA_CACHE_TTL", "60")
	t.Setenv("CARTOLA_LOG_LEVEL", "debug")
	t.Setenv("CARTOLA_METRICS_PORT", "9090")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Email != "cartoleiro@example.com" || cfg.Password != "s3nha" {
		t.Errorf("unexpected credentials: %s %s", cfg.Email, cfg.Password)
	}
	if cfg.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", cfg.Attempts)
	}
	if cfg.APIURL != "http://localhost:8080" || cfg.RedisURL != "redis://localhost:6379/2" {
		t.Errorf("unexpected urls: %s %s", cfg.APIURL, cfg.RedisURL)
	}
	if !cfg.MemoryCache {
		t.Errorf("expected the memory cache to be enabled")
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("expected a 1m ttl, got %v", cfg.CacheTTL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.MetricsPort != 9090 {
		t.Errorf("expected metrics port 9090, got %d", cfg.MetricsPort)
	}
}

func TestParse_invalidNumbersFallBack(t *testing.T) {
	tests := map[string]struct {
		attempts     string
		ttl          string
		wantAttempts int
		wantTTL      time.Duration
	}{
		"not numbers": {attempts: "muitas", ttl: "dez", wantAttempts: 1, wantTTL: 10 * time.Second},
		"zero":        {attempts: "0", ttl: "0", wantAttempts: 1, wantTTL: 10 * time.Second},
		"negative":    {attempts: "-2", ttl: "-30", wantAttempts: 1, wantTTL: 10 * time.Second},
		"padded":      {attempts: " 4 ", ttl: " 5 ", wantAttempts: 4, wantTTL: 5 * time.Second},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("CARTOLA_ATTEMPTS", tc.attempts)
			t.Setenv("CARTOLA_CACHE_TTL", tc.ttl)

			cfg, err := Parse()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Attempts != tc.wantAttempts {
				t.Errorf("expected %d attempts, got %d", tc.wantAttempts, cfg.Attempts)
			}
			if cfg.CacheTTL != tc.wantTTL {
				t.Errorf("expected ttl %v, got %v", tc.wantTTL, cfg.CacheTTL)
			}
		})
	}
}

func TestParse_invalidLogLevel(t *testing.T) {
	t.Setenv("CARTOLA_LOG_LEVEL", "barulhento")

	if _, err := Parse(); err == nil {
		t.Fatal("expected an error, but got none")
	}
}

func TestLoad_dotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "CARTOLA_EMAIL=dotenv@example.com\nCARTOLA_ATTEMPTS=5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("error writing .env: %v", err)
	}

	// The environment wins over the file
	t.Setenv("CARTOLA_ATTEMPTS", "2")
	t.Setenv("CARTOLA_EMAIL", "")
	os.Unsetenv("CARTOLA_EMAIL")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Email != "dotenv@example.com" {
		t.Errorf("expected the email from the file, got %q", cfg.Email)
	}
	if cfg.Attempts != 2 {
		t.Errorf("expected the attempts from the environment, got %d", cfg.Attempts)
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nao-existe.env")); err != nil {
		t.Fatalf("a missing file should be ignored, got: %v", err)
	}
}

func TestOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("no cache", func(t *testing.T) {
		opts, closer, err := Config{Attempts: 1}.Options(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer closer()
		if len(opts) != 4 {
			t.Errorf("expected 4 options, got %d", len(opts))
		}
	})

	t.Run("memory cache", func(t *testing.T) {
		opts, closer, err := Config{Attempts: 1, MemoryCache: true}.Options(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer closer()
		if len(opts) != 5 {
			t.Errorf("expected 5 options, got %d", len(opts))
		}
	})

	t.Run("redis cache", func(t *testing.T) {
		s := miniredis.RunT(t)
		opts, closer, err := Config{Attempts: 1, RedisURL: fmt.Sprintf("redis://%s/0", s.Addr())}.Options(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer closer()
		if len(opts) != 5 {
			t.Errorf("expected 5 options, got %d", len(opts))
		}
	})

	t.Run("unreachable redis", func(t *testing.T) {
		s := miniredis.RunT(t)
		addr := s.Addr()
		s.Close()

		if _, _, err := (Config{RedisURL: fmt.Sprintf("redis://%s/0", addr)}).Options(ctx); err == nil {
			t.Fatal("expected an error, but got none")
		}
	})
}
