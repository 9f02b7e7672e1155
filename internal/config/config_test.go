package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/trivia")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TelegramAPIToken != "123:abc" {
		t.Fatalf("token = %q, want %q", cfg.TelegramAPIToken, "123:abc")
	}
	if cfg.Trivia.BaseURL != "http://localhost:8080" {
		t.Fatalf("trivia base url = %q", cfg.Trivia.BaseURL)
	}
	if cfg.Trivia.Timeout != 30*time.Second {
		t.Fatalf("trivia timeout = %v, want 30s", cfg.Trivia.Timeout)
	}
	if cfg.Reminders.Schedule == "" {
		t.Fatal("reminder schedule default missing")
	}
	if cfg.Leaderboard.Limit != 10 {
		t.Fatalf("leaderboard limit = %d, want 10", cfg.Leaderboard.Limit)
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		t.Fatalf("DSN() error = %v", err)
	}
	if dsn != "postgres://localhost:5432/trivia" {
		t.Fatalf("dsn = %q", dsn)
	}
}

func TestLoadOverridesFromEnvironment(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/trivia")
	t.Setenv("TRIVIA_BASE_URL", "https://trivia.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Trivia.BaseURL != "https://trivia.example.com" {
		t.Fatalf("trivia base url = %q, want the override", cfg.Trivia.BaseURL)
	}
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/trivia")

	_, err := Load()
	if !errors.Is(err, ErrMissingEnvironmentVariables) {
		t.Fatalf("Load() error = %v, want ErrMissingEnvironmentVariables", err)
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingEnvironmentVariables) {
		t.Fatalf("Load() error = %v, want ErrMissingEnvironmentVariables", err)
	}
}
