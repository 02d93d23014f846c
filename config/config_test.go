package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "host=localhost user=postgres dbname=cinema")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STRIPE_SECRET", "sk_test_1")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ADDR", "")
	t.Setenv("ACCESS_TOKEN_TTL_MIN", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("REQUEST_TIMEOUT_SEC", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Addr != ":4000" {
		t.Errorf("Addr = %q, want :4000", cfg.Addr)
	}
	if cfg.AccessTTL != time.Hour {
		t.Errorf("AccessTTL = %v, want 1h", cfg.AccessTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.BcryptCost)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("STRIPE_SECRET", "")

	_, err := LoadConfig()
	if err == nil || !strings.Contains(err.Error(), "STRIPE_SECRET") {
		t.Fatalf("LoadConfig() error = %v, want missing STRIPE_SECRET", err)
	}
}

func TestLoadConfigBadInt(t *testing.T) {
	setRequired(t)
	t.Setenv("BCRYPT_COST", "plenty")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() accepted a non-numeric BCRYPT_COST")
	}
}
