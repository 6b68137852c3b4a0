package config_test

import (
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-tasks/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
	t.Setenv("JWT_EMAIL_SECRET", "email-secret")
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/tasks")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.APIBase != "/api/v1/" {
		t.Errorf("expected default API base /api/v1/, got %s", cfg.APIBase)
	}
	if cfg.JWTAccessTokenTTL != 2*time.Hour {
		t.Errorf("expected default access TTL 2h, got %s", cfg.JWTAccessTokenTTL)
	}
	if cfg.JWTRefreshTokenTTL != 7*24*time.Hour {
		t.Errorf("expected default refresh TTL 168h, got %s", cfg.JWTRefreshTokenTTL)
	}
	if cfg.JWTResetTokenTTL != 15*time.Minute {
		t.Errorf("expected default reset TTL 15m, got %s", cfg.JWTResetTokenTTL)
	}
}

func TestLoad_MissingSecrets(t *testing.T) {
	cases := []string{"JWT_SECRET", "JWT_REFRESH_SECRET", "JWT_EMAIL_SECRET", "MYSQL_DSN"}

	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")

			if _, err := config.Load(); err == nil {
				t.Fatalf("expected error when %s is missing", missing)
			}
		})
	}
}

func TestLoad_DurationOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_TOKEN_TTL", "30")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.JWTAccessTokenTTL != 30*time.Minute {
		t.Errorf("expected 30m access TTL, got %s", cfg.JWTAccessTokenTTL)
	}
}
