package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_EMAILS", "Ops@wascrap.com, owner@wascrap.com")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("OTP_TTL", "5m")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != "8080" || cfg.Tables.Bookings != "bookings" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.OTP.TTL != 5*time.Minute || cfg.OTP.MaxAttempts != 5 {
		t.Fatalf("unexpected otp config: %+v", cfg.OTP)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Fatalf("expected two brokers, got %v", cfg.Kafka.Brokers)
	}
	if !cfg.IsAdminEmail("ops@wascrap.com") || cfg.IsAdminEmail("someone@else.com") || cfg.IsAdminEmail("") {
		t.Fatalf("unexpected admin email resolution for %v", cfg.Auth.AdminEmails)
	}
	if !cfg.EmailMockEnabled() {
		t.Fatalf("expected email mock mode without RESEND_API_KEY")
	}
}

func TestLoad_FromFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "http:\n  port: \"9090\"\nauth:\n  jwt_secret: from-file\nemail:\n  resend_api_key: re_123\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != "7070" {
		t.Fatalf("expected env override, got %s", cfg.HTTP.Port)
	}
	if cfg.Auth.JWTSecret != "from-file" || cfg.EmailMockEnabled() {
		t.Fatalf("unexpected file values: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"JWT_SECRET", "JWT_TOKEN_TTL", "OTP_TTL", "OTP_MAX_ATTEMPTS"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %s in %v", want, err)
		}
	}
}
