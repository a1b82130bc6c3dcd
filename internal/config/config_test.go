package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"APP_NAME":           "skillbridge",
		"APP_ENV":            "test",
		"HTTP_PORT":          "8080",
		"JWT_ACCESS_SECRET":  "access",
		"JWT_REFRESH_SECRET": "refresh",
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(baseEnv()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("expected default access ttl, got %s", cfg.JWT.AccessExpiresIn)
	}
	if cfg.Redis.TTL != 600*time.Second {
		t.Fatalf("expected default redis ttl, got %s", cfg.Redis.TTL)
	}
	if cfg.Migrations.Dir != "migrations" {
		t.Fatalf("expected default migrations dir, got %q", cfg.Migrations.Dir)
	}
	if got := cfg.Redis.Addr(); got != "localhost:6379" {
		t.Fatalf("unexpected redis addr %q", got)
	}
}

func TestFromEnv_MissingRequired(t *testing.T) {
	env := baseEnv()
	delete(env, "HTTP_PORT")
	delete(env, "JWT_ACCESS_SECRET")

	_, err := FromEnv(envMap(env))
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "HTTP_PORT") || !strings.Contains(err.Error(), "JWT_ACCESS_SECRET") {
		t.Fatalf("expected both keys listed, got %v", err)
	}
}

func TestFromEnv_InvalidDuration(t *testing.T) {
	env := baseEnv()
	env["JWT_ACCESS_EXPIRES_IN"] = "soon"

	if _, err := FromEnv(envMap(env)); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
