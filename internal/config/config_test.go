package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TASKBOX_JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.DBPath != "taskbox.db" {
		t.Errorf("db path = %q, want taskbox.db", cfg.DBPath)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("secret = %q, want s3cret", cfg.JWTSecret)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("TASKBOX_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing signing secret")
	}
}
