package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golf-match-api/internal/config"
)

func TestDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := config.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store != config.StorePostgres {
		t.Errorf("store: %s", cfg.Store)
	}
	if cfg.AccessTTL != 15*time.Minute || cfg.RefreshTTL != 168*time.Hour {
		t.Errorf("ttls: %v %v", cfg.AccessTTL, cfg.RefreshTTL)
	}
	if cfg.GRPCPort != "50051" || cfg.WebPort != "8080" {
		t.Errorf("ports: %s %s", cfg.GRPCPort, cfg.WebPort)
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Errorf("cors should default to same-origin only: %v", cfg.CORSOrigins)
	}
	if cfg.PhotosEnabled() {
		t.Error("photos should be off without a bucket")
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE", "memory")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("S3_BUCKET_NAME", "photos")

	cfg, err := config.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store != config.StoreMemory || cfg.AccessTTL != 5*time.Minute {
		t.Errorf("got %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("cors: %v", cfg.CORSOrigins)
	}
	if !cfg.PhotosEnabled() {
		t.Error("photos should be on")
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET": ""}},
		{"unknown store", map[string]string{"JWT_SECRET": "x", "STORE": "redis"}},
		{"bad duration", map[string]string{"JWT_SECRET": "x", "ACCESS_TOKEN_TTL": "soon"}},
		{"zero burst", map[string]string{"JWT_SECRET": "x", "RATE_LIMIT_BURST": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := config.Parse(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("JWT_SECRET=from-file\nWEB_PORT=9090\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// register for restore; godotenv does not override set variables
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	t.Setenv("WEB_PORT", "")
	os.Unsetenv("WEB_PORT")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.JWTSecret != "from-file" || cfg.WebPort != "9090" {
		t.Errorf("got secret=%q port=%q", cfg.JWTSecret, cfg.WebPort)
	}
}
