package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-keywordform/internal/logging"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{
		Service: ServiceConfig{
			BaseURL: "http://localhost:8000",
			Timeout:   90 * time.Second,
			UserAgent: "go-keywordform",
		},
		Server: ServerConfig{Addr: ":8080", SessionTTL: 30 * time.Minute},
		Logger: logging.Config{Level: "info", Format: "json", Output: "stderr"},
		Locale: "en-US",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywordform.yaml")
	content := "service:\n  base_url: https://keywords.example\n  timeout: 30s\n  validate_contract: true\nlogger:\n  format: console\nlocale: de-DE\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("KEYWORDFORM_SERVER_ADDR", ":9090")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Service.BaseURL != "https://keywords.example" || cfg.Service.Timeout != 30*time.Second || !cfg.Service.ValidateContract {
		t.Fatalf("service config = %+v", cfg.Service)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("server addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Logger.Format != "console" || cfg.Logger.Level != "info" {
		t.Fatalf("logger config = %+v", cfg.Logger)
	}
	if cfg.Locale != "de-DE" {
		t.Fatalf("locale = %q", cfg.Locale)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("KEYWORDFORM_SERVICE_BASE_URL", "not a url")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for relative base URL")
	}
}

func TestLoad_NonPositiveSessionTTL(t *testing.T) {
	t.Setenv("KEYWORDFORM_SERVER_SESSION_TTL", "0s")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for zero session ttl")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
