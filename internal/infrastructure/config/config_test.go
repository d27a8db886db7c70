package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if cfg.Storage.Driver != StorageDynamoDB {
		t.Fatalf("expected dynamodb storage, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.QuotesTable != "quote_requests" {
		t.Fatalf("unexpected quotes table %q", cfg.Storage.QuotesTable)
	}
	if cfg.Redis.Enabled() {
		t.Fatal("expected redis disabled without REDIS_URL")
	}
	if !bool(cfg.Collaborators.Mock) {
		t.Fatal("expected collaborators mock mode by default")
	}
	if bool(cfg.Flow.CustomerLookupEnabled) {
		t.Fatal("expected customer lookup disabled by default")
	}
	if cfg.Flow.ApprovalMockDelay != 5*time.Second {
		t.Fatalf("expected approval delay 5s, got %v", cfg.Flow.ApprovalMockDelay)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SESSION_DRAFT_TTL", "2h")
	t.Setenv("COLLABORATORS_MOCK", "off")
	t.Setenv("CUSTOMER_LOOKUP_ENABLED", "yes")
	t.Setenv("MERCADOPAGO_MOCK", "mock")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.App.Port)
	}
	if cfg.Storage.Driver != StorageMemory {
		t.Fatalf("expected memory storage, got %q", cfg.Storage.Driver)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.DraftTTL != 2*time.Hour {
		t.Fatalf("unexpected redis config %+v", cfg.Redis)
	}
	if bool(cfg.Collaborators.Mock) {
		t.Fatal("expected collaborators mock mode off")
	}
	if !bool(cfg.Flow.CustomerLookupEnabled) {
		t.Fatal("expected customer lookup enabled")
	}
	if !cfg.Payments.MockEnabled() {
		t.Fatal("expected payment mock via MERCADOPAGO_MOCK")
	}
}

func TestLoad_InvalidStorageDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected invalid storage driver to return an error")
	}
}

func TestParseFlag(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
		if !ParseFlag(v) {
			t.Fatalf("expected %q to be true", v)
		}
	}
	for _, v := range []string{"", "0", "false", "off", "nope"} {
		if ParseFlag(v) {
			t.Fatalf("expected %q to be false", v)
		}
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	if !(AppConfig{Env: "DEV"}).IsDev() {
		t.Fatal("expected IsDev true for DEV")
	}
	if (AppConfig{Env: "development"}).IsProd() {
		t.Fatal("expected IsProd false for development")
	}
	if !(AppConfig{Env: "production"}).IsProd() {
		t.Fatal("expected IsProd true for production")
	}
}
