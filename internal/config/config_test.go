package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Store.Backend != BackendSQLite {
		t.Fatalf("backend = %q", cfg.Store.Backend)
	}
	if cfg.Usage.DailyLimit != 5 {
		t.Fatalf("daily limit = %d", cfg.Usage.DailyLimit)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  addr: ":9090"
store:
  backend: json
  jsonDir: /tmp/listinghub-test
usage:
  dailyLimit: 3
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(configPathEnv, path)

	cfg := Load()
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Store.Backend != BackendJSON || cfg.Store.JSONDir != "/tmp/listinghub-test" {
		t.Fatalf("store = %+v", cfg.Store)
	}
	if cfg.Usage.DailyLimit != 3 {
		t.Fatalf("daily limit = %d", cfg.Usage.DailyLimit)
	}
	// untouched sections keep their defaults
	if cfg.Admin.Issuer != "listinghub" {
		t.Fatalf("issuer = %q", cfg.Admin.Issuer)
	}
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(configPathEnv, path)
	t.Setenv(addrEnv, ":7000")
	t.Setenv(storeBackendEnv, BackendMemory)
	t.Setenv(dailyLimitEnv, "10")
	t.Setenv(adminSecretEnv, "super-secret")

	cfg := Load()
	if cfg.Server.Addr != ":7000" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Store.Backend != BackendMemory {
		t.Fatalf("backend = %q", cfg.Store.Backend)
	}
	if cfg.Usage.DailyLimit != 10 {
		t.Fatalf("daily limit = %d", cfg.Usage.DailyLimit)
	}
	if cfg.Admin.Secret != "super-secret" {
		t.Fatalf("secret = %q", cfg.Admin.Secret)
	}
}

func TestInvalidDailyLimitEnvKeepsDefault(t *testing.T) {
	t.Setenv(dailyLimitEnv, "zero")
	cfg := Load()
	if cfg.Usage.DailyLimit != 5 {
		t.Fatalf("daily limit = %d", cfg.Usage.DailyLimit)
	}
}
