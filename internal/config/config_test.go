package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MENU_FILE", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.MenuFile != "" {
		t.Fatalf("expected no default menu file, got %s", cfg.MenuFile)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.RateLimitRPS != defaultRateLimitRPS {
		t.Fatalf("unexpected rate limit rps: %f", cfg.RateLimitRPS)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MENU_FILE", "menu.txt")
	t.Setenv("RATE_LIMIT_RPS", "5.5")
	t.Setenv("RATE_LIMIT_BURST", "7")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.MenuFile != "menu.txt" {
		t.Fatalf("expected overridden menu file, got %s", cfg.MenuFile)
	}
	if cfg.RateLimitRPS != 5.5 {
		t.Fatalf("expected overridden rps, got %f", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 7 {
		t.Fatalf("expected overridden burst, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MENU_FILE", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`port: "8181"
menu_file: appetizers.txt
shutdown_grace_period: 3s
enable_request_logging: true
rate_limit:
  rps: 10
  burst: 20
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8181" {
		t.Fatalf("expected port from YAML, got %s", cfg.Port)
	}
	if cfg.MenuFile != "appetizers.txt" {
		t.Fatalf("expected menu file from YAML, got %s", cfg.MenuFile)
	}
	if cfg.ShutdownGracePeriod != 3*time.Second {
		t.Fatalf("expected 3s grace period, got %s", cfg.ShutdownGracePeriod)
	}
	if cfg.RateLimitRPS != 10 {
		t.Fatalf("expected rps from YAML, got %f", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 20 {
		t.Fatalf("expected burst from YAML, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadCLIOverridesWinOverEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MENU_FILE", "env-menu.txt")

	port := "7070"
	menuFile := "cli-menu.txt"
	rps := 2.0
	burst := 4

	cfg, err := Load(&CLIOverrides{
		Port:           &port,
		MenuFile:       &menuFile,
		RateLimitRPS:   &rps,
		RateLimitBurst: &burst,
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7070" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	if cfg.MenuFile != "cli-menu.txt" {
		t.Fatalf("expected CLI menu file to win, got %s", cfg.MenuFile)
	}
	if cfg.RateLimitRPS != 2.0 || cfg.RateLimitBurst != 4 {
		t.Fatalf("expected CLI rate limit to win, got %f/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load(&CLIOverrides{ConfigFile: "does-not-exist.yaml"}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
