package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/wojtekolesinski/battleships/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"BATTLESHIP_LOG_LEVEL", "BATTLESHIP_LOG_FILE", "BATTLESHIP_SEED", "BATTLESHIP_DEPLOY"} {
		t.Setenv(k, "")
	}
	cfg, err := config.Load(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != log.InfoLevel || cfg.LogFile != "battleships.log" || cfg.Seed != 0 || cfg.Deploy != config.DeployAsk {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("BATTLESHIP_LOG_LEVEL", "debug")
	t.Setenv("BATTLESHIP_LOG_FILE", "game.log")
	t.Setenv("BATTLESHIP_SEED", "42")
	t.Setenv("BATTLESHIP_DEPLOY", "auto")

	cfg, err := config.Load(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != log.DebugLevel || cfg.LogFile != "game.log" || cfg.Seed != 42 || cfg.Deploy != config.DeployAuto {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv("BATTLESHIP_DEPLOY", "")
	t.Setenv("BATTLESHIP_SEED", "")
	// godotenv does not override variables already set, so unset them.
	os.Unsetenv("BATTLESHIP_DEPLOY")
	os.Unsetenv("BATTLESHIP_SEED")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BATTLESHIP_DEPLOY=manual\nBATTLESHIP_SEED=7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("BATTLESHIP_DEPLOY")
		os.Unsetenv("BATTLESHIP_SEED")
	})

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Deploy != config.DeployManual || cfg.Seed != 7 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"BATTLESHIP_LOG_LEVEL": "loud",
		"BATTLESHIP_SEED":      "seven",
		"BATTLESHIP_DEPLOY":    "later",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			if _, err := config.Load(filepath.Join(t.TempDir(), ".env")); err == nil {
				t.Errorf("%s=%s: expected error", k, v)
			}
		})
	}
}
