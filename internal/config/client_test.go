package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/genvault/genvault-go/internal/model"
	"github.com/spf13/viper"
)

func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadClient(viper.New(), "")
	if err != nil {
		t.Fatalf("LoadClient() unexpected error: %v", err)
	}
	if cfg.Server != "http://localhost:8080" {
		t.Errorf("Server = %q, want %q", cfg.Server, "http://localhost:8080")
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, 10*time.Second)
	}
	if cfg.Options != model.DefaultGeneratorOptions() {
		t.Errorf("Options = %+v, want %+v", cfg.Options, model.DefaultGeneratorOptions())
	}
}

func TestLoadClient_FileThenEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "genvault.yaml")
	content := "server: https://vault.example/\ntoken: file-token\nletters: 20\ntimeout: 3s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("GENVAULT_TOKEN", "env-token")

	cfg, err := LoadClient(viper.New(), path)
	if err != nil {
		t.Fatalf("LoadClient() unexpected error: %v", err)
	}
	if cfg.Server != "https://vault.example" {
		t.Errorf("Server = %q, want trailing slash trimmed", cfg.Server)
	}
	if cfg.Token != "env-token" {
		t.Errorf("Token = %q, want env to override file", cfg.Token)
	}
	if cfg.Options.Letters != 20 || cfg.Options.Numbers != 4 {
		t.Errorf("Options = %+v, want letters from file and numbers default", cfg.Options)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, 3*time.Second)
	}
}

func TestLoadClient_MissingExplicitFile(t *testing.T) {
	_, err := LoadClient(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadClient() expected error for missing explicit config file")
	}
}

func TestLoadClient_OverrideWins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	v := viper.New()
	v.Set(KeyServer, "http://127.0.0.1:9999")

	cfg, err := LoadClient(v, "")
	if err != nil {
		t.Fatalf("LoadClient() unexpected error: %v", err)
	}
	if cfg.Server != "http://127.0.0.1:9999" {
		t.Errorf("Server = %q, want override", cfg.Server)
	}
}
