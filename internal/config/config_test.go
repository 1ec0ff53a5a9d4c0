package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"bckl/internal/config"
	"bckl/internal/testsupport"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	testsupport.WriteFile(t, path, content)
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("unexpected default model %q", cfg.LLM.Model)
	}
	if cfg.LLM.RetryAttempts != 3 {
		t.Errorf("unexpected default retry attempts %d", cfg.LLM.RetryAttempts)
	}
	if cfg.Dictation.MaxBytes != 2048 {
		t.Errorf("unexpected default dictation bound %d", cfg.Dictation.MaxBytes)
	}
	if filepath.Base(cfg.Store.Path) != "backlog.csv" {
		t.Errorf("unexpected default store path %q", cfg.Store.Path)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[llm]
model = "demo-model"
timeout_seconds = 30
retry_attempts = 5

[store]
path = "work/items.csv"

[dictation]
max_bytes = 512

[logging]
level = "debug"
format = "json"
`)
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LLM.Model != "demo-model" || cfg.LLM.TimeoutSeconds != 30 || cfg.LLM.RetryAttempts != 5 {
		t.Errorf("llm overrides not applied: %+v", cfg.LLM)
	}
	if !strings.HasSuffix(cfg.Store.Path, filepath.Join("work", "items.csv")) {
		t.Errorf("store path not normalized: %q", cfg.Store.Path)
	}
	if cfg.Dictation.MaxBytes != 512 {
		t.Errorf("dictation bound not applied: %d", cfg.Dictation.MaxBytes)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging overrides not applied: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"retry attempts too high": "[llm]\nretry_attempts = 50\n",
		"dictation bound too low": "[dictation]\nmax_bytes = 16\n",
		"bad log level":           "[logging]\nlevel = \"verbose\"\n",
		"bad log format":          "[logging]\nformat = \"xml\"\n",
	}
	for name, content := range cases {
		path := writeConfig(t, content)
		if _, _, _, err := config.Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("BCKL_MODEL", "env-model")
	t.Setenv("BCKL_API_KEY", "env-key")

	path := writeConfig(t, "[llm]\nmodel = \"file-model\"\n")
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LLM.Model != "env-model" {
		t.Errorf("env model override not applied: %q", cfg.LLM.Model)
	}
	if cfg.LLM.APIKey != "env-key" {
		t.Errorf("env api key override not applied")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("missing file reported as existing")
	}
	if cfg.LLM.BaseURL == "" {
		t.Fatal("defaults not applied")
	}
}

func TestExpandPath(t *testing.T) {
	expanded, err := config.ExpandPath("~/backlog.csv")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if strings.HasPrefix(expanded, "~") || !filepath.IsAbs(expanded) {
		t.Fatalf("path not expanded: %q", expanded)
	}
}

func TestTestsupportConfigValidates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
}
