package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validYAML = `
baseline_market: US
variance_band_pct: 40
collection:
  task_timeout: 30s
titles:
  - name: Foo
    tier: AAA
    baseline_usd: 69.99
    scale: 1.0
    weight: 60
    refs:
      steam: "12345"
  - name: Bar
    tier: AA
    baseline_usd: 49.99
    scale: 1.4
    weight: 40
    refs:
      steam: "67890"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DefaultsAndParsing(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.BaselineMarket != "US" {
		t.Errorf("baseline = %s", cfg.BaselineMarket)
	}
	if time.Duration(cfg.Collection.TaskTimeout) != 30*time.Second {
		t.Errorf("task_timeout = %v", time.Duration(cfg.Collection.TaskTimeout))
	}
	if cfg.Collection.Concurrency != 20 {
		t.Errorf("default concurrency = %d", cfg.Collection.Concurrency)
	}
	if time.Duration(cfg.FX.MaxAge) != 24*time.Hour {
		t.Errorf("default fx max_age = %v", time.Duration(cfg.FX.MaxAge))
	}
	if len(cfg.Vanity.ByCurrency) == 0 {
		t.Error("expected default vanity table")
	}
	titles := cfg.ModelTitles()
	if len(titles) != 2 || titles[0].Name != "Foo" {
		t.Errorf("unexpected titles: %+v", titles)
	}
}

func TestValidate_BadScale(t *testing.T) {
	cfg, err := Load(writeConfig(t, strings.Replace(validYAML, "scale: 1.4", "scale: -0.5", 1)))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for non-positive scale")
	}
	if !strings.Contains(err.Error(), "Bar") {
		t.Errorf("error should name the title: %v", err)
	}
}

func TestValidate_DuplicateTitle(t *testing.T) {
	cfg, err := Load(writeConfig(t, strings.Replace(validYAML, "name: Bar", "name: Foo", 1)))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate-title error, got %v", err)
	}
}

func TestValidate_WeightsMustSumTo100(t *testing.T) {
	cfg, err := Load(writeConfig(t, strings.Replace(validYAML, "weight: 40", "weight: 55", 1)))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "100") {
		t.Fatalf("expected weight-sum error, got %v", err)
	}
}

func TestValidate_UnknownPlatform(t *testing.T) {
	cfg, err := Load(writeConfig(t, strings.Replace(validYAML, "steam: \"67890\"", "gog: \"67890\"", 1)))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "gog") {
		t.Fatalf("expected unknown-platform error, got %v", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BASELINE_MARKET", "GB")
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaselineMarket != "GB" {
		t.Errorf("env override not applied: %s", cfg.BaselineMarket)
	}
}
