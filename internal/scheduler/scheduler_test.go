package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"PriceScope/internal/collector"
	"PriceScope/internal/fx"
	"PriceScope/internal/market"
	"PriceScope/internal/model"
	"PriceScope/internal/pricing"
	"PriceScope/internal/recorder"
)

const testRatesYAML = `as_of: 2026-08-01T00:00:00Z
rates:
  EUR: 1.08
`

func TestRunNow_ExportsBothTables(t *testing.T) {
	reg, err := market.New(model.PlatformSteam, []model.Market{
		{Code: "US", Locale: "us", Currency: "USD", Name: "United States"},
		{Code: "FR", Locale: "fr", Currency: "EUR", Name: "France"},
	})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	ratesPath := filepath.Join(t.TempDir(), "rates.yaml")
	if err := os.WriteFile(ratesPath, []byte(testRatesYAML), 0644); err != nil {
		t.Fatalf("write rates file: %v", err)
	}
	exportDir := filepath.Join(t.TempDir(), "out")

	mock := &collector.MockFetcher{
		ForPlatform: model.PlatformSteam,
		Prices:      map[string]float64{"US": 69.99, "FR": 59.99},
	}
	col := collector.New(
		[]collector.Fetcher{mock},
		map[model.Platform]*market.Registry{model.PlatformSteam: reg},
	)

	s := NewScheduler(
		context.Background(),
		col,
		pricing.NewEngine(pricing.Params{Vanity: pricing.DefaultVanity()}),
		&fx.FileProvider{Path: ratesPath},
		recorder.NewNoopRecorder(),
	)
	s.Titles = []model.Title{{
		Name:   "Foo",
		Scale:  1.0,
		Weight: 100,
		Refs:   map[model.Platform]string{model.PlatformSteam: "123"},
	}}
	s.Baseline = "US"
	s.ExportDir = exportDir

	if err := s.RunNow(); err != nil {
		t.Fatalf("run: %v", err)
	}

	entries, err := os.ReadDir(exportDir)
	if err != nil {
		t.Fatalf("read export dir: %v", err)
	}
	var recoFound, aggFound bool
	for _, e := range entries {
		switch {
		case strings.HasPrefix(e.Name(), "recommendations_"):
			recoFound = true
		case strings.HasPrefix(e.Name(), "aggregates_"):
			aggFound = true
		}
	}
	if !recoFound || !aggFound {
		t.Errorf("export dir missing tables: %v", entries)
	}
}

func TestRunNow_FailsWhenRatesUnavailable(t *testing.T) {
	s := NewScheduler(
		context.Background(),
		collector.New(nil, nil),
		pricing.NewEngine(pricing.Params{}),
		&fx.FileProvider{Path: filepath.Join(t.TempDir(), "missing.yaml")},
		recorder.NewNoopRecorder(),
	)
	if err := s.RunNow(); err == nil {
		t.Fatal("expected error when rates file is missing")
	}
}
