package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PriceScope/internal/collector"
	"PriceScope/internal/config"
	"PriceScope/internal/fx"
	"PriceScope/internal/market"
	"PriceScope/internal/model"
	"PriceScope/internal/pricing"
	"PriceScope/internal/recorder"
	"PriceScope/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PriceScope starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Build market registries, with per-platform CSV overrides
	registries := make(map[model.Platform]*market.Registry, len(model.Platforms))
	for _, p := range model.Platforms {
		var reg *market.Registry
		var err error
		if path, ok := cfg.Overrides[string(p)]; ok && path != "" {
			reg, err = market.LoadOverrideCSV(p, path)
			if err != nil {
				log.Fatalf("[FATAL] load %s market override: %v", p, err)
			}
			log.Printf("[INFO] %s markets: %d (override from %s)", p, reg.Len(), path)
		} else {
			reg, err = market.Builtin(p)
			if err != nil {
				log.Fatalf("[FATAL] load %s builtin markets: %v", p, err)
			}
			log.Printf("[INFO] %s markets: %d (builtin)", p, reg.Len())
		}
		registries[p] = reg
	}

	// Init storefront fetchers
	fetchers := []collector.Fetcher{
		collector.NewSteamFetcher(cfg.Proxy),
		collector.NewXboxFetcher(cfg.Proxy),
		collector.NewPlayStationFetcher(cfg.Proxy),
	}

	// Init collector
	col := collector.New(fetchers, registries)
	col.Concurrency = cfg.Collection.Concurrency
	col.TaskTimeout = time.Duration(cfg.Collection.TaskTimeout)
	col.MaxRetries = cfg.Collection.MaxRetries

	// Init FX provider
	var provider fx.Provider
	if cfg.FX.RatesFile != "" {
		provider = &fx.FileProvider{Path: cfg.FX.RatesFile}
	} else {
		provider = fx.NewHTTPProvider(cfg.FX.SourceURL, cfg.Proxy)
	}
	log.Printf("[INFO] fx source: %s", provider.Name())

	// Init pricing engine
	eng := pricing.NewEngine(pricing.Params{
		BaselineMarket: cfg.BaselineMarket,
		VarianceBand:   cfg.VarianceBand,
		FXMaxAge:       time.Duration(cfg.FX.MaxAge),
		Vanity:         cfg.Vanity,
	})

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, eng, provider, rec)
	sched.Titles = cfg.ModelTitles()
	sched.Markets = cfg.Collection.Markets
	sched.Baseline = cfg.BaselineMarket
	sched.ExportDir = cfg.Export.Dir

	// No cron schedule means one-shot mode: evaluate once and exit.
	if cfg.Schedule.Cron == "" {
		if err := sched.RunNow(); err != nil {
			log.Fatalf("[FATAL] evaluation run: %v", err)
		}
		log.Println("[INFO] PriceScope done")
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing evaluation now")
		go func() {
			if err := sched.RunNow(); err != nil {
				log.Printf("[WARN] startup run failed: %v", err)
			}
		}()
	}

	log.Println("[INFO] PriceScope is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] PriceScope stopped")
}
