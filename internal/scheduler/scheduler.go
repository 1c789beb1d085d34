package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"PriceScope/internal/collector"
	"PriceScope/internal/export"
	"PriceScope/internal/fx"
	"PriceScope/internal/model"
	"PriceScope/internal/pricing"
	"PriceScope/internal/recorder"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Scheduler owns evaluation runs: one-shot via RunNow, or periodic via cron.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Engine    *pricing.Engine
	FX        fx.Provider
	Recorder  recorder.Recorder
	Titles    []model.Title
	Markets   []string
	Baseline  string
	ExportDir string
	Ctx       context.Context
}

// NewScheduler creates a Scheduler bound to ctx; cancelling ctx stops
// in-flight collection in any running evaluation.
func NewScheduler(ctx context.Context, col *collector.Collector, eng *pricing.Engine, provider fx.Provider, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(),
		Collector: col,
		Engine:    eng,
		FX:        provider,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// Register adds the periodic evaluation task.
func (s *Scheduler) Register(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, func() {
		if err := s.RunNow(); err != nil {
			log.Printf("[WARN] scheduled run failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register evaluation task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one full evaluation run: rates, collection, normalization,
// persistence, export. An error here means the run could not start or finish
// as a whole; per-triple problems surface as row flags instead.
func (s *Scheduler) RunNow() error {
	runID := uuid.NewString()
	started := time.Now()
	log.Printf("[INFO] evaluation run %s starting (%d titles)", runID, len(s.Titles))

	table, err := s.FX.Rates(s.Ctx)
	if err != nil {
		return fmt.Errorf("load fx table: %w", err)
	}
	log.Printf("[INFO] fx table loaded from %s: %d currencies", s.FX.Name(), table.Len())

	observations := s.Collector.Collect(s.Ctx, s.Titles, s.Markets)
	if err := s.Ctx.Err(); err != nil {
		return fmt.Errorf("run cancelled: %w", err)
	}

	result := s.Engine.Evaluate(s.Titles, observations, table, time.Now())

	flagged := 0
	for _, row := range result.Rows {
		if len(row.Flags) > 0 {
			flagged++
		}
	}
	log.Printf("[INFO] run %s evaluated: %d rows (%d flagged), %d aggregates",
		runID, len(result.Rows), flagged, len(result.Aggregates))

	if err := s.Recorder.RecordRun(&recorder.RunRecord{
		ID:             runID,
		StartedAt:      started,
		FinishedAt:     time.Now(),
		BaselineMarket: s.Baseline,
		Rows:           result.Rows,
		Aggregates:     result.Aggregates,
	}); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}

	if s.ExportDir != "" {
		if err := export.SaveRun(s.ExportDir, runID, result.Rows, result.Aggregates); err != nil {
			return fmt.Errorf("export run: %w", err)
		}
		log.Printf("[INFO] run %s exported to %s", runID, s.ExportDir)
	}
	return nil
}
