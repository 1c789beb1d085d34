package recorder

import (
	"time"

	"PriceScope/internal/model"
)

// RunRecord holds everything persisted for one evaluation run.
type RunRecord struct {
	ID             string
	StartedAt      time.Time
	FinishedAt     time.Time
	BaselineMarket string
	Rows           []model.RecommendationRow
	Aggregates     []model.AggregateRow
}

// Recorder persists evaluation history for later analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
