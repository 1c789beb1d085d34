package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while a run is being written.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id          TEXT PRIMARY KEY,
			started_at      INTEGER NOT NULL,
			finished_at     INTEGER NOT NULL,
			baseline_market TEXT,
			row_count       INTEGER,
			flagged_count   INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS recommendations (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id            TEXT NOT NULL,
			title             TEXT,
			platform          TEXT,
			market            TEXT,
			currency          TEXT,
			local_price_raw   REAL,
			local_recommended REAL,
			usd_price         REAL,
			pct_diff          REAL,
			flags             TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reco_run ON recommendations(run_id)`,

		`CREATE TABLE IF NOT EXISTS aggregates (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id          TEXT NOT NULL,
			platform        TEXT,
			market          TEXT,
			recommended_usd REAL,
			recommended_loc REAL,
			title_count     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_agg_run ON aggregates(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun writes the run header plus all rows in one transaction.
func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	flagged := 0
	for _, row := range rec.Rows {
		if len(row.Flags) > 0 {
			flagged++
		}
	}

	if _, err := tx.Exec(`INSERT INTO runs
		(run_id, started_at, finished_at, baseline_market, row_count, flagged_count)
		VALUES (?,?,?,?,?,?)`,
		rec.ID, rec.StartedAt.Unix(), rec.FinishedAt.Unix(),
		rec.BaselineMarket, len(rec.Rows), flagged,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	rowStmt, err := tx.Prepare(`INSERT INTO recommendations
		(run_id, title, platform, market, currency, local_price_raw, local_recommended, usd_price, pct_diff, flags)
		VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare row insert: %w", err)
	}
	defer rowStmt.Close()

	for _, row := range rec.Rows {
		if _, err := rowStmt.Exec(
			rec.ID, row.Title, string(row.Platform), row.Market.Code, row.Market.Currency,
			row.LocalPriceRaw, row.LocalRecommended, row.USDPrice, row.PctDiff,
			row.Flags.String(),
		); err != nil {
			return fmt.Errorf("insert row %s/%s: %w", row.Title, row.Market.Code, err)
		}
	}

	aggStmt, err := tx.Prepare(`INSERT INTO aggregates
		(run_id, platform, market, recommended_usd, recommended_loc, title_count)
		VALUES (?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare aggregate insert: %w", err)
	}
	defer aggStmt.Close()

	for _, agg := range rec.Aggregates {
		if _, err := aggStmt.Exec(
			rec.ID, string(agg.Platform), agg.Market.Code,
			agg.RecommendedUSD, agg.RecommendedLoc, agg.TitleCount,
		); err != nil {
			return fmt.Errorf("insert aggregate %s/%s: %w", agg.Platform, agg.Market.Code, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
