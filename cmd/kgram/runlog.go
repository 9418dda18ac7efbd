package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/CTAG07/kgram/pkg/markov"
)

const runLogSchema = `
CREATE TABLE IF NOT EXISTS run_log (
    run_id              INTEGER PRIMARY KEY,
    started_at          DATETIME NOT NULL,
    corpus_path         TEXT NOT NULL,
    corpus_length       INTEGER NOT NULL,
    model_order         INTEGER NOT NULL,
    trajectory_length   INTEGER NOT NULL,
    backend             TEXT NOT NULL,
    distinct_kgrams     INTEGER NOT NULL,
    total_transitions   INTEGER NOT NULL,
    distinct_successors INTEGER NOT NULL,
    duration_ms         INTEGER NOT NULL
);
`

// RunRecord describes one completed generation run, written to the
// local run-log database when enabled. The model itself is never
// persisted.
type RunRecord struct {
	StartedAt        time.Time
	CorpusPath       string
	CorpusLength     int
	Order            int
	TrajectoryLength int
	Backend          string
	Stats            markov.ModelStats
	Duration         time.Duration
}

func setupRunLogSchema(db *sql.DB) error {
	_, err := db.Exec(runLogSchema)
	return err
}

// recordRun appends one row to the run log.
func recordRun(ctx context.Context, db *sql.DB, rec RunRecord) error {
	_, err := db.ExecContext(ctx, `
        INSERT INTO run_log (started_at, corpus_path, corpus_length, model_order,
                             trajectory_length, backend, distinct_kgrams,
                             total_transitions, distinct_successors, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `,
		rec.StartedAt, rec.CorpusPath, rec.CorpusLength, rec.Order,
		rec.TrajectoryLength, rec.Backend, rec.Stats.DistinctKGrams,
		rec.Stats.TotalTransitions, rec.Stats.DistinctSuccessors,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run record: %w", err)
	}
	return nil
}

// logRun opens the run-log database, ensures the schema, and appends
// the record. Failures are logged, not fatal; the trajectory has
// already been produced.
func logRun(ctx context.Context, cfg *Config, logger *slog.Logger, rec RunRecord) {
	db, err := openRunLog(cfg.RunLogPath)
	if err != nil {
		logger.Error("Failed to open run log database", "path", cfg.RunLogPath, "error", err)
		return
	}
	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	if err = setupRunLogSchema(db); err != nil {
		logger.Error("Failed to set up run log schema", "error", err)
		return
	}
	if err = recordRun(ctx, db, rec); err != nil {
		logger.Error("Failed to record run", "error", err)
		return
	}
	logger.Debug("Run recorded",
		slog.String("backend", rec.Backend),
		slog.Int("distinct_kgrams", rec.Stats.DistinctKGrams),
		slog.Int64("duration_ms", rec.Duration.Milliseconds()),
	)
}
