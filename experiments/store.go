package experiments

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"minimax/experiments/metrics"
)

//go:embed sql/*.sql
var migrations embed.FS

// Store keeps benchmark results in SQLite so runs can be compared later.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the database at path and applies any
// pending migrations.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// migrate applies the embedded sql/*.sql files in name order, each once.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// SaveRun stores a run and its games in one transaction and returns the run ID.
func (s *Store) SaveRun(ctx context.Context, started time.Time, soft bool, vocabulary int, records []metrics.GameRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bench_runs (started_at, soft, vocabulary) VALUES (?, ?, ?)`,
		started.UTC().Format(time.RFC3339), soft, vocabulary)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO bench_results
				(run_id, game, truth, guesses, solved, score, duration_ms, nodes, cutoffs)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, r.ID, r.Truth, r.Guesses, r.Solved, r.Score, r.Duration.Milliseconds(), r.Nodes, r.Cutoffs)
		if err != nil {
			return 0, fmt.Errorf("insert game %d: %w", r.ID, err)
		}
	}
	return runID, tx.Commit()
}

// Results returns the games of a run ordered by game number.
func (s *Store) Results(ctx context.Context, runID int64) ([]metrics.GameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT game, truth, guesses, solved, score, duration_ms, nodes, cutoffs
		FROM bench_results WHERE run_id = ? ORDER BY game`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []metrics.GameRecord
	for rows.Next() {
		var r metrics.GameRecord
		var ms int64
		if err := rows.Scan(&r.ID, &r.Truth, &r.Guesses, &r.Solved, &r.Score, &ms, &r.Nodes, &r.Cutoffs); err != nil {
			return nil, err
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}

// SolveRate is the fraction of stored games solved for each truth word.
func (s *Store) SolveRate(ctx context.Context) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT truth, AVG(solved) FROM bench_results GROUP BY truth`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var truth string
		var rate float64
		if err := rows.Scan(&truth, &rate); err != nil {
			return nil, err
		}
		out[truth] = rate
	}
	return out, rows.Err()
}
