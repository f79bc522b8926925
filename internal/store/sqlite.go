package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"vitalis/internal/engine"
)

// SQLite is the default embedded repository: a single-file database with the
// schema created on open.
type SQLite struct {
	db  *sql.DB
	log *zap.Logger
}

// NewSQLite opens (creating if needed) the database at path and ensures the
// schema exists.
func NewSQLite(path string, log *zap.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// database/sql pools connections; SQLite wants a single writer.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if err := createSQLiteSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug("sqlite store ready", zap.String("path", path))
	return &SQLite{db: db, log: log}, nil
}

// createSQLiteSchema creates the record and time-series tables if missing.
func createSQLiteSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS records (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS vo2_history (
			day        TEXT PRIMARY KEY,
			value      REAL NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// LoadProfile assembles the profile from its per-field records, starting
// from defaults so missing fields keep their documented values.
func (s *SQLite) LoadProfile(ctx context.Context) (engine.Profile, error) {
	p := engine.DefaultProfile()
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM records WHERE key LIKE 'profile.%'`)
	if err != nil {
		return p, fmt.Errorf("load profile: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return p, fmt.Errorf("load profile: %w", err)
		}
		if err := applyProfileField(&p, key, value); err != nil {
			return p, err
		}
	}
	if err := rows.Err(); err != nil {
		return p, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// SaveProfile upserts every profile field record in one transaction.
func (s *SQLite) SaveProfile(ctx context.Context, p engine.Profile) error {
	fields, err := profileFields(p)
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	defer tx.Rollback()

	for key, value := range fields {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value); err != nil {
			return fmt.Errorf("save profile field %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// LoadAnswers reads the single assessment record, defaulting to the neutral
// sheet when none exists.
func (s *SQLite) LoadAnswers(ctx context.Context) (engine.AssessmentAnswers, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM records WHERE key = ?`, answersKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return engine.DefaultAnswers(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	return decodeAnswers(raw)
}

// SaveAnswers upserts the assessment record.
func (s *SQLite) SaveAnswers(ctx context.Context, a engine.AssessmentAnswers) error {
	raw, err := encodeAnswers(a)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO records (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		answersKey, raw); err != nil {
		return fmt.Errorf("save answers: %w", err)
	}
	return nil
}

// VO2History returns all samples ordered by day ascending.
func (s *SQLite) VO2History(ctx context.Context) ([]VO2Sample, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT day, value FROM vo2_history ORDER BY day ASC`)
	if err != nil {
		return nil, fmt.Errorf("load vo2 history: %w", err)
	}
	defer rows.Close()

	samples := []VO2Sample{}
	for rows.Next() {
		var sample VO2Sample
		if err := rows.Scan(&sample.Day, &sample.Value); err != nil {
			return nil, fmt.Errorf("load vo2 history: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load vo2 history: %w", err)
	}
	return samples, nil
}

// AppendVO2 inserts the day's sample. ON CONFLICT DO NOTHING makes the
// check-then-append a single atomic statement and leaves existing samples
// untouched; RowsAffected tells whether this call created the entry.
func (s *SQLite) AppendVO2(ctx context.Context, day string, value float64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO vo2_history (day, value) VALUES (?, ?)
		 ON CONFLICT(day) DO NOTHING`,
		day, value)
	if err != nil {
		return false, fmt.Errorf("append vo2: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("append vo2: %w", err)
	}
	return n > 0, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }
