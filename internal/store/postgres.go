package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"vitalis/internal/engine"
)

// Postgres is the optional server-backed repository, selected when a DSN is
// configured (DB_URL or store.dsn).
type Postgres struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// kvRow is the scan shape for key/value record queries.
type kvRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// NewPostgres connects a pool to dsn and ensures the schema exists.
func NewPostgres(ctx context.Context, dsn string, log *zap.Logger) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	// Simple query protocol avoids "cached plan must not change result type"
	// errors from server-side prepared-statement caches after schema changes.
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	p := &Postgres{pool: pool, log: log}
	if err := p.createSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Debug("postgres store ready")
	return p, nil
}

// createSchema creates the record and time-series tables if missing.
func (p *Postgres) createSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS records (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS vo2_history (
			day        TEXT PRIMARY KEY,
			value      DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// LoadProfile assembles the profile from its per-field records, starting
// from defaults so missing fields keep their documented values.
func (p *Postgres) LoadProfile(ctx context.Context) (engine.Profile, error) {
	profile := engine.DefaultProfile()
	rows, err := p.pool.Query(ctx,
		`SELECT key, value FROM records WHERE key LIKE 'profile.%'`)
	if err != nil {
		return profile, fmt.Errorf("load profile: %w", err)
	}
	kvs, err := pgx.CollectRows(rows, pgx.RowToStructByName[kvRow])
	if err != nil {
		return profile, fmt.Errorf("load profile: %w", err)
	}
	for _, kv := range kvs {
		if err := applyProfileField(&profile, kv.Key, kv.Value); err != nil {
			return profile, err
		}
	}
	return profile, nil
}

// SaveProfile upserts every profile field record in one transaction.
func (p *Postgres) SaveProfile(ctx context.Context, profile engine.Profile) error {
	fields, err := profileFields(profile)
	if err != nil {
		return err
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	defer tx.Rollback(ctx)

	for key, value := range fields {
		if _, err := tx.Exec(ctx,
			`INSERT INTO records (key, value) VALUES (@key, @value)
			 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
			pgx.NamedArgs{"key": key, "value": value}); err != nil {
			return fmt.Errorf("save profile field %s: %w", key, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// LoadAnswers reads the single assessment record, defaulting to the neutral
// sheet when none exists.
func (p *Postgres) LoadAnswers(ctx context.Context) (engine.AssessmentAnswers, error) {
	var raw string
	err := p.pool.QueryRow(ctx,
		`SELECT value FROM records WHERE key = @key`,
		pgx.NamedArgs{"key": answersKey}).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return engine.DefaultAnswers(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	return decodeAnswers(raw)
}

// SaveAnswers upserts the assessment record.
func (p *Postgres) SaveAnswers(ctx context.Context, a engine.AssessmentAnswers) error {
	raw, err := encodeAnswers(a)
	if err != nil {
		return err
	}
	if _, err := p.pool.Exec(ctx,
		`INSERT INTO records (key, value) VALUES (@key, @value)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		pgx.NamedArgs{"key": answersKey, "value": raw}); err != nil {
		return fmt.Errorf("save answers: %w", err)
	}
	return nil
}

// VO2History returns all samples ordered by day ascending.
func (p *Postgres) VO2History(ctx context.Context) ([]VO2Sample, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT day, value FROM vo2_history ORDER BY day ASC`)
	if err != nil {
		return nil, fmt.Errorf("load vo2 history: %w", err)
	}
	samples, err := pgx.CollectRows(rows, pgx.RowToStructByName[VO2Sample])
	if err != nil {
		return nil, fmt.Errorf("load vo2 history: %w", err)
	}
	if samples == nil {
		samples = []VO2Sample{}
	}
	return samples, nil
}

// AppendVO2 inserts the day's sample. ON CONFLICT DO NOTHING makes the
// check-then-append a single atomic statement and leaves existing samples
// untouched; the command tag tells whether this call created the entry.
func (p *Postgres) AppendVO2(ctx context.Context, day string, value float64) (bool, error) {
	tag, err := p.pool.Exec(ctx,
		`INSERT INTO vo2_history (day, value) VALUES (@day, @value)
		 ON CONFLICT (day) DO NOTHING`,
		pgx.NamedArgs{"day": day, "value": value})
	if err != nil {
		return false, fmt.Errorf("append vo2: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
