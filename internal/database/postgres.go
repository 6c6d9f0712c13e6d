// Package database implements the PostgreSQL-backed repositories: journal
// entries with mood write-back, the analytics request log, and per-user
// analytics preferences.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jain-Tirth/Journalite/internal/metrics"
)

// Connect creates a pgx connection pool and verifies connectivity.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	config.MaxConns = 10
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// schema is applied idempotently at startup.
const schema = `
CREATE TABLE IF NOT EXISTS journal_entries (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL,
	mood TEXT NOT NULL DEFAULT '',
	mood_confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
	detected_emotions JSONB NOT NULL DEFAULT '{}',
	sentiment_score DOUBLE PRECISION NOT NULL DEFAULT 0,
	mood_keywords TEXT[] NOT NULL DEFAULT '{}',
	tags TEXT[] NOT NULL DEFAULT '{}',
	weather TEXT NOT NULL DEFAULT '',
	auto_mood BOOLEAN NOT NULL DEFAULT FALSE,
	mood_detected_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_journal_entries_user_created
	ON journal_entries (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS analytics_requests (
	id BIGSERIAL PRIMARY KEY,
	user_id TEXT NOT NULL,
	request_type TEXT NOT NULL,
	processing_time_ms BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS user_preferences (
	user_id TEXT PRIMARY KEY,
	analytics_preferences JSONB NOT NULL DEFAULT '{}',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate applies the schema. Statements are idempotent, so repeated
// startups are safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// observeQuery records query duration and errors under a stable query name.
func observeQuery(query string, start time.Time, err error) {
	metrics.DBQueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues(query).Inc()
	}
}
