package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS workout_log (
		id SERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		duration_minutes DOUBLE PRECISION NOT NULL DEFAULT 0,
		completed_sets JSONB NOT NULL DEFAULT '[]',
		muscle_group_fatigue JSONB NOT NULL DEFAULT '{}'
	)`,
	`CREATE INDEX IF NOT EXISTS workout_log_user_date_idx ON workout_log (user_id, date DESC)`,
	`CREATE TABLE IF NOT EXISTS training_algorithm_data (
		user_id TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_profile (
		user_id TEXT PRIMARY KEY,
		frequency INT NOT NULL DEFAULT 0,
		available_time DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS goal (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		category TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		target_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		current_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		unit TEXT NOT NULL DEFAULT '',
		deadline TIMESTAMPTZ NOT NULL,
		priority TEXT NOT NULL DEFAULT 'medium',
		parent_id UUID REFERENCES goal (id) ON DELETE SET NULL,
		success_probability DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS goal_user_idx ON goal (user_id)`,
}

// EnsureSchema creates the tables used by the engine, if missing.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
