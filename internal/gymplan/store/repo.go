package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/progression"
	"github.com/2beens/gymplan/internal/gymplan/workouts"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNotFound = errors.New("not found")

// Repo persists workout logs, user profiles and the training algorithm data.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddLog(ctx context.Context, wl *workouts.Log) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.addlog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", wl.UserID))

	sets, err := json.Marshal(nonNilSets(wl.CompletedSets))
	if err != nil {
		return fmt.Errorf("marshal completed sets: %w", err)
	}
	fatigue, err := json.Marshal(nonNilFatigue(wl.MuscleGroupFatigue))
	if err != nil {
		return fmt.Errorf("marshal fatigue: %w", err)
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO workout_log (user_id, date, duration_minutes, completed_sets, muscle_group_fatigue)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		wl.UserID,
		wl.Date,
		wl.DurationMinutes,
		sets,
		fatigue,
	).Scan(&wl.ID)
}

// ListLogs returns the logs of the user, most recent first. A non-positive limit means all.
func (r *Repo) ListLogs(ctx context.Context, userID string, limit int) (_ []workouts.Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.listlogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.Int("limit", limit))

	query := `
		SELECT id, user_id, date, duration_minutes, completed_sets, muscle_group_fatigue
		FROM workout_log
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]workouts.Log, 0)
	for rows.Next() {
		var (
			wl      workouts.Log
			sets    []byte
			fatigue []byte
		)
		if err := rows.Scan(&wl.ID, &wl.UserID, &wl.Date, &wl.DurationMinutes, &sets, &fatigue); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(sets, &wl.CompletedSets); err != nil {
			return nil, fmt.Errorf("unmarshal completed sets of log %d: %w", wl.ID, err)
		}
		if err := json.Unmarshal(fatigue, &wl.MuscleGroupFatigue); err != nil {
			return nil, fmt.Errorf("unmarshal fatigue of log %d: %w", wl.ID, err)
		}
		logs = append(logs, wl)
	}
	return logs, rows.Err()
}

// GetTrainingData implements the progression data store.
func (r *Repo) GetTrainingData(ctx context.Context, userID string) (_ *progression.TrainingData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.gettrainingdata")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	var raw []byte
	err = r.db.QueryRow(ctx, `
		SELECT data FROM training_algorithm_data WHERE user_id = $1
	`, userID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, progression.ErrTrainingDataNotFound
	}
	if err != nil {
		return nil, err
	}

	data := &progression.TrainingData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("unmarshal training data: %w", err)
	}
	data.UserID = userID
	return data, nil
}

func (r *Repo) SaveTrainingData(ctx context.Context, data *progression.TrainingData) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.savetrainingdata")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", data.UserID))

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal training data: %w", err)
	}

	updatedAt := data.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO training_algorithm_data (user_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`, data.UserID, raw, updatedAt)
	return err
}

func (r *Repo) GetProfile(ctx context.Context, userID string) (_ *workouts.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.getprofile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profile := &workouts.Profile{UserID: userID}
	err = r.db.QueryRow(ctx, `
		SELECT frequency, available_time FROM user_profile WHERE user_id = $1
	`, userID).Scan(&profile.Frequency, &profile.AvailableTime)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *Repo) SaveProfile(ctx context.Context, profile workouts.Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.saveprofile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_profile (user_id, frequency, available_time)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET frequency = EXCLUDED.frequency, available_time = EXCLUDED.available_time
	`, profile.UserID, profile.Frequency, profile.AvailableTime)
	return err
}

func nonNilSets(sets []workouts.CompletedSet) []workouts.CompletedSet {
	if sets == nil {
		return []workouts.CompletedSet{}
	}
	return sets
}

func nonNilFatigue(fatigue map[workouts.MuscleGroup]float64) map[workouts.MuscleGroup]float64 {
	if fatigue == nil {
		return map[workouts.MuscleGroup]float64{}
	}
	return fatigue
}
