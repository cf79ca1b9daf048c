package progression

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/workouts"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTrainingDataNotFound = errors.New("training data not found")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progression_test

type dataStore interface {
	GetTrainingData(ctx context.Context, userID string) (*TrainingData, error)
	SaveTrainingData(ctx context.Context, data *TrainingData) error
}

type userState struct {
	mu   sync.Mutex
	refs int
}

// Tracker serializes every mutation of the training data per user. The store is the
// source of truth: state is loaded on every operation and only the per-user locks are
// kept, for as long as an operation on the user is in flight.
// Mutations for different users never contend.
type Tracker struct {
	store dataStore
	now   func() time.Time

	mu    sync.Mutex
	users map[string]*userState
}

func NewTracker(store dataStore) *Tracker {
	return &Tracker{
		store: store,
		now:   time.Now,
		users: make(map[string]*userState),
	}
}

// lock acquires the per-user lock, the returned func releases it.
func (t *Tracker) lock(userID string) func() {
	t.mu.Lock()
	us, ok := t.users[userID]
	if !ok {
		us = &userState{}
		t.users[userID] = us
	}
	us.refs++
	t.mu.Unlock()

	us.mu.Lock()
	return func() {
		us.mu.Unlock()
		t.mu.Lock()
		us.refs--
		if us.refs == 0 {
			delete(t.users, userID)
		}
		t.mu.Unlock()
	}
}

// load must be called with the user lock held.
func (t *Tracker) load(ctx context.Context, userID string) (*TrainingData, error) {
	data, err := t.store.GetTrainingData(ctx, userID)
	if errors.Is(err, ErrTrainingDataNotFound) {
		log.Debugf("no training data for user [%s], starting fresh", userID)
		data = NewTrainingData(userID)
	} else if err != nil {
		return nil, fmt.Errorf("get training data: %w", err)
	}

	if data.Exercises == nil {
		data.Exercises = Book{}
	}
	if data.Recovery == nil {
		data.Recovery = Recovery{}
	}
	return data, nil
}

// ApplyLog ingests a completed workout log: it updates the exercise progressions and the
// muscle group recovery state, persists them, and returns a copy of the new state.
// Either everything is applied and saved, or nothing changes.
func (t *Tracker) ApplyLog(ctx context.Context, wl workouts.Log) (_ *TrainingData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.gymplan.applylog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", wl.UserID))
	span.SetAttributes(attribute.Int("sets", len(wl.CompletedSets)))

	if err := wl.Validate(); err != nil {
		return nil, err
	}

	unlock := t.lock(wl.UserID)
	defer unlock()

	current, err := t.load(ctx, wl.UserID)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	updated.Exercises.Apply(wl)
	updated.Recovery.Apply(wl)
	updated.UpdatedAt = t.now().UTC()

	if err := t.store.SaveTrainingData(ctx, updated); err != nil {
		return nil, fmt.Errorf("save training data: %w", err)
	}

	log.Tracef("applied log for user [%s]: %d sets, %d exercises tracked", wl.UserID, len(wl.CompletedSets), len(updated.Exercises))
	return updated.Clone(), nil
}

// TrainingData returns the current state of the user.
func (t *Tracker) TrainingData(ctx context.Context, userID string) (_ *TrainingData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.gymplan.trainingdata")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	unlock := t.lock(userID)
	defer unlock()

	return t.load(ctx, userID)
}

// UpdateAggregates writes analysis derived preferences and patterns back to the user state.
func (t *Tracker) UpdateAggregates(ctx context.Context, userID string, prefs Preferences, patterns Patterns) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.gymplan.updateaggregates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	unlock := t.lock(userID)
	defer unlock()

	current, err := t.load(ctx, userID)
	if err != nil {
		return err
	}

	updated := current.Clone()
	updated.Preferences = prefs
	updated.Patterns = patterns
	updated.Patterns.PreferredDaysOfWeek = append([]time.Weekday(nil), patterns.PreferredDaysOfWeek...)
	updated.UpdatedAt = t.now().UTC()

	if err := t.store.SaveTrainingData(ctx, updated); err != nil {
		return fmt.Errorf("save training data: %w", err)
	}
	return nil
}

// ResetBest resets the best values of an exercise and persists the change.
func (t *Tracker) ResetBest(ctx context.Context, userID, exerciseID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.gymplan.resetbest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	unlock := t.lock(userID)
	defer unlock()

	current, err := t.load(ctx, userID)
	if err != nil {
		return false, err
	}

	updated := current.Clone()
	if !updated.Exercises.ResetBest(exerciseID) {
		return false, nil
	}
	updated.UpdatedAt = t.now().UTC()
	if err := t.store.SaveTrainingData(ctx, updated); err != nil {
		return false, fmt.Errorf("save training data: %w", err)
	}
	return true, nil
}
