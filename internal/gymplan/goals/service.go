package goals

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, g *Goal) error
	Get(ctx context.Context, id uuid.UUID) (*Goal, error)
	List(ctx context.Context, userID string) ([]*Goal, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, currentValue, successProbability float64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NewGoalParams struct {
	UserID             string     `json:"userId" validate:"required"`
	Type               Type       `json:"type" validate:"required,oneof=primary secondary micro"`
	Category           string     `json:"category" validate:"required"`
	Title              string     `json:"title"`
	TargetValue        float64    `json:"targetValue"`
	CurrentValue       float64    `json:"currentValue"`
	Unit               string     `json:"unit"`
	Deadline           time.Time  `json:"deadline" validate:"required"`
	Priority           string     `json:"priority" validate:"omitempty,oneof=high medium low"`
	ParentID           *uuid.UUID `json:"parentId"`
	SuccessProbability float64    `json:"successProbability"`
}

type ProgressUpdate struct {
	CurrentValue       float64  `json:"currentValue"`
	SuccessProbability *float64 `json:"successProbability"`
}

type Service struct {
	repo  goalsRepo
	now   func() time.Time
	newID func() uuid.UUID
}

func NewService(repo goalsRepo) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.New,
	}
}

func (s *Service) Create(ctx context.Context, params NewGoalParams) (_ *View, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", params.UserID))
	span.SetAttributes(attribute.String("type", string(params.Type)))

	now := s.now()
	goal := &Goal{
		ID:           s.newID(),
		UserID:       params.UserID,
		Type:         params.Type,
		Category:     params.Category,
		Title:        params.Title,
		TargetValue:  params.TargetValue,
		CurrentValue: params.CurrentValue,
		Unit:         params.Unit,
		Deadline:     params.Deadline.UTC(),
		Priority:     params.Priority,
		ParentID:     params.ParentID,
		SubGoalIDs:   []uuid.UUID{},
		CreatedAt:    now.UTC(),
	}
	if goal.Priority == "" {
		goal.Priority = "medium"
	}
	goal.SetSuccessProbability(params.SuccessProbability)

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if goal.ParentID != nil {
		existing, err := s.repo.List(ctx, goal.UserID)
		if err != nil {
			return nil, fmt.Errorf("list goals: %w", err)
		}
		tree := append(existing, goal)
		LinkSubGoals(tree)
		if err := ValidateTree(tree); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Add(ctx, goal); err != nil {
		return nil, fmt.Errorf("add goal: %w", err)
	}

	log.Debugf("goal [%s] created for user [%s]", goal.ID, goal.UserID)
	view := NewView(goal, now)
	return &view, nil
}

// UpdateProgress sets the current value (and optionally the success probability) of a goal.
// Parent goals are not updated.
func (s *Service) UpdateProgress(ctx context.Context, id uuid.UUID, update ProgressUpdate) (_ *View, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.updateprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal_id", id.String()))

	goal, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}

	goal.CurrentValue = update.CurrentValue
	if update.SuccessProbability != nil {
		goal.SetSuccessProbability(*update.SuccessProbability)
	}

	if err := s.repo.UpdateProgress(ctx, goal.ID, goal.CurrentValue, goal.SuccessProbability); err != nil {
		return nil, fmt.Errorf("update goal progress: %w", err)
	}

	view := NewView(goal, s.now())
	return &view, nil
}

// Delete removes the goal; its sub goals are kept and lose their parent.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal_id", id.String()))

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			return err
		}
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}

// List returns the goal views of the user ordered by deadline.
func (s *Service) List(ctx context.Context, userID string) (_ []View, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	goals, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	LinkSubGoals(goals)

	sort.SliceStable(goals, func(i, j int) bool {
		if !goals[i].Deadline.Equal(goals[j].Deadline) {
			return goals[i].Deadline.Before(goals[j].Deadline)
		}
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})

	now := s.now()
	views := make([]View, 0, len(goals))
	for _, g := range goals {
		views = append(views, NewView(g, now))
	}
	return views, nil
}
