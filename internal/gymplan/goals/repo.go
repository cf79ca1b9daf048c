package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const goalColumns = `id, user_id, type, category, title, target_value, current_value, unit,
	deadline, priority, parent_id, success_probability, created_at`

func (r *Repo) Add(ctx context.Context, g *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var parentID *string
	if g.ParentID != nil {
		p := g.ParentID.String()
		parentID = &p
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO goal (`+goalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		g.ID.String(),
		g.UserID,
		g.Type,
		g.Category,
		g.Title,
		g.TargetValue,
		g.CurrentValue,
		g.Unit,
		g.Deadline,
		g.Priority,
		parentID,
		g.SuccessProbability,
		g.CreatedAt,
	)
	switch {
	case pkg.IsForeignKeyViolationError(err):
		return fmt.Errorf("%w: parent goal does not exist", ErrInvalidGoal)
	case pkg.IsUniqueViolationError(err):
		return fmt.Errorf("%w: goal [%s] already exists", ErrInvalidGoal, g.ID)
	}
	return err
}

// Get returns the goal with its sub goal ids.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal_id", id.String()))

	row := r.db.QueryRow(ctx, `SELECT `+goalColumns+` FROM goal WHERE id = $1`, id.String())
	g, err := scanGoal(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT id FROM goal WHERE parent_id = $1 ORDER BY id`, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	g.SubGoalIDs = []uuid.UUID{}
	for rows.Next() {
		var childID string
		if err := rows.Scan(&childID); err != nil {
			return nil, err
		}
		parsed, err := uuid.Parse(childID)
		if err != nil {
			return nil, fmt.Errorf("parse sub goal id: %w", err)
		}
		g.SubGoalIDs = append(g.SubGoalIDs, parsed)
	}
	return g, rows.Err()
}

func (r *Repo) List(ctx context.Context, userID string) (_ []*Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+goalColumns+`
		FROM goal
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]*Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	LinkSubGoals(goals)
	return goals, nil
}

func (r *Repo) UpdateProgress(ctx context.Context, id uuid.UUID, currentValue, successProbability float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.updateprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE goal
		SET current_value = $1, success_probability = $2
		WHERE id = $3
	`, currentValue, successProbability, id.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// Delete removes the goal. Sub goals lose their parent (ON DELETE SET NULL).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM goal WHERE id = $1`, id.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func scanGoal(row pgx.Row) (*Goal, error) {
	var (
		g        Goal
		id       string
		parentID *string
	)
	if err := row.Scan(
		&id,
		&g.UserID,
		&g.Type,
		&g.Category,
		&g.Title,
		&g.TargetValue,
		&g.CurrentValue,
		&g.Unit,
		&g.Deadline,
		&g.Priority,
		&parentID,
		&g.SuccessProbability,
		&g.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if g.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse goal id: %w", err)
	}
	if parentID != nil {
		parsed, err := uuid.Parse(*parentID)
		if err != nil {
			return nil, fmt.Errorf("parse parent goal id: %w", err)
		}
		g.ParentID = &parsed
	}
	g.SubGoalIDs = []uuid.UUID{}
	return &g, nil
}
