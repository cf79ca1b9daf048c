package goals

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrInvalidGoal  = errors.New("invalid goal")
)

const UrgentWithinDays = 7

type Type string

const (
	TypePrimary   Type = "primary"
	TypeSecondary Type = "secondary"
	TypeMicro     Type = "micro"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePrimary, TypeSecondary, TypeMicro:
		return true
	}
	return false
}

// Status is always derived from progress and deadline, never stored.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
	StatusUrgent    Status = "urgent"
)

type Goal struct {
	ID                 uuid.UUID   `json:"id"`
	UserID             string      `json:"userId"`
	Type               Type        `json:"type"`
	Category           string      `json:"category"`
	Title              string      `json:"title"`
	TargetValue        float64     `json:"targetValue"`
	CurrentValue       float64     `json:"currentValue"`
	Unit               string      `json:"unit"`
	Deadline           time.Time   `json:"deadline"`
	Priority           string      `json:"priority"`
	ParentID           *uuid.UUID  `json:"parentId,omitempty"`
	SubGoalIDs         []uuid.UUID `json:"subGoalIds"`
	SuccessProbability float64     `json:"successProbability"`
	CreatedAt          time.Time   `json:"createdAt"`
}

func (g *Goal) Validate() error {
	if g.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidGoal)
	}
	if !g.Type.IsValid() {
		return fmt.Errorf("%w: unknown type [%s]", ErrInvalidGoal, g.Type)
	}
	if g.Deadline.IsZero() {
		return fmt.Errorf("%w: missing deadline", ErrInvalidGoal)
	}
	if g.Type == TypePrimary && g.ParentID != nil {
		return fmt.Errorf("%w: primary goal cannot have a parent", ErrInvalidGoal)
	}
	if g.ParentID != nil && *g.ParentID == g.ID {
		return fmt.Errorf("%w: goal cannot be its own parent", ErrInvalidGoal)
	}
	return nil
}

// Progress is the completion percentage in [0, 100]. A zero target yields 0.
func (g *Goal) Progress() float64 {
	if g.TargetValue == 0 {
		return 0
	}
	p := g.CurrentValue / g.TargetValue * 100
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(100, p))
}

// DaysUntil is the number of started days left until the deadline, negative when overdue.
func (g *Goal) DaysUntil(now time.Time) int {
	return int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
}

func (g *Goal) StatusAt(now time.Time) Status {
	switch {
	case g.Progress() >= 100:
		return StatusCompleted
	case g.Deadline.Before(now):
		return StatusOverdue
	case g.DaysUntil(now) <= UrgentWithinDays:
		return StatusUrgent
	default:
		return StatusActive
	}
}

// SetSuccessProbability stores p clamped to [0, 1].
func (g *Goal) SetSuccessProbability(p float64) {
	if math.IsNaN(p) {
		p = 0
	}
	g.SuccessProbability = math.Max(0, math.Min(1, p))
}

// View is a goal together with its computed fields.
type View struct {
	*Goal
	Progress  float64 `json:"progress"`
	Status    Status  `json:"status"`
	DaysUntil int     `json:"daysUntil"`
}

func NewView(g *Goal, now time.Time) View {
	return View{
		Goal:      g,
		Progress:  math.Round(g.Progress()*100) / 100,
		Status:    g.StatusAt(now),
		DaysUntil: g.DaysUntil(now),
	}
}
