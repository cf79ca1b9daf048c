package workouts

import (
	"errors"
	"fmt"
	"time"
)

var ErrMalformedLog = errors.New("malformed workout log")

// MuscleGroup tags used by the logs, the program splits and the fatigue analysis.
type MuscleGroup string

const (
	MuscleGroupChest      MuscleGroup = "chest"
	MuscleGroupBack       MuscleGroup = "back"
	MuscleGroupShoulders  MuscleGroup = "shoulders"
	MuscleGroupBiceps     MuscleGroup = "biceps"
	MuscleGroupTriceps    MuscleGroup = "triceps"
	MuscleGroupQuads      MuscleGroup = "quads"
	MuscleGroupHamstrings MuscleGroup = "hamstrings"
	MuscleGroupGlutes     MuscleGroup = "glutes"
	MuscleGroupCalves     MuscleGroup = "calves"
	MuscleGroupCore       MuscleGroup = "core"
	MuscleGroupLegs       MuscleGroup = "legs"
	MuscleGroupFullBody   MuscleGroup = "full_body"
)

// CompletedSet is a single performed set. Weight, Reps, RIR and RestSeconds are optional.
type CompletedSet struct {
	ExerciseID   string      `json:"exerciseId"`
	ExerciseName string      `json:"exerciseName,omitempty"`
	MuscleGroup  MuscleGroup `json:"muscleGroup,omitempty"`
	Weight       *float64    `json:"weight,omitempty"`
	Reps         *int        `json:"reps,omitempty"`
	RIR          *int        `json:"rir,omitempty"`
	RestSeconds  *int        `json:"restSeconds,omitempty"`
}

// Log is one completed workout, as supplied by the persistence layer.
type Log struct {
	ID                 int                     `json:"id,omitempty"`
	UserID             string                  `json:"userId"`
	Date               time.Time               `json:"date"`
	DurationMinutes    float64                 `json:"durationMinutes"`
	CompletedSets      []CompletedSet          `json:"completedSets"`
	MuscleGroupFatigue map[MuscleGroup]float64 `json:"muscleGroupFatigue"`
}

// Validate checks the identifying fields only; missing optional
// numbers are not an error.
func (l Log) Validate() error {
	if l.UserID == "" {
		return fmt.Errorf("%w: user id empty", ErrMalformedLog)
	}
	if l.Date.IsZero() {
		return fmt.Errorf("%w: date missing", ErrMalformedLog)
	}
	for i, set := range l.CompletedSets {
		if set.ExerciseID == "" {
			return fmt.Errorf("%w: set %d has no exercise id", ErrMalformedLog, i)
		}
	}
	return nil
}

// Profile holds the user's training targets.
type Profile struct {
	UserID string `json:"userId"`
	// Frequency is the targeted number of sessions per week.
	Frequency int `json:"frequency" validate:"gte=0,lte=14"`
	// AvailableTime is the time available per session, in minutes.
	AvailableTime float64 `json:"availableTime" validate:"gte=0"`
}

// Float64 and Int are small helpers for building sets with optional fields.
func Float64(v float64) *float64 {
	return &v
}

func Int(v int) *int {
	return &v
}
