package progression

import (
	"github.com/2beens/gymplan/internal/gymplan/workouts"
)

const (
	DefaultRecoveryHours = 48
	MinRecoveryHours     = 24
	MaxRecoveryHours     = 96
)

type MuscleGroupRecovery struct {
	RecoveryHours float64 `json:"recoveryHours"`
}

// Recovery is the per muscle group recovery state of a user.
type Recovery map[workouts.MuscleGroup]*MuscleGroupRecovery

// Apply adjusts the recovery window of every muscle group the log reports fatigue for.
func (r Recovery) Apply(log workouts.Log) {
	for group, fatigue := range log.MuscleGroupFatigue {
		state, ok := r[group]
		if !ok {
			state = &MuscleGroupRecovery{RecoveryHours: DefaultRecoveryHours}
			r[group] = state
		}
		state.RecoveryHours = clampRecovery(state.RecoveryHours + recoveryAdjustment(fatigue))
	}
}

// Hours returns the recovery window for the group, or the default one if unknown.
func (r Recovery) Hours(group workouts.MuscleGroup) float64 {
	if state, ok := r[group]; ok {
		return state.RecoveryHours
	}
	return DefaultRecoveryHours
}

func (r Recovery) Clone() Recovery {
	c := make(Recovery, len(r))
	for group, state := range r {
		s := *state
		c[group] = &s
	}
	return c
}

func recoveryAdjustment(fatigue float64) float64 {
	switch {
	case fatigue >= 8:
		return 12
	case fatigue >= 5:
		return 6
	case fatigue <= 1:
		return -12
	case fatigue <= 3:
		return -6
	default:
		return 0
	}
}

func clampRecovery(hours float64) float64 {
	if hours < MinRecoveryHours {
		return MinRecoveryHours
	}
	if hours > MaxRecoveryHours {
		return MaxRecoveryHours
	}
	return hours
}
