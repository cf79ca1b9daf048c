package recommendation

import (
	"sort"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Kind identifies the analysis check a recommendation comes from.
// The constants are listed in the order the analyzer evaluates them.
type Kind string

const (
	KindFatigue             Kind = "fatigue"
	KindConsistency         Kind = "consistency"
	KindProgression         Kind = "progression"
	KindDuration            Kind = "duration"
	KindIntensityPreference Kind = "intensity_preference"
	KindIntensityAdjustment Kind = "intensity_adjustment"
	KindTiming              Kind = "timing"
	KindSchedule            Kind = "schedule"
)

type Recommendation struct {
	Kind        Kind     `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	// Subjects are the muscle groups or exercises the recommendation is about, if any.
	Subjects []string `json:"subjects,omitempty"`
}

// Rank orders recommendations by priority (high, medium, low). Ties keep their
// original order. The input slice is not modified.
func Rank(candidates []Recommendation) []Recommendation {
	ranked := make([]Recommendation, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority.rank() < ranked[j].Priority.rank()
	})
	return ranked
}

// Top returns at most n highest ranked recommendations.
func Top(candidates []Recommendation, n int) []Recommendation {
	ranked := Rank(candidates)
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
