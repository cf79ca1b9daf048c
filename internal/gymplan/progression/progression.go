package progression

import (
	"math"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/workouts"
)

const MaxHistoryEntries = 10

// Intensity is the effort level a trainee gravitates towards, derived from RIR.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// IntensityFromRIR maps reps in reserve to an intensity preference.
func IntensityFromRIR(rir int) Intensity {
	switch {
	case rir <= 1:
		return IntensityHigh
	case rir <= 3:
		return IntensityModerate
	default:
		return IntensityLow
	}
}

type HistoryEntry struct {
	Date             time.Time `json:"date"`
	Weight           *float64  `json:"weight,omitempty"`
	Reps             *int      `json:"reps,omitempty"`
	RIR              *int      `json:"rir,omitempty"`
	PerformanceScore float64   `json:"performanceScore"`
}

// ExerciseProgression is the rolling per-exercise state, mutated only by log ingestion.
// PrevLastWeight and PrevLastReps hold the last values as they were before the latest log.
type ExerciseProgression struct {
	ExerciseID         string         `json:"exerciseId"`
	Name               string         `json:"name,omitempty"`
	LastWeight         float64        `json:"lastWeight"`
	LastReps           int            `json:"lastReps"`
	PrevLastWeight     float64        `json:"prevLastWeight"`
	PrevLastReps       int            `json:"prevLastReps"`
	BestWeight         float64        `json:"bestWeight"`
	BestReps           int            `json:"bestReps"`
	PreferredIntensity Intensity      `json:"preferredIntensity"`
	History            []HistoryEntry `json:"history"`
}

func newExerciseProgression(exerciseID string) *ExerciseProgression {
	return &ExerciseProgression{
		ExerciseID:         exerciseID,
		PreferredIntensity: IntensityModerate,
		History:            []HistoryEntry{},
	}
}

// DisplayName returns the exercise name, falling back to its id.
func (p *ExerciseProgression) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ExerciseID
}

// RecentRIR returns up to n most recent recorded RIR values.
func (p *ExerciseProgression) RecentRIR(n int) []int {
	var rirs []int
	for _, entry := range p.History {
		if len(rirs) == n {
			break
		}
		if entry.RIR != nil {
			rirs = append(rirs, *entry.RIR)
		}
	}
	return rirs
}

func (p *ExerciseProgression) apply(date time.Time, set workouts.CompletedSet) {
	if set.ExerciseName != "" {
		p.Name = set.ExerciseName
	}
	if set.Weight != nil {
		p.LastWeight = *set.Weight
		p.BestWeight = math.Max(p.BestWeight, *set.Weight)
	}
	if set.Reps != nil {
		p.LastReps = *set.Reps
		if *set.Reps > p.BestReps {
			p.BestReps = *set.Reps
		}
	}
	if set.RIR != nil {
		p.PreferredIntensity = IntensityFromRIR(*set.RIR)
	}

	entry := HistoryEntry{
		Date:             date,
		Weight:           copyFloat(set.Weight),
		Reps:             copyInt(set.Reps),
		RIR:              copyInt(set.RIR),
		PerformanceScore: PerformanceScore(set),
	}
	p.History = append([]HistoryEntry{entry}, p.History...)
	if len(p.History) > MaxHistoryEntries {
		p.History = p.History[:MaxHistoryEntries]
	}
}

func (p *ExerciseProgression) clone() *ExerciseProgression {
	c := *p
	c.History = make([]HistoryEntry, len(p.History))
	for i, e := range p.History {
		c.History[i] = HistoryEntry{
			Date:             e.Date,
			Weight:           copyFloat(e.Weight),
			Reps:             copyInt(e.Reps),
			RIR:              copyInt(e.RIR),
			PerformanceScore: e.PerformanceScore,
		}
	}
	return &c
}

// PerformanceScore is the Epley estimated one-rep max of the set, 0 when weight or reps are missing.
func PerformanceScore(set workouts.CompletedSet) float64 {
	if set.Weight == nil || set.Reps == nil {
		return 0
	}
	e1rm := *set.Weight * (1 + float64(*set.Reps)/30)
	// leave only 2 decimals
	return math.Round(e1rm*100) / 100
}

// Book holds the progression of every exercise of a single user, keyed by exercise id.
type Book map[string]*ExerciseProgression

// Apply ingests every completed set of the log. The log must be validated beforehand.
func (b Book) Apply(log workouts.Log) {
	seen := make(map[string]bool)
	for _, set := range log.CompletedSets {
		p, ok := b[set.ExerciseID]
		if !ok {
			p = newExerciseProgression(set.ExerciseID)
			b[set.ExerciseID] = p
		}
		if !seen[set.ExerciseID] {
			seen[set.ExerciseID] = true
			p.PrevLastWeight, p.PrevLastReps = p.LastWeight, p.LastReps
		}
		p.apply(log.Date, set)
	}
}

// ResetBest explicitly resets the best values of an exercise to its last ones.
func (b Book) ResetBest(exerciseID string) bool {
	p, ok := b[exerciseID]
	if !ok {
		return false
	}
	p.BestWeight = p.LastWeight
	p.BestReps = p.LastReps
	return true
}

func (b Book) Clone() Book {
	c := make(Book, len(b))
	for id, p := range b {
		c[id] = p.clone()
	}
	return c
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
