package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/progression"
	"github.com/2beens/gymplan/internal/gymplan/recommendation"
	"github.com/2beens/gymplan/internal/gymplan/workouts"
)

const (
	recentLogsWindow      = 10
	highFatigueThreshold  = 20.0
	durationTolerance     = 1.2
	intensityLookback     = 3
	maxIntensityFlags     = 3
	consistencyWindow     = 7 * 24 * time.Hour
	consistencyScoreRange = 30 * 24 * time.Hour
)

// Input is everything a single analysis needs. Analyze never mutates it.
type Input struct {
	Logs    []workouts.Log
	Profile workouts.Profile
	// Data is the user's training data; nil is treated as empty.
	Data *progression.TrainingData
	Now  time.Time
}

type Result struct {
	UserID                string                           `json:"userId"`
	Fatigue               map[workouts.MuscleGroup]float64 `json:"fatigue"`
	HighFatigue           []workouts.MuscleGroup           `json:"highFatigue"`
	LogsLastWeek          int                              `json:"logsLastWeek"`
	StalledExercises      []string                         `json:"stalledExercises"`
	AverageRecentDuration float64                          `json:"averageRecentDuration"`
	Preferences           progression.Preferences          `json:"preferences"`
	Patterns              progression.Patterns             `json:"patterns"`
	Candidates            []recommendation.Recommendation  `json:"candidates"`
}

// Analyze aggregates the logs and the progression state into fatigue, consistency,
// stall, duration, preference and temporal insights, emitting recommendation candidates
// in a fixed evaluation order.
func Analyze(in Input) *Result {
	logs := sortedLogs(in.Logs)
	recent := logs
	if len(recent) > recentLogsWindow {
		recent = recent[:recentLogsWindow]
	}

	exercises := progression.Book{}
	if in.Data != nil && in.Data.Exercises != nil {
		exercises = in.Data.Exercises
	}

	res := &Result{
		UserID:      in.Profile.UserID,
		Preferences: StylePreferences(logs, exercises),
		Patterns:    TemporalPatterns(logs, in.Profile, in.Now),
	}
	if res.UserID == "" && in.Data != nil {
		res.UserID = in.Data.UserID
	}

	res.Fatigue, res.HighFatigue = muscleGroupFatigue(recent)
	if len(res.HighFatigue) > 0 {
		res.Candidates = append(res.Candidates, fatigueRecommendation(res.HighFatigue, res.Fatigue))
	}

	res.LogsLastWeek = countLogsSince(logs, in.Now, consistencyWindow)
	if in.Profile.Frequency > 0 && res.LogsLastWeek < in.Profile.Frequency {
		res.Candidates = append(res.Candidates, recommendation.Recommendation{
			Kind:        recommendation.KindConsistency,
			Title:       "Training consistency",
			Description: fmt.Sprintf("You trained %d times in the last 7 days, your target is %d sessions per week.", res.LogsLastWeek, in.Profile.Frequency),
			Priority:    recommendation.PriorityMedium,
		})
	}

	res.StalledExercises = stalledExercises(recent, exercises)
	if len(res.StalledExercises) > 0 {
		res.Candidates = append(res.Candidates, recommendation.Recommendation{
			Kind:        recommendation.KindProgression,
			Title:       "Progression plateau",
			Description: fmt.Sprintf("No weight or rep improvement in: %s. Consider changing the rep scheme or the load.", strings.Join(displayNames(res.StalledExercises, exercises), ", ")),
			Priority:    recommendation.PriorityMedium,
			Subjects:    res.StalledExercises,
		})
	}

	res.AverageRecentDuration = averageDuration(recent)
	if len(recent) > 0 && in.Profile.AvailableTime > 0 && res.AverageRecentDuration > in.Profile.AvailableTime*durationTolerance {
		res.Candidates = append(res.Candidates, recommendation.Recommendation{
			Kind:        recommendation.KindDuration,
			Title:       "Long sessions",
			Description: fmt.Sprintf("Your sessions average %.0f minutes, while you have %.0f minutes available. Consider shorter rest periods or fewer sets.", res.AverageRecentDuration, in.Profile.AvailableTime),
			Priority:    recommendation.PriorityLow,
		})
	}

	if pref := res.Preferences.Intensity; len(exercises) > 0 && pref != progression.IntensityModerate {
		res.Candidates = append(res.Candidates, recommendation.Recommendation{
			Kind:        recommendation.KindIntensityPreference,
			Title:       "Training style",
			Description: fmt.Sprintf("You tend to prefer %s intensity training, with %s volume and %s rest periods.", pref, res.Preferences.Volume, res.Preferences.Rest),
			Priority:    recommendation.PriorityLow,
		})
	}

	if flagged := misalignedExercises(exercises, res.Preferences.Intensity); len(flagged) > 0 {
		res.Candidates = append(res.Candidates, intensityAdjustmentRecommendation(flagged, exercises, res.Preferences.Intensity))
	}

	if res.Patterns.PreferredTimeOfDay != "" {
		res.Candidates = append(res.Candidates, recommendation.Recommendation{
			Kind:        recommendation.KindTiming,
			Title:       "Optimal training time",
			Description: fmt.Sprintf("Most of your workouts happen in the %s. Schedule key sessions then.", res.Patterns.PreferredTimeOfDay),
			Priority:    recommendation.PriorityLow,
		})
	}

	if len(res.Patterns.PreferredDaysOfWeek) > 0 && res.Patterns.ConsistencyScore < 100 {
		days := make([]string, 0, len(res.Patterns.PreferredDaysOfWeek))
		for _, d := range res.Patterns.PreferredDaysOfWeek {
			days = append(days, d.String())
		}
		res.Candidates = append(res.Candidates, recommendation.Recommendation{
			Kind:        recommendation.KindSchedule,
			Title:       "Stick to your training days",
			Description: fmt.Sprintf("You train most often on %s. Planning sessions on these days can raise your consistency score of %d.", strings.Join(days, ", "), res.Patterns.ConsistencyScore),
			Priority:    recommendation.PriorityLow,
			Subjects:    days,
		})
	}

	return res
}

// sortedLogs returns a copy of the logs, most recent first.
func sortedLogs(logs []workouts.Log) []workouts.Log {
	sorted := make([]workouts.Log, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

func muscleGroupFatigue(recent []workouts.Log) (map[workouts.MuscleGroup]float64, []workouts.MuscleGroup) {
	fatigue := make(map[workouts.MuscleGroup]float64)
	for _, wl := range recent {
		for group, f := range wl.MuscleGroupFatigue {
			fatigue[group] += f
		}
	}

	var high []workouts.MuscleGroup
	for group, f := range fatigue {
		if f > highFatigueThreshold {
			high = append(high, group)
		}
	}
	sort.Slice(high, func(i, j int) bool {
		return high[i] < high[j]
	})
	return fatigue, high
}

func fatigueRecommendation(high []workouts.MuscleGroup, fatigue map[workouts.MuscleGroup]float64) recommendation.Recommendation {
	subjects := make([]string, 0, len(high))
	parts := make([]string, 0, len(high))
	for _, group := range high {
		subjects = append(subjects, string(group))
		parts = append(parts, fmt.Sprintf("%s (%.0f)", group, fatigue[group]))
	}
	return recommendation.Recommendation{
		Kind:        recommendation.KindFatigue,
		Title:       "High fatigue detected",
		Description: fmt.Sprintf("Accumulated fatigue is high for: %s. Plan extra recovery before training these muscle groups again.", strings.Join(parts, ", ")),
		Priority:    recommendation.PriorityHigh,
		Subjects:    subjects,
	}
}

func countLogsSince(logs []workouts.Log, now time.Time, window time.Duration) int {
	from := now.Add(-window)
	count := 0
	for _, wl := range logs {
		if wl.Date.After(from) && !wl.Date.After(now) {
			count++
		}
	}
	return count
}

// stalledExercises lists, in order of appearance, the exercises of the recent logs
// with no set exceeding the weight or reps recorded before their latest log.
func stalledExercises(recent []workouts.Log, exercises progression.Book) []string {
	var order []string
	improved := make(map[string]bool)
	for _, wl := range recent {
		for _, set := range wl.CompletedSets {
			if _, seen := improved[set.ExerciseID]; !seen {
				order = append(order, set.ExerciseID)
				improved[set.ExerciseID] = false
			}

			var lastWeight float64
			var lastReps int
			if p, ok := exercises[set.ExerciseID]; ok {
				lastWeight, lastReps = p.PrevLastWeight, p.PrevLastReps
			}
			if (set.Weight != nil && *set.Weight > lastWeight) || (set.Reps != nil && *set.Reps > lastReps) {
				improved[set.ExerciseID] = true
			}
		}
	}

	var stalled []string
	for _, id := range order {
		if !improved[id] {
			stalled = append(stalled, id)
		}
	}
	return stalled
}

func averageDuration(logs []workouts.Log) float64 {
	if len(logs) == 0 {
		return 0
	}
	var total float64
	for _, wl := range logs {
		total += wl.DurationMinutes
	}
	return total / float64(len(logs))
}

// misalignedExercises finds (sorted by id, at most 3) exercises whose recent RIR
// does not match the overall intensity preference.
func misalignedExercises(exercises progression.Book, pref progression.Intensity) []string {
	if pref != progression.IntensityHigh && pref != progression.IntensityLow {
		return nil
	}

	ids := make([]string, 0, len(exercises))
	for id := range exercises {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var flagged []string
	for _, id := range ids {
		rirs := exercises[id].RecentRIR(intensityLookback)
		if len(rirs) == 0 {
			continue
		}
		sum := 0
		for _, r := range rirs {
			sum += r
		}
		avg := float64(sum) / float64(len(rirs))

		if (pref == progression.IntensityHigh && avg > 2) || (pref == progression.IntensityLow && avg < 2) {
			flagged = append(flagged, id)
			if len(flagged) == maxIntensityFlags {
				break
			}
		}
	}
	return flagged
}

func intensityAdjustmentRecommendation(flagged []string, exercises progression.Book, pref progression.Intensity) recommendation.Recommendation {
	names := displayNames(flagged, exercises)
	if pref == progression.IntensityHigh {
		return recommendation.Recommendation{
			Kind:        recommendation.KindIntensityAdjustment,
			Title:       "Increase intensity",
			Description: fmt.Sprintf("You prefer high intensity, but these exercises are left far from failure: %s. Consider adding load.", strings.Join(names, ", ")),
			Priority:    recommendation.PriorityMedium,
			Subjects:    names,
		}
	}
	return recommendation.Recommendation{
		Kind:        recommendation.KindIntensityAdjustment,
		Title:       "Decrease intensity",
		Description: fmt.Sprintf("You prefer lower intensity, but these exercises are pushed close to failure: %s. Consider reducing load.", strings.Join(names, ", ")),
		Priority:    recommendation.PriorityMedium,
		Subjects:    names,
	}
}

func displayNames(ids []string, exercises progression.Book) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := exercises[id]; ok {
			names = append(names, p.DisplayName())
			continue
		}
		names = append(names, id)
	}
	return names
}
