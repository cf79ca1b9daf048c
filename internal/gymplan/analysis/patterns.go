package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/progression"
	"github.com/2beens/gymplan/internal/gymplan/workouts"
)

const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"

	VolumeLow      = "low"
	VolumeModerate = "moderate"
	VolumeHigh     = "high"

	RestShort    = "short"
	RestModerate = "moderate"
	RestLong     = "long"

	maxPreferredDays = 3
)

// StylePreferences infers the aggregate intensity, volume and rest preferences.
func StylePreferences(logs []workouts.Log, exercises progression.Book) progression.Preferences {
	return progression.Preferences{
		Intensity: intensityPreference(exercises),
		Volume:    volumePreference(logs),
		Rest:      restPreference(logs),
	}
}

// intensityPreference is a majority vote over the per-exercise preferences.
// Ties resolve in the order moderate, high, low.
func intensityPreference(exercises progression.Book) progression.Intensity {
	votes := map[progression.Intensity]int{}
	for _, p := range exercises {
		votes[p.PreferredIntensity]++
	}

	best := progression.IntensityModerate
	for _, candidate := range []progression.Intensity{
		progression.IntensityModerate,
		progression.IntensityHigh,
		progression.IntensityLow,
	} {
		if votes[candidate] > votes[best] {
			best = candidate
		}
	}
	return best
}

// volumePreference uses the mean number of sets per muscle group per session.
func volumePreference(logs []workouts.Log) string {
	total, pairs := 0, 0
	for _, wl := range logs {
		perGroup := map[workouts.MuscleGroup]int{}
		for _, set := range wl.CompletedSets {
			if set.MuscleGroup == "" {
				continue
			}
			perGroup[set.MuscleGroup]++
		}
		for _, count := range perGroup {
			total += count
			pairs++
		}
	}
	if pairs == 0 {
		return VolumeModerate
	}

	mean := float64(total) / float64(pairs)
	switch {
	case mean < 8:
		return VolumeLow
	case mean > 12:
		return VolumeHigh
	default:
		return VolumeModerate
	}
}

func restPreference(logs []workouts.Log) string {
	total, count := 0, 0
	for _, wl := range logs {
		for _, set := range wl.CompletedSets {
			if set.RestSeconds == nil {
				continue
			}
			total += *set.RestSeconds
			count++
		}
	}
	if count == 0 {
		return RestModerate
	}

	mean := float64(total) / float64(count)
	switch {
	case mean < 60:
		return RestShort
	case mean > 120:
		return RestLong
	default:
		return RestModerate
	}
}

// TemporalPatterns infers the preferred time of day and days of week, the average
// session duration and a 0-100 consistency score over the last 30 days.
func TemporalPatterns(logs []workouts.Log, profile workouts.Profile, now time.Time) progression.Patterns {
	patterns := progression.Patterns{
		PreferredTimeOfDay:  preferredTimeOfDay(logs),
		PreferredDaysOfWeek: preferredDays(logs),
		ConsistencyScore:    consistencyScore(logs, profile.Frequency, now),
	}
	if len(logs) > 0 {
		patterns.AverageSessionDuration = math.Round(averageDuration(logs)*10) / 10
	}
	return patterns
}

func timeOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return TimeOfDayMorning
	case h < 18:
		return TimeOfDayAfternoon
	default:
		return TimeOfDayEvening
	}
}

func preferredTimeOfDay(logs []workouts.Log) string {
	if len(logs) == 0 {
		return ""
	}
	counts := map[string]int{}
	for _, wl := range logs {
		counts[timeOfDay(wl.Date)]++
	}

	best := TimeOfDayMorning
	for _, candidate := range []string{TimeOfDayAfternoon, TimeOfDayEvening} {
		if counts[candidate] > counts[best] {
			best = candidate
		}
	}
	return best
}

// isoWeekday maps Monday..Sunday to 1..7.
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

func preferredDays(logs []workouts.Log) []time.Weekday {
	counts := map[time.Weekday]int{}
	for _, wl := range logs {
		counts[wl.Date.Weekday()]++
	}

	days := make([]time.Weekday, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		if counts[days[i]] != counts[days[j]] {
			return counts[days[i]] > counts[days[j]]
		}
		return isoWeekday(days[i]) < isoWeekday(days[j])
	})
	if len(days) > maxPreferredDays {
		days = days[:maxPreferredDays]
	}
	return days
}

func consistencyScore(logs []workouts.Log, frequency int, now time.Time) int {
	if frequency <= 0 {
		return 0
	}
	recent := countLogsSince(logs, now, consistencyScoreRange)
	expected := float64(frequency * 4)
	score := int(math.Round(float64(recent) / expected * 100))
	if score > 100 {
		return 100
	}
	return score
}
