package program

import (
	"time"

	"github.com/2beens/gymplan/internal/gymplan/periodization"
	"github.com/2beens/gymplan/internal/gymplan/workouts"
)

// Structure is the root of a generated training calendar (the macrocycle).
type Structure struct {
	Type             periodization.Type  `json:"type"`
	Level            periodization.Level `json:"level"`
	Goal             periodization.Goal  `json:"goal"`
	DurationWeeks    int                 `json:"durationWeeks"`
	FrequencyPerWeek int                 `json:"frequencyPerWeek"`
	Mesocycles       []Mesocycle         `json:"mesocycles"`
}

type Mesocycle struct {
	Phase          periodization.Phase `json:"phase"`
	Position       int                 `json:"position"`
	DurationWeeks  int                 `json:"durationWeeks"`
	IncludesDeload bool                `json:"includesDeload"`
	VolumeLevel    int                 `json:"volumeLevel"`
	IntensityLevel int                 `json:"intensityLevel"`
	Microcycles    []Microcycle        `json:"microcycles"`
}

type Microcycle struct {
	WeekNumber          int       `json:"weekNumber"`
	IsDeload            bool      `json:"isDeload"`
	VolumeMultiplier    float64   `json:"volumeMultiplier"`
	IntensityMultiplier float64   `json:"intensityMultiplier"`
	Sessions            []Session `json:"sessions"`
}

type Session struct {
	DayOfWeek int                    `json:"dayOfWeek"`
	Focus     []workouts.MuscleGroup `json:"focus"`
	RPETarget int                    `json:"rpeTarget"`
	RIRTarget int                    `json:"rirTarget"`
}

// TotalSessions counts sessions across the whole structure.
func (s *Structure) TotalSessions() int {
	total := 0
	for _, meso := range s.Mesocycles {
		for _, micro := range meso.Microcycles {
			total += len(micro.Sessions)
		}
	}
	return total
}

// Week returns the mesocycle and microcycle for the absolute (1-based) week of the program.
func (s *Structure) Week(week int) (*Mesocycle, *Microcycle, bool) {
	if week < 1 {
		return nil, nil, false
	}
	offset := 0
	for i := range s.Mesocycles {
		meso := &s.Mesocycles[i]
		if week <= offset+len(meso.Microcycles) {
			return meso, &meso.Microcycles[week-offset-1], true
		}
		offset += len(meso.Microcycles)
	}
	return nil, nil, false
}

// ScheduledSession is a session placed on a concrete calendar date.
type ScheduledSession struct {
	Date      time.Time           `json:"date"`
	Week      int                 `json:"week"`
	Phase     periodization.Phase `json:"phase"`
	IsDeload  bool                `json:"isDeload"`
	Session   Session             `json:"session"`
	Volume    float64             `json:"volumeMultiplier"`
	Intensity float64             `json:"intensityMultiplier"`
}

// Schedule lays the sessions out on the calendar. Week 1 starts on the
// week of start, dayOfWeek 1 being Monday.
func (s *Structure) Schedule(start time.Time) []ScheduledSession {
	y, m, d := start.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, start.Location())
	// go back to monday
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := day.AddDate(0, 0, -(weekday - 1))

	var scheduled []ScheduledSession
	week := 0
	for _, meso := range s.Mesocycles {
		for _, micro := range meso.Microcycles {
			week++
			weekStart := monday.AddDate(0, 0, 7*(week-1))
			for _, session := range micro.Sessions {
				scheduled = append(scheduled, ScheduledSession{
					Date:      weekStart.AddDate(0, 0, session.DayOfWeek-1),
					Week:      week,
					Phase:     meso.Phase,
					IsDeload:  micro.IsDeload,
					Session:   session,
					Volume:    micro.VolumeMultiplier,
					Intensity: micro.IntensityMultiplier,
				})
			}
		}
	}
	return scheduled
}
