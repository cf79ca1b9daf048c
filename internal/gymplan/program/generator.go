package program

import (
	"errors"
	"fmt"
	"math"

	"github.com/2beens/gymplan/internal/gymplan/periodization"
	"github.com/2beens/gymplan/internal/gymplan/workouts"
)

var ErrInvalidDuration = errors.New("invalid program duration")

const (
	weeksPerMesocycle = 4

	deloadVolumeMultiplier    = 0.6
	deloadIntensityMultiplier = 0.7

	rpeTarget       = 8
	rirTarget       = 1
	deloadRPETarget = 6
	deloadRIRTarget = 3
)

type phaseLevels struct {
	volume    int
	intensity int
}

var phaseLevelsTable = map[periodization.Phase]phaseLevels{
	periodization.PhaseHypertrophy: {volume: 8, intensity: 6},
	periodization.PhaseStrength:    {volume: 6, intensity: 8},
	periodization.PhasePower:       {volume: 4, intensity: 9},
	periodization.PhaseEndurance:   {volume: 7, intensity: 5},
	periodization.PhaseDeload:      {volume: 3, intensity: 4},
}

var defaultPhaseLevels = phaseLevels{volume: 5, intensity: 5}

var (
	push = []workouts.MuscleGroup{workouts.MuscleGroupChest, workouts.MuscleGroupShoulders, workouts.MuscleGroupTriceps}
	pull = []workouts.MuscleGroup{workouts.MuscleGroupBack, workouts.MuscleGroupBiceps}
	legs = []workouts.MuscleGroup{workouts.MuscleGroupQuads, workouts.MuscleGroupHamstrings, workouts.MuscleGroupGlutes, workouts.MuscleGroupCalves}
)

// splits maps weekly frequency to the focus of each session day
var splits = map[int][][]workouts.MuscleGroup{
	3: {push, pull, legs},
	4: {
		{workouts.MuscleGroupChest, workouts.MuscleGroupBack, workouts.MuscleGroupShoulders},
		{workouts.MuscleGroupQuads, workouts.MuscleGroupHamstrings, workouts.MuscleGroupCalves},
		{workouts.MuscleGroupChest, workouts.MuscleGroupBack, workouts.MuscleGroupBiceps, workouts.MuscleGroupTriceps},
		{workouts.MuscleGroupGlutes, workouts.MuscleGroupHamstrings, workouts.MuscleGroupCore},
	},
	5: {
		{workouts.MuscleGroupChest},
		{workouts.MuscleGroupBack},
		{workouts.MuscleGroupQuads, workouts.MuscleGroupHamstrings, workouts.MuscleGroupCalves},
		{workouts.MuscleGroupShoulders},
		{workouts.MuscleGroupBiceps, workouts.MuscleGroupTriceps},
	},
	6: {push, pull, legs, push, pull, legs},
}

type Params struct {
	Type             periodization.Type  `json:"type"`
	Level            periodization.Level `json:"level"`
	Goal             periodization.Goal  `json:"goal"`
	DurationWeeks    int                 `json:"durationWeeks"`
	FrequencyPerWeek int                 `json:"frequencyPerWeek"`
}

// Generator expands a periodization strategy into a full training calendar.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	catalog *periodization.Catalog
}

func NewGenerator(catalog *periodization.Catalog) *Generator {
	return &Generator{
		catalog: catalog,
	}
}

func (g *Generator) Generate(params Params) (*Structure, error) {
	if params.DurationWeeks < 1 {
		return nil, fmt.Errorf("%w: duration weeks must be at least 1, got %d", ErrInvalidDuration, params.DurationWeeks)
	}
	if params.FrequencyPerWeek < 1 || params.FrequencyPerWeek > 7 {
		return nil, fmt.Errorf("%w: frequency per week must be in [1, 7], got %d", ErrInvalidDuration, params.FrequencyPerWeek)
	}

	cfg, err := g.catalog.Config(params.Type)
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}

	mesocycleCount := params.DurationWeeks / weeksPerMesocycle
	if mesocycleCount < 1 {
		mesocycleCount = 1
	}
	// non-multiples of 4 floor down, and 0 never matches (deload only via phase)
	deloadCadence := cfg.DeloadFrequencyWeeks / weeksPerMesocycle

	structure := &Structure{
		Type:             params.Type,
		Level:            params.Level,
		Goal:             params.Goal,
		DurationWeeks:    params.DurationWeeks,
		FrequencyPerWeek: params.FrequencyPerWeek,
		Mesocycles:       make([]Mesocycle, 0, mesocycleCount),
	}

	for i := 0; i < mesocycleCount; i++ {
		phase := cfg.PhasesSequence[i%len(cfg.PhasesSequence)]

		duration := weeksPerMesocycle
		if i == mesocycleCount-1 {
			duration = params.DurationWeeks - weeksPerMesocycle*(mesocycleCount-1)
		}

		includesDeload := phase == periodization.PhaseDeload
		if deloadCadence != 0 && (i+1)%deloadCadence == 0 {
			includesDeload = true
		}

		levels, ok := phaseLevelsTable[phase]
		if !ok {
			levels = defaultPhaseLevels
		}

		meso := Mesocycle{
			Phase:          phase,
			Position:       i + 1,
			DurationWeeks:  duration,
			IncludesDeload: includesDeload,
			VolumeLevel:    levels.volume,
			IntensityLevel: levels.intensity,
			Microcycles:    make([]Microcycle, 0, duration),
		}

		for j := 0; j < duration; j++ {
			isDeload := j == duration-1 && includesDeload
			meso.Microcycles = append(meso.Microcycles, Microcycle{
				WeekNumber:          j + 1,
				IsDeload:            isDeload,
				VolumeMultiplier:    VolumeMultiplier(j+1, duration, cfg.VolumePattern, isDeload),
				IntensityMultiplier: IntensityMultiplier(j+1, duration, cfg.IntensityPattern, isDeload),
				Sessions:            sessions(params.FrequencyPerWeek, isDeload),
			})
		}

		structure.Mesocycles = append(structure.Mesocycles, meso)
	}

	return structure, nil
}

// VolumeMultiplier computes the volume multiplier for the given (1-based) week of a mesocycle.
func VolumeMultiplier(week, total int, pattern periodization.Pattern, isDeload bool) float64 {
	if isDeload {
		return deloadVolumeMultiplier
	}
	return patternMultiplier(week, total, pattern)
}

// IntensityMultiplier computes the intensity multiplier for the given (1-based) week of a mesocycle.
func IntensityMultiplier(week, total int, pattern periodization.Pattern, isDeload bool) float64 {
	if isDeload {
		return deloadIntensityMultiplier
	}
	return patternMultiplier(week, total, pattern)
}

func patternMultiplier(week, total int, pattern periodization.Pattern) float64 {
	progress := float64(week) / float64(total)
	switch pattern {
	case periodization.PatternAscending:
		return 0.8 + progress*0.4
	case periodization.PatternDescending:
		return 1.2 - progress*0.4
	case periodization.PatternWave:
		return 0.9 + math.Sin(progress*math.Pi)*0.3
	case periodization.PatternStep:
		if week%2 == 0 {
			return 0.9
		}
		return 1.1
	default:
		return 1.0
	}
}

func sessions(frequency int, isDeload bool) []Session {
	rpe, rir := rpeTarget, rirTarget
	if isDeload {
		rpe, rir = deloadRPETarget, deloadRIRTarget
	}

	split, ok := splits[frequency]
	sessions := make([]Session, 0, frequency)
	for k := 0; k < frequency; k++ {
		focus := []workouts.MuscleGroup{workouts.MuscleGroupFullBody}
		if ok {
			focus = append([]workouts.MuscleGroup(nil), split[k]...)
		}
		sessions = append(sessions, Session{
			DayOfWeek: k + 1,
			Focus:     focus,
			RPETarget: rpe,
			RIRTarget: rir,
		})
	}
	return sessions
}
