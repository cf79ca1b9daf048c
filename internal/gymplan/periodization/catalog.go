package periodization

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrConfigNotFound = errors.New("periodization config not found")
	ErrInvalidConfig  = errors.New("invalid periodization config")
)

// Config describes the shape of a single periodization strategy.
type Config struct {
	Type                 Type    `json:"type" toml:"type"`
	PhasesSequence       []Phase `json:"phasesSequence" toml:"phases_sequence"`
	VolumePattern        Pattern `json:"volumePattern" toml:"volume_pattern"`
	IntensityPattern     Pattern `json:"intensityPattern" toml:"intensity_pattern"`
	DeloadFrequencyWeeks int     `json:"deloadFrequencyWeeks" toml:"deload_frequency_weeks"`
	RecommendedLevels    []Level `json:"recommendedLevels" toml:"recommended_levels"`
	BestSuitedGoals      []Goal  `json:"bestSuitedGoals" toml:"best_suited_goals"`
}

func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: unknown type [%s]", ErrInvalidConfig, c.Type)
	}
	if len(c.PhasesSequence) == 0 {
		return fmt.Errorf("%w: [%s] has no phases", ErrInvalidConfig, c.Type)
	}
	for _, p := range c.PhasesSequence {
		if !p.IsValid() {
			return fmt.Errorf("%w: [%s] unknown phase [%s]", ErrInvalidConfig, c.Type, p)
		}
	}
	if !c.VolumePattern.IsValid() || !c.IntensityPattern.IsValid() {
		return fmt.Errorf("%w: [%s] unknown pattern", ErrInvalidConfig, c.Type)
	}
	if c.DeloadFrequencyWeeks < 1 {
		return fmt.Errorf("%w: [%s] deload frequency must be positive", ErrInvalidConfig, c.Type)
	}
	return nil
}

// SuitedFor reports whether the strategy lists both the level and the goal.
func (c Config) SuitedFor(level Level, goal Goal) bool {
	levelOK := false
	for _, l := range c.RecommendedLevels {
		if l == level {
			levelOK = true
			break
		}
	}
	if !levelOK {
		return false
	}
	for _, g := range c.BestSuitedGoals {
		if g == goal {
			return true
		}
	}
	return false
}

func (c Config) clone() Config {
	c.PhasesSequence = append([]Phase(nil), c.PhasesSequence...)
	c.RecommendedLevels = append([]Level(nil), c.RecommendedLevels...)
	c.BestSuitedGoals = append([]Goal(nil), c.BestSuitedGoals...)
	return c
}

// Catalog is an immutable lookup table of periodization strategies.
// It is safe for concurrent use.
type Catalog struct {
	configs map[Type]Config
}

func NewCatalog(configs ...Config) (*Catalog, error) {
	c := &Catalog{
		configs: make(map[Type]Config, len(configs)),
	}
	for _, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		c.configs[cfg.Type] = cfg.clone()
	}
	return c, nil
}

// WithOverrides returns a new catalog where the given configs replace
// (or extend) the entries of c. The receiver is left untouched.
func (c *Catalog) WithOverrides(overrides ...Config) (*Catalog, error) {
	all := make([]Config, 0, len(c.configs)+len(overrides))
	for _, cfg := range c.configs {
		all = append(all, cfg)
	}
	all = append(all, overrides...)
	return NewCatalog(all...)
}

func (c *Catalog) Config(t Type) (Config, error) {
	cfg, ok := c.configs[t]
	if !ok {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, t)
	}
	return cfg.clone(), nil
}

// Types returns all catalog types, sorted by name.
func (c *Catalog) Types() []Type {
	types := make([]Type, 0, len(c.configs))
	for t := range c.configs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})
	return types
}

// Recommend picks a periodization type for the given level and goal.
// The order of the branches matters: the first match wins.
func Recommend(level Level, goal Goal) Type {
	switch level {
	case LevelElite:
		if goal == GoalStrength || goal == GoalPower {
			return TypeConjugate
		}
		return TypeDailyUndulating
	case LevelAdvanced:
		if goal == GoalHypertrophy {
			return TypeBlock
		}
		if goal == GoalStrength {
			return TypeDailyUndulating
		}
		return TypeUndulating
	default:
		// intermediate, and the fallback for every other level
		if goal == GoalHypertrophy || goal == GoalStrength {
			return TypeLinear
		}
		return TypeWeeklyUndulating
	}
}

func DefaultConfigs() []Config {
	return []Config{
		{
			Type:                 TypeLinear,
			PhasesSequence:       []Phase{PhaseHypertrophy, PhaseStrength, PhasePower, PhaseDeload},
			VolumePattern:        PatternDescending,
			IntensityPattern:     PatternAscending,
			DeloadFrequencyWeeks: 4,
			RecommendedLevels:    []Level{LevelBeginner, LevelIntermediate},
			BestSuitedGoals:      []Goal{GoalStrength, GoalHypertrophy},
		},
		{
			Type:                 TypeUndulating,
			PhasesSequence:       []Phase{PhaseHypertrophy, PhaseStrength, PhasePower},
			VolumePattern:        PatternWave,
			IntensityPattern:     PatternWave,
			DeloadFrequencyWeeks: 8,
			RecommendedLevels:    []Level{LevelIntermediate, LevelAdvanced},
			BestSuitedGoals:      []Goal{GoalGeneralFitness, GoalPower, GoalEndurance},
		},
		{
			Type:                 TypeBlock,
			PhasesSequence:       []Phase{PhaseHypertrophy, PhaseStrength, PhasePower, PhaseDeload},
			VolumePattern:        PatternStep,
			IntensityPattern:     PatternAscending,
			DeloadFrequencyWeeks: 12,
			RecommendedLevels:    []Level{LevelAdvanced, LevelElite},
			BestSuitedGoals:      []Goal{GoalHypertrophy, GoalStrength, GoalPower},
		},
		{
			Type:                 TypeConjugate,
			PhasesSequence:       []Phase{PhaseStrength, PhasePower, PhaseHypertrophy},
			VolumePattern:        PatternConstant,
			IntensityPattern:     PatternWave,
			DeloadFrequencyWeeks: 4,
			RecommendedLevels:    []Level{LevelElite},
			BestSuitedGoals:      []Goal{GoalStrength, GoalPower},
		},
		{
			Type:                 TypeDailyUndulating,
			PhasesSequence:       []Phase{PhaseHypertrophy, PhaseStrength, PhasePower},
			VolumePattern:        PatternWave,
			IntensityPattern:     PatternWave,
			DeloadFrequencyWeeks: 6,
			RecommendedLevels:    []Level{LevelAdvanced, LevelElite},
			BestSuitedGoals:      []Goal{GoalStrength, GoalHypertrophy, GoalGeneralFitness},
		},
		{
			Type:                 TypeWeeklyUndulating,
			PhasesSequence:       []Phase{PhaseHypertrophy, PhaseEndurance, PhaseStrength},
			VolumePattern:        PatternStep,
			IntensityPattern:     PatternStep,
			DeloadFrequencyWeeks: 5,
			RecommendedLevels:    []Level{LevelIntermediate},
			BestSuitedGoals:      []Goal{GoalEndurance, GoalGeneralFitness, GoalWeightLoss},
		},
	}
}

// DefaultCatalog returns the built-in catalog with all six strategies.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultConfigs()...)
	if err != nil {
		// built-in table is static, this can only happen on a programming error
		panic(err)
	}
	return c
}
