package periodization

// Type is the periodization strategy governing how volume and intensity vary over time.
type Type string

const (
	TypeLinear           Type = "linear"
	TypeUndulating       Type = "undulating"
	TypeBlock            Type = "block"
	TypeConjugate        Type = "conjugate"
	TypeDailyUndulating  Type = "daily-undulating"
	TypeWeeklyUndulating Type = "weekly-undulating"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeLinear,
		TypeUndulating,
		TypeBlock,
		TypeConjugate,
		TypeDailyUndulating,
		TypeWeeklyUndulating:
		return true
	default:
		return false
	}
}

// Phase is the training focus of a mesocycle.
type Phase string

const (
	PhaseHypertrophy Phase = "hypertrophy"
	PhaseStrength    Phase = "strength"
	PhasePower       Phase = "power"
	PhaseEndurance   Phase = "endurance"
	PhaseDeload      Phase = "deload"
)

func (p Phase) IsValid() bool {
	switch p {
	case PhaseHypertrophy,
		PhaseStrength,
		PhasePower,
		PhaseEndurance,
		PhaseDeload:
		return true
	default:
		return false
	}
}

// Pattern describes how a multiplier evolves week over week inside a mesocycle.
type Pattern string

const (
	PatternAscending  Pattern = "ascending"
	PatternDescending Pattern = "descending"
	PatternWave       Pattern = "wave"
	PatternStep       Pattern = "step"
	PatternConstant   Pattern = "constant"
)

func (p Pattern) IsValid() bool {
	switch p {
	case PatternAscending,
		PatternDescending,
		PatternWave,
		PatternStep,
		PatternConstant:
		return true
	default:
		return false
	}
}

// Level is the trainee's training level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelElite        Level = "elite"
)

func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner,
		LevelIntermediate,
		LevelAdvanced,
		LevelElite:
		return true
	default:
		return false
	}
}

// Goal is the trainee's primary training goal.
type Goal string

const (
	GoalStrength       Goal = "strength"
	GoalHypertrophy    Goal = "hypertrophy"
	GoalPower          Goal = "power"
	GoalEndurance      Goal = "endurance"
	GoalGeneralFitness Goal = "general_fitness"
	GoalWeightLoss     Goal = "weight_loss"
)

func (g Goal) IsValid() bool {
	switch g {
	case GoalStrength,
		GoalHypertrophy,
		GoalPower,
		GoalEndurance,
		GoalGeneralFitness,
		GoalWeightLoss:
		return true
	default:
		return false
	}
}
