package progression

import (
	"time"
)

// Preferences are the aggregated training style preferences of a user.
type Preferences struct {
	Intensity Intensity `json:"intensity"`
	Volume    string    `json:"volume"`
	Rest      string    `json:"rest"`
}

// Patterns are the temporal/behavioral patterns inferred from the workout logs.
type Patterns struct {
	PreferredTimeOfDay     string         `json:"preferredTimeOfDay"`
	AverageSessionDuration float64        `json:"averageSessionDuration"`
	PreferredDaysOfWeek    []time.Weekday `json:"preferredDaysOfWeek"`
	ConsistencyScore       int            `json:"consistencyScore"`
}

// TrainingData is the persisted algorithm state of a single user:
// exercise progressions, muscle group recovery and the aggregated style/pattern fields.
type TrainingData struct {
	UserID      string      `json:"userId"`
	Exercises   Book        `json:"exercises"`
	Recovery    Recovery    `json:"recovery"`
	Preferences Preferences `json:"preferences"`
	Patterns    Patterns    `json:"patterns"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func NewTrainingData(userID string) *TrainingData {
	return &TrainingData{
		UserID:    userID,
		Exercises: Book{},
		Recovery:  Recovery{},
		Preferences: Preferences{
			Intensity: IntensityModerate,
			Volume:    "moderate",
			Rest:      "moderate",
		},
	}
}

func (d *TrainingData) Clone() *TrainingData {
	c := *d
	if d.Exercises != nil {
		c.Exercises = d.Exercises.Clone()
	} else {
		c.Exercises = Book{}
	}
	if d.Recovery != nil {
		c.Recovery = d.Recovery.Clone()
	} else {
		c.Recovery = Recovery{}
	}
	c.Patterns.PreferredDaysOfWeek = append([]time.Weekday(nil), d.Patterns.PreferredDaysOfWeek...)
	return &c
}
