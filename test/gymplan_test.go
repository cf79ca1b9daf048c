//go:build integration

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/gymplan/internal/gymplan"
	"github.com/2beens/gymplan/internal/gymplan/analysis"
	"github.com/2beens/gymplan/internal/gymplan/engine"
	"github.com/2beens/gymplan/internal/gymplan/goals"
	"github.com/2beens/gymplan/internal/gymplan/periodization"
	"github.com/2beens/gymplan/internal/gymplan/program"
	"github.com/2beens/gymplan/internal/gymplan/progression"
	"github.com/2beens/gymplan/internal/gymplan/recommendation"
	"github.com/2beens/gymplan/internal/gymplan/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestPeriodization() {
	ctx := context.Background()
	t := s.T()

	status, body := s.doRequest(ctx, http.MethodGet, "/gymplan/periodization/block", nil)
	require.Equal(t, http.StatusOK, status)
	var cfg periodization.Config
	require.NoError(t, json.Unmarshal(body, &cfg))
	assert.Equal(t, periodization.TypeBlock, cfg.Type)
	assert.Equal(t, 12, cfg.DeloadFrequencyWeeks)

	status, body = s.doRequest(ctx, http.MethodGet, "/gymplan/periodization/recommend?level=elite&goal=power", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &cfg))
	assert.Equal(t, periodization.TypeConjugate, cfg.Type)

	status, _ = s.doRequest(ctx, http.MethodGet, "/gymplan/periodization/unknown", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestGenerateProgram() {
	ctx := context.Background()
	t := s.T()

	status, body := s.doRequest(ctx, http.MethodPost, "/gymplan/program", gymplan.GeneratePlanRequest{
		Level:            periodization.LevelBeginner,
		Goal:             periodization.GoalStrength,
		DurationWeeks:    12,
		FrequencyPerWeek: 3,
	})
	require.Equal(t, http.StatusOK, status)

	var structure program.Structure
	require.NoError(t, json.Unmarshal(body, &structure))
	assert.Equal(t, periodization.TypeLinear, structure.Type)

	weeks := 0
	for _, meso := range structure.Mesocycles {
		weeks += len(meso.Microcycles)
	}
	assert.Equal(t, 12, weeks)

	status, _ = s.doRequest(ctx, http.MethodPost, "/gymplan/program", gymplan.GeneratePlanRequest{
		Level:            periodization.LevelBeginner,
		Goal:             periodization.GoalStrength,
		DurationWeeks:    0,
		FrequencyPerWeek: 3,
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestLogsAnalysisAndInsights() {
	ctx := context.Background()
	t := s.T()
	userID := "e2e-athlete"

	status, _ := s.doRequest(ctx, http.MethodPut, fmt.Sprintf("/gymplan/users/%s/profile", userID), workouts.Profile{
		Frequency:     5,
		AvailableTime: 60,
	})
	require.Equal(t, http.StatusOK, status)

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		status, body := s.doRequest(ctx, http.MethodPost, "/gymplan/logs", workouts.Log{
			UserID:          userID,
			Date:            now.Add(-time.Duration(i*24) * time.Hour),
			DurationMinutes: 55,
			CompletedSets: []workouts.CompletedSet{
				{
					ExerciseID:  "back-squat",
					MuscleGroup: workouts.MuscleGroupQuads,
					Weight:      workouts.Float64(float64(100 + 5*i)),
					Reps:        workouts.Int(5),
					RIR:         workouts.Int(2),
				},
			},
			MuscleGroupFatigue: map[workouts.MuscleGroup]float64{
				workouts.MuscleGroupQuads: 9,
			},
		})
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, body := s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/gymplan/users/%s/training-data", userID), nil)
	require.Equal(t, http.StatusOK, status)
	var data progression.TrainingData
	require.NoError(t, json.Unmarshal(body, &data))
	require.Contains(t, data.Exercises, "back-squat")
	assert.Equal(t, 110.0, data.Exercises["back-squat"].BestWeight)
	assert.Equal(t, float64(progression.MaxRecoveryHours-12), data.Recovery.Hours(workouts.MuscleGroupQuads))

	status, body = s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/gymplan/users/%s/analysis", userID), nil)
	require.Equal(t, http.StatusOK, status)
	var res analysis.Result
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, []workouts.MuscleGroup{workouts.MuscleGroupQuads}, res.HighFatigue)
	require.NotEmpty(t, res.Candidates)
	assert.Equal(t, recommendation.KindFatigue, res.Candidates[0].Kind)

	status, body = s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/gymplan/users/%s/insights", userID), nil)
	require.Equal(t, http.StatusOK, status)
	var insights engine.Insights
	require.NoError(t, json.Unmarshal(body, &insights))
	require.NotEmpty(t, insights.Recommendations)
	assert.LessOrEqual(t, len(insights.Recommendations), engine.MaxInsightRecommendations)
	assert.Equal(t, recommendation.PriorityHigh, insights.Recommendations[0].Priority)

	status, _ = s.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/gymplan/users/%s/exercises/back-squat/best", userID), nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/gymplan/users/%s/exercises/deadlift/best", userID), nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.doRequest(ctx, http.MethodPost, "/gymplan/logs", workouts.Log{Date: now})
	assert.Equal(t, http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestGoalsLifecycle() {
	ctx := context.Background()
	t := s.T()
	userID := "e2e-goal-setter"

	status, body := s.doRequest(ctx, http.MethodPost, "/gymplan/goals", goals.NewGoalParams{
		UserID:      userID,
		Type:        goals.TypePrimary,
		Category:    "strength",
		Title:       "bench 100",
		TargetValue: 100,
		Unit:        "kg",
		Deadline:    time.Now().Add(90 * 24 * time.Hour),
		Priority:    "high",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var created goals.View
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, goals.StatusActive, created.Status)

	status, body = s.doRequest(ctx, http.MethodPut, fmt.Sprintf("/gymplan/goals/%s/progress", created.ID), goals.ProgressUpdate{
		CurrentValue: 50,
	})
	require.Equal(t, http.StatusOK, status)
	var updated goals.View
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, 50.0, updated.Progress)

	status, body = s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/gymplan/users/%s/goals", userID), nil)
	require.Equal(t, http.StatusOK, status)
	var listed []goals.View
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	status, _ = s.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/gymplan/goals/%s", created.ID), nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/gymplan/goals/%s", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, status)
}
