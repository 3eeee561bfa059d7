package pipeline

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachkit/coachkit/internal/analysis"
	"github.com/coachkit/coachkit/internal/suggest"
)

func newProcessor() *Processor {
	return New(suggest.NewEngine(nil, zerolog.Nop()), zerolog.Nop())
}

func validWorkoutLog(date string) analysis.WorkoutLog {
	return analysis.WorkoutLog{
		TraineeID:        "t1",
		CreatedAt:        date + "T10:00:00Z",
		WorkoutDate:      date,
		CompletionStatus: "completed",
	}
}

func TestProcessIsolatesFailures(t *testing.T) {
	badDate := validWorkoutLog("2023-10-26")
	badDate.WorkoutDate = "not-a-date"

	batch := map[string]TraineeLogs{
		"trainee1": {
			WorkoutLogs: []analysis.WorkoutLog{validWorkoutLog("2023-10-26")},
			DietLogs:    []analysis.DietLog{},
		},
		"trainee2": {
			WorkoutLogs: []analysis.WorkoutLog{badDate},
			DietLogs:    []analysis.DietLog{},
		},
	}

	results := newProcessor().Process(context.Background(), batch)

	require.Len(t, results, 2)
	require.NoError(t, results["trainee1"].Err)
	assert.GreaterOrEqual(t, len(results["trainee1"].Suggestions), 2)
	assert.LessOrEqual(t, len(results["trainee1"].Suggestions), 4)

	require.Error(t, results["trainee2"].Err)
	assert.Empty(t, results["trainee2"].Suggestions)
}

func TestProcessValidatesRequiredFields(t *testing.T) {
	missing := validWorkoutLog("2023-10-26")
	missing.CreatedAt = ""

	batch := map[string]TraineeLogs{
		"trainee1": {WorkoutLogs: []analysis.WorkoutLog{missing}, DietLogs: []analysis.DietLog{}},
	}

	results := newProcessor().Process(context.Background(), batch)

	require.Error(t, results["trainee1"].Err)
	assert.Contains(t, results["trainee1"].Err.Error(), "workout logs")
}

func TestProcessEmptyBatch(t *testing.T) {
	results := newProcessor().Process(context.Background(), nil)
	assert.Empty(t, results)
}

func TestProcessEmptyLogsStillSuggests(t *testing.T) {
	batch := map[string]TraineeLogs{
		"trainee1": {WorkoutLogs: []analysis.WorkoutLog{}, DietLogs: []analysis.DietLog{}},
	}

	results := newProcessor().Process(context.Background(), batch)

	require.NoError(t, results["trainee1"].Err)
	assert.GreaterOrEqual(t, len(results["trainee1"].Suggestions), 2)
}

func TestProcessForwardsTargets(t *testing.T) {
	cal := 2000.0
	dietLogs := []analysis.DietLog{
		{TraineeID: "t1", CreatedAt: "2023-10-26T10:00:00Z", LogDate: "2023-10-26", Calories: &cal},
	}
	low := 500.0
	lowLogs := []analysis.DietLog{
		{TraineeID: "t1", CreatedAt: "2023-10-26T10:00:00Z", LogDate: "2023-10-26", Calories: &low},
	}

	proc := newProcessor()
	withTarget := proc.Process(context.Background(), map[string]TraineeLogs{
		"ok":  {WorkoutLogs: []analysis.WorkoutLog{}, DietLogs: dietLogs, Targets: &analysis.Targets{Calories: &cal}},
		"low": {WorkoutLogs: []analysis.WorkoutLog{}, DietLogs: lowLogs, Targets: &analysis.Targets{Calories: &cal}},
	})

	require.NoError(t, withTarget["low"].Err)
	assert.Contains(t, withTarget["low"].Suggestions,
		"Nutrition Adjustment: Ensure your calorie intake supports your activity level and goals.")
	assert.NotContains(t, withTarget["ok"].Suggestions,
		"Nutrition Adjustment: Ensure your calorie intake supports your activity level and goals.")
}

func TestProcessDeterministic(t *testing.T) {
	batch := map[string]TraineeLogs{
		"trainee1": {
			WorkoutLogs: []analysis.WorkoutLog{validWorkoutLog("2023-10-26"), validWorkoutLog("2023-10-28")},
			DietLogs:    []analysis.DietLog{{TraineeID: "t1", CreatedAt: "2023-10-26T10:00:00Z"}},
		},
	}

	proc := newProcessor()
	first := proc.Process(context.Background(), batch)
	second := proc.Process(context.Background(), batch)

	assert.Equal(t, first["trainee1"].Suggestions, second["trainee1"].Suggestions)
}
