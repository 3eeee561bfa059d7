package prompt

import (
	"strings"
	"testing"

	"github.com/coachkit/coachkit/internal/analysis"
)

func TestBuild(t *testing.T) {
	c := analysis.CombinedAnalysis{
		WorkoutAnalysis: analysis.WorkoutAnalysis{
			Consistency: analysis.Consistency{Message: "Logged workouts on 3 unique days."},
		},
		DietAnalysis: analysis.DietAnalysis{TotalCalories: 1500},
	}

	got := Build(c)

	if !strings.Contains(got, "Logged workouts on 3 unique days.") {
		t.Errorf("Prompt should embed the analysis JSON, got:\n%s", got)
	}
	if !strings.Contains(got, "1500") {
		t.Errorf("Prompt should embed diet totals, got:\n%s", got)
	}
	if !strings.Contains(got, "start every line with a dash") {
		t.Error("Prompt should instruct the dash-prefixed format")
	}
	if !strings.Contains(got, "2-4") {
		t.Error("Prompt should bound the suggestion count")
	}
}

func TestBuildEmptyAnalysis(t *testing.T) {
	got := Build(analysis.CombinedAnalysis{})
	if got == "" {
		t.Fatal("Build should never return an empty prompt")
	}
}
