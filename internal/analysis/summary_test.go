package analysis

import "testing"

func TestConsistencyLabel(t *testing.T) {
	tests := []struct {
		name string
		c    Consistency
		want string
	}{
		{"no dates", Consistency{}, LabelUnknown},
		{"daily training", Consistency{UniqueWorkoutDates: 7, WorkoutsPerDay: 1}, LabelHigh},
		{"every other day", Consistency{UniqueWorkoutDates: 4, WorkoutsPerDay: 0.5}, LabelHigh},
		{"twice a week", Consistency{UniqueWorkoutDates: 2, WorkoutsPerDay: 0.29}, LabelModerate},
		{"rarely", Consistency{UniqueWorkoutDates: 2, WorkoutsPerDay: 0.1}, LabelLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := consistencyLabel(tt.c); got != tt.want {
				t.Errorf("consistencyLabel(%+v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestProgressTrendLabel(t *testing.T) {
	tests := []struct {
		name   string
		trends map[string]string
		want   string
	}{
		{"no exercises", nil, LabelUnknown},
		{"one moved", map[string]string{"ex1": "Weight increased", "ex2": "No significant change"}, LabelGood},
		{"all flat", map[string]string{"ex1": "No significant change"}, LabelStalled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := progressTrendLabel(tt.trends); got != tt.want {
				t.Errorf("progressTrendLabel(%v) = %q, want %q", tt.trends, got, tt.want)
			}
		})
	}
}

func TestComplianceLabel(t *testing.T) {
	tests := []struct {
		name string
		d    DietAnalysis
		want string
	}{
		{"no entries", DietAnalysis{}, LabelUnknown},
		{"high", DietAnalysis{TotalEntries: 10, ComplianceRate: 85}, LabelHigh},
		{"boundary high", DietAnalysis{TotalEntries: 10, ComplianceRate: 80}, LabelHigh},
		{"moderate", DietAnalysis{TotalEntries: 10, ComplianceRate: 60}, LabelModerate},
		{"low", DietAnalysis{TotalEntries: 10, ComplianceRate: 20}, LabelLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := complianceLabel(tt.d); got != tt.want {
				t.Errorf("complianceLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIntakeLabel(t *testing.T) {
	target := 2000.0
	tests := []struct {
		name   string
		avg    float64
		target *float64
		want   string
	}{
		{"no target", 1500, nil, LabelUnknown},
		{"low", 1700, &target, LabelLow},
		{"adequate", 2000, &target, LabelAdequate},
		{"boundary adequate", 1800, &target, LabelAdequate},
		{"high", 2300, &target, LabelHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intakeLabel(tt.avg, tt.target); got != tt.want {
				t.Errorf("intakeLabel(%.0f) = %q, want %q", tt.avg, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	avg := 8.2
	c := CombinedAnalysis{
		WorkoutAnalysis: WorkoutAnalysis{
			Consistency:          Consistency{UniqueWorkoutDates: 2, WorkoutsPerDay: 0.1},
			ProgressTrends:       map[string]string{"ex1": "No significant change"},
			AvgPerceivedExertion: &avg,
			NotesSummary:         []string{"Felt tired", "knee pain"},
		},
		DietAnalysis: DietAnalysis{
			TotalEntries:         4,
			ComplianceRate:       25,
			AverageDailyCalories: 1500,
			NotesSummary:         []string{"always hungry"},
		},
	}

	sum := Summarize(c, Targets{Calories: f(2000)})

	if sum.WorkoutConsistency != LabelLow {
		t.Errorf("WorkoutConsistency = %q, want low", sum.WorkoutConsistency)
	}
	if sum.WorkoutProgress != LabelStalled {
		t.Errorf("WorkoutProgress = %q, want stalled", sum.WorkoutProgress)
	}
	if sum.PerceivedExertion != LabelHigh {
		t.Errorf("PerceivedExertion = %q, want high", sum.PerceivedExertion)
	}
	if sum.WorkoutNotes != "Felt tired; knee pain" {
		t.Errorf("WorkoutNotes = %q", sum.WorkoutNotes)
	}
	if sum.DietCompliance != LabelLow {
		t.Errorf("DietCompliance = %q, want low", sum.DietCompliance)
	}
	if sum.Calories != LabelLow {
		t.Errorf("Calories = %q, want low", sum.Calories)
	}
	if sum.Protein != LabelUnknown {
		t.Errorf("Protein = %q, want unknown (no target)", sum.Protein)
	}
	if sum.DietNotes != "always hungry" {
		t.Errorf("DietNotes = %q", sum.DietNotes)
	}
}
