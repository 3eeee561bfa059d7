package analysis

import "strings"

// Qualitative labels shared by Summary fields. Not every field uses every
// label; see the Summarize threshold table.
const (
	LabelUnknown  = "unknown"
	LabelLow      = "low"
	LabelModerate = "moderate"
	LabelHigh     = "high"
	LabelGood     = "good"
	LabelStalled  = "stalled"
	LabelAdequate = "adequate"
)

// Summary is the qualitative view of a CombinedAnalysis that the suggestion
// rules evaluate. It collapses the numeric aggregates into coarse verdicts.
type Summary struct {
	WorkoutConsistency string `json:"workout_consistency"`
	WorkoutProgress    string `json:"workout_progress"`
	PerceivedExertion  string `json:"perceived_exertion"`
	WorkoutNotes       string `json:"workout_notes"`
	DietCompliance     string `json:"diet_compliance"`
	Calories           string `json:"calories"`
	Protein            string `json:"protein"`
	DietNotes          string `json:"diet_notes"`
}

// Threshold table:
//
//	consistency  no dates → unknown; ≥0.5 workouts/day → high; ≥0.25 → moderate; else low
//	progress     no exercises → unknown; any trend moved → good; else stalled
//	exertion     no values → unknown; avg >7 → high; else moderate
//	compliance   no entries → unknown; rate ≥80 → high; ≥50 → moderate; else low
//	calories     no target → unknown; avg <90% target → low; >110% → high; else adequate
//	protein      same as calories against the protein target
func Summarize(c CombinedAnalysis, targets Targets) Summary {
	return Summary{
		WorkoutConsistency: consistencyLabel(c.WorkoutAnalysis.Consistency),
		WorkoutProgress:    progressTrendLabel(c.WorkoutAnalysis.ProgressTrends),
		PerceivedExertion:  exertionLabel(c.WorkoutAnalysis.AvgPerceivedExertion),
		WorkoutNotes:       strings.Join(c.WorkoutAnalysis.NotesSummary, "; "),
		DietCompliance:     complianceLabel(c.DietAnalysis),
		Calories:           intakeLabel(c.DietAnalysis.AverageDailyCalories, targets.Calories),
		Protein:            intakeLabel(c.DietAnalysis.AverageDailyProtein, targets.Protein),
		DietNotes:          strings.Join(c.DietAnalysis.NotesSummary, "; "),
	}
}

func consistencyLabel(c Consistency) string {
	if c.UniqueWorkoutDates == 0 {
		return LabelUnknown
	}
	switch {
	case c.WorkoutsPerDay >= 0.5:
		return LabelHigh
	case c.WorkoutsPerDay >= 0.25:
		return LabelModerate
	default:
		return LabelLow
	}
}

func progressTrendLabel(trends map[string]string) string {
	if len(trends) == 0 {
		return LabelUnknown
	}
	for _, trend := range trends {
		if trend != "No significant change" {
			return LabelGood
		}
	}
	return LabelStalled
}

func exertionLabel(avg *float64) string {
	switch {
	case avg == nil:
		return LabelUnknown
	case *avg > exertionHighThreshold:
		return LabelHigh
	default:
		return LabelModerate
	}
}

func complianceLabel(d DietAnalysis) string {
	if d.TotalEntries == 0 {
		return LabelUnknown
	}
	switch {
	case d.ComplianceRate >= 80:
		return LabelHigh
	case d.ComplianceRate >= 50:
		return LabelModerate
	default:
		return LabelLow
	}
}

func intakeLabel(avgDaily float64, target *float64) string {
	if target == nil || *target <= 0 {
		return LabelUnknown
	}
	switch {
	case avgDaily < 0.9**target:
		return LabelLow
	case avgDaily > 1.1**target:
		return LabelHigh
	default:
		return LabelAdequate
	}
}
