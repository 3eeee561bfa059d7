package analysis

import (
	"fmt"
	"sort"
	"time"
)

const logDateLayout = "2006-01-02"

type dailyIntake struct {
	calories, protein, carbs, fats float64
}

// AnalyzeDietLogs aggregates macro totals, per-day averages, compliance and
// distributions from one batch of diet logs. Unlike the workout analyzer,
// date handling here is lenient: an unparseable log_date only drops the entry
// from the per-day averages, never the running totals, and a missing or
// malformed created_at sorts the entry first instead of failing.
func AnalyzeDietLogs(logs []DietLog, targets Targets) (DietAnalysis, error) {
	out := DietAnalysis{
		MealTypeDistribution: map[string]int{},
		FoodNameCounts:       map[string]int{},
	}

	if len(logs) == 0 {
		return out, nil
	}

	sorted := make([]DietLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAtOf(sorted[i]).Before(createdAtOf(sorted[j]))
	})

	out.TotalEntries = len(sorted)

	compliant := 0
	daily := map[string]*dailyIntake{}
	for _, l := range sorted {
		out.TotalCalories += orZero(l.Calories)
		out.TotalProtein += orZero(l.Protein)
		out.TotalCarbs += orZero(l.Carbs)
		out.TotalFats += orZero(l.Fats)

		if l.LogDate != "" {
			if day, err := time.Parse(logDateLayout, l.LogDate); err == nil {
				key := day.Format(logDateLayout)
				intake := daily[key]
				if intake == nil {
					intake = &dailyIntake{}
					daily[key] = intake
				}
				intake.calories += orZero(l.Calories)
				intake.protein += orZero(l.Protein)
				intake.carbs += orZero(l.Carbs)
				intake.fats += orZero(l.Fats)
			}
		}

		switch {
		case l.Compliance != nil && *l.Compliance:
			compliant++
		case l.Compliance != nil:
			out.NotesSummary = append(out.NotesSummary, nonComplianceNote(l))
		}

		if l.MealType != "" {
			out.MealTypeDistribution[l.MealType]++
		}
		if l.FoodName != "" {
			out.FoodNameCounts[l.FoodName]++
		}
		if l.Notes != "" {
			out.NotesSummary = append(out.NotesSummary, l.Notes)
		}
	}

	out.ComplianceRate = float64(compliant) / float64(len(sorted)) * 100

	if days := len(daily); days > 0 {
		for _, intake := range daily {
			out.AverageDailyCalories += intake.calories
			out.AverageDailyProtein += intake.protein
			out.AverageDailyCarbs += intake.carbs
			out.AverageDailyFats += intake.fats
		}
		out.AverageDailyCalories /= float64(days)
		out.AverageDailyProtein /= float64(days)
		out.AverageDailyCarbs /= float64(days)
		out.AverageDailyFats /= float64(days)
	}

	if targets.Calories != nil {
		out.CaloriesVsTarget = delta(out.AverageDailyCalories, *targets.Calories)
	}
	if targets.Protein != nil {
		out.ProteinVsTarget = delta(out.AverageDailyProtein, *targets.Protein)
	}
	if targets.Carbs != nil {
		out.CarbsVsTarget = delta(out.AverageDailyCarbs, *targets.Carbs)
	}
	if targets.Fats != nil {
		out.FatsVsTarget = delta(out.AverageDailyFats, *targets.Fats)
	}

	return out, nil
}

func nonComplianceNote(l DietLog) string {
	date := l.LogDate
	if date == "" {
		date = "unknown date"
	}
	notes := l.Notes
	if notes == "" {
		notes = "No specific notes."
	}
	return fmt.Sprintf("Non-compliant entry on %s: %s", date, notes)
}

// createdAtOf parses the entry timestamp; anything unparseable sorts as the
// earliest possible instant.
func createdAtOf(l DietLog) time.Time {
	if l.CreatedAt == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, l.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func delta(avg, target float64) *float64 {
	d := avg - target
	return &d
}
