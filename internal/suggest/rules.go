package suggest

import (
	"strings"

	"github.com/coachkit/coachkit/internal/analysis"
)

// warningTag marks safety-relevant suggestions. A present warning suppresses
// the generic motivational message.
const warningTag = "Warning Flag"

// Suggestion texts, in rule-priority order: workout flags, nutrition flags,
// motivational, then the generic fillers used only for padding.
const (
	tipFrequency    = "Workout Tip: Increasing workout frequency could help you reach your goals faster."
	tipIntensity    = "Workout Adjustment: Consider slightly increasing intensity (weight, reps, or sets) on key exercises."
	tipOvertraining = "Warning Flag: High perceived exertion consistently could indicate overtraining. Prioritize rest and recovery."
	tipRecovery     = "Workout Tip: Pay extra attention to recovery and sleep this week."
	tipMealPlan     = "Nutrition Tip: Review your meal plan to identify barriers to consistency and find practical solutions."
	tipCalories     = "Nutrition Adjustment: Ensure your calorie intake supports your activity level and goals."
	tipProtein      = "Nutrition Tip: Focus on incorporating more protein sources into your meals."
	tipMealTiming   = "Nutrition Tip: Consider adjusting meal timing or composition to manage hunger."
	tipKeepItUp     = "Suggestion: Great work this week! Keep up the consistent effort."
	tipMotivation   = "Motivation: Remember your goals and why you started! Stay disciplined."
	tipPainWarning  = "Warning Flag: Trainee noted pain during workouts. Advise checking form or consulting a professional."
)

// fillerTips pad the output up to the minimum of two, in this order.
var fillerTips = [2]string{
	"General Tip: Review your workout intensity this week.",
	"General Tip: Pay attention to your hydration and sleep.",
}

// rule maps a condition on the qualitative summary to a suggestion string.
// Rules are evaluated in slice order; conditions encode their own exclusivity
// (the intensity rule only fires when the frequency rule did not).
type rule struct {
	when func(analysis.Summary) bool
	text string
}

var baseRules = []rule{
	{
		when: func(s analysis.Summary) bool { return s.WorkoutConsistency == analysis.LabelLow },
		text: tipFrequency,
	},
	{
		when: func(s analysis.Summary) bool {
			return s.WorkoutConsistency != analysis.LabelLow && s.WorkoutProgress == analysis.LabelStalled
		},
		text: tipIntensity,
	},
	{
		when: func(s analysis.Summary) bool { return s.PerceivedExertion == analysis.LabelHigh },
		text: tipOvertraining,
	},
	{
		when: func(s analysis.Summary) bool { return noteMatches(s.WorkoutNotes, "tired", "fatigue") },
		text: tipRecovery,
	},
	{
		when: func(s analysis.Summary) bool { return s.DietCompliance == analysis.LabelLow },
		text: tipMealPlan,
	},
	{
		when: func(s analysis.Summary) bool { return s.Calories == analysis.LabelLow },
		text: tipCalories,
	},
	{
		when: func(s analysis.Summary) bool { return s.Protein == analysis.LabelLow },
		text: tipProtein,
	},
	{
		when: func(s analysis.Summary) bool { return noteMatches(s.DietNotes, "hungry") },
		text: tipMealTiming,
	},
	{
		when: func(s analysis.Summary) bool {
			return s.WorkoutProgress == analysis.LabelGood && s.DietCompliance == analysis.LabelHigh
		},
		text: tipKeepItUp,
	},
}

// painFlagged is the safety check evaluated outside the base table: its
// suggestion is appended after the motivational gate, but its condition
// already counts as a warning for that gate.
func painFlagged(s analysis.Summary) bool {
	return noteMatches(s.WorkoutNotes, "pain")
}

// noteMatches reports whether any pattern occurs in the notes. Matching is a
// literal case-insensitive substring check; no language understanding.
func noteMatches(notes string, patterns ...string) bool {
	lowered := strings.ToLower(notes)
	for _, p := range patterns {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}
