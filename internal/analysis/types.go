// Package analysis computes descriptive aggregates over a trainee's workout
// and diet log batches. Analyzers are pure functions of their input batch:
// the same batch always produces the same analysis, and an empty batch
// produces a well-defined zero analysis rather than an error.
package analysis

// WorkoutLog is a single workout log entry as received from the transport
// layer. Optional numeric fields are pointers so that absent and zero values
// stay distinguishable; set-level values may contain JSON nulls.
//
// Default substitution on read: nil CompletionStatus handling is done via the
// empty string ("" counts as "unknown"), nil set values are skipped, nil
// SetsCompleted/PerceivedExertion are excluded from their aggregates.
type WorkoutLog struct {
	ID                string     `json:"id,omitempty"`
	TraineeID         string     `json:"trainee_id"`
	CreatedAt         string     `json:"created_at"`
	WorkoutDate       string     `json:"workout_date,omitempty"`
	CompletionStatus  string     `json:"completion_status,omitempty"`
	WorkoutExerciseID string     `json:"workout_exercise_id,omitempty"`
	WeightPerSet      []*float64 `json:"weight_per_set,omitempty"`
	RepsPerSet        []*float64 `json:"reps_per_set,omitempty"`
	SetsCompleted     *int       `json:"sets_completed,omitempty"`
	PerceivedExertion *int       `json:"perceived_exertion,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

// DietLog is a single diet log entry. Missing macro values count as 0,
// missing Compliance counts as neither compliant nor non-compliant.
type DietLog struct {
	ID         string   `json:"id,omitempty"`
	TraineeID  string   `json:"trainee_id"`
	CreatedAt  string   `json:"created_at"`
	LogDate    string   `json:"log_date,omitempty"`
	Calories   *float64 `json:"calories,omitempty"`
	Protein    *float64 `json:"protein,omitempty"`
	Carbs      *float64 `json:"carbs,omitempty"`
	Fats       *float64 `json:"fats,omitempty"`
	Compliance *bool    `json:"compliance,omitempty"`
	MealType   string   `json:"meal_type,omitempty"`
	FoodName   string   `json:"food_name,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// Targets holds optional daily nutrition targets. A nil field means no
// target was prescribed for that nutrient and no delta is computed.
type Targets struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fats     *float64 `json:"fats,omitempty"`
}

// Consistency summarizes how regularly a trainee worked out.
type Consistency struct {
	// Message carries the no-data marker for empty batches.
	Message            string  `json:"message,omitempty"`
	UniqueWorkoutDates int     `json:"unique_workout_dates"`
	TimeSpanDays       int     `json:"time_span_days"`
	WorkoutsPerDay     float64 `json:"workouts_per_day_average"`
}

// WorkoutAnalysis is the derived, read-only aggregate of one workout batch.
type WorkoutAnalysis struct {
	Consistency       Consistency       `json:"consistency"`
	CompletionSummary map[string]int    `json:"completion_summary"`
	ProgressTrends    map[string]string `json:"progress_trends"`
	PerceivedExertion string            `json:"perceived_exertion"`
	// AvgPerceivedExertion is nil when no entry carried a value.
	AvgPerceivedExertion *float64 `json:"average_perceived_exertion,omitempty"`
	NotesSummary         []string `json:"notes_summary"`
}

// DietAnalysis is the derived, read-only aggregate of one diet batch.
// Totals cover every entry; daily averages cover only entries whose
// log_date parsed as a calendar day.
type DietAnalysis struct {
	TotalEntries         int              `json:"total_entries"`
	TotalCalories        float64          `json:"total_calories"`
	TotalProtein         float64          `json:"total_protein"`
	TotalCarbs           float64          `json:"total_carbs"`
	TotalFats            float64          `json:"total_fats"`
	ComplianceRate       float64          `json:"compliance_rate"`
	MealTypeDistribution map[string]int   `json:"meal_type_distribution"`
	FoodNameCounts       map[string]int   `json:"food_name_counts"`
	NotesSummary         []string         `json:"notes_summary"`
	AverageDailyCalories float64          `json:"average_daily_calories"`
	AverageDailyProtein  float64          `json:"average_daily_protein"`
	AverageDailyCarbs    float64          `json:"average_daily_carbs"`
	AverageDailyFats     float64          `json:"average_daily_fats"`
	CaloriesVsTarget     *float64         `json:"calories_vs_target,omitempty"`
	ProteinVsTarget      *float64         `json:"protein_vs_target,omitempty"`
	CarbsVsTarget        *float64         `json:"carbs_vs_target,omitempty"`
	FatsVsTarget         *float64         `json:"fats_vs_target,omitempty"`
}

// CombinedAnalysis pairs the two analyses for a single trainee. It is built
// fresh per request and never persisted.
type CombinedAnalysis struct {
	WorkoutAnalysis WorkoutAnalysis `json:"workout_analysis"`
	DietAnalysis    DietAnalysis    `json:"diet_analysis"`
}
