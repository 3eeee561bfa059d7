package analysis

// Analyze runs both analyzers over one trainee's batches and pairs the
// results. Each call is independent; nothing is shared or retained.
func Analyze(workoutLogs []WorkoutLog, dietLogs []DietLog, targets Targets) (CombinedAnalysis, error) {
	workout, err := AnalyzeWorkoutLogs(workoutLogs)
	if err != nil {
		return CombinedAnalysis{}, err
	}
	diet, err := AnalyzeDietLogs(dietLogs, targets)
	if err != nil {
		return CombinedAnalysis{}, err
	}
	return CombinedAnalysis{WorkoutAnalysis: workout, DietAnalysis: diet}, nil
}
