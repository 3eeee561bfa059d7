package analysis

import (
	"fmt"
	"sort"
	"time"
)

const workoutDateLayout = "2006-01-02"

// noWorkoutData marks an analysis produced from an empty batch.
const noWorkoutData = "No workout logs provided."

// exertionHighThreshold is the average perceived exertion above which the
// qualitative "(Potentially high)" flag is attached.
const exertionHighThreshold = 7.0

// maxNotesSampled caps how many workout notes are carried into the analysis.
const maxNotesSampled = 3

type exerciseData struct {
	weights []float64
	reps    []float64
	sets    []float64
}

// AnalyzeWorkoutLogs aggregates consistency, completion status, per-exercise
// progress trends, perceived exertion and notes from one batch of workout
// logs. The input slice is not modified. A malformed workout_date is a hard
// failure; everything else degrades to defaults.
func AnalyzeWorkoutLogs(logs []WorkoutLog) (WorkoutAnalysis, error) {
	out := WorkoutAnalysis{
		CompletionSummary: map[string]int{},
		ProgressTrends:    map[string]string{},
		PerceivedExertion: "N/A",
	}

	if len(logs) == 0 {
		out.Consistency.Message = noWorkoutData
		return out, nil
	}

	sorted := make([]WorkoutLog, len(logs))
	copy(sorted, logs)
	// Entries without a date sort first; the empty string is the sentinel.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WorkoutDate < sorted[j].WorkoutDate
	})

	if err := analyzeConsistency(sorted, &out.Consistency); err != nil {
		return WorkoutAnalysis{}, err
	}

	for _, l := range sorted {
		status := l.CompletionStatus
		if status == "" {
			status = "unknown"
		}
		out.CompletionSummary[status]++
	}

	analyzeProgress(sorted, out.ProgressTrends)

	var exertionSum float64
	var exertionCount int
	for _, l := range sorted {
		if l.PerceivedExertion != nil {
			exertionSum += float64(*l.PerceivedExertion)
			exertionCount++
		}
	}
	if exertionCount > 0 {
		avg := exertionSum / float64(exertionCount)
		out.AvgPerceivedExertion = &avg
		out.PerceivedExertion = fmt.Sprintf("Average perceived exertion: %.1f", avg)
		if avg > exertionHighThreshold {
			out.PerceivedExertion += " (Potentially high)"
		}
	}

	for _, l := range sorted {
		if l.Notes == "" {
			continue
		}
		out.NotesSummary = append(out.NotesSummary, l.Notes)
		if len(out.NotesSummary) == maxNotesSampled {
			break
		}
	}

	return out, nil
}

func analyzeConsistency(sorted []WorkoutLog, c *Consistency) error {
	seen := map[string]struct{}{}
	for _, l := range sorted {
		if l.WorkoutDate != "" {
			seen[l.WorkoutDate] = struct{}{}
		}
	}
	c.UniqueWorkoutDates = len(seen)
	if len(seen) == 0 {
		return nil
	}

	var earliest, latest time.Time
	first := true
	for d := range seen {
		parsed, err := time.Parse(workoutDateLayout, d)
		if err != nil {
			return &ProcessingError{
				Stage: "workout",
				Err:   fmt.Errorf("parsing workout date %q: %w", d, err),
			}
		}
		if first || parsed.Before(earliest) {
			earliest = parsed
		}
		if first || parsed.After(latest) {
			latest = parsed
		}
		first = false
	}

	c.TimeSpanDays = int(latest.Sub(earliest).Hours() / 24)
	if c.TimeSpanDays > 0 {
		c.WorkoutsPerDay = float64(len(seen)) / float64(c.TimeSpanDays)
	} else {
		c.WorkoutsPerDay = float64(len(seen))
	}
	return nil
}

// analyzeProgress groups set data by exercise in chronological order and
// labels each exercise's trend. Branch order matters: weight wins over reps,
// reps over sets, and a later branch composes with an earlier label only if
// one was already set.
func analyzeProgress(sorted []WorkoutLog, trends map[string]string) {
	perExercise := map[string]*exerciseData{}
	for _, l := range sorted {
		if l.WorkoutExerciseID == "" {
			continue
		}
		data := perExercise[l.WorkoutExerciseID]
		if data == nil {
			data = &exerciseData{}
			perExercise[l.WorkoutExerciseID] = data
		}
		for _, w := range l.WeightPerSet {
			if w != nil {
				data.weights = append(data.weights, *w)
			}
		}
		for _, r := range l.RepsPerSet {
			if r != nil {
				data.reps = append(data.reps, *r)
			}
		}
		if l.SetsCompleted != nil {
			data.sets = append(data.sets, float64(*l.SetsCompleted))
		}
	}

	for id, data := range perExercise {
		trends[id] = progressLabel(data)
	}
}

func progressLabel(data *exerciseData) string {
	const unchanged = "No significant change"
	label := unchanged
	switch {
	case increased(data.weights):
		label = "Weight increased"
	case increased(data.reps):
		if label == unchanged {
			label = "Reps increased"
		} else {
			label += " and Reps increased"
		}
	case increased(data.sets):
		if label == unchanged {
			label = "Sets increased"
		} else {
			label += " and Sets increased"
		}
	}
	return label
}

func increased(vs []float64) bool {
	if len(vs) == 0 {
		return false
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi > lo
}
