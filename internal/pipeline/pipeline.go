// Package pipeline runs the per-trainee analysis and suggestion flow. Each
// trainee's batch is processed independently; a failure for one trainee
// becomes that trainee's error entry and never affects the others.
package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/coachkit/coachkit/internal/analysis"
	"github.com/coachkit/coachkit/internal/suggest"
)

// maxConcurrentTrainees bounds the fan-out for large batches.
const maxConcurrentTrainees = 8

// TraineeLogs is one trainee's input record.
type TraineeLogs struct {
	WorkoutLogs []analysis.WorkoutLog `json:"workout_logs"`
	DietLogs    []analysis.DietLog    `json:"diet_logs"`
	Targets     *analysis.Targets     `json:"targets,omitempty"`
}

// Validate checks the per-entry required fields of the input contract.
func (t TraineeLogs) Validate() error {
	for _, l := range t.WorkoutLogs {
		if l.CreatedAt == "" || l.TraineeID == "" {
			return errors.New("missing required field in workout logs")
		}
	}
	for _, l := range t.DietLogs {
		if l.CreatedAt == "" || l.TraineeID == "" {
			return errors.New("missing required field in diet logs")
		}
	}
	return nil
}

// Result is one trainee's outcome: either a suggestion list or an error.
type Result struct {
	Suggestions []string
	Err         error
}

// Processor fans trainee batches out to the analyzers and the engine.
type Processor struct {
	engine *suggest.Engine
	log    zerolog.Logger
}

func New(engine *suggest.Engine, log zerolog.Logger) *Processor {
	return &Processor{engine: engine, log: log}
}

// Process analyzes every trainee in the batch concurrently and returns a
// result per trainee. It never returns an error itself: partial failure is
// recorded per trainee.
func (p *Processor) Process(ctx context.Context, batch map[string]TraineeLogs) map[string]Result {
	runID := uuid.NewString()
	log := p.log.With().Str("run_id", runID).Logger()

	ids := make([]string, 0, len(batch))
	for id := range batch {
		ids = append(ids, id)
	}

	results := make([]Result, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentTrainees)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			results[i] = p.processOne(ctx, log, id, batch[id])
			return nil
		})
	}
	_ = g.Wait() // goroutines only report through results

	out := make(map[string]Result, len(ids))
	for i, id := range ids {
		out[id] = results[i]
	}
	log.Info().Int("trainees", len(ids)).Msg("batch processed")
	return out
}

func (p *Processor) processOne(ctx context.Context, log zerolog.Logger, traineeID string, logs TraineeLogs) Result {
	if err := logs.Validate(); err != nil {
		return Result{Err: err}
	}

	var targets analysis.Targets
	if logs.Targets != nil {
		targets = *logs.Targets
	}

	combined, err := analysis.Analyze(logs.WorkoutLogs, logs.DietLogs, targets)
	if err != nil {
		log.Error().Err(err).Str("trainee_id", traineeID).Msg("analysis failed")
		return Result{Err: err}
	}

	sum := analysis.Summarize(combined, targets)
	return Result{Suggestions: p.engine.Generate(ctx, combined, sum)}
}
