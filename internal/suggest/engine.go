// Package suggest derives a short ranked list of coaching suggestions from a
// trainee's combined analysis, optionally blended with suggestions from an
// external text-generation service.
package suggest

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/coachkit/coachkit/internal/analysis"
	"github.com/coachkit/coachkit/internal/prompt"
)

const (
	minSuggestions = 2
	maxSuggestions = 4
)

// GenerationError wraps a failure of the external suggestion source. It is
// recovered inside the engine (logged, output degrades to rule-based only)
// and never reaches the caller.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating external suggestions: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// TextGenerator produces free-form text for a prompt. Implementations are
// expected to be fallible; the engine degrades to rule-based output on any
// error. A nil generator means augmentation is unavailable.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Engine turns a combined analysis into 2-4 distinct suggestion strings.
type Engine struct {
	gen TextGenerator
	log zerolog.Logger
}

// NewEngine builds an engine. gen may be nil for rule-based-only operation.
func NewEngine(gen TextGenerator, log zerolog.Logger) *Engine {
	return &Engine{gen: gen, log: log}
}

// Generate evaluates the rule table over the qualitative summary, merges in
// external suggestions when a generator is available, and enforces the 2-4
// bound. Rule-based suggestions always precede external ones, and the output
// never contains exact-string duplicates.
func (e *Engine) Generate(ctx context.Context, combined analysis.CombinedAnalysis, sum analysis.Summary) []string {
	suggestions := evaluateRules(sum)

	if e.gen != nil {
		text, err := e.gen.GenerateText(ctx, prompt.Build(combined))
		if err != nil {
			e.log.Warn().Err(&GenerationError{Err: err}).Msg("external suggestion generation failed, keeping rule-based output")
		} else {
			suggestions = append(suggestions, ParseModelSuggestions(text)...)
		}
	}

	suggestions = dedupe(suggestions)

	// Pad up to the minimum with the fixed filler pair, then cut to the
	// maximum. Truncation runs last so the pain warning was already placed.
	for _, filler := range fillerTips {
		if len(suggestions) >= minSuggestions {
			break
		}
		if !contains(suggestions, filler) {
			suggestions = append(suggestions, filler)
		}
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func evaluateRules(sum analysis.Summary) []string {
	var out []string
	for _, r := range baseRules {
		if r.when(sum) {
			out = append(out, r.text)
		}
	}

	// The motivational message is gated on no warning being present. The
	// pain warning is appended after this gate but still counts against it.
	if len(out) < maxSuggestions && !hasWarning(out) && !painFlagged(sum) {
		out = append(out, tipMotivation)
	}
	if painFlagged(sum) {
		out = append(out, tipPainWarning)
	}
	return out
}

// ParseModelSuggestions extracts suggestion lines from a model response,
// keeping only lines that begin with a digit or a dash.
func ParseModelSuggestions(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] == '-' || unicode.IsDigit(rune(line[0])) {
			out = append(out, line)
		}
	}
	return out
}

func hasWarning(suggestions []string) bool {
	for _, s := range suggestions {
		if strings.Contains(s, warningTag) {
			return true
		}
	}
	return false
}

func dedupe(suggestions []string) []string {
	seen := make(map[string]struct{}, len(suggestions))
	out := suggestions[:0]
	for _, s := range suggestions {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func contains(suggestions []string, s string) bool {
	for _, have := range suggestions {
		if have == s {
			return true
		}
	}
	return false
}
