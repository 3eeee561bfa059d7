package analysis

import "fmt"

// ProcessingError reports a failure while aggregating a log batch. It wraps
// the underlying cause and names the offending entry when one is known.
type ProcessingError struct {
	Stage   string // "workout" or "diet"
	EntryID string // entry identifier, empty when not attributable
	Err     error
}

func (e *ProcessingError) Error() string {
	if e.EntryID != "" {
		return fmt.Sprintf("%s analysis failed for entry %s: %v", e.Stage, e.EntryID, e.Err)
	}
	return fmt.Sprintf("%s analysis failed: %v", e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }
