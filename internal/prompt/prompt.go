// Package prompt builds the text sent to the external suggestion service.
package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/coachkit/coachkit/internal/analysis"
)

// Build returns the augmentation prompt for one trainee's combined analysis.
// The full analysis record is embedded as JSON so the model sees the same
// aggregates the rule engine does.
func Build(c analysis.CombinedAnalysis) string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		data = []byte("{}")
	}

	return fmt.Sprintf(`You are a fitness coach reviewing a trainee's recent workout and diet logs.
Below is the aggregated analysis of those logs.

%s

Reply with 2-4 brief, actionable coaching suggestions for this trainee.
Write one suggestion per line and start every line with a dash.
Do not include any other text.`, data)
}
