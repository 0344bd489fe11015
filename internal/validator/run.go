package validator

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// RunSummary counts the outcomes of one validation pass.
type RunSummary struct {
	Files  int `json:"files"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// RunResult aggregates the reports of one validation pass over a file set.
// The ID makes individual passes traceable in logs; JSON output surfaces
// only the bare report list, never this envelope.
type RunResult struct {
	ID          string     `json:"id"`
	GeneratedAt string     `json:"generated_at"`
	Reports     []*Report  `json:"reports"`
	Summary     RunSummary `json:"summary"`
}

// NewRunResult wraps reports into a run envelope with a fresh ULID and
// UTC timestamp.
func NewRunResult(reports []*Report) *RunResult {
	result := &RunResult{
		ID:          ulid.Make().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Reports:     reports,
		Summary:     RunSummary{Files: len(reports)},
	}
	for _, r := range reports {
		if r.Valid {
			result.Summary.Passed++
		} else {
			result.Summary.Failed++
		}
	}
	return result
}
