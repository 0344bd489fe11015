package validator

// FieldInfo records presence and shape details for one spec field.
// Count is set for present list-typed fields, Keys for a present
// COMPLEXITY mapping.
type FieldInfo struct {
	Present bool     `json:"present"`
	Count   *int     `json:"count,omitempty"`
	Keys    []string `json:"keys,omitempty"`
}

// Report is the diagnostic report produced for one spec document. Warnings
// and suggestions never affect Valid; only Errors do.
type Report struct {
	Valid        bool                 `json:"valid"`
	Errors       []string             `json:"errors"`
	Warnings     []string             `json:"warnings"`
	Suggestions  []string             `json:"suggestions"`
	FieldSummary map[string]FieldInfo `json:"field_summary"`
	Summary      string               `json:"summary,omitempty"`
	Filepath     string               `json:"filepath,omitempty"`
}

func newReport() *Report {
	return &Report{
		Errors:       []string{},
		Warnings:     []string{},
		Suggestions:  []string{},
		FieldSummary: map[string]FieldInfo{},
	}
}
