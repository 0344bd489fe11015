package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRunParse(t *testing.T) {
	dir := t.TempDir()
	path := writeSpec(t, dir, "add.rune", goodSpec)

	var out bytes.Buffer
	if err := runParse(&out, path, false); err != nil {
		t.Fatalf("runParse: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Name:      add", "Language:  python", "Tests:     3 case(s)"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q: %q", want, text)
		}
	}
}

func TestRunParseStructuralErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeSpec(t, dir, "broken.rune", badSpec)

	var out bytes.Buffer
	err := runParse(&out, path, false)
	if err == nil {
		t.Fatal("expected error for structurally invalid spec")
	}
	if !strings.Contains(out.String(), "ERROR: BEHAVIOR must have at least one entry") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeSpec(t, dir, "add.rune", goodSpec)

	var out bytes.Buffer
	if err := runParse(&out, path, true); err != nil {
		t.Fatalf("runParse: %v", err)
	}

	var payload struct {
		Valid  bool           `json:"valid"`
		Errors []string       `json:"errors"`
		Spec   map[string]any `json:"spec"`
	}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !payload.Valid || len(payload.Errors) != 0 {
		t.Errorf("payload = %+v", payload)
	}
	if payload.Spec["RUNE"] != "add" {
		t.Errorf("spec.RUNE = %v", payload.Spec["RUNE"])
	}
}

func TestRunParseMissingFile(t *testing.T) {
	var out bytes.Buffer
	if err := runParse(&out, "missing.rune", false); err == nil {
		t.Fatal("expected error for missing file")
	}
}
