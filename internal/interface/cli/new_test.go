package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/runestone-dev/runestone/internal/validator"
)

func TestRunNew(t *testing.T) {
	fs := afero.NewMemMapFs()

	var out bytes.Buffer
	if err := runNew(&out, fs, "My Func", "go", "specs", false); err != nil {
		t.Fatalf("runNew: %v", err)
	}

	if !strings.Contains(out.String(), "Created specs/my-func.rune") {
		t.Errorf("output = %q", out.String())
	}

	content, err := afero.ReadFile(fs, "specs/my-func.rune")
	if err != nil {
		t.Fatalf("scaffold not written: %v", err)
	}
	if !strings.Contains(string(content), "language: go") {
		t.Errorf("content = %q", content)
	}

	// The scaffold must pass its own validation.
	report, err := validator.NewWithFs(fs, false).ValidateFile("specs/my-func.rune")
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !report.Valid {
		t.Errorf("scaffold invalid: %v", report.Errors)
	}
}

func TestRunNewRefusesOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "my-func.rune", []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := runNew(&out, fs, "My Func", "go", ".", false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("err = %v", err)
	}

	if err := runNew(&out, fs, "My Func", "go", ".", true); err != nil {
		t.Fatalf("force overwrite failed: %v", err)
	}
	content, _ := afero.ReadFile(fs, "my-func.rune")
	if string(content) == "existing" {
		t.Error("file not overwritten with --force")
	}
}

func TestRunNewUnsupportedLanguage(t *testing.T) {
	var out bytes.Buffer
	err := runNew(&out, afero.NewMemMapFs(), "f", "cobol", ".", false)
	if err == nil || !strings.Contains(err.Error(), "unsupported language: cobol") {
		t.Fatalf("err = %v", err)
	}
}
