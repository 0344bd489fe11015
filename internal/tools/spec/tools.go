// Package spec exposes spec parsing, validation, and listing as MCP tools.
package spec

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/runestone-dev/runestone/internal/parser"
	runespec "github.com/runestone-dev/runestone/internal/spec"
	"github.com/runestone-dev/runestone/internal/tools"
	"github.com/runestone-dev/runestone/internal/validator"
)

// GetTools returns the spec tool set over the given filesystem.
func GetTools(fs afero.Fs) []tools.Tool {
	return []tools.Tool{
		&ParseTool{fs: fs},
		&ValidateTool{fs: fs},
		&ListTool{fs: fs},
	}
}

type ParseTool struct {
	fs afero.Fs
}

func (t *ParseTool) Name() string {
	return "parse_rune_spec"
}

func (t *ParseTool) Description() string {
	return "Parse a .rune specification file and return its structured form"
}

func (t *ParseTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"filepath": {
				"type": "string",
				"description": "Path to the .rune file"
			}
		},
		"required": ["filepath"]
	}`)
}

func (t *ParseTool) Execute(input json.RawMessage) (any, error) {
	var req struct {
		Filepath string `json:"filepath"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	if filepath.Ext(req.Filepath) != runespec.Extension {
		return nil, fmt.Errorf("not a %s file: %s", runespec.Extension, req.Filepath)
	}

	p := parser.NewWithFs(t.fs)
	s, err := p.ParseFile(req.Filepath)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"spec":     s.ToMap(),
		"name":     s.Name(),
		"language": s.Language(),
		"is_async": s.IsAsync(),
		"tests":    s.TestCount(),
	}, nil
}

type ValidateTool struct {
	fs afero.Fs
}

func (t *ValidateTool) Name() string {
	return "validate_rune_spec"
}

func (t *ValidateTool) Description() string {
	return "Validate a .rune specification file and return a quality report"
}

func (t *ValidateTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"filepath": {
				"type": "string",
				"description": "Path to the .rune file"
			},
			"strict": {
				"type": "boolean",
				"description": "Enable strict validation"
			}
		},
		"required": ["filepath"]
	}`)
}

func (t *ValidateTool) Execute(input json.RawMessage) (any, error) {
	var req struct {
		Filepath string `json:"filepath"`
		Strict   bool   `json:"strict"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	v := validator.NewWithFs(t.fs, req.Strict)
	report, err := v.ValidateFile(req.Filepath)
	if err != nil {
		return nil, err
	}
	return report, nil
}

type ListTool struct {
	fs afero.Fs
}

func (t *ListTool) Name() string {
	return "list_rune_specs"
}

func (t *ListTool) Description() string {
	return "List all .rune specification files under a directory"
}

func (t *ListTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"directory": {
				"type": "string",
				"description": "Directory to search recursively"
			}
		},
		"required": ["directory"]
	}`)
}

func (t *ListTool) Execute(input json.RawMessage) (any, error) {
	var req struct {
		Directory string `json:"directory"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	listings, err := ListSpecs(t.fs, req.Directory)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"specs": listings,
		"count": len(listings),
	}, nil
}
