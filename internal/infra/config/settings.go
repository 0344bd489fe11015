// Package config loads runestone settings from setting.json with
// field-wise defaults applied for anything absent.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runestone-dev/runestone/internal/app/config"
)

// RawSettings mirrors the structure of setting.json. Pointer fields
// distinguish "absent" from zero values so defaults only fill real gaps.
type RawSettings struct {
	Home        *string `json:"home"`
	SpecDir     *string `json:"spec_dir"`
	Strict      *bool   `json:"strict"`
	StderrLevel *string `json:"stderr_level"`
}

// LoadSettings loads configuration from baseDir/setting.json.
// Priority: setting.json > defaults.
func LoadSettings(baseDir string) (*config.AppConfig, error) {
	settings := &RawSettings{}
	configSource := "default"
	settingPath := ""

	jsonPath := filepath.Join(baseDir, "setting.json")
	if data, err := os.ReadFile(jsonPath); err == nil {
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", jsonPath, err)
		}
		configSource = "json"
		settingPath = jsonPath
	}

	applyDefaults(settings)

	return config.NewAppConfig(
		*settings.Home,
		*settings.SpecDir,
		*settings.Strict,
		*settings.StderrLevel,
		configSource,
		settingPath,
	), nil
}

func applyDefaults(settings *RawSettings) {
	if settings.Home == nil {
		v := ".runestone"
		settings.Home = &v
	}
	if settings.SpecDir == nil {
		v := "specs"
		settings.SpecDir = &v
	}
	if settings.Strict == nil {
		v := false
		settings.Strict = &v
	}
	if settings.StderrLevel == nil {
		v := "warn"
		settings.StderrLevel = &v
	}
}

// CreateDefaultSettings renders a default setting.json payload.
func CreateDefaultSettings() []byte {
	settings := &RawSettings{}
	applyDefaults(settings)

	data, _ := json.MarshalIndent(settings, "", "  ")
	return data
}
