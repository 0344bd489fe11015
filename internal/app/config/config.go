// Package config defines the application configuration consumed by the
// CLI commands.
package config

// Config is the read-only view commands work against.
type Config interface {
	// Home is the runestone settings directory.
	Home() string
	// SpecDir is the default directory scanned for spec files.
	SpecDir() string
	// Strict reports whether strict validation is on by default.
	Strict() bool
	// StderrLevel is the minimum level for stderr logging.
	StderrLevel() string
	// ConfigSource names where the configuration came from ("json" or
	// "default").
	ConfigSource() string
	// SettingPath is the path of the loaded setting.json, if any.
	SettingPath() string
}

// AppConfig is the concrete configuration built by the settings loader.
type AppConfig struct {
	home         string
	specDir      string
	strict       bool
	stderrLevel  string
	configSource string
	settingPath  string
}

// NewAppConfig assembles an AppConfig from resolved settings.
func NewAppConfig(home, specDir string, strict bool, stderrLevel, configSource, settingPath string) *AppConfig {
	return &AppConfig{
		home:         home,
		specDir:      specDir,
		strict:       strict,
		stderrLevel:  stderrLevel,
		configSource: configSource,
		settingPath:  settingPath,
	}
}

func (c *AppConfig) Home() string         { return c.home }
func (c *AppConfig) SpecDir() string      { return c.specDir }
func (c *AppConfig) Strict() bool         { return c.strict }
func (c *AppConfig) StderrLevel() string  { return c.stderrLevel }
func (c *AppConfig) ConfigSource() string { return c.configSource }
func (c *AppConfig) SettingPath() string  { return c.settingPath }
