// Package config handles loading and managing wsstrip configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. WSSTRIP_BAR_MONITOR.
const EnvPrefix = "WSSTRIP"

// ErrNotFound is returned by FindConfigFile when no config file exists.
var ErrNotFound = errors.New("config file not found")

// Config represents the wsstrip configuration file.
type Config struct {
	Bar    BarConfig    `yaml:"bar" mapstructure:"bar"`
	Module ModuleConfig `yaml:"module" mapstructure:"module"`
	Labels LabelsConfig `yaml:"labels" mapstructure:"labels"`
	Icons  IconsConfig  `yaml:"icons" mapstructure:"icons"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`

	// Internal: path to the config file, empty when running on defaults
	configPath string
}

// BarConfig describes the bar the strip is shown on.
type BarConfig struct {
	Monitor string `yaml:"monitor" mapstructure:"monitor"` // i3 output name, e.g. DP-1
}

// ModuleConfig holds the workspace module options.
type ModuleConfig struct {
	Name               string `yaml:"name" mapstructure:"name"`
	Format             string `yaml:"format" mapstructure:"format"`
	EnableClick        bool   `yaml:"enable_click" mapstructure:"enable_click"`
	EnableScroll       bool   `yaml:"enable_scroll" mapstructure:"enable_scroll"`
	ReverseScroll      bool   `yaml:"reverse_scroll" mapstructure:"reverse_scroll"`
	WrappingScroll     bool   `yaml:"wrapping_scroll" mapstructure:"wrapping_scroll"`
	IndexSort          bool   `yaml:"index_sort" mapstructure:"index_sort"`
	PinWorkspaces      bool   `yaml:"pin_workspaces" mapstructure:"pin_workspaces"`
	ShowUrgent         bool   `yaml:"show_urgent" mapstructure:"show_urgent"`
	StripWsnumbers     bool   `yaml:"strip_wsnumbers" mapstructure:"strip_wsnumbers"`
	FuzzyMatch         bool   `yaml:"fuzzy_match" mapstructure:"fuzzy_match"`
	WorkspacesMaxCount int    `yaml:"workspaces_max_count" mapstructure:"workspaces_max_count"` // -1 = unlimited
	WorkspacesMaxWidth int    `yaml:"workspaces_max_width" mapstructure:"workspaces_max_width"` // -1 = unlimited

	// Deprecated: use a %name:min:max% token instead.
	WsnameMaxlen int `yaml:"wsname_maxlen,omitempty" mapstructure:"wsname_maxlen"`
}

// LabelsConfig holds the label templates per workspace state.
type LabelsConfig struct {
	Focused       string `yaml:"focused" mapstructure:"focused"`
	Unfocused     string `yaml:"unfocused" mapstructure:"unfocused"`
	Visible       string `yaml:"visible" mapstructure:"visible"`
	Urgent        string `yaml:"urgent" mapstructure:"urgent"`
	InactiveGroup string `yaml:"inactive_group" mapstructure:"inactive_group"`
	Ellipsis      string `yaml:"ellipsis" mapstructure:"ellipsis"`
	Mode          string `yaml:"mode" mapstructure:"mode"`
	Separator     string `yaml:"separator" mapstructure:"separator"`
}

// IconsConfig holds workspace icons as "name;icon" entries.
type IconsConfig struct {
	Default string   `yaml:"default" mapstructure:"default"`
	Ws      []string `yaml:"ws" mapstructure:"ws"`
}

// LogConfig controls where `run` writes its log.
type LogConfig struct {
	File       string `yaml:"file" mapstructure:"file"` // empty = stderr
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
}

// OutputConfig controls the emitted bar markup.
type OutputConfig struct {
	Command string `yaml:"command" mapstructure:"command"` // invoked by click/scroll actions
}

// ForState returns the label template configured for a state name as
// returned by workspace.State.String. Unknown names yield "".
func (l LabelsConfig) ForState(state string) string {
	switch state {
	case "focused":
		return l.Focused
	case "unfocused":
		return l.Unfocused
	case "visible":
		return l.Visible
	case "urgent":
		return l.Urgent
	case "inactive_group":
		return l.InactiveGroup
	case "ellipsis":
		return l.Ellipsis
	default:
		return ""
	}
}

// Load reads the config file at path, or the first one FindConfigFile
// locates when path is empty. Without a config file the defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		path = found
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific path, layered over
// the defaults and under WSSTRIP_* environment overrides. An empty path
// loads defaults and environment only.
func LoadFromPath(configPath string) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.configPath = configPath
	return &cfg, nil
}

// LoadOrDefault tries to load config, returns defaults if it cannot.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// FindConfigFile returns the first existing config file among
// $WSSTRIP_CONFIG, ./.wsstrip.yaml and the user config directory.
func FindConfigFile() (string, error) {
	for _, candidate := range searchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}

func searchPaths() []string {
	var paths []string
	if env := os.Getenv(EnvPrefix + "_CONFIG"); env != "" {
		paths = append(paths, env)
	}
	paths = append(paths, ".wsstrip.yaml", ".wsstrip.yml")
	if p := UserConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return paths
}

// UserConfigPath returns $XDG_CONFIG_HOME/wsstrip/config.yaml, falling
// back to ~/.config/wsstrip/config.yaml.
func UserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wsstrip", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wsstrip", "config.yaml")
}

// ConfigPath returns the path to the loaded config file.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Deprecations returns a warning for every deprecated option in use.
func (c *Config) Deprecations() []string {
	var warnings []string
	if c.Module.WsnameMaxlen > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"module.wsname_maxlen is deprecated, use a token like %%name:%d:%d%% in the state labels instead",
			c.Module.WsnameMaxlen, c.Module.WsnameMaxlen))
	}
	return warnings
}
