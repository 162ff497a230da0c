package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_HasExpectedValues(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Module.Name != "i3" {
		t.Errorf("DefaultConfig().Module.Name = %q, want %q", cfg.Module.Name, "i3")
	}
	if cfg.Module.Format != "<label-state> <label-mode>" {
		t.Errorf("DefaultConfig().Module.Format = %q, want %q", cfg.Module.Format, "<label-state> <label-mode>")
	}
	if !cfg.Module.EnableClick || !cfg.Module.EnableScroll || !cfg.Module.ReverseScroll || !cfg.Module.WrappingScroll {
		t.Errorf("DefaultConfig().Module click/scroll flags = %+v, want all true", cfg.Module)
	}
	if cfg.Module.IndexSort || cfg.Module.PinWorkspaces || cfg.Module.ShowUrgent || cfg.Module.StripWsnumbers || cfg.Module.FuzzyMatch {
		t.Errorf("DefaultConfig().Module optional flags = %+v, want all false", cfg.Module)
	}
	if cfg.Module.WorkspacesMaxCount != -1 || cfg.Module.WorkspacesMaxWidth != -1 {
		t.Errorf("DefaultConfig() budgets = (%d, %d), want (-1, -1)", cfg.Module.WorkspacesMaxCount, cfg.Module.WorkspacesMaxWidth)
	}
	if cfg.Labels.Focused != "%icon% %name%" {
		t.Errorf("DefaultConfig().Labels.Focused = %q, want %q", cfg.Labels.Focused, "%icon% %name%")
	}
	if cfg.Labels.Mode != "%mode%" {
		t.Errorf("DefaultConfig().Labels.Mode = %q, want %q", cfg.Labels.Mode, "%mode%")
	}
	if cfg.Log.MaxSizeMB != 5 || cfg.Log.MaxBackups != 3 {
		t.Errorf("DefaultConfig().Log = %+v, want size 5 backups 3", cfg.Log)
	}
	if cfg.Output.Command != "wsstrip" {
		t.Errorf("DefaultConfig().Output.Command = %q, want %q", cfg.Output.Command, "wsstrip")
	}
}

func TestLabelsConfig_ForState(t *testing.T) {
	labels := LabelsConfig{
		Focused:       "F",
		Unfocused:     "U",
		Visible:       "V",
		Urgent:        "!",
		InactiveGroup: "I",
		Ellipsis:      "E",
	}

	tests := []struct {
		state string
		want  string
	}{
		{"focused", "F"},
		{"unfocused", "U"},
		{"visible", "V"},
		{"urgent", "!"},
		{"inactive_group", "I"},
		{"ellipsis", "E"},
		{"none", ""},
	}

	for _, tt := range tests {
		if got := labels.ForState(tt.state); got != tt.want {
			t.Errorf("ForState(%q) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestLoadFromPath_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `bar:
  monitor: DP-1
module:
  pin_workspaces: true
  workspaces_max_count: 5
labels:
  focused: "[%name%]"
icons:
  default: "*"
  ws:
    - "web;W"
    - "mail;M"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}

	if cfg.Bar.Monitor != "DP-1" {
		t.Errorf("Bar.Monitor = %q, want %q", cfg.Bar.Monitor, "DP-1")
	}
	if !cfg.Module.PinWorkspaces {
		t.Error("Module.PinWorkspaces = false, want true")
	}
	if cfg.Module.WorkspacesMaxCount != 5 {
		t.Errorf("Module.WorkspacesMaxCount = %d, want 5", cfg.Module.WorkspacesMaxCount)
	}
	if cfg.Module.WorkspacesMaxWidth != -1 {
		t.Errorf("Module.WorkspacesMaxWidth = %d, want default -1", cfg.Module.WorkspacesMaxWidth)
	}
	if !cfg.Module.EnableClick {
		t.Error("Module.EnableClick = false, want default true")
	}
	if cfg.Labels.Focused != "[%name%]" {
		t.Errorf("Labels.Focused = %q, want %q", cfg.Labels.Focused, "[%name%]")
	}
	if cfg.Labels.Unfocused != "%icon% %name%" {
		t.Errorf("Labels.Unfocused = %q, want default", cfg.Labels.Unfocused)
	}
	if len(cfg.Icons.Ws) != 2 || cfg.Icons.Ws[1] != "mail;M" {
		t.Errorf("Icons.Ws = %v, want [web;W mail;M]", cfg.Icons.Ws)
	}
	if cfg.ConfigPath() != configPath {
		t.Errorf("ConfigPath() = %q, want %q", cfg.ConfigPath(), configPath)
	}
}

func TestLoadFromPath_EnvOverride(t *testing.T) {
	t.Setenv("WSSTRIP_BAR_MONITOR", "HDMI-1")
	t.Setenv("WSSTRIP_MODULE_WORKSPACES_MAX_WIDTH", "40")

	cfg, err := LoadFromPath("")
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.Bar.Monitor != "HDMI-1" {
		t.Errorf("Bar.Monitor = %q, want %q", cfg.Bar.Monitor, "HDMI-1")
	}
	if cfg.Module.WorkspacesMaxWidth != 40 {
		t.Errorf("Module.WorkspacesMaxWidth = %d, want 40", cfg.Module.WorkspacesMaxWidth)
	}
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("module: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFromPath(configPath); err == nil {
		t.Error("LoadFromPath() expected error for invalid YAML")
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("WSSTRIP_CONFIG", "")
	t.Chdir(t.TempDir())

	if _, err := FindConfigFile(); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindConfigFile() error = %v, want ErrNotFound", err)
	}

	userPath := filepath.Join(dir, "wsstrip", "config.yaml")
	if err := DefaultConfig().Save(userPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got, err := FindConfigFile(); err != nil || got != userPath {
		t.Errorf("FindConfigFile() = (%q, %v), want %q", got, err, userPath)
	}

	if err := os.WriteFile(".wsstrip.yaml", []byte("bar:\n  monitor: DP-2\n"), 0644); err != nil {
		t.Fatalf("failed to write local config: %v", err)
	}
	if got, _ := FindConfigFile(); got != ".wsstrip.yaml" {
		t.Errorf("FindConfigFile() = %q, want local .wsstrip.yaml first", got)
	}

	explicit := filepath.Join(dir, "explicit.yaml")
	if err := DefaultConfig().Save(explicit); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	t.Setenv("WSSTRIP_CONFIG", explicit)
	if got, _ := FindConfigFile(); got != explicit {
		t.Errorf("FindConfigFile() = %q, want $WSSTRIP_CONFIG %q", got, explicit)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("WSSTRIP_CONFIG", "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ConfigPath() != "" {
		t.Errorf("ConfigPath() = %q, want empty", cfg.ConfigPath())
	}
	if cfg.Module.Name != "i3" {
		t.Errorf("Module.Name = %q, want default", cfg.Module.Name)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Bar.Monitor = "eDP-1"
	cfg.Icons.Ws = []string{"term;T"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.Bar.Monitor != "eDP-1" || len(loaded.Icons.Ws) != 1 {
		t.Errorf("LoadFromPath() after Save() = %+v", loaded)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "wsname_maxlen") {
		t.Error("Save() wrote the deprecated wsname_maxlen key")
	}
}

func TestDeprecations(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Deprecations(); len(got) != 0 {
		t.Errorf("Deprecations() = %v, want none", got)
	}

	cfg.Module.WsnameMaxlen = 8
	got := cfg.Deprecations()
	if len(got) != 1 || !strings.Contains(got[0], "%name:8:8%") {
		t.Errorf("Deprecations() = %v, want a hint mentioning %%name:8:8%%", got)
	}
}
