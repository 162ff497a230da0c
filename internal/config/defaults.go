package config

import "github.com/spf13/viper"

const defaultStateLabel = "%icon% %name%"

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Bar: BarConfig{
			Monitor: "",
		},
		Module: ModuleConfig{
			Name:               "i3",
			Format:             "<label-state> <label-mode>",
			EnableClick:        true,
			EnableScroll:       true,
			ReverseScroll:      true,
			WrappingScroll:     true,
			WorkspacesMaxCount: -1,
			WorkspacesMaxWidth: -1,
		},
		Labels: LabelsConfig{
			Focused:       defaultStateLabel,
			Unfocused:     defaultStateLabel,
			Visible:       defaultStateLabel,
			Urgent:        defaultStateLabel,
			InactiveGroup: defaultStateLabel,
			Ellipsis:      defaultStateLabel,
			Mode:          "%mode%",
			Separator:     "",
		},
		Icons: IconsConfig{
			Default: "",
			Ws:      []string{},
		},
		Log: LogConfig{
			File:       "",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
		Output: OutputConfig{
			Command: "wsstrip",
		},
	}
}

// setDefaults registers every key with viper so file values and
// WSSTRIP_* environment variables merge over them.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("bar.monitor", d.Bar.Monitor)

	v.SetDefault("module.name", d.Module.Name)
	v.SetDefault("module.format", d.Module.Format)
	v.SetDefault("module.enable_click", d.Module.EnableClick)
	v.SetDefault("module.enable_scroll", d.Module.EnableScroll)
	v.SetDefault("module.reverse_scroll", d.Module.ReverseScroll)
	v.SetDefault("module.wrapping_scroll", d.Module.WrappingScroll)
	v.SetDefault("module.index_sort", d.Module.IndexSort)
	v.SetDefault("module.pin_workspaces", d.Module.PinWorkspaces)
	v.SetDefault("module.show_urgent", d.Module.ShowUrgent)
	v.SetDefault("module.strip_wsnumbers", d.Module.StripWsnumbers)
	v.SetDefault("module.fuzzy_match", d.Module.FuzzyMatch)
	v.SetDefault("module.workspaces_max_count", d.Module.WorkspacesMaxCount)
	v.SetDefault("module.workspaces_max_width", d.Module.WorkspacesMaxWidth)
	v.SetDefault("module.wsname_maxlen", d.Module.WsnameMaxlen)

	v.SetDefault("labels.focused", d.Labels.Focused)
	v.SetDefault("labels.unfocused", d.Labels.Unfocused)
	v.SetDefault("labels.visible", d.Labels.Visible)
	v.SetDefault("labels.urgent", d.Labels.Urgent)
	v.SetDefault("labels.inactive_group", d.Labels.InactiveGroup)
	v.SetDefault("labels.ellipsis", d.Labels.Ellipsis)
	v.SetDefault("labels.mode", d.Labels.Mode)
	v.SetDefault("labels.separator", d.Labels.Separator)

	v.SetDefault("icons.default", d.Icons.Default)
	v.SetDefault("icons.ws", d.Icons.Ws)

	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)

	v.SetDefault("output.command", d.Output.Command)
}
