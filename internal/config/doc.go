// Package config loads the steamdirs configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/steamdirs/config.toml
// (os.UserConfigDir elsewhere). A missing file means defaults:
//
//	steam_dir         = ""      # autodetect
//	opener            = ""      # xdg-open / open / explorer
//	poll_interval_ms  = 100
//	search            = true
//	include_installed = true
//	include_shortcuts = true
//
//	[colors.highlight]
//	fg = "15"
//	bg = "4"
//
// Colors are lipgloss color strings: ANSI numbers ("4") or hex ("#3b82f6").
// Unknown keys are reported as warnings, not errors. Load validates the
// result; command-line flags are applied by the caller afterwards.
package config
