package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/firefly-engineering/steamdirs/internal/logging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.PollIntervalMS != DefaultPollIntervalMS {
		t.Errorf("PollIntervalMS = %d, want %d", cfg.PollIntervalMS, DefaultPollIntervalMS)
	}
	if !cfg.Search || !cfg.IncludeInstalled || !cfg.IncludeShortcuts {
		t.Errorf("Default() = %+v, want search and both sources enabled", cfg)
	}
	if cfg.PollInterval() != 100*time.Millisecond {
		t.Errorf("PollInterval() = %v, want 100ms", cfg.PollInterval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.PollIntervalMS != DefaultPollIntervalMS {
		t.Errorf("PollIntervalMS = %d, want default", cfg.PollIntervalMS)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
steam_dir = "/data/Steam"
opener = "nautilus --new-window"
poll_interval_ms = 250
search = false
include_installed = false

[colors.highlight]
fg = "0"
bg = "#ffcc00"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.SteamDir != "/data/Steam" {
		t.Errorf("SteamDir = %q, want %q", cfg.SteamDir, "/data/Steam")
	}
	if cfg.Opener != "nautilus --new-window" {
		t.Errorf("Opener = %q, want %q", cfg.Opener, "nautilus --new-window")
	}
	if cfg.PollInterval() != 250*time.Millisecond {
		t.Errorf("PollInterval() = %v, want 250ms", cfg.PollInterval())
	}
	if cfg.Search {
		t.Error("Search should be false")
	}
	if cfg.IncludeInstalled {
		t.Error("IncludeInstalled should be false")
	}
	if !cfg.IncludeShortcuts {
		t.Error("IncludeShortcuts should keep its default")
	}
	if cfg.Colors.Highlight.BG != "#ffcc00" {
		t.Errorf("Colors.Highlight.BG = %q, want %q", cfg.Colors.Highlight.BG, "#ffcc00")
	}
	if cfg.Colors.Status.FG != Default().Colors.Status.FG {
		t.Errorf("Colors.Status.FG = %q, want default", cfg.Colors.Status.FG)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "poll_interval_ms = = 3\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for invalid TOML")
	}
}

func TestLoad_WrongType(t *testing.T) {
	path := writeConfig(t, `search = "yes"`)

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for a string in a bool field")
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "poll_interval_ms = 5\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail validation")
	}
	if !strings.Contains(err.Error(), "poll_interval_ms") {
		t.Errorf("error = %q, should name poll_interval_ms", err)
	}
}

func TestLoad_UnknownKeysWarn(t *testing.T) {
	var buf bytes.Buffer
	logging.Setup(false, false, &buf)
	defer logging.Setup(false, false, nil)

	path := writeConfig(t, "serach = true\n[colours]\nx = 1\n")

	if _, err := Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "unknown config keys") || !strings.Contains(out, "serach") {
		t.Errorf("expected warning naming the unknown key, got %q", out)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"min poll", func(c *Config) { c.PollIntervalMS = MinPollIntervalMS }, false},
		{"max poll", func(c *Config) { c.PollIntervalMS = MaxPollIntervalMS }, false},
		{"poll too small", func(c *Config) { c.PollIntervalMS = MinPollIntervalMS - 1 }, true},
		{"poll too large", func(c *Config) { c.PollIntervalMS = MaxPollIntervalMS + 1 }, true},
		{"absolute steam dir", func(c *Config) { c.SteamDir = "/opt/steam" }, false},
		{"relative steam dir", func(c *Config) { c.SteamDir = "steam" }, true},
		{"shortcuts only", func(c *Config) { c.IncludeInstalled = false }, false},
		{"nothing included", func(c *Config) {
			c.IncludeInstalled = false
			c.IncludeShortcuts = false
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	t.Setenv("AppData", "/tmp/appdata")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	if filepath.Base(path) != FileName || filepath.Base(filepath.Dir(path)) != AppName {
		t.Errorf("DefaultPath() = %q, want .../%s/%s", path, AppName, FileName)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Opener = "thunar"

	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	path := writeConfig(t, buf.String())
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *cfg {
		t.Errorf("Load(Write(cfg)) = %+v, want %+v", got, cfg)
	}
}
