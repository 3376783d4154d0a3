package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/steamdirs/internal/logging"
)

const (
	// AppName names the configuration directory.
	AppName = "steamdirs"

	// FileName is the configuration file name inside the directory.
	FileName = "config.toml"

	DefaultPollIntervalMS = 100
	MinPollIntervalMS     = 10
	MaxPollIntervalMS     = 1000
)

// ColorPair is a foreground/background color pair.
type ColorPair struct {
	FG string `toml:"fg"`
	BG string `toml:"bg"`
}

// Colors holds the colors of the browser screen.
type Colors struct {
	Normal    ColorPair `toml:"normal"`
	Highlight ColorPair `toml:"highlight"`
	Border    ColorPair `toml:"border"`
	Status    ColorPair `toml:"status"`
}

// Config is the user configuration.
type Config struct {
	SteamDir         string `toml:"steam_dir"`
	Opener           string `toml:"opener"`
	PollIntervalMS   int    `toml:"poll_interval_ms"`
	Search           bool   `toml:"search"`
	IncludeInstalled bool   `toml:"include_installed"`
	IncludeShortcuts bool   `toml:"include_shortcuts"`
	Colors           Colors `toml:"colors"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PollIntervalMS:   DefaultPollIntervalMS,
		Search:           true,
		IncludeInstalled: true,
		IncludeShortcuts: true,
		Colors: Colors{
			Normal:    ColorPair{FG: "7"},
			Highlight: ColorPair{FG: "15", BG: "4"},
			Border:    ColorPair{FG: "8"},
			Status:    ColorPair{FG: "8"},
		},
	}
}

// PollInterval returns the input poll timeout.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if c.PollIntervalMS < MinPollIntervalMS || c.PollIntervalMS > MaxPollIntervalMS {
		return fmt.Errorf("poll_interval_ms must be between %d and %d (got %d)",
			MinPollIntervalMS, MaxPollIntervalMS, c.PollIntervalMS)
	}
	if c.SteamDir != "" && !filepath.IsAbs(c.SteamDir) {
		return fmt.Errorf("steam_dir must be an absolute path (got %q)", c.SteamDir)
	}
	if !c.IncludeInstalled && !c.IncludeShortcuts {
		return fmt.Errorf("include_installed and include_shortcuts cannot both be false")
	}
	return nil
}

// DefaultPath returns the path of the configuration file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find config directory: %w", err)
	}
	return filepath.Join(dir, AppName, FileName), nil
}

// Load reads the configuration file at path on top of the defaults. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logging.Warn("unknown config keys", "path", path, "keys", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logging.Debug("loaded config", "path", path)
	return cfg, nil
}

// Write encodes cfg as TOML.
func Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
