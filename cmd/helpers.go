package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/firefly-engineering/steamdirs/internal/app"
	"github.com/firefly-engineering/steamdirs/internal/config"
	"github.com/firefly-engineering/steamdirs/internal/errors"
	"github.com/firefly-engineering/steamdirs/internal/logging"
)

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)

// logOut is the open --log-file, nil when logging to stderr.
var logOut *os.File

// setupLogging configures the logger from the global flags.
func setupLogging() error {
	closeLogFile()

	if logFile == "" {
		logging.Setup(verbose, jsonOutput, logging.Stderr)
		return nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to open log file %s", logFile), err)
	}
	logOut = f
	logging.Setup(verbose, jsonOutput, f)
	return nil
}

func closeLogFile() {
	if logOut == nil {
		return
	}
	logOut.Close()
	logOut = nil
	logging.SetOutput(logging.Stderr)
}

// resolveConfigPath returns --config or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", errors.ConfigError("failed to locate config file", err)
	}
	return path, nil
}

// loadConfig reads the config file, applies flag overrides and installs
// the result in the default app.
func loadConfig() error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return errors.ConfigError("failed to load config", err)
	}

	if err := applyFlags(cfg); err != nil {
		return err
	}

	app.Default.Config = cfg
	return nil
}

// applyFlags overrides config values with the flags set on the command line.
func applyFlags(cfg *config.Config) error {
	if steamDir != "" {
		abs, err := filepath.Abs(steamDir)
		if err != nil {
			return errors.ConfigError(fmt.Sprintf("invalid --steam-dir %q", steamDir), err)
		}
		cfg.SteamDir = abs
	}
	if noSearch {
		cfg.Search = false
	}

	if err := cfg.Validate(); err != nil {
		return errors.ConfigError("invalid configuration", err)
	}
	return nil
}
