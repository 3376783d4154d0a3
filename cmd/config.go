package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/steamdirs/internal/app"
	"github.com/firefly-engineering/steamdirs/internal/config"
	"github.com/firefly-engineering/steamdirs/internal/errors"
)

var configShowPath bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Config prints the configuration in effect after the config file and
command-line flags are applied, in the config file's TOML format.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.Flags().BoolVar(&configShowPath, "path", false, "Only print the config file path")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configShowPath {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	return config.Write(cmd.OutOrStdout(), app.Default.Config)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigError("failed to create config directory", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if os.IsExist(err) {
		return errors.ValidationError(fmt.Sprintf("config file already exists: %s", path))
	}
	if err != nil {
		return errors.ConfigError("failed to create config file", err)
	}
	defer f.Close()

	if err := config.Write(f, config.Default()); err != nil {
		return errors.ConfigError("failed to write config file", err)
	}

	logSuccess("Wrote %s", path)
	return nil
}
