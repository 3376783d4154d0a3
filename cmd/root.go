package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/steamdirs/internal/app"
	"github.com/firefly-engineering/steamdirs/internal/catalog"
	"github.com/firefly-engineering/steamdirs/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
	steamDir   string
	logFile    string

	noSearch    bool
	proxiedOnly bool
)

var rootCmd = &cobra.Command{
	Use:   "steamdirs",
	Short: "Browse the folders of your Steam games",
	Long: `steamdirs lists the games of a local Steam installation and opens
their folders in the file manager.

Two kinds of entries are shown:
  - Installed games, opening their install directory
  - Non-Steam shortcuts run through a compatibility tool (Proton),
    opening their compatdata prefix

Keys: ↑/↓ move, Enter opens the folder, / searches, q quits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		return loadConfig()
	},
	RunE: runBrowse,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: $XDG_CONFIG_HOME/steamdirs/config.toml)")
	rootCmd.PersistentFlags().StringVar(&steamDir, "steam-dir", "", "Steam installation directory (default: autodetect)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file instead of stderr")

	rootCmd.Flags().BoolVar(&noSearch, "no-search", false, "Disable the / search mode")
	rootCmd.Flags().BoolVar(&proxiedOnly, "proxied-only", false, "Only show non-Steam shortcuts")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	cobra.OnFinalize(closeLogFile)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a := app.Default

	cat, err := a.Catalog()
	if err != nil {
		return err
	}

	if proxiedOnly {
		cat = cat.Filter(func(it catalog.Item) bool { return it.Proxied })
	}

	if cat.Empty() {
		logInfo("No games found.")
		return nil
	}

	st, err := a.NewBrowser(cat)
	if err != nil {
		return err
	}

	// Log lines would be drawn over the alternate screen.
	if logOut == nil {
		logging.SetOutput(io.Discard)
		defer logging.SetOutput(logging.Stderr)
	}

	return a.Run(st)
}
