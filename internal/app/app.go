// Package app provides the application context for steamdirs.
// It allows dependency injection for testing.
package app

import (
	"github.com/firefly-engineering/steamdirs/internal/browser"
	"github.com/firefly-engineering/steamdirs/internal/catalog"
	"github.com/firefly-engineering/steamdirs/internal/config"
	"github.com/firefly-engineering/steamdirs/internal/errors"
	"github.com/firefly-engineering/steamdirs/internal/logging"
	"github.com/firefly-engineering/steamdirs/internal/opener"
	"github.com/firefly-engineering/steamdirs/internal/steam"
	"github.com/firefly-engineering/steamdirs/internal/system"
	"github.com/firefly-engineering/steamdirs/internal/tui"
)

// TerminalOpener acquires the terminal the browser draws on.
type TerminalOpener func() (browser.Terminal, error)

// App holds the application dependencies
type App struct {
	// Config is the loaded configuration with flags applied
	Config *config.Config

	// FS is used for discovery and folder existence checks
	FS system.FileSystem

	// Executor launches the folder opener
	Executor system.CommandExecutor

	// Terminal opens the interactive screen. Nil means a real terminal.
	Terminal TerminalOpener
}

// Option is a function that configures the App
type Option func(*App)

// WithConfig sets the configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithFS sets a custom file system
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithTerminal sets a custom terminal opener
func WithTerminal(open TerminalOpener) Option {
	return func(a *App) {
		a.Terminal = open
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{
		Config:   config.Default(),
		FS:       system.DefaultFS(),
		Executor: system.DefaultExecutor(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// SteamRoot locates the Steam installation, honoring the configured
// steam_dir.
func (a *App) SteamRoot() (string, error) {
	return steam.Locate(a.FS, a.Config.SteamDir)
}

// Catalog locates Steam and discovers its games.
func (a *App) Catalog() (*catalog.Catalog, error) {
	root, err := a.SteamRoot()
	if err != nil {
		return nil, err
	}

	opts := steam.Options{
		Installed: a.Config.IncludeInstalled,
		Shortcuts: a.Config.IncludeShortcuts,
	}
	cat, err := steam.Discover(a.FS, root, opts)
	if err != nil {
		return nil, err
	}

	logging.Debug("catalog built", "steam", root, "items", cat.Len())
	return cat, nil
}

// NewBrowser prepares the browser state for cat. It resolves the folder
// opener, so problems with it are logged before the terminal is taken over.
func (a *App) NewBrowser(cat *catalog.Catalog) (*browser.State, error) {
	op, err := opener.New(a.Config.Opener, a.Executor)
	if err != nil {
		return nil, errors.ConfigError("invalid opener", err)
	}
	logging.Debug("folder opener", "command", op.String())

	return browser.New(cat,
		browser.WithFS(a.FS),
		browser.WithOpener(op),
		browser.WithSearch(a.Config.Search),
	), nil
}

// Run runs the interactive browser until the user quits.
func (a *App) Run(st *browser.State) error {
	return browser.Run(st, a.terminal(), a.Config.PollInterval())
}

func (a *App) terminal() func() (browser.Terminal, error) {
	if a.Terminal != nil {
		return a.Terminal
	}
	return tui.Opener(tui.NewStyles(a.Config.Colors))
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
