// Package app provides the application context for steamdirs.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Config   *config.Config          // Loaded configuration
//	    FS       system.FileSystem       // Discovery and folder checks
//	    Executor system.CommandExecutor  // Folder opener launches
//	    Terminal TerminalOpener          // Interactive screen
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New(app.WithConfig(cfg))
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithFS(mockFS),
//	    app.WithExecutor(mockExec),
//	    app.WithTerminal(fakeTerminal),
//	)
//
// # Available Options
//
//	WithConfig(cfg)       // Custom configuration
//	WithFS(fs)            // Custom file system
//	WithExecutor(exec)    // Custom command executor
//	WithTerminal(open)    // Custom terminal
package app
