// Package errors provides typed errors with exit codes for steamdirs.
//
// # Error Types
//
// AppError is the base error type that wraps an error with an exit code:
//
//	type AppError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess      = 0  // Normal exit, including an empty game list
//	ExitGeneralError = 1  // General/unknown errors
//	ExitDiscovery    = 2  // Steam could not be located or enumerated
//	ExitTerminal     = 3  // Terminal setup or teardown failed
//	ExitConfigError  = 4  // Configuration error
//	ExitRender       = 5  // Drawing a frame failed
//	ExitInput        = 6  // Reading input failed
//
// # Error Constructors
//
//	errors.SteamNotFound(candidates)
//	errors.DiscoveryError("failed to read app manifest", err)
//	errors.TerminalError("stdin is not a terminal", nil)
//	errors.RenderError(err)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
