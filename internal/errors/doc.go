// Package errors provides typed errors with exit codes for lan-address-gen.
//
// # Error Types
//
// AppError wraps an error with an exit code:
//
//	type AppError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess        = 0 // Success
//	ExitGeneralError   = 1 // General errors, including a missing input string
//	ExitInvalidPattern = 2 // Address pattern rejected
//	ExitConfigError    = 3 // Configuration file or flag error
//	ExitExhausted      = 4 // --max-attempts reached without a free address
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
