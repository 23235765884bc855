package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/cantor/internal/arith"
	"github.com/roach88/cantor/internal/budget"
	"github.com/roach88/cantor/internal/config"
	"github.com/roach88/cantor/internal/embed"
	"github.com/roach88/cantor/internal/expr"
	"github.com/roach88/cantor/internal/ordinal"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Calculation failure (bad expression, budget, domain)
	ExitCommandError = 2 // Command error (bad flags, missing files, database errors)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Error code constants, unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeParse       = "E101" // Expression syntax error
	ErrCodeUnsupported = "E102" // Result would exceed ε₀
	ErrCodeBudget      = "E103" // Operation budget exhausted
	ErrCodeDomain      = "E104" // Inverse input outside the embedding range
	ErrCodeRegression  = "E105" // Inverse recursion depth exceeded
	ErrCodeInvariant   = "E106" // Internal representation invariant violated
	ErrCodeConfig      = "E201" // Configuration invalid
)

// ErrorCode classifies an error from the calculation stack.
func ErrorCode(err error) string {
	var ve *config.ValidationError
	switch {
	case expr.IsParse(err):
		return ErrCodeParse
	case arith.IsUnsupported(err):
		return ErrCodeUnsupported
	case budget.IsExceeded(err):
		return ErrCodeBudget
	case embed.IsDomain(err):
		return ErrCodeDomain
	case embed.IsRegressionLimit(err):
		return ErrCodeRegression
	case ordinal.IsInvariant(err):
		return ErrCodeInvariant
	case errors.As(err, &ve):
		return ErrCodeConfig
	default:
		return ErrCodeGeneric
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // diagnostic output; defaults to Writer
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success outputs a successful result in the configured format.
// In text mode, data must implement fmt.Stringer or print usefully with %v.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format and returns an
// ExitError carrying the failure exit code.
func (f *OutputFormatter) Error(err error) error {
	code := ErrorCode(err)
	if f.Format == "json" {
		if encErr := json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: err.Error()},
		}); encErr != nil {
			return encErr
		}
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %v\n", code, err)
	}
	return WrapExitError(ExitFailure, code, err)
}

// VerboseLog outputs a message only if verbose mode is enabled. Goes to
// ErrWriter so JSON output stays parseable.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
