package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The calculation itself failed (unsupported year, ...)
	ExitCommandError = 2 // Bad arguments, flags or config
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
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

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Response is the JSON envelope for command output.
type Response struct {
	Status string `json:"status"`         // "ok" or "error"
	Data   any    `json:"data,omitempty"` // success payload
	Error  string `json:"error,omitempty"`
}

// field is one labelled line of text output.
type field struct {
	label string
	value string
}

var labelStyle = lipgloss.NewStyle().Bold(true).Width(12)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// usageError marks err as a usage error and, for --format json, writes the
// error envelope. It runs before the config is resolved, so only the flag
// value of --format is consulted.
func (o *RootOptions) usageError(cmd *cobra.Command, err error) error {
	f := &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
	return f.Failure(WrapExitError(ExitCommandError, "usage", err))
}

// usageArgs wraps a positional argument validator so its errors exit 2.
func (o *RootOptions) usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return o.usageError(cmd, err)
		}
		return nil
	}
}

// Success writes data as a JSON envelope, or fields as aligned text.
func (f *OutputFormatter) Success(data any, fields ...field) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(Response{Status: "ok", Data: data})
	}

	var b strings.Builder
	for _, fl := range fields {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(fl.label), fl.value))
		b.WriteString("\n")
	}
	_, err := io.WriteString(f.Writer, b.String())
	return err
}

// Failure writes err in the configured format. Text errors are left to the
// caller, which prints them on stderr.
func (f *OutputFormatter) Failure(err error) error {
	if f.Format != "json" {
		return err
	}
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(Response{Status: "error", Error: err.Error()}); encErr != nil {
		return encErr
	}
	return err
}
