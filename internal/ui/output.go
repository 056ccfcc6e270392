// Package ui writes user-facing output and asks interactive questions.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ErrNonInteractive is returned by prompts when input is disabled.
var ErrNonInteractive = errors.New("interactive input is disabled")

// UI provides user interface methods
type UI struct {
	out            io.Writer
	errOut         io.Writer
	nonInteractive bool

	colorInfo    *color.Color
	colorSuccess *color.Color
	colorWarning *color.Color
	colorError   *color.Color
	colorBold    *color.Color
}

// New creates a UI writing to stdout and stderr.
func New() *UI {
	return &UI{
		out:          os.Stdout,
		errOut:       os.Stderr,
		colorInfo:    color.New(color.FgBlue),
		colorSuccess: color.New(color.FgGreen),
		colorWarning: color.New(color.FgYellow),
		colorError:   color.New(color.FgRed),
		colorBold:    color.New(color.Bold),
	}
}

// NewWithWriter creates a UI that sends all output to w (useful for testing).
// Prompts are disabled.
func NewWithWriter(w io.Writer) *UI {
	u := New()
	u.out = w
	u.errOut = w
	u.nonInteractive = true
	return u
}

// NewWithWriters creates a UI with separate output and diagnostic writers.
func NewWithWriters(out, errOut io.Writer) *UI {
	u := New()
	u.out = out
	u.errOut = errOut
	return u
}

// SetNonInteractive enables or disables non-interactive mode
func (u *UI) SetNonInteractive(enabled bool) {
	u.nonInteractive = enabled
}

// Writer returns the primary output writer.
func (u *UI) Writer() io.Writer { return u.out }

// ErrWriter returns the diagnostic writer.
func (u *UI) ErrWriter() io.Writer { return u.errOut }

// Log prints msg as a plain line on the primary output.
func (u *UI) Log(msg string) {
	fmt.Fprintln(u.out, msg)
}

// Logf prints a formatted plain line.
func (u *UI) Logf(format string, args ...interface{}) {
	u.Log(fmt.Sprintf(format, args...))
}

// Info prints an info message
func (u *UI) Info(msg string) {
	u.colorInfo.Fprintf(u.out, "%s\n", msg)
}

// Infof prints a formatted info message
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message
func (u *UI) Success(msg string) {
	u.colorSuccess.Fprintf(u.out, "%s\n", msg)
}

// Successf prints a formatted success message
func (u *UI) Successf(format string, args ...interface{}) {
	u.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func (u *UI) Warning(msg string) {
	u.colorWarning.Fprintf(u.errOut, "Warning: %s\n", msg)
}

// Warningf prints a formatted warning message
func (u *UI) Warningf(format string, args ...interface{}) {
	u.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message
func (u *UI) Error(msg string) {
	u.colorError.Fprintf(u.errOut, "Error: %s\n", msg)
}

// Errorf prints a formatted error message
func (u *UI) Errorf(format string, args ...interface{}) {
	u.Error(fmt.Sprintf(format, args...))
}

// Bold prints bold text
func (u *UI) Bold(msg string) {
	u.colorBold.Fprintln(u.out, msg)
}
