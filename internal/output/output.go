// Package output prints styled progress messages for the cmakegen CLI.
//
// Styling uses lipgloss and is consistent across commands:
//
//   - Success: green bold
//   - Error: red bold
//   - Info: cyan
//   - Step: indented gray
//   - Verbose: gray, only when enabled
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	mu          sync.Mutex
	out         io.Writer = os.Stdout
	errOut      io.Writer = os.Stderr
	verboseMode bool
)

// SetVerbose enables or disables verbose output.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = v
}

// SetWriters redirects normal and error output. Nil leaves a stream unchanged.
// It returns a function restoring the previous writers.
func SetWriters(stdout, stderr io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()

	prevOut, prevErr := out, errOut
	if stdout != nil {
		out = stdout
	}
	if stderr != nil {
		errOut = stderr
	}
	return func() {
		mu.Lock()
		defer mu.Unlock()
		out, errOut = prevOut, prevErr
	}
}

func writeLine(w func() io.Writer, s string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(w(), s)
}

func stdout() io.Writer { return out }
func stderr() io.Writer { return errOut }

// Success prints a completed operation.
//
// Example:
//
//	output.Success("Wrote CMakeLists.txt")
func Success(msg string) {
	writeLine(stdout, successStyle.Render("✔ "+msg))
}

// Error prints a failure to stderr
func Error(msg string) {
	writeLine(stderr, errorStyle.Render("✘ "+msg))
}

// Info prints a status update
func Info(msg string) {
	writeLine(stdout, infoStyle.Render("ℹ "+msg))
}

// Step prints an indented sub-item
func Step(msg string) {
	writeLine(stdout, stepStyle.Render("   "+msg))
}

// Verbose prints msg only when verbose mode is enabled
func Verbose(msg string) {
	mu.Lock()
	enabled := verboseMode
	mu.Unlock()
	if enabled {
		writeLine(stdout, stepStyle.Render("· "+msg))
	}
}
