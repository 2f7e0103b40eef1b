// Package input provides interactive terminal prompts.
//
// Prompts are only meaningful on a terminal; callers check Interactive
// first and fall back to flags otherwise.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Interactive reports whether r is a terminal
func Interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Confirm asks a yes/no question on out and reads the answer from in.
// Returns true if the user answers yes (y/Y/yes/YES), false otherwise.
// An empty answer or a read error returns defaultYes.
//
// Example:
//
//	if input.Confirm(os.Stdin, os.Stdout, "Overwrite cmakegen.yml?", false) {
//	    // User said yes
//	}
//	// Displays: Overwrite cmakegen.yml? [y/N]: _
func Confirm(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Fprint(out, promptStyle.Render(message)+" "+hintStyle.Render(hint)+": ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return defaultYes
	}

	answer = strings.TrimSpace(strings.ToLower(answer))
	if answer == "" {
		return defaultYes
	}
	return answer == "y" || answer == "yes"
}
