package generator

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/term"
)

// contextLines is how many unchanged lines are kept around each change
const contextLines = 3

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
)

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// Diff returns a line diff between the existing content of path and the
// newly rendered content. Unchanged runs are trimmed to contextLines around
// each change. With color set, lines are styled for a terminal.
func Diff(path string, existing, rendered []byte, color bool) string {
	if string(existing) == string(rendered) {
		return fmt.Sprintf("No changes to %s\n", path)
	}

	lines := diffLines(string(existing), string(rendered))

	style := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	oldLabel := path
	if existing == nil {
		oldLabel = "/dev/null"
	}
	b.WriteString(style(headerStyle, "--- "+oldLabel) + "\n")
	b.WriteString(style(headerStyle, "+++ "+path) + "\n")

	added, removed := 0, 0
	for i, l := range lines {
		switch l.op {
		case diffmatchpatch.DiffInsert:
			added++
			b.WriteString(style(addedStyle, "+"+l.text) + "\n")
		case diffmatchpatch.DiffDelete:
			removed++
			b.WriteString(style(removedStyle, "-"+l.text) + "\n")
		default:
			if nearChange(lines, i) {
				b.WriteString(" " + l.text + "\n")
			} else if i > 0 && nearChange(lines, i-1) {
				b.WriteString(style(hunkStyle, "@@") + "\n")
			}
		}
	}

	b.WriteString(style(headerStyle, fmt.Sprintf("%d additions, %d deletions", added, removed)) + "\n")
	return b.String()
}

// nearChange reports whether lines[i] is within contextLines of an
// inserted or deleted line.
func nearChange(lines []diffLine, i int) bool {
	lo, hi := max(0, i-contextLines), min(len(lines)-1, i+contextLines)
	for j := lo; j <= hi; j++ {
		if lines[j].op != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

func diffLines(a, b string) []diffLine {
	dmp := diffmatchpatch.New()
	ca, cb, table := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), table)

	var out []diffLine
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			out = append(out, diffLine{op: d.Type, text: line})
		}
	}
	return out
}

// isTerminal reports whether w is a terminal, used to decide on styling
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
