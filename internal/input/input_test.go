package input

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"yes word uppercase", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"other word", "maybe\n", true, false},
		{"empty uses default yes", "\n", true, true},
		{"empty uses default no", "\n", false, false},
		{"eof uses default", "", true, true},
		{"answer without newline", "y", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.answer), &out, "Overwrite?", tt.defaultYes)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Overwrite?")
		})
	}
}

func TestConfirm_Hint(t *testing.T) {
	var out bytes.Buffer
	Confirm(strings.NewReader("\n"), &out, "Continue?", true)
	assert.Contains(t, out.String(), "[Y/n]")

	out.Reset()
	Confirm(strings.NewReader("\n"), &out, "Continue?", false)
	assert.Contains(t, out.String(), "[y/N]")
}

func TestInteractive_NonTerminal(t *testing.T) {
	assert.False(t, Interactive(strings.NewReader("y\n")))
	assert.False(t, Interactive(nil))
}
