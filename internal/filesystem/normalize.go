package filesystem

import "strings"

// Separator is the path separator convention of the scanned tree
type Separator rune

const (
	SlashSeparator     Separator = '/'
	BackslashSeparator Separator = '\\'
)

// SeparatorFor returns the convention used on the given GOOS
func SeparatorFor(goos string) Separator {
	if goos == "windows" {
		return BackslashSeparator
	}
	return SlashSeparator
}

// String returns the separator as a one-character string
func (s Separator) String() string {
	return string(rune(s))
}

// Normalizer turns absolute paths into root-relative, slash-separated
// paths. The separator is fixed at construction.
type Normalizer struct {
	sep Separator
}

// NewNormalizer creates a Normalizer for the given separator convention
func NewNormalizer(sep Separator) Normalizer {
	return Normalizer{sep: sep}
}

// Separator returns the configured convention
func (n Normalizer) Separator() Separator {
	return n.sep
}

// ToRelative strips everything up to and including the first occurrence of
// root from absolutePath, trims leading and trailing separators and converts
// backslashes to forward slashes under the backslash convention.
// It returns "" when root does not occur in absolutePath or when
// absolutePath is the root itself.
func (n Normalizer) ToRelative(absolutePath, root string) string {
	if root == "" {
		return ""
	}
	_, rel, found := strings.Cut(absolutePath, root)
	if !found {
		return ""
	}

	cutset := "/"
	if n.sep != SlashSeparator {
		cutset += n.sep.String()
	}
	rel = strings.Trim(rel, cutset)

	if n.sep == BackslashSeparator {
		rel = strings.ReplaceAll(rel, `\`, "/")
	}
	return rel
}
