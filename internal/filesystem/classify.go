package filesystem

import "strings"

// DefaultIgnoreList holds the path substrings that exclude a directory
var DefaultIgnoreList = []string{".svn", ".idea", "cmake-build-debug"}

var codeExtensionList = []string{"c", "cc", "cpp", "cu", "h"}

var codeExtensions = func() map[string]struct{} {
	m := make(map[string]struct{}, len(codeExtensionList))
	for _, ext := range codeExtensionList {
		m[ext] = struct{}{}
	}
	return m
}()

// CodeExtensions returns the recognized source/header extensions, without
// dots. The returned slice is a copy.
func CodeExtensions() []string {
	return append([]string(nil), codeExtensionList...)
}

// IsCodeFile reports whether name has a recognized C/C++/CUDA extension.
// The extension is the lowercase text after the last dot; a name without a
// dot is never a code file.
func IsCodeFile(name string) bool {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return false
	}
	_, ok := codeExtensions[strings.ToLower(name[i+1:])]
	return ok
}

// IsIgnoredPath reports whether any ignore entry occurs as a substring of
// path. This is intentionally not a path-segment match.
func IsIgnoredPath(path string, ignoreList []string) bool {
	for _, entry := range ignoreList {
		if entry != "" && strings.Contains(path, entry) {
			return true
		}
	}
	return false
}
