package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
)

// GitignoreMatcher excludes paths matched by the project's root .gitignore.
// A nil matcher ignores nothing.
type GitignoreMatcher struct {
	gi *ignore.GitIgnore
}

// LoadGitignore compiles root/.gitignore from fs. A missing file yields a
// nil matcher and no error.
func LoadGitignore(fs afero.Fs, root string) (*GitignoreMatcher, error) {
	data, err := afero.ReadFile(fs, filepath.Join(root, ".gitignore"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return NewGitignoreMatcher(strings.Split(string(data), "\n")...), nil
}

// NewGitignoreMatcher compiles gitignore-style pattern lines
func NewGitignoreMatcher(lines ...string) *GitignoreMatcher {
	cleaned := make([]string, len(lines))
	for i, l := range lines {
		cleaned[i] = strings.TrimRight(l, "\r")
	}
	return &GitignoreMatcher{gi: ignore.CompileIgnoreLines(cleaned...)}
}

// Ignores reports whether the slash-separated relative path is excluded
func (m *GitignoreMatcher) Ignores(rel string, isDir bool) bool {
	if m == nil || m.gi == nil || rel == "" {
		return false
	}
	if isDir {
		return m.gi.MatchesPath(rel) || m.gi.MatchesPath(rel+"/")
	}
	return m.gi.MatchesPath(rel)
}
