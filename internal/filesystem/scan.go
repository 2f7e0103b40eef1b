package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Ginoko/auto-generate-CMakeLists/internal/logger"
)

// ErrSubtreeUnreadable marks a directory the scanner could not enter
var ErrSubtreeUnreadable = errors.New("subtree unreadable")

// Diagnostic records a recovered problem during a scan
type Diagnostic struct {
	Path string // Absolute path of the directory that was skipped
	Err  error  // Underlying error, wrapping ErrSubtreeUnreadable
}

// Error returns a formatted error message
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %v", d.Path, d.Err)
}

// Unwrap returns the underlying error
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Result holds what one scan pass found
type Result struct {
	IncludeDirs []string     // Relative directories containing code files, in visit order
	SourceFiles []string     // Relative code file paths, in visit order
	Diagnostics []Diagnostic // Subtrees skipped because they could not be read
}

// HasCode reports whether any code file was found
func (r *Result) HasCode() bool {
	return len(r.SourceFiles) > 0
}

// ScanOptions configures a Scanner
type ScanOptions struct {
	IgnoreList []string          // Path substrings that exclude a directory (default: DefaultIgnoreList)
	Separator  Separator         // Path convention for relative paths (default: SlashSeparator)
	Gitignore  *GitignoreMatcher // Optional extra exclusions
	Logger     logger.Logger     // Diagnostics sink (default: silent)
}

// Scanner walks a project tree on an afero filesystem
type Scanner struct {
	fs         afero.Fs
	ignoreList []string
	normalizer Normalizer
	gitignore  *GitignoreMatcher
	log        logger.Logger
}

// NewScanner creates a scanner reading from fs
func NewScanner(fs afero.Fs, opts ScanOptions) *Scanner {
	ignoreList := opts.IgnoreList
	if ignoreList == nil {
		ignoreList = DefaultIgnoreList
	}
	sep := opts.Separator
	if sep == 0 {
		sep = SlashSeparator
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewSilent()
	}

	return &Scanner{
		fs:         fs,
		ignoreList: append([]string(nil), ignoreList...),
		normalizer: NewNormalizer(sep),
		gitignore:  opts.Gitignore,
		log:        log,
	}
}

// Scan walks root and returns the code files and include directories found.
// An unreadable subdirectory is recorded as a Diagnostic and skipped; only
// an unreadable root is returned as an error.
func (s *Scanner) Scan(root string) (*Result, error) {
	root = filepath.Clean(root)

	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSubtreeUnreadable, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSubtreeUnreadable, root)
	}

	s.log.Debug("scanning", logger.F("root", root), logger.F("separator", s.normalizer.Separator()))

	result := &Result{
		IncludeDirs: []string{},
		SourceFiles: []string{},
	}

	if err := s.visit(root, root, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Scanner) visit(dir, root string, result *Result) error {
	if IsIgnoredPath(dir, s.ignoreList) {
		s.log.Debug("skipping ignored directory", logger.F("dir", dir))
		return nil
	}

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		wrapped := fmt.Errorf("%w: %w", ErrSubtreeUnreadable, err)
		if dir == root {
			return fmt.Errorf("reading project root %s: %w", root, wrapped)
		}
		s.log.Warn("skipping unreadable directory", logger.F("dir", dir), logger.F("error", err))
		result.Diagnostics = append(result.Diagnostics, Diagnostic{Path: dir, Err: wrapped})
		return nil
	}

	relRoot := s.normalizer.ToRelative(dir, root)

	var subdirs []string
	found := 0
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
			continue
		}
		if !IsCodeFile(entry.Name()) {
			continue
		}

		rel := entry.Name()
		if relRoot != "" {
			rel = relRoot + "/" + entry.Name()
		}
		if s.gitignore.Ignores(rel, false) {
			continue
		}

		result.SourceFiles = append(result.SourceFiles, rel)
		found++
	}

	if found > 0 && relRoot != "" {
		result.IncludeDirs = append(result.IncludeDirs, relRoot)
	}
	s.log.Debug("scanned directory", logger.F("dir", displayDir(relRoot)), logger.F("code_files", found))

	for _, name := range subdirs {
		child := filepath.Join(dir, name)
		if rel := s.normalizer.ToRelative(child, root); s.gitignore.Ignores(rel, true) {
			s.log.Debug("skipping gitignored directory", logger.F("dir", rel))
			continue
		}
		if err := s.visit(child, root, result); err != nil {
			return err
		}
	}

	return nil
}

func displayDir(rel string) string {
	if rel == "" {
		return "."
	}
	return rel
}

// Exists reports whether path exists on fs and is a directory
func Exists(fs afero.Fs, path string) (bool, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
