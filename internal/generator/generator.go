package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/Ginoko/auto-generate-CMakeLists/internal/cmake"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/filesystem"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/language"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/logger"
)

var (
	// ErrProjectRootNotFound is returned by New when the root does not exist
	ErrProjectRootNotFound = errors.New("project root not found")

	// ErrOutputWrite is returned by Run when CMakeLists.txt cannot be written
	ErrOutputWrite = errors.New("failed to write output")
)

// DefaultProjectName is used when no name is given and none can be derived
// from the root path.
const DefaultProjectName = "my_project"

// Options configures a single generator run
type Options struct {
	Root       string               // Project root (default: current directory)
	Name       string               // Project name (default: last segment of Root)
	Language   language.Standard    // Required; build with language.New
	Output     string               // Output file (default: CMakeLists.txt in the current directory)
	IgnoreList []string             // Directory ignore substrings (default: filesystem.DefaultIgnoreList)
	Separator  filesystem.Separator // Path convention (default: filesystem.SlashSeparator)
	Gitignore  bool                 // Also honor the root .gitignore
	DryRun     bool                 // Print instead of writing
	Diff       bool                 // Print a diff against the existing output first

	Fs     afero.Fs      // Filesystem (default: afero.NewOsFs())
	Stdout io.Writer     // Where dry-run and diff output go (default: os.Stdout)
	Logger logger.Logger // Diagnostics (default: silent)
}

// Report summarises a completed run
type Report struct {
	Root    string
	Name    string
	Output  string
	Content string
	Result  *filesystem.Result
	Written bool // False for dry runs
}

// Generator owns the validated configuration for one run
type Generator struct {
	opts Options
	log  logger.Logger
}

// New validates opts and fills in defaults. It fails with
// ErrProjectRootNotFound when the root does not exist and with
// language.ErrInvalidLanguageConfig when no valid language was supplied.
func New(opts Options) (*Generator, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewSilent()
	}
	if opts.Output == "" {
		opts.Output = cmake.FileName
	}
	if opts.Separator == 0 {
		opts.Separator = filesystem.SlashSeparator
	}

	if opts.Language.IsZero() {
		return nil, fmt.Errorf("%w: language standard not set", language.ErrInvalidLanguageConfig)
	}

	root, err := resolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}
	ok, err := filesystem.Exists(opts.Fs, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrProjectRootNotFound, root, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectRootNotFound, root)
	}
	opts.Root = root

	if opts.Name == "" {
		opts.Name = ProjectNameFromRoot(root)
	}

	return &Generator{
		opts: opts,
		log:  opts.Logger.WithFields(logger.F("root", root)),
	}, nil
}

// Options returns the resolved options
func (g *Generator) Options() Options {
	return g.opts
}

// Run scans the tree, renders CMakeLists.txt and writes it, replacing any
// existing file. Unreadable subdirectories are skipped and listed in the
// report's Result.Diagnostics.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scanOpts := filesystem.ScanOptions{
		IgnoreList: g.opts.IgnoreList,
		Separator:  g.opts.Separator,
		Logger:     g.log,
	}
	if g.opts.Gitignore {
		matcher, err := filesystem.LoadGitignore(g.opts.Fs, g.opts.Root)
		if err != nil {
			return nil, fmt.Errorf("loading .gitignore: %w", err)
		}
		scanOpts.Gitignore = matcher
	}

	result, err := filesystem.NewScanner(g.opts.Fs, scanOpts).Scan(g.opts.Root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", g.opts.Root, err)
	}
	g.log.Info("scan complete",
		logger.F("sources", len(result.SourceFiles)),
		logger.F("include_dirs", len(result.IncludeDirs)),
		logger.F("skipped", len(result.Diagnostics)))

	content := cmake.Render(cmake.Project{Name: g.opts.Name, Language: g.opts.Language}, result)
	report := &Report{
		Root:    g.opts.Root,
		Name:    g.opts.Name,
		Output:  g.opts.Output,
		Content: content,
		Result:  result,
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if g.opts.Diff {
		existing, err := afero.ReadFile(g.opts.Fs, g.opts.Output)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading existing %s: %w", g.opts.Output, err)
		}
		fmt.Fprint(g.opts.Stdout, Diff(g.opts.Output, existing, []byte(content), isTerminal(g.opts.Stdout)))
	}

	if g.opts.DryRun {
		if !g.opts.Diff {
			fmt.Fprint(g.opts.Stdout, content)
		}
		return report, nil
	}

	op := &WriteFileOp{Fs: g.opts.Fs, Path: g.opts.Output, Content: []byte(content), Mode: 0644}
	if err := op.Validate(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := op.Execute(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	g.log.Debug(op.Description())

	report.Written = true
	return report, nil
}

// ProjectNameFromRoot returns the last path segment of root, accepting
// either separator, or DefaultProjectName when there is none.
func ProjectNameFromRoot(root string) string {
	trimmed := strings.TrimRight(root, `/\`)
	i := strings.LastIndexAny(trimmed, `/\`)
	if i < 0 {
		return DefaultProjectName
	}
	if name := trimmed[i+1:]; name != "" {
		return name
	}
	return DefaultProjectName
}

func resolveRoot(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("%w: cannot determine current directory: %v", ErrProjectRootNotFound, err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrProjectRootNotFound, root, err)
	}
	return abs, nil
}
