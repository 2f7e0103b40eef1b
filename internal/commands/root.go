package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmakegen "github.com/Ginoko/auto-generate-CMakeLists"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/config"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/filesystem"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/input"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/language"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/logger"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/output"
)

// createsConfig marks commands whose --config names a file they write,
// so it may not exist yet.
const createsConfig = "creates-config"

// isInteractive decides whether prompts may be shown
var isInteractive = input.Interactive

// app carries state shared by the commands of one CLI invocation
type app struct {
	v       *viper.Viper
	fs      afero.Fs
	cfgFile string
	verbose bool
	log     logger.Logger
}

// RootCmd creates and returns the root command for the cmakegen CLI.
// Running it without a subcommand is the same as `cmakegen generate`.
func RootCmd() *cobra.Command {
	a := &app{v: config.New(), fs: afero.NewOsFs(), log: logger.NewSilent()}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "cmakegen [root]",
		Short: "Generate a minimal CMakeLists.txt for a C/C++ project",
		Long: fmt.Sprintf(`cmakegen scans a C/C++ project and writes a CMakeLists.txt listing every
source file (%s), one include directory per folder that
holds code, and the selected language standard.

The output is always fully overwritten. Settings can also come from
CMAKEGEN_* environment variables or a cmakegen.yml in the working directory.

Examples:
  cmakegen
  cmakegen ./engine --language c++ --std 17
  cmakegen generate ./engine --name engine --dry-run
  cmakegen init --language c++ --std 20`, extensionList()),
		Version:       cmakegen.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetVerbose(a.verbose)
			a.log = logger.New(logger.LevelWarn, cmd.ErrOrStderr())

			if err := a.readConfig(cmd); err != nil {
				return err
			}

			level, err := config.LogLevel(a.v)
			if err != nil {
				return err
			}
			if a.verbose {
				level = logger.LevelDebug
			}
			a.log.SetLevel(level)
			return nil
		},
		RunE: a.runGenerate,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "Path to configuration file (default: ./"+config.FileName+" if present)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output for debugging (same as --log-level debug)")

	flags.StringP(config.KeyRoot, "r", defaults.Root, "Project root directory to scan")
	flags.StringP(config.KeyName, "n", "", "Project name (default: name of the root directory)")
	flags.StringP(config.KeyLanguage, "l", defaults.Language, "Language family: "+familyList())
	flags.StringP(config.KeyStd, "s", defaults.Std, "Language standard ("+standardList()+")")
	flags.StringP(config.KeyOutput, "o", defaults.Output, "Output file")
	flags.StringSlice(config.KeyIgnore, defaults.Ignore, "Path substrings that exclude a directory (replaces the defaults)")
	flags.Bool(config.KeyGitignore, defaults.Gitignore, "Also skip paths matched by the root .gitignore")
	flags.String(config.KeyPlatform, defaults.Platform, "Path separator convention: auto, windows or posix")
	flags.Bool(config.KeyDryRun, false, "Print the generated file instead of writing it")
	flags.Bool(config.KeyDiff, false, "Show a diff against the existing output before writing")
	flags.String(config.KeyLogLevel, defaults.LogLevel, "Diagnostic level: debug, info, warn, error or silent")

	for _, key := range []string{
		config.KeyRoot, config.KeyName, config.KeyLanguage, config.KeyStd, config.KeyOutput,
		config.KeyIgnore, config.KeyGitignore, config.KeyPlatform, config.KeyDryRun, config.KeyDiff,
		config.KeyLogLevel,
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	cmd.AddCommand(a.generateCmd())
	cmd.AddCommand(a.initCmd())

	return cmd
}

// readConfig merges the config file into a.v. A command that creates the
// file named by --config skips a file that does not exist yet.
func (a *app) readConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" && cmd.Annotations[createsConfig] != "" {
		exists, err := afero.Exists(a.fs, a.cfgFile)
		if err != nil {
			return fmt.Errorf("checking %s: %w", a.cfgFile, err)
		}
		if !exists {
			return nil
		}
	}
	return config.ReadFile(a.v, a.cfgFile)
}

func extensionList() string {
	exts := filesystem.CodeExtensions()
	for i, ext := range exts {
		exts[i] = "." + ext
	}
	return strings.Join(exts, " ")
}

func familyList() string {
	var names []string
	for _, f := range language.Families() {
		names = append(names, f.String())
	}
	return strings.Join(names, " or ")
}

func standardList() string {
	var parts []string
	for _, f := range language.Families() {
		parts = append(parts, f.String()+": "+strings.Join(language.AllowedVersions(f), " "))
	}
	return strings.Join(parts, ", ")
}
