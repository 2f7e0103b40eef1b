package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ginoko/auto-generate-CMakeLists/internal/config"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/filesystem"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/generator"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/output"
)

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [root]",
		Short: "Scan a project and write CMakeLists.txt",
		Long: `Scan a project tree and write CMakeLists.txt to the working directory.

Directories whose path contains any of ` + strings.Join(filesystem.DefaultIgnoreList, ", ") + `
are skipped unless --ignore is given. Directories that cannot be read are
reported and skipped.

Examples:
  cmakegen generate
  cmakegen generate ../mylib --language c --std 99
  cmakegen generate --diff`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runGenerate,
	}
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		a.v.Set(config.KeyRoot, args[0])
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	std, err := cfg.Standard()
	if err != nil {
		return err
	}

	gen, err := generator.New(generator.Options{
		Root:       cfg.Root,
		Name:       cfg.Name,
		Language:   std,
		Output:     cfg.Output,
		IgnoreList: cfg.Ignore,
		Separator:  cfg.Separator(),
		Gitignore:  cfg.Gitignore,
		DryRun:     cfg.DryRun,
		Diff:       cfg.Diff,
		Fs:         a.fs,
		Stdout:     cmd.OutOrStdout(),
		Logger:     a.log,
	})
	if err != nil {
		return err
	}

	opts := gen.Options()
	output.Verbose(fmt.Sprintf("Scanning %s as %s (%s)", opts.Root, opts.Name, std))

	report, err := gen.Run(cmd.Context())
	if err != nil {
		return err
	}

	for _, d := range report.Result.Diagnostics {
		output.Verbose("Skipped " + d.Error())
	}

	if !report.Written {
		return nil
	}

	output.Success(fmt.Sprintf("Wrote %s", report.Output))
	if !report.Result.HasCode() {
		output.Info("No C/C++ sources found under " + report.Root)
	}
	output.Step(fmt.Sprintf("%d source files, %d include directories", len(report.Result.SourceFiles), len(report.Result.IncludeDirs)))
	if n := len(report.Result.Diagnostics); n > 0 {
		output.Step(fmt.Sprintf("%d unreadable directories skipped (use --verbose for details)", n))
	}
	return nil
}
