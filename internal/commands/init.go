package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Ginoko/auto-generate-CMakeLists/internal/config"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/input"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/output"
)

func (a *app) initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a " + config.FileName + " with the current settings",
		Long: `Write the resolved settings (defaults, environment and flags) to
` + config.FileName + ` in the working directory, or to the file named by
--config, so later runs only need 'cmakegen'.

An existing file is only replaced with --force, or after confirmation
when running in a terminal.

Example:
  cmakegen init --language c++ --std 17 --name engine`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{createsConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if a.cfgFile != "" {
				path = a.cfgFile
			}

			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			if _, err := cfg.Standard(); err != nil {
				return err
			}

			exists, err := afero.Exists(a.fs, path)
			if err != nil {
				return fmt.Errorf("checking %s: %w", path, err)
			}
			if exists && !force {
				if !isInteractive(cmd.InOrStdin()) {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
				if !input.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Overwrite %s?", path), false) {
					output.Info("Kept existing " + path)
					return nil
				}
			}

			if err := config.Save(cmd.Context(), a.fs, path, cfg); err != nil {
				return err
			}

			output.Success("Created " + path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
