package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/datatable/internal/config"
)

func newConfigCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the datatable config file.",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newConfigInitCmd(configPath))
	return cmd
}

// newConfigInitCmd writes every setting with its effective value, so a
// fresh file holds the defaults plus any DATATABLE_ env overrides. With
// --force an existing file is rewritten, keeping its values and filling in
// the keys it lacks.
func newConfigInitCmd(configPath *string) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file holding every setting.",
		Example: `
datatable config init
datatable --config ./datatable.toml config init
datatable config init --force
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ResolvePath(*configPath)
			_, err := os.Stat(path)
			switch {
			case err == nil && !force:
				return fmt.Errorf("%s already exists (use --force to rewrite it)", path)
			case err != nil && !errors.Is(err, fs.ErrNotExist):
				return fmt.Errorf("stat %s: %w", path, err)
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "rewrite an existing config file")
	return cmd
}
