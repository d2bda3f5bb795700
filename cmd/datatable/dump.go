package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/datatable/internal/dataset"
)

func newDumpCmd() *cobra.Command {
	var (
		out  string
		rows int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the reference or a synthetic dataset as a TOML dataset file.",
		Example: `
datatable dump > people.toml
datatable dump -o people.toml
datatable dump --rows 500 --seed 42 -o many.toml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := dataset.Reference()
			if rows > 0 {
				ds = dataset.Generate(rows, seed)
			}
			data, err := dataset.Encode(ds)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&rows, "rows", 0, "write n synthetic people instead of the reference rows")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for --rows")
	return cmd
}
