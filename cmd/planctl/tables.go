package main

import (
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/backend/internal/planner"
)

func newTablesCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the effective planner tables as YAML",
		Long: `Print the planner's policy tables as YAML. With --tables the overrides
in that file are applied first, so the output shows exactly what the server
would run with. The output is itself a valid overrides file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := planner.LoadTables(path)
			if err != nil {
				return err
			}
			out, err := tables.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&path, "tables", "", "YAML file with table overrides")
	return cmd
}
