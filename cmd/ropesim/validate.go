package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ropesim/internal/input"
	"ropesim/internal/script"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that a move file parses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}
			lines, err := input.ReadLines(path)
			if err != nil {
				return err
			}
			moves, err := script.ParseLines(lines)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			steps := 0
			for _, m := range moves {
				steps += m.StepCount()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d moves, %d unit steps\n", len(moves), steps)
			return nil
		},
	}
}
