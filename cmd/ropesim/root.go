package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ropesim",
		Short:         "ropesim simulates a rope dragged across a grid",
		Long:          `ropesim reads "<D> <N>" move commands and counts the distinct cells visited by the last knot of the rope.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newValidateCmd(), newVersionCmd())
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ropesim:", err)
		os.Exit(1)
	}
}
