package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.creack.net/xsolve/executor"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Simplify or solve every line of a file (stdin by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "-" {
				return runInput(cmd, cmd.InOrStdin(), flags)
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %q: %w", args[0], err)
			}
			defer func() { _ = f.Close() }() // Best effort, read only.
			return runInput(cmd, f, flags)
		},
	}
}

func runInput(cmd *cobra.Command, input io.Reader, flags *rootFlags) error {
	exitCode, err := executor.Run(input, cmd.OutOrStdout(), cmd.ErrOrStderr(), flags.parserOptions()...)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return errFailed
	}
	return nil
}
