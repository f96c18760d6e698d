package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.creack.net/xsolve/ast"
	"go.creack.net/xsolve/executor"
)

func newSimplifyCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <expression>",
		Short: "Print the canonical form of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := executor.Simplify(joinArgs(args), flags.parserOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newSolveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <equation>",
		Short: "Solve a linear equation for x",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := executor.Solve(joinArgs(args), flags.parserOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "x = %s\n", ast.FormatNumber(x))
			return nil
		},
	}
}
