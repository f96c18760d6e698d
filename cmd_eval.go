package main

import (
	"fmt"
	"strconv"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"go.creack.net/xsolve/ast"
	"go.creack.net/xsolve/executor"
	"go.creack.net/xsolve/parser"
)

func newEvalCmd(flags *rootFlags) *cobra.Command {
	var values map[string]string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression with the given variable values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars := make(ast.Bindings, len(values))
			for name, value := range values {
				v, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fmt.Errorf("invalid value for %q: %w", name, err)
				}
				vars[name] = v
			}

			v, err := executor.Evaluate(joinArgs(args), vars, flags.parserOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ast.FormatNumber(v))
			return nil
		},
	}

	cmd.Flags().StringToStringVarP(&values, "set", "s", nil, "variable values, e.g. --set x=2,y=3")

	return cmd
}

func newParseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <expression>",
		Short: "Parse an expression and dump its tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stmt, err := parser.ParseExpression(joinArgs(args), flags.parserOptions()...)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%# v\n", stmt, pretty.Formatter(stmt))
			return nil
		},
	}
}
