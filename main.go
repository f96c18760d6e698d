package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"go.creack.net/xsolve/parser"
)

// errFailed is returned when some input lines failed; they were already reported.
var errFailed = errors.New("some expressions failed")

type rootFlags struct {
	strict    bool
	verbosity int
}

// parserOptions returns the parser options selected on the command line.
func (f *rootFlags) parserOptions() []parser.Option {
	return []parser.Option{parser.WithStrict(f.strict)}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "xsolve",
		Short: "Simplify and solve linear expressions in x",
		Long: `xsolve reads linear expressions such as "2 * x + 3 - 4" and prints their
canonical form, or solves equations such as "2 * x + 3 = 0" for x.

Without a sub command, expressions are read from stdin, one per line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(flags.verbosity, nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInput(cmd, cmd.InOrStdin(), flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "fail when the right side of an equation is not a number")
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newSimplifyCmd(flags))
	rootCmd.AddCommand(newSolveCmd(flags))
	rootCmd.AddCommand(newEvalCmd(flags))
	rootCmd.AddCommand(newParseCmd(flags))
	rootCmd.AddCommand(newRunCmd(flags))

	return rootCmd
}

// joinArgs lets expressions be passed unquoted: `xsolve solve 2 * x = 4`.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "xsolve: %s\n", err)
		}
		os.Exit(1)
	}
}
