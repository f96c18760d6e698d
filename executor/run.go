package executor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.creack.net/xsolve/ast"
	"go.creack.net/xsolve/parser"
)

// Run reads one expression per line from input. Lines holding '=' are
// solved and printed as `x = <value>`, other lines are simplified. Blank
// lines and lines starting with '#' are skipped.
//
// A failing line is reported on stderr and does not stop the run; the
// returned exit code is 1 if any line failed. The error is only set when
// reading or writing fails.
func Run(input io.Reader, stdout, stderr io.Writer, opts ...parser.Option) (int, error) {
	exitCode := 0
	scanner := bufio.NewScanner(input)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := runLine(line, opts...)
		if err != nil {
			log.Warningf("line %d: %s", lineNo, err)
			exitCode = 1
			if _, err := fmt.Fprintf(stderr, "xsolve: line %d: %s\n", lineNo, err); err != nil {
				return exitCode, fmt.Errorf("write stderr: %w", err)
			}
			continue
		}
		if _, err := fmt.Fprintln(stdout, result); err != nil {
			return exitCode, fmt.Errorf("write stdout: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return 1, fmt.Errorf("read input: %w", err)
	}
	return exitCode, nil
}

func runLine(line string, opts ...parser.Option) (string, error) {
	if !strings.Contains(line, "=") {
		return Simplify(line, opts...)
	}
	x, err := Solve(line, opts...)
	if err != nil {
		return "", err
	}
	return "x = " + ast.FormatNumber(x), nil
}
