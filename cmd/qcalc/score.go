package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/qcalc/internal/qvalue"
	"github.com/dshills/qcalc/internal/sampler"
	"github.com/spf13/cobra"
)

type scoreFlags struct {
	format string
	out    string
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score <add|sub|mul> <n1> <n2>",
		Short: "Compute the Q-value of a single calculation",
		Long: `Compute the Q-value of a single calculation.

For multiplication, n1 is the single-digit multiplier and n2 the
multiplicand; multi-digit multipliers are not supported.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(args[0], args[1], args[2], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "text", "Output format: text or json")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")

	return cmd
}

// parseOp maps a CLI operation name onto the scorer's Op.
func parseOp(s string) (qvalue.Op, bool) {
	switch strings.ToLower(s) {
	case "add", "addition", "+":
		return qvalue.OpAddition, true
	case "sub", "subtraction", "-":
		return qvalue.OpSubtraction, true
	case "mul", "multiplication", "x", "*":
		return qvalue.OpMultiplication, true
	}
	return "", false
}

func runScore(opArg, n1Arg, n2Arg string, f *scoreFlags) error {
	op, ok := parseOp(opArg)
	if !ok {
		return exitError(2, "unknown operation %q (want add, sub, or mul)", opArg)
	}
	n1, err := strconv.Atoi(n1Arg)
	if err != nil {
		return exitError(2, "invalid operand %q: %v", n1Arg, err)
	}
	n2, err := strconv.Atoi(n2Arg)
	if err != nil {
		return exitError(2, "invalid operand %q: %v", n2Arg, err)
	}

	var q float64
	switch op {
	case qvalue.OpAddition:
		q, err = qvalue.Addition(n1, n2)
	case qvalue.OpSubtraction:
		q, err = qvalue.Subtraction(n1, n2)
	case qvalue.OpMultiplication:
		q, err = qvalue.Multiplication(n1, n2)
	}
	if err != nil {
		return exitError(3, "%v", err)
	}

	c := sampler.Calculation{Op: op, N1: n1, N2: n2, Q: q}

	var output string
	switch f.format {
	case "text":
		output = fmt.Sprintf("%s = %d\tQ = %.4f\n", c.String(), c.Result(), c.Q)
	case "json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	default:
		return exitError(2, "unknown format: %s", f.format)
	}

	return writeOutput(f.out, output)
}
