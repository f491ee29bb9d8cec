package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dshills/qcalc/internal/profile"
	"github.com/dshills/qcalc/internal/qvalue"
	"github.com/dshills/qcalc/internal/render"
	"github.com/dshills/qcalc/internal/sampler"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	ops         []string
	profileName string
	count       int
	seed        uint64
	hasSeed     bool
	qMin        float64
	hasQMin     bool
	qMax        float64
	hasQMax     bool
	min         int
	hasMin      bool
	max         int
	hasMax      bool
	trials      int
	format      string
	out         string
	answers     bool
	title       string
	verbose     bool
}

func newGenerateCmd() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate calculations whose Q-value falls in a target range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Record which bounds were explicitly overridden
			f.hasSeed = cmd.Flags().Changed("seed")
			f.hasQMin = cmd.Flags().Changed("q-min")
			f.hasQMax = cmd.Flags().Changed("q-max")
			f.hasMin = cmd.Flags().Changed("min")
			f.hasMax = cmd.Flags().Changed("max")
			return runGenerate(f)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&f.ops, "op", []string{"add"}, "Operations to cycle through: add, sub, mul (may be repeated)")
	flags.StringVar(&f.profileName, "profile", "practice", "Built-in difficulty profile")
	flags.IntVar(&f.count, "count", 10, "Number of problems to generate")
	flags.Uint64Var(&f.seed, "seed", 0, "Random seed (default: time-based)")
	flags.Float64Var(&f.qMin, "q-min", 0, "Override the profile's minimum Q-value")
	flags.Float64Var(&f.qMax, "q-max", 0, "Override the profile's maximum Q-value")
	flags.IntVar(&f.min, "min", 0, "Override the profile's minimum operand")
	flags.IntVar(&f.max, "max", 0, "Override the profile's maximum operand")
	flags.IntVar(&f.trials, "trials", 0, "Override the profile's trial budget per problem")
	flags.StringVar(&f.format, "format", "text", "Output format: text, md, or json")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.BoolVar(&f.answers, "answers", false, "Include answers and Q-values in the output")
	flags.StringVar(&f.title, "title", "Worksheet", "Worksheet title for md output")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

// buildRequest merges a profile's bounds with explicit flag overrides.
func buildRequest(b profile.Bounds, trials int, f *generateFlags) sampler.Request {
	req := sampler.Request{
		QMin:       b.QMin,
		QMax:       b.QMax,
		MinOperand: b.MinOperand,
		MaxOperand: b.MaxOperand,
		Trials:     trials,
	}
	if f.hasQMin {
		req.QMin = f.qMin
	}
	if f.hasQMax {
		req.QMax = f.qMax
	}
	if f.hasMin {
		req.MinOperand = f.min
	}
	if f.hasMax {
		req.MaxOperand = f.max
	}
	if f.trials > 0 {
		req.Trials = f.trials
	}
	return req
}

// boundsFor returns the profile's bounds for op, or nil when the profile
// does not cover it.
func boundsFor(p *profile.Profile, op qvalue.Op) *profile.Bounds {
	switch op {
	case qvalue.OpAddition:
		return p.Addition
	case qvalue.OpSubtraction:
		return p.Subtraction
	case qvalue.OpMultiplication:
		return p.Multiplication
	default:
		return nil
	}
}

func runGenerate(f *generateFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	if f.count <= 0 {
		return exitError(2, "count must be positive, got %d", f.count)
	}

	var ops []qvalue.Op
	for _, name := range f.ops {
		op, ok := parseOp(name)
		if !ok {
			return exitError(2, "unknown operation %q (want add, sub, or mul)", name)
		}
		ops = append(ops, op)
	}

	verbose("Loading profile: %s", f.profileName)
	prof, err := profile.LoadBuiltin(f.profileName)
	if err != nil {
		return exitError(3, "failed to load profile: %v", err)
	}

	requests := make(map[qvalue.Op]sampler.Request, len(ops))
	for _, op := range ops {
		b := boundsFor(prof, op)
		if b == nil {
			return exitError(3, "profile %q does not cover %s", f.profileName, op)
		}
		requests[op] = buildRequest(*b, prof.Trials, f)
	}

	seed := f.seed
	if !f.hasSeed {
		seed = uint64(time.Now().UnixNano())
	}
	verbose("Sampling with seed %d", seed)
	s := sampler.New(seed)

	var calcs []sampler.Calculation
	misses := 0
	for i := 0; i < f.count; i++ {
		op := ops[i%len(ops)]
		c, ok := s.Sample(op, requests[op])
		if !ok {
			verbose("No %s match within the trial budget", op)
			misses++
			continue
		}
		calcs = append(calcs, c)
	}
	verbose("Generated %d of %d problems", len(calcs), f.count)

	var output string
	switch f.format {
	case "text":
		output = render.Text(calcs, f.answers)
	case "md":
		output = render.Markdown(f.title, calcs, f.answers)
	case "json":
		data, err := json.MarshalIndent(calcs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	default:
		return exitError(2, "unknown format: %s", f.format)
	}

	if err := writeOutput(f.out, output); err != nil {
		return err
	}

	if misses > 0 {
		return exitError(1, "generated %d of %d problems within the trial budget", len(calcs), f.count)
	}
	return nil
}
