package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tychoish/queue/ctcheck"
)

type checkFlags struct {
	measurements int
	tries        int
	verbose      bool
}

func init() {
	cf := new(checkFlags)
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check the queue primitives for timing leakage.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cf)
		},
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
	}
	fs := checkCmd.Flags()
	fs.IntVar(&cf.measurements, "measurements", 0, "accepted measurements per trial (default 10000)")
	fs.IntVar(&cf.tries, "tries", 0, "trials per operation before giving up (default 10)")
	fs.BoolVarP(&cf.verbose, "verbose", "v", false, "report every trial, not just verdicts")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cf *checkFlags) error {
	lg, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to build logger, %w", err)
	}
	defer func() { _ = lg.Sync() }()

	checker := &ctcheck.Checker{
		Measurements: cf.measurements,
		Tries:        cf.tries,
	}
	if cf.verbose {
		checker.Logger = lg
	}

	ops := []ctcheck.Operation{
		ctcheck.InsertHead,
		ctcheck.InsertTail,
		ctcheck.RemoveHead,
		ctcheck.RemoveTail,
	}

	failed := 0
	for _, op := range ops {
		res := checker.Check(op)
		if res.Pass {
			lg.Info("probably constant time",
				zap.String("op", op.String()),
				zap.Float64("max_t", res.MaxT),
				zap.Int("measurements", res.Measurements))
			continue
		}

		failed++
		lg.Warn("not constant time",
			zap.String("op", op.String()),
			zap.Float64("max_t", res.MaxT),
			zap.Float64("max_tau", res.MaxTau),
			zap.Int("measurements", res.Measurements))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d operations leak timing information", failed, len(ops))
	}
	return nil
}
