package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-procedure/internal/reporter"
	"github.com/yarlson/go-procedure/internal/scenario"
)

// ErrOperationsFailed is returned by the run command when any scripted
// operation failed.
var ErrOperationsFailed = errors.New("operations failed")

// Run command flags
var (
	runStopOnFailure bool
	runSummary       bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run scripted operations",
		Long: `Runs every operation in a YAML scenario file under a progress line.

Exits non-zero if any operation failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&runStopOnFailure, "stop-on-failure", false, "skip remaining operations after the first failure")
	cmd.Flags().BoolVar(&runSummary, "summary", false, "print a summary after the run")

	return cmd
}

func runScenario(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	script, err := scenario.Load(path)
	if err != nil {
		return err
	}

	p := newPrinter(cmd, cfg)
	report, err := scenario.Run(cmd.Context(), p, script, scenario.Options{
		StopOnFailure: runStopOnFailure,
	})
	if report != nil {
		debugf(cmd, "run %s: %d operations, %d failed\n", report.RunID, len(report.Operations), report.Failed())
	}
	if err != nil {
		return fmt.Errorf("run interrupted: %w", err)
	}

	if runSummary {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), "\n"+reporter.FormatReport(report))
	}

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrOperationsFailed, failed, len(report.Operations))
	}
	return nil
}
