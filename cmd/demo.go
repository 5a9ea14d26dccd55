package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/yarlson/go-procedure"
)

// Demo command flags
var (
	demoDelay  time.Duration
	demoFailAt int64
)

const (
	demoFileSize    = 256 << 10
	demoArchiveSize = 1 << 20
	demoRangeMin    = 500
	demoRangeMax    = 1000
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the download demo",
		Long: `Runs two simulated downloads. The first advances one percent at a time and
succeeds. The second maps byte offsets 500..1000 onto the bar and fails once
the offset reaches --fail-at, leaving the bar at the percentage it reached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}

	cmd.Flags().DurationVar(&demoDelay, "delay", -1, "pause between updates (negative uses config)")
	cmd.Flags().Int64Var(&demoFailAt, "fail-at", -1, "offset in [500, 1000) at which the second download fails (negative uses config)")

	return cmd
}

func runDemo(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	delay := cfg.Demo.Delay
	if demoDelay >= 0 {
		delay = demoDelay
	}
	failAt := cfg.Demo.FailAt
	if demoFailAt >= 0 {
		failAt = demoFailAt
	}

	ctx := cmd.Context()
	p := newPrinter(cmd, cfg)

	var succeeded, failed int

	n, err := procedure.Run(p, "Download", "example_file.jpg", func(pr *procedure.Progress) (procedure.Outcome[uint64], error) {
		for i := 0; i < 100; i++ {
			if err := wait(ctx, delay); err != nil {
				return procedure.Outcome[uint64]{}, err
			}
			if err := pr.Increment(1); err != nil {
				return procedure.Outcome[uint64]{}, err
			}
		}
		return procedure.Outcome[uint64]{
			Value:   demoFileSize,
			Display: fmt.Sprintf("example_file.jpg [%s]", humanize.IBytes(demoFileSize)),
		}, nil
	})
	if err != nil {
		return err
	}
	succeeded++
	debugf(cmd, "demo: example_file.jpg returned %d bytes\n", n)

	_, err = procedure.Run(p, "Download", "some_other.zip", func(pr *procedure.Progress) (procedure.Outcome[uint64], error) {
		for i := int64(demoRangeMin); i < demoRangeMax; i++ {
			if err := wait(ctx, delay/2); err != nil {
				return procedure.Outcome[uint64]{}, err
			}
			if err := pr.SetFrom(demoRangeMin, demoRangeMax, i); err != nil {
				return procedure.Outcome[uint64]{}, err
			}
			if i == failAt {
				return procedure.Outcome[uint64]{}, errDemoFailed
			}
		}
		return procedure.Outcome[uint64]{
			Value:   demoArchiveSize,
			Display: fmt.Sprintf("some_other.zip [%s]", humanize.IBytes(demoArchiveSize)),
		}, nil
	})
	switch {
	case errors.Is(err, errDemoFailed):
		failed++
	case err != nil:
		return err
	default:
		succeeded++
	}

	p.Info("Demo", fmt.Sprintf("%d succeeded, %d failed", succeeded, failed))
	return nil
}

var errDemoFailed = errors.New("some_other.zip [Failed]")

// wait sleeps for d unless ctx is done first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
