package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/yarlson/go-procedure"
)

// Options configures a scenario run.
type Options struct {
	// StopOnFailure skips the remaining operations after the first failure.
	StopOnFailure bool

	// Sleep pauses between steps. Defaults to a context-aware time.Sleep.
	Sleep func(ctx context.Context, d time.Duration) error
}

// OperationResult is the outcome of one operation.
type OperationResult struct {
	Action      string
	Description string
	Percent     int
	Value       uint64
	Display     string
	Err         error
	Duration    time.Duration
}

// Succeeded reports whether the operation finished without error.
func (r OperationResult) Succeeded() bool {
	return r.Err == nil
}

// Report collects the results of a run.
type Report struct {
	RunID      string
	StartTime  time.Time
	EndTime    time.Time
	Messages   int
	Operations []OperationResult
	Skipped    int
}

// Failed returns the number of failed operations.
func (r *Report) Failed() int {
	n := 0
	for _, op := range r.Operations {
		if !op.Succeeded() {
			n++
		}
	}
	return n
}

// ErrOperationFailed is the error an operation fails with when its script
// sets fail.
var ErrOperationFailed = errors.New("operation failed")

// failure carries the display text of a scripted failure.
type failure struct {
	msg string
}

func (f *failure) Error() string { return f.msg }

func (f *failure) Is(target error) bool { return target == ErrOperationFailed }

// Run prints the script's messages and runs each operation under a
// progress line on p. Operation failures are recorded in the report and do
// not make Run return an error; only context cancellation does.
func Run(ctx context.Context, p *procedure.Printer, script *Script, opts Options) (*Report, error) {
	if opts.Sleep == nil {
		opts.Sleep = sleep
	}

	report := &Report{
		RunID:     uuid.New().String(),
		StartTime: time.Now(),
	}

	for _, m := range script.Messages {
		PrintMessage(p, m)
		report.Messages++
	}

	for i, op := range script.Operations {
		if err := ctx.Err(); err != nil {
			report.Skipped = len(script.Operations) - i
			report.EndTime = time.Now()
			return report, err
		}

		result := runOperation(ctx, p, op, opts)
		report.Operations = append(report.Operations, result)

		if !result.Succeeded() && opts.StopOnFailure {
			report.Skipped = len(script.Operations) - i - 1
			break
		}
	}

	report.EndTime = time.Now()
	return report, nil
}

func runOperation(ctx context.Context, p *procedure.Printer, op Operation, opts Options) OperationResult {
	padding := op.Padding
	if padding == 0 {
		padding = p.Padding()
	}

	result := OperationResult{
		Action:      op.Action,
		Description: op.Description,
	}
	start := time.Now()

	value, err := procedure.RunPadded(p, op.Action, op.Description, func(pr *procedure.Progress) (procedure.Outcome[uint64], error) {
		defer func() { result.Percent = pr.Percent() }()

		for _, st := range op.Steps {
			if err := runStep(ctx, pr, st, op.Delay, opts.Sleep); err != nil {
				return procedure.Outcome[uint64]{}, err
			}
		}
		if op.Fail != "" {
			return procedure.Outcome[uint64]{}, &failure{msg: op.Fail}
		}

		result.Display = display(op)
		return procedure.Outcome[uint64]{Value: op.Bytes, Display: result.Display}, nil
	}, padding)

	result.Duration = time.Since(start)
	result.Value = value
	result.Err = err
	if err == nil {
		result.Percent = 100
	}
	return result
}

func runStep(ctx context.Context, pr *procedure.Progress, st Step, delay time.Duration, sleep func(context.Context, time.Duration) error) error {
	apply := func(fn func() error) error {
		if err := fn(); err != nil {
			return err
		}
		if delay > 0 {
			return sleep(ctx, delay)
		}
		return ctx.Err()
	}

	for n := 0; n < st.times(); n++ {
		var err error
		switch {
		case st.Set != nil:
			err = apply(func() error { return pr.Set(*st.Set) })
		case st.Increment != nil:
			err = apply(func() error { return pr.Increment(*st.Increment) })
		case st.SetFrom != nil:
			err = apply(func() error { return pr.SetFrom(st.SetFrom.Min, st.SetFrom.Max, st.SetFrom.Value) })
		case st.Range != nil:
			for i := st.Range.Min; i <= st.Range.To; i++ {
				if err = apply(func() error { return pr.SetFrom(st.Range.Min, st.Range.Max, i) }); err != nil {
					break
				}
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// display builds the success text. A byte count is appended in IEC units.
func display(op Operation) string {
	text := op.Result
	if text == "" {
		text = op.Description
	}
	if op.Bytes > 0 {
		text = fmt.Sprintf("%s [%s]", text, humanize.IBytes(op.Bytes))
	}
	return text
}

// PrintMessage prints m on p. A zero padding uses the printer default.
func PrintMessage(p *procedure.Printer, m Message) {
	padding := m.Padding
	if padding == 0 {
		padding = p.Padding()
	}
	switch m.Kind {
	case KindSuccess:
		p.SuccessPadded(m.Action, m.Description, padding)
	case KindError:
		p.ErrorPadded(m.Action, m.Description, padding)
	case KindWarning:
		p.WarningPadded(m.Action, m.Description, padding)
	case KindInfo:
		p.InfoPadded(m.Action, m.Description, padding)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
