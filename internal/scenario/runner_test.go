package scenario

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yarlson/go-procedure"
)

func newTestPrinter() (*procedure.Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return procedure.NewPrinter(&buf, procedure.WithStyler(procedure.PlainStyler{})), &buf
}

func noSleep(context.Context, time.Duration) error { return nil }

func intPtr(v int) *int { return &v }

func TestRun_SampleScript(t *testing.T) {
	script, err := Parse([]byte(sampleScript))
	require.NoError(t, err)

	p, buf := newTestPrinter()
	report, err := Run(context.Background(), p, script, Options{Sleep: noSleep})
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err, "run id must be a uuid")
	assert.Equal(t, 1, report.Messages)
	require.Len(t, report.Operations, 2)
	assert.Equal(t, 1, report.Failed())
	assert.False(t, report.EndTime.Before(report.StartTime))

	ok := report.Operations[0]
	assert.True(t, ok.Succeeded())
	assert.Equal(t, 100, ok.Percent)
	assert.Equal(t, "example_file.jpg [256 KB]", ok.Display)

	failed := report.Operations[1]
	assert.False(t, failed.Succeeded())
	assert.Equal(t, 95, failed.Percent)
	assert.ErrorIs(t, failed.Err, ErrOperationFailed)
	assert.EqualError(t, failed.Err, "some_other.zip [Failed]")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\r       Fetch 2 files\n"))
	assert.Contains(t, out, "\r    Download [100%] example_file.jpg [256 KB]\n")
	assert.Contains(t, out, "\r      Download [ 95%] some_other.zip [Failed]\n")
}

func TestRun_BytesDisplay(t *testing.T) {
	script := &Script{Operations: []Operation{{
		Action:      "Download",
		Description: "blob.bin",
		Bytes:       262144,
		Steps:       []Step{{Set: intPtr(50)}},
	}}}

	p, buf := newTestPrinter()
	report, err := Run(context.Background(), p, script, Options{Sleep: noSleep})
	require.NoError(t, err)

	op := report.Operations[0]
	assert.Equal(t, uint64(262144), op.Value)
	assert.Equal(t, "blob.bin [256 KiB]", op.Display)
	assert.Contains(t, buf.String(), "[100%] blob.bin [256 KiB]\n")
}

func TestRun_InvalidRangeFailsOperation(t *testing.T) {
	script := &Script{Operations: []Operation{
		{Action: "Bad", Description: "x", Steps: []Step{{Set: intPtr(10)}, {SetFrom: &SetFrom{Min: 5, Max: 5, Value: 5}}}},
		{Action: "Good", Description: "y"},
	}}

	p, _ := newTestPrinter()
	report, err := Run(context.Background(), p, script, Options{Sleep: noSleep})
	require.NoError(t, err)

	require.Len(t, report.Operations, 2)
	assert.ErrorIs(t, report.Operations[0].Err, procedure.ErrInvalidRange)
	assert.Equal(t, 10, report.Operations[0].Percent)
	assert.True(t, report.Operations[1].Succeeded())
}

func TestRun_StopOnFailure(t *testing.T) {
	script := &Script{Operations: []Operation{
		{Action: "One", Fail: "broken"},
		{Action: "Two"},
		{Action: "Three"},
	}}

	p, _ := newTestPrinter()
	report, err := Run(context.Background(), p, script, Options{StopOnFailure: true, Sleep: noSleep})
	require.NoError(t, err)

	assert.Len(t, report.Operations, 1)
	assert.Equal(t, 2, report.Skipped)
}

func TestRun_DelayUsesSleep(t *testing.T) {
	script := &Script{Operations: []Operation{{
		Action: "Tick",
		Delay:  time.Second,
		Steps:  []Step{{Increment: intPtr(10), Repeat: 3}},
	}}}

	var calls int
	sleeper := func(_ context.Context, d time.Duration) error {
		assert.Equal(t, time.Second, d)
		calls++
		return nil
	}

	p, _ := newTestPrinter()
	_, err := Run(context.Background(), p, script, Options{Sleep: sleeper})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRun_Cancelled(t *testing.T) {
	t.Run("before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		script := &Script{Operations: []Operation{{Action: "A"}, {Action: "B"}}}
		p, buf := newTestPrinter()
		report, err := Run(ctx, p, script, Options{Sleep: noSleep})

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, report.Operations)
		assert.Equal(t, 2, report.Skipped)
		assert.Empty(t, buf.String())
	})

	t.Run("during steps", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		script := &Script{Operations: []Operation{{
			Action: "Slow",
			Delay:  time.Millisecond,
			Steps:  []Step{{Increment: intPtr(1), Repeat: 50}},
		}}}

		var calls int
		sleeper := func(ctx context.Context, _ time.Duration) error {
			calls++
			if calls == 5 {
				cancel()
			}
			return ctx.Err()
		}

		p, _ := newTestPrinter()
		report, err := Run(ctx, p, script, Options{Sleep: sleeper})
		require.NoError(t, err)

		op := report.Operations[0]
		assert.True(t, errors.Is(op.Err, context.Canceled))
		assert.Equal(t, 5, op.Percent)
	})
}

func TestSleep(t *testing.T) {
	assert.NoError(t, sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleep(ctx, time.Hour), context.Canceled)
}
