package cmd

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCommand(t *testing.T) {
	t.Run("command exists and has correct structure", func(t *testing.T) {
		cmd := newDemoCmd()
		assert.Equal(t, "demo", cmd.Use)
		assert.NotEmpty(t, cmd.Short)
		assert.NotNil(t, cmd.Flags().Lookup("delay"))
		assert.NotNil(t, cmd.Flags().Lookup("fail-at"))
	})

	t.Run("second download fails at 95 percent", func(t *testing.T) {
		inTempDir(t)
		out, _, err := execute(t, "demo", "--delay", "0", "--color", "never")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(out, "\r    Download [  0%] example_file.jpg"))
		assert.Contains(t, out, "\r    Download [100%] example_file.jpg [256 KiB]\n")
		assert.Contains(t, out, "\r    Download [ 95%] some_other.zip [Failed]\n")
		assert.True(t, strings.HasSuffix(out, "\r        Demo 1 succeeded, 1 failed\n"))
	})

	t.Run("fail-at outside the range lets both succeed", func(t *testing.T) {
		inTempDir(t)
		out, _, err := execute(t, "demo", "--delay", "0", "--color", "never", "--fail-at", "5000")
		require.NoError(t, err)

		assert.Contains(t, out, "\r    Download [ 99%] some_other.zip")
		assert.Contains(t, out, "\r    Download [100%] some_other.zip [1.0 MiB]\n")
		assert.True(t, strings.HasSuffix(out, "2 succeeded, 0 failed\n"))
	})

	t.Run("custom fail offset", func(t *testing.T) {
		inTempDir(t)
		out, _, err := execute(t, "demo", "--delay", "0", "--color", "never", "--fail-at", "750")
		require.NoError(t, err)
		assert.Contains(t, out, "\r    Download [ 50%] some_other.zip [Failed]\n")
	})
}

func TestWait(t *testing.T) {
	assert.NoError(t, wait(context.Background(), 0))
	assert.NoError(t, wait(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, wait(ctx, 0), context.Canceled)
	assert.ErrorIs(t, wait(ctx, time.Hour), context.Canceled)
}
