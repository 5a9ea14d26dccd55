package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCommand(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{"success", "\r    Compiled main.go\n"},
		{"error", "\r    Compiled main.go\n"},
		{"warning", "\r    Compiled main.go\n"},
		{"info", "\r    Compiled main.go\n"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			inTempDir(t)
			out, _, err := execute(t, "print", tt.kind, "Compiled", "main.go", "--color", "never")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("colored success is green", func(t *testing.T) {
		inTempDir(t)
		out, _, err := execute(t, "print", "success", "Compiled", "main.go", "--color", "always")
		require.NoError(t, err)
		assert.Contains(t, out, "\x1b[32m    Compiled")
	})

	t.Run("unknown kind", func(t *testing.T) {
		inTempDir(t)
		_, _, err := execute(t, "print", "debug", "A", "b")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown kind")
	})

	t.Run("wrong argument count", func(t *testing.T) {
		inTempDir(t)
		_, _, err := execute(t, "print", "info", "A")
		require.Error(t, err)
	})
}
