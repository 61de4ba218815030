package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		quiet     bool
		want      slog.Level
	}{
		{0, false, slog.LevelWarn},
		{1, false, slog.LevelInfo},
		{2, false, slog.LevelDebug},
		{5, false, slog.LevelDebug},
		{2, true, LevelSilent},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, LevelFromVerbosity(tt.verbosity, tt.quiet))
	}
}

func TestHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelDebug)

	logger.Debug("applied fixes", "path", "src/a.ts", "pass", 2)
	require.Equal(t, "[debug] applied fixes | path=src/a.ts, pass=2\n", buf.String())

	buf.Reset()
	logger.With("worker", 3).WithGroup("file").Info("done", "name", "has space")
	require.Equal(t, "[info] done | worker=3, file.name=\"has space\"\n", buf.String())
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)

	logger.Info("hidden")
	require.Empty(t, buf.String())

	logger.Warn("shown")
	require.Equal(t, "[warn] shown\n", buf.String())
}

func TestDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	require.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
