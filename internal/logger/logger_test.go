package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"panic": zapcore.PanicLevel,
		"fatal": zapcore.FatalLevel,
		" Info": zapcore.InfoLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestContextHelpers ensures the logger travels through the context with names and fields.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "fade")
	ctx = WithKV(ctx, "cycle", 3)

	DebugKV(ctx, "step", "brightness", 0.5)
	Info(ctx, "Fade in done")
	WarnKV(ctx, "Slow step", "late", "5ms")
	ErrorKV(ctx, "Strip write failed", "error", "busy")

	entries := logs.All()
	require.Len(t, entries, 4)
	require.Equal(t, "fade", entries[0].LoggerName)
	require.Equal(t, "step", entries[0].Message)
	require.Equal(t, map[string]any{"cycle": int64(3), "brightness": 0.5}, entries[0].ContextMap())
	require.Equal(t, "Fade in done", entries[1].Message)
	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
	require.Equal(t, "5ms", entries[2].ContextMap()["late"])
	require.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	require.Equal(t, "fade", entries[3].LoggerName)
}

// TestFromContext_Fallback returns a usable logger for bare contexts.
func TestFromContext_Fallback(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromContext(context.Background()))
}

// TestNewWithFile writes plain lines into the extra sink.
func TestNewWithFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := NewWithFile(zap.NewAtomicLevelAt(zap.InfoLevel), &buf)
	l.Debugw("hidden")
	l.Infow("alarm scheduled", "at", "07:00")
	_ = l.Sync()

	out := buf.String()
	require.Contains(t, out, "INFO")
	require.Contains(t, out, "alarm scheduled")
	require.NotContains(t, out, "hidden")
}

// TestNewRotatingFile creates the directory and a dated log file.
func TestNewRotatingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "alarm.log")

	w, err := NewRotatingFile(FileOptions{Path: path})
	require.NoError(t, err)

	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	matches, err := filepath.Glob(path + ".*")
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	contents, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(contents))

	_, err = NewRotatingFile(FileOptions{})
	require.Error(t, err)
}
