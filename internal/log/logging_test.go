package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestConsoleHandlerPlain(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&consoleHandler{w: &buf, level: slog.LevelDebug})

	logger.With("port", "/dev/ttyUSB0").Info("link open", "baud", 115200)
	logger.Log(context.Background(), LevelTrace, "hidden")

	out := buf.String()
	assert.NotContains(t, out, "\033[")
	assert.Contains(t, out, " INFO link open port=/dev/ttyUSB0 baud=115200\n")
	assert.NotContains(t, out, "hidden")
}

func TestLevelFilterSplitsStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(MultiHandler{hs: []slog.Handler{
		LevelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: &consoleHandler{w: &stdout, level: LevelTrace}},
		LevelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: &consoleHandler{w: &stderr, level: slog.LevelError}},
	}})

	logger.Warn("odd id")
	logger.Error("port gone")
	logger.Log(context.Background(), LevelTrace, "bytes")

	assert.Contains(t, stdout.String(), "odd id")
	assert.Contains(t, stdout.String(), "TRACE bytes")
	assert.NotContains(t, stdout.String(), "port gone")
	assert.Equal(t, 1, strings.Count(stderr.String(), "\n"))
	assert.Contains(t, stderr.String(), "port gone")
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	r := NewRaw(&buf).(*rawLogger)
	r.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 6000, time.UTC) }

	r.Log(Out, []byte{0x7b, 0xff, 0x0a})
	r.Log(In, []byte{0x01})

	assert.Equal(t, "03:04:05.000006 >> 7b ff 0a\n03:04:05.000006 << 01\n", buf.String())
}

func TestRawLoggerNil(t *testing.T) {
	r := NewRaw(nil)
	assert.NotPanics(t, func() { r.Log(In, []byte{1, 2, 3}) })
}
