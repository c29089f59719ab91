package telemetry_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jepsenhq/chronos/telemetry"
	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/require"
)

func TestCheckerStartLogsName(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	l := telemetry.New(w, logiface.LevelTrace)
	telemetry.CheckerStart(l, "g0")
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "checker start")
	require.Contains(t, out, "g0")
}

func TestCheckerTimeoutLogsAtWarn(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	l := telemetry.New(w, logiface.LevelTrace)
	telemetry.CheckerTimeout(l, "linear")
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.Contains(out, "warn") || strings.Contains(out, "\"level\":\"warn\""))
}

func TestDefaultLoggerIsNonNil(t *testing.T) {
	require.NotNil(t, telemetry.Default)
}

func TestComposeStartLogsRunID(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	l := telemetry.New(w, logiface.LevelTrace)
	telemetry.ComposeStart(l, "run-123", 2)
	telemetry.ComposeStop(l, "run-123", true)
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "run-123")
	require.Contains(t, out, "compose start")
	require.Contains(t, out, "compose stop")
}
