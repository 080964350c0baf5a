package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_HeadAndTail(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun(t, "resolve", "--ref", "1700000000", "--head", "DAY", "--tail", "3600")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "target  2023-11-14 22:13:20 UTC | POSIX: 1,700,000,000", lines[0])
	require.Equal(t, "head    2023-11-13 22:13:20 UTC | POSIX: 1699913600  (1 days)", lines[1])
	require.Equal(t, "tail    2023-11-14 23:13:20 UTC | POSIX: 1700003600  (01h00m00s)", lines[2])
}

func TestResolve_DefaultsToNow(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun(t, "resolve", "--tail", "week")
	require.Contains(t, out, "target  2026-10-15 00:00:00 UTC")
	require.Contains(t, out, "tail    2026-10-22 00:00:00 UTC")
	require.NotContains(t, out, "head")
}

func TestResolve_ModeAppliesToOffsets(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun(t, "resolve", "--ref", "1700000000", "--head", "90061", "--mode", "clock")
	require.Contains(t, out, "(25:01:01)")
}

func TestResolve_ZeroOffsetHasNoDuration(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun(t, "resolve", "--ref", "1700000000", "--head", "0")
	require.Contains(t, out, "head    2023-11-14 22:13:20 UTC | POSIX: 1700000000\n")
}

func TestResolve_Overflow(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun(t, "resolve", "--ref", "9223372036854775807", "--tail", "1")
	require.Contains(t, out, "tail    Invalid timestamp")
}

func TestResolve_Errors(t *testing.T) {
	h := newHarness(t)
	_, err := h.run(t, "resolve", "--ref", "1700000000")
	require.ErrorContains(t, err, "--head or --tail")

	_, err = h.run(t, "resolve", "--head", "FORTNIGHT")
	require.ErrorContains(t, err, "--head")
}
