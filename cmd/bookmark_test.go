package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBookmark_Lifecycle(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun(t, "bookmark", "add", "1700000000")
	require.Equal(t, "Bookmarked 1700000000 (2023-11-14 22:13:20 UTC)\n", out)
	out = h.mustRun(t, "bookmark", "add")
	require.Contains(t, out, "Bookmarked 1792022400")

	_, err := h.run(t, "bookmark", "add", "1,700,000,000")
	require.ErrorContains(t, err, "already bookmarked")

	require.Equal(t, "Starred 1700000000\n", h.mustRun(t, "bookmark", "star", "1700000000"))

	out = h.mustRun(t, "bookmark", "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "TIMESTAMP")
	require.Contains(t, lines[1], "★")
	require.Contains(t, lines[1], "1700000000")
	require.Contains(t, lines[2], "1792022400")

	_, err = h.run(t, "bookmark", "delete", "1700000000")
	require.ErrorContains(t, err, "unstar it")

	require.Equal(t, "Unstarred 1700000000\n", h.mustRun(t, "bookmark", "star", "1700000000"))
	require.Equal(t, "Moved bookmark 1700000000 to 1700000001\n",
		h.mustRun(t, "bookmark", "edit", "1700000000", "1700000001"))

	_, err = h.run(t, "bookmark", "edit", "1700000001", "1792022400")
	require.ErrorContains(t, err, "1792022400 is already bookmarked")

	require.Equal(t, "Deleted 1700000001\n", h.mustRun(t, "bm", "rm", "1700000001"))
	_, err = h.run(t, "bookmark", "delete", "1700000001")
	require.ErrorContains(t, err, "no bookmark for timestamp 1700000001")
}

func TestBookmark_ListEmpty(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, "No bookmarks.\n", h.mustRun(t, "bookmark", "list"))
}

func TestBookmark_ListLimitKeepsStarred(t *testing.T) {
	h := newHarness(t)
	for _, ts := range []string{"1", "2", "3"} {
		h.mustRun(t, "bookmark", "add", ts)
	}
	h.mustRun(t, "bookmark", "star", "1")

	out := h.mustRun(t, "bookmark", "list", "--limit", "2")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "header, starred row, newest regular row")
	require.Contains(t, lines[1], "★")
	require.Contains(t, lines[2], " 3 ")
}

func TestBookmark_StarMissing(t *testing.T) {
	h := newHarness(t)
	_, err := h.run(t, "bookmark", "star", "42")
	require.ErrorContains(t, err, "no bookmark for timestamp 42")
}
