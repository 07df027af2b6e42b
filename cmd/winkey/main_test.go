package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_TextOutput(t *testing.T) {
	t.Parallel()
	var out strings.Builder

	allValid, err := run(config{Output: "text"}, []string{"757-2573155", "555-5555555"}, nil, &out, discardLogger())
	require.NoError(t, err)
	assert.False(t, allValid)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "757-2573155\tvalid (windows95)", lines[0])
	assert.Equal(t, "555-5555555\tinvalid: forbidden digits at this position", lines[1])
}

func TestRun_JSONOutput(t *testing.T) {
	t.Parallel()
	var out strings.Builder

	allValid, err := run(config{Output: "json"}, []string{"000-0000000", "short"}, nil, &out, discardLogger())
	require.NoError(t, err)
	assert.False(t, allValid)

	dec := json.NewDecoder(strings.NewReader(out.String()))

	var first verdict
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, verdict{Key: "000-0000000", Valid: true, Release: "windows95"}, first)

	var second verdict
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, verdict{Key: "short", Valid: false, Error: "key too short for any known format"}, second)
}

func TestRun_StdinMode(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	in := strings.NewReader("000-0000000\nYOLO1111111\n")

	allValid, err := run(config{Output: "text"}, nil, in, &out, discardLogger())
	require.NoError(t, err)
	assert.True(t, allValid)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "YOLO1111111\tvalid (windows95)")
}

func TestRun_NoKeys(t *testing.T) {
	t.Parallel()
	var out strings.Builder

	allValid, err := run(config{Output: "text"}, nil, strings.NewReader(""), &out, discardLogger())
	require.NoError(t, err)
	assert.True(t, allValid)
	assert.Empty(t, out.String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}
