package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The sample data shipped with the repo. The datadir can only be set once
// per process so every test uses it.
var sampleData = filepath.Join("..", "data")

func runForTest(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	argv := append([]string{"buildinged", "-data", sampleData}, args...)
	err := run(argv, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func linesOf(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestDumpFloorLayer(t *testing.T) {
	stdout, stderr, err := runForTest(t, "-plan", "cottage.json", "-level", "0", "-layer", "Floor")
	require.NoError(t, err)

	lines := linesOf(stdout)
	assert.Equal(t, "# cottage floor 0 layer Floor", lines[0])
	assert.Contains(t, lines, "0 0 oak_0")
	assert.Contains(t, lines, "2 1 oak_0")
	assert.Contains(t, lines, "4 2 slate_0")
	assert.Contains(t, lines, "3 4 grass_0")
	// Every cell of the 6x5 building has a floor tile, plus the header.
	assert.Len(t, lines, 31)

	assert.Contains(t, stderr, "loaded plan")
}

func TestDumpDoors(t *testing.T) {
	stdout, _, err := runForTest(t, "-plan", "cottage.json", "-level", "0", "-layer", "Doors")
	require.NoError(t, err)

	lines := linesOf(stdout)
	assert.Equal(t, []string{
		"# cottage floor 0 layer Doors",
		"1 0 door_1",
		"4 0 window_1",
		"0 2 window_0",
		"3 2 door_0",
	}, lines)
}

func TestDumpUpperFloorUnderStairs(t *testing.T) {
	stdout, _, err := runForTest(t, "-plan", "cottage.json", "-level", "1", "-layer", "Floor")
	require.NoError(t, err)

	lines := linesOf(stdout)
	assert.Equal(t, "# cottage floor 1 layer Floor", lines[0])
	assert.Contains(t, lines, "1 1 oak_0")
	assert.Contains(t, lines, "2 0 oak_0")
	assert.Contains(t, lines, "2 4 oak_0")
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, "2 1 "), "stairs should cut the floor: %q", line)
		assert.False(t, strings.HasPrefix(line, "2 3 "), "stairs should cut the floor: %q", line)
	}
}

func TestDumpEverything(t *testing.T) {
	stdout, _, err := runForTest(t, "-plan", filepath.Join(sampleData, "plans", "cottage.json"))
	require.NoError(t, err)

	assert.Contains(t, stdout, "# cottage floor 0 layer Walls\n")
	assert.Contains(t, stdout, "# cottage floor 1 layer Roof\n")
}

func TestRunErrors(t *testing.T) {
	cases := map[string][]string{
		"no plan":         {},
		"unknown layer":   {"-plan", "cottage.json", "-layer", "Attic"},
		"missing floor":   {"-plan", "cottage.json", "-level", "5"},
		"watch sans view": {"-plan", "cottage.json", "-watch"},
		"missing plan":    {"-plan", "mansion.json"},
		"bad flag":        {"-plan", "cottage.json", "-zoom"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := runForTest(t, args...)
			assert.Error(t, err)
			assert.Empty(t, stdout)
		})
	}
}
