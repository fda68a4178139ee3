package tiles_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caffeine-storm/buildinged/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchProperties(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "properties.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"walls": {"0": {"WallEdge": "West"}}}`), 0o644))

	pt, err := tiles.LoadPropertyTable(path)
	require.NoError(t, err)

	reloaded := make(chan struct{}, 8)
	stop, err := tiles.WatchProperties(path, pt, func() {
		reloaded <- struct{}{}
	})
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte(`{"walls": {"0": {"WallEdge": "North"}}}`), 0o644))

	wall := &tiles.Tile{Tileset: "walls", Index: 0}
	assert.Eventually(t, func() bool {
		return pt.Lookup(wall).WallEdge == tiles.EdgeNorth
	}, 5*time.Second, 10*time.Millisecond)

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("reload callback never ran")
	}
}

func TestWatchPropertiesKeepsTableOnBadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "properties.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"walls": {"0": {"WallEdge": "West"}}}`), 0o644))

	pt, err := tiles.LoadPropertyTable(path)
	require.NoError(t, err)

	stop, err := tiles.WatchProperties(path, pt, func() {
		t.Error("reload callback ran for a broken file")
	})
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte(`{"walls": `), 0o644))
	time.Sleep(200 * time.Millisecond)

	wall := &tiles.Tile{Tileset: "walls", Index: 0}
	assert.Equal(t, tiles.EdgeWest, pt.Lookup(wall).WallEdge)
}

func TestWatchPropertiesStopTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "properties.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	stop, err := tiles.WatchProperties(path, tiles.NewPropertyTable(), nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		stop()
		stop()
	})
}
