package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caffeine-storm/buildinged/base"
	"github.com/caffeine-storm/buildinged/house"
	"github.com/caffeine-storm/buildinged/registry"
	"github.com/caffeine-storm/buildinged/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAllRegistries(t *testing.T) {
	dir, err := filepath.Abs(filepath.Join("testdata", "data"))
	require.NoError(t, err)
	base.SetDatadir(dir)

	require.NoError(t, registry.LoadAllRegistries())

	assert.Equal(t, []string{"oak"}, tiles.GetAllEntryNames(tiles.Floors))
	assert.Equal(t, []string{"brick"}, tiles.GetAllEntryNames(tiles.ExteriorWalls))
	assert.Empty(t, tiles.GetAllEntryNames(tiles.RoofTops))
	assert.Equal(t, []string{"chair"}, house.GetAllFurnitureNames())

	chair, err := house.MakeFurniture("chair")
	require.NoError(t, err)
	assert.Equal(t, house.LayerFurniture, chair.Layer)

	_, err = os.Stat(filepath.Join(dir, "furniture", "broken.json"))
	require.NoError(t, err, "the broken furniture file should be skipped, not missing")
}
