package tiles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caffeine-storm/buildinged/tiles"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileNames(t *testing.T) {
	Convey("Tile names", t, func() {
		Convey("round trip through ParseTileName", func() {
			tile := &tiles.Tile{Tileset: "walls_exterior_01", Index: 32}
			So(tile.Name(), ShouldEqual, "walls_exterior_01_32")
			tileset, index, ok := tiles.ParseTileName(tile.Name())
			So(ok, ShouldBeTrue)
			So(tileset, ShouldEqual, "walls_exterior_01")
			So(index, ShouldEqual, 32)
		})
		Convey("reject malformed names", func() {
			for _, name := range []string{"", "noindex", "trailing_", "_3", "neg_-1", "x_y"} {
				_, _, ok := tiles.ParseTileName(name)
				So(ok, ShouldBeFalse)
			}
		})
		Convey("the none tile is none", func() {
			So(tiles.NoneTile().IsNone(), ShouldBeTrue)
			So(tiles.NoneTile().Name(), ShouldEqual, "")
			var nilTile *tiles.Tile
			So(nilTile.IsNone(), ShouldBeTrue)
		})
	})
}

func TestEntries(t *testing.T) {
	Convey("Entries", t, func() {
		west := &tiles.Tile{Tileset: "w", Index: 1}
		e := tiles.NewEntry(tiles.ExteriorWalls, "brick", map[int]*tiles.Tile{tiles.WallWest: west})

		So(e.IsNone(), ShouldBeFalse)
		So(e.Tile(tiles.WallWest), ShouldEqual, west)
		So(e.Tile(tiles.WallNorth).IsNone(), ShouldBeTrue)
		So(e.Tile(-1).IsNone(), ShouldBeTrue)
		So(e.Tile(1000).IsNone(), ShouldBeTrue)

		none := tiles.NewNoneEntry(tiles.ExteriorWalls)
		So(none.IsNone(), ShouldBeTrue)
		So(none.Tile(tiles.WallWest).IsNone(), ShouldBeTrue)

		So(func() {
			tiles.NewEntry(tiles.Floors, "bad", map[int]*tiles.Tile{5: west})
		}, ShouldPanic)
	})
}

func TestCategories(t *testing.T) {
	assert := assert.New(t)
	for c := tiles.Category(0); c < tiles.NumCategories; c++ {
		assert.NotZero(c.NumOffsets(), "category %v has no offsets", c)
		parsed, ok := tiles.ParseCategory(c.String())
		assert.True(ok)
		assert.Equal(c, parsed)
	}
	assert.Equal(16, tiles.GrimeWall.NumOffsets())
	offset, ok := tiles.RoofSlopes.ParseOffset("Outer3")
	assert.True(ok)
	assert.Equal(tiles.SlopeOuter3, offset)
	_, ok = tiles.Doors.ParseOffset("Sideways")
	assert.False(ok)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestPropertyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "properties.json")
	writeFile(t, path, `{
		"walls": {
			"0": {"WallEdge": "West"},
			"4": {"WallEdge": "WestWindow", "GrimeStyle": "FullWindow"},
			"9": {"WallEdge": "Diagonal", "GrimeStyle": "Sparkly"}
		}
	}`)

	pt, err := tiles.LoadPropertyTable(path)
	require.NoError(t, err)

	assert.Equal(t, tiles.Properties{WallEdge: tiles.EdgeWest}, pt.Lookup(&tiles.Tile{Tileset: "walls", Index: 0}))
	assert.Equal(t, tiles.Properties{WallEdge: tiles.EdgeWestWindow, GrimeStyle: tiles.GrimeStyleFullWindow},
		pt.Lookup(&tiles.Tile{Tileset: "walls", Index: 4}))
	assert.Equal(t, tiles.Properties{}, pt.Lookup(&tiles.Tile{Tileset: "walls", Index: 9}), "unknown names decode to none")
	assert.Equal(t, tiles.Properties{}, pt.Lookup(&tiles.Tile{Tileset: "floors", Index: 0}))
	assert.Equal(t, tiles.Properties{}, pt.Lookup(tiles.NoneTile()))

	writeFile(t, path, `{"walls": {"zero": {}}}`)
	assert.Error(t, pt.Reload(path))
	assert.Equal(t, tiles.EdgeWest, pt.Lookup(&tiles.Tile{Tileset: "walls", Index: 0}).WallEdge, "failed reload keeps old contents")
}

func TestRegistryCatalog(t *testing.T) {
	Convey("A registry backed catalog", t, func() {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "exterior-walls", "brick.json"), `{
			"Name": "brick",
			"Tiles": {"West": "brick_0", "North": "brick_1", "Bogus": "brick_9"}
		}`)
		writeFile(t, filepath.Join(dir, "floors", "oak.json"), `{"Name": "oak", "Tiles": {"Floor": "oak_3"}}`)
		So(tiles.LoadAllEntriesInDir(dir), ShouldBeNil)
		So(tiles.GetAllEntryNames(tiles.ExteriorWalls), ShouldResemble, []string{"brick"})

		props := tiles.NewPropertyTable()
		props.Set("brick", 0, tiles.Properties{WallEdge: tiles.EdgeWest})
		catalog := tiles.NewRegistryCatalog(props)

		Convey("resolves entries and interns tiles", func() {
			brick := catalog.Entry(tiles.ExteriorWalls, "brick")
			So(brick.IsNone(), ShouldBeFalse)
			So(brick.Tile(tiles.WallWest), ShouldEqual, catalog.Tile("brick_0"))
			So(brick.Tile(tiles.WallNorthWest).IsNone(), ShouldBeTrue)
			So(catalog.Entry(tiles.ExteriorWalls, "brick"), ShouldEqual, brick)
			So(catalog.Entry(tiles.Floors, "oak").Tile(tiles.FloorFloor).Name(), ShouldEqual, "oak_3")
		})

		Convey("gives none for unknown names", func() {
			So(catalog.Entry(tiles.ExteriorWalls, "stucco").IsNone(), ShouldBeTrue)
			So(catalog.Entry(tiles.Windows, "").IsNone(), ShouldBeTrue)
			So(catalog.Tile("").IsNone(), ShouldBeTrue)
			So(catalog.Tile("garbage").IsNone(), ShouldBeTrue)
		})

		Convey("reports properties", func() {
			So(catalog.Properties(catalog.Tile("brick_0")).WallEdge, ShouldEqual, tiles.EdgeWest)
			So(catalog.Properties(catalog.Tile("brick_1")).WallEdge, ShouldEqual, tiles.EdgeNone)
		})
	})
}
