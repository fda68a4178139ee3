package tiles

import (
	"fmt"
	"strconv"
	"strings"
)

// A single image in a tileset. Tiles are immutable once handed out by a
// catalog and are shared by pointer.
type Tile struct {
	Tileset string
	Index   int
}

var noneTile = &Tile{}

// The distinguished "no tile" sentinel.
func NoneTile() *Tile {
	return noneTile
}

func (t *Tile) IsNone() bool {
	return t == nil || t.Tileset == ""
}

// Tiles are named "<tileset>_<index>", e.g. "walls_exterior_house_01_32".
func (t *Tile) Name() string {
	if t.IsNone() {
		return ""
	}
	return fmt.Sprintf("%s_%d", t.Tileset, t.Index)
}

func (t *Tile) String() string {
	if t.IsNone() {
		return "<none>"
	}
	return t.Name()
}

// Splits a tile name into its tileset and index. The index is everything
// after the last underscore.
func ParseTileName(name string) (string, int, bool) {
	sep := strings.LastIndex(name, "_")
	if sep <= 0 || sep == len(name)-1 {
		return "", 0, false
	}
	index, err := strconv.Atoi(name[sep+1:])
	if err != nil || index < 0 {
		return "", 0, false
	}
	return name[:sep], index, true
}
