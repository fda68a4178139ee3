package tiles

import "fmt"

// A named bundle of tiles for one structural role, indexed by the offset
// enumeration of its category.
type Entry struct {
	category Category
	name     string
	tiles    []*Tile
}

// Builds an entry from offset -> tile. Offsets not present map to the none
// tile.
func NewEntry(category Category, name string, tiles map[int]*Tile) *Entry {
	e := &Entry{
		category: category,
		name:     name,
		tiles:    make([]*Tile, category.NumOffsets()),
	}
	for i := range e.tiles {
		e.tiles[i] = noneTile
	}
	for offset, tile := range tiles {
		if offset < 0 || offset >= len(e.tiles) {
			panic(fmt.Errorf("offset %d out of range for category %s", offset, category))
		}
		if tile != nil {
			e.tiles[offset] = tile
		}
	}
	return e
}

// An entry with no tiles at all.
func NewNoneEntry(category Category) *Entry {
	return NewEntry(category, "", nil)
}

func (e *Entry) Category() Category {
	return e.category
}

func (e *Entry) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

func (e *Entry) IsNone() bool {
	return e == nil || e.name == ""
}

func (e *Entry) Tile(offset int) *Tile {
	if e == nil || offset < 0 || offset >= len(e.tiles) {
		return noneTile
	}
	return e.tiles[offset]
}

func (e *Entry) String() string {
	if e.IsNone() {
		return "<none>"
	}
	return fmt.Sprintf("%s/%s", e.category, e.name)
}
