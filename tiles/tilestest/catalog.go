// Package tilestest provides an in-memory tiles.Catalog for tests.
package tilestest

import (
	"fmt"

	"github.com/caffeine-storm/buildinged/tiles"
)

type Catalog struct {
	tiles   map[string]*tiles.Tile
	entries map[tiles.Category]map[string]*tiles.Entry
	nones   map[tiles.Category]*tiles.Entry
	props   *tiles.PropertyTable
}

func NewCatalog() *Catalog {
	return &Catalog{
		tiles:   make(map[string]*tiles.Tile),
		entries: make(map[tiles.Category]map[string]*tiles.Entry),
		nones:   make(map[tiles.Category]*tiles.Entry),
		props:   tiles.NewPropertyTable(),
	}
}

func (c *Catalog) Tile(name string) *tiles.Tile {
	if name == "" {
		return tiles.NoneTile()
	}
	if t, ok := c.tiles[name]; ok {
		return t
	}
	tileset, index, ok := tiles.ParseTileName(name)
	if !ok {
		return tiles.NoneTile()
	}
	t := &tiles.Tile{Tileset: tileset, Index: index}
	c.tiles[name] = t
	return t
}

func (c *Catalog) NoneTile() *tiles.Tile {
	return tiles.NoneTile()
}

func (c *Catalog) NoneEntry(category tiles.Category) *tiles.Entry {
	if e, ok := c.nones[category]; ok {
		return e
	}
	e := tiles.NewNoneEntry(category)
	c.nones[category] = e
	return e
}

func (c *Catalog) Entry(category tiles.Category, name string) *tiles.Entry {
	if e, ok := c.entries[category][name]; ok {
		return e
	}
	return c.NoneEntry(category)
}

func (c *Catalog) Properties(t *tiles.Tile) tiles.Properties {
	return c.props.Lookup(t)
}

// Adds an entry whose tile at each offset is "<name>_<offset>". With no
// offsets given, every offset of the category is filled.
func (c *Catalog) AddEntry(category tiles.Category, name string, offsets ...int) *tiles.Entry {
	if len(offsets) == 0 {
		for i := 0; i < category.NumOffsets(); i++ {
			offsets = append(offsets, i)
		}
	}
	ts := make(map[int]*tiles.Tile, len(offsets))
	for _, offset := range offsets {
		ts[offset] = c.Tile(fmt.Sprintf("%s_%d", name, offset))
	}
	e := tiles.NewEntry(category, name, ts)
	if c.entries[category] == nil {
		c.entries[category] = make(map[string]*tiles.Entry)
	}
	c.entries[category][name] = e
	return e
}

func (c *Catalog) SetProperties(name string, p tiles.Properties) *tiles.Tile {
	t := c.Tile(name)
	if t.IsNone() {
		panic(fmt.Errorf("can't set properties on malformed tile name %q", name))
	}
	c.props.Set(t.Tileset, t.Index, p)
	return t
}
