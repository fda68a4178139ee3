package tiles

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/caffeine-storm/buildinged/base"
	"github.com/caffeine-storm/buildinged/logging"
)

// Read-only access to the tile library. The layout engine never mutates a
// catalog.
type Catalog interface {
	// Looks up an entry by name. Unknown names give the category's none entry.
	Entry(category Category, name string) *Entry

	// Looks up a tile by its "<tileset>_<index>" name. The empty string and
	// malformed names give the none tile.
	Tile(name string) *Tile

	NoneTile() *Tile
	NoneEntry(category Category) *Entry
	Properties(tile *Tile) Properties
}

// An EntryDef is how an entry is stored on disk. Tiles maps offset names,
// e.g. "West" or "NorthDoor", to tile names.
type EntryDef struct {
	Name  string
	Tiles map[string]string
}

type entryRef struct {
	Defname string
	*EntryDef
}

// Registers one registry per category and fills each from
// <dir>/<category-name>/*.json. Missing category directories are skipped.
func LoadAllEntriesInDir(dir string) error {
	for c := Category(0); c < NumCategories; c++ {
		base.RemoveRegistry(c.RegistryName())
		base.RegisterRegistry(c.RegistryName(), make(map[string]*EntryDef))

		catDir := filepath.Join(dir, c.String())
		if _, err := os.Stat(catDir); os.IsNotExist(err) {
			logging.Debug("no tile entries for category", "category", c, "dir", catDir)
			continue
		}
		failures, err := base.RegisterAllObjectsInDir(c.RegistryName(), catDir, ".json")
		if err != nil {
			return err
		}
		if failures > 0 {
			logging.Warn("some tile entries failed to load", "category", c, "failures", failures)
		}
	}
	return nil
}

func GetAllEntryNames(category Category) []string {
	return base.GetAllNamesInRegistry(category.RegistryName())
}

// A Catalog backed by the entry registries and a PropertyTable. Tiles are
// interned so that equal names give the same *Tile.
type RegistryCatalog struct {
	props *PropertyTable

	mu      sync.Mutex
	tiles   map[string]*Tile
	entries [NumCategories]map[string]*Entry
	nones   [NumCategories]*Entry
}

func NewRegistryCatalog(props *PropertyTable) *RegistryCatalog {
	rc := &RegistryCatalog{
		props: props,
		tiles: make(map[string]*Tile),
	}
	for c := range rc.entries {
		rc.entries[c] = make(map[string]*Entry)
		rc.nones[c] = NewNoneEntry(Category(c))
	}
	return rc
}

func (rc *RegistryCatalog) NoneTile() *Tile {
	return noneTile
}

func (rc *RegistryCatalog) NoneEntry(category Category) *Entry {
	return rc.nones[category]
}

func (rc *RegistryCatalog) Properties(tile *Tile) Properties {
	return rc.props.Lookup(tile)
}

func (rc *RegistryCatalog) Tile(name string) *Tile {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.tileLocked(name)
}

func (rc *RegistryCatalog) tileLocked(name string) *Tile {
	if name == "" {
		return noneTile
	}
	if t, ok := rc.tiles[name]; ok {
		return t
	}
	tileset, index, ok := ParseTileName(name)
	if !ok {
		logging.Warn("malformed tile name", "name", name)
		return noneTile
	}
	t := &Tile{Tileset: tileset, Index: index}
	rc.tiles[name] = t
	return t
}

func (rc *RegistryCatalog) Entry(category Category, name string) *Entry {
	if name == "" {
		return rc.nones[category]
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if e, ok := rc.entries[category][name]; ok {
		return e
	}

	ref := entryRef{Defname: name}
	if err := base.GetObject(category.RegistryName(), &ref); err != nil {
		logging.Warn("unknown tile entry", "category", category, "name", name, "err", err)
		return rc.nones[category]
	}

	tiles := make(map[int]*Tile, len(ref.Tiles))
	for offsetName, tileName := range ref.Tiles {
		offset, ok := category.ParseOffset(offsetName)
		if !ok {
			logging.Warn("unknown offset in tile entry", "category", category, "entry", name, "offset", offsetName)
			continue
		}
		tiles[offset] = rc.tileLocked(tileName)
	}
	e := NewEntry(category, name, tiles)
	rc.entries[category][name] = e
	return e
}
