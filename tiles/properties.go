package tiles

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/caffeine-storm/buildinged/base"
	"github.com/caffeine-storm/buildinged/logging"
)

// Which wall edge a tile depicts. Grime placement keys off of this.
type WallEdge int

const (
	EdgeNone WallEdge = iota
	EdgeWest
	EdgeNorth
	EdgeNorthWest
	EdgeSouthEast
	EdgeWestWindow
	EdgeNorthWindow
	EdgeWestDoor
	EdgeNorthDoor
)

var wallEdgeNames = []string{
	"", "West", "North", "NorthWest", "SouthEast",
	"WestWindow", "NorthWindow", "WestDoor", "NorthDoor",
}

func (e WallEdge) String() string {
	if e < 0 || int(e) >= len(wallEdgeNames) {
		return fmt.Sprintf("WallEdge(%d)", int(e))
	}
	if e == EdgeNone {
		return "None"
	}
	return wallEdgeNames[e]
}

// Unrecognized names decode to EdgeNone.
func (e *WallEdge) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*e = EdgeNone
	for i, name := range wallEdgeNames {
		if i > 0 && name == s {
			*e = WallEdge(i)
		}
	}
	return nil
}

func (e WallEdge) MarshalJSON() ([]byte, error) {
	if e <= EdgeNone || int(e) >= len(wallEdgeNames) {
		return json.Marshal("")
	}
	return json.Marshal(wallEdgeNames[e])
}

// Modifies which grime offset is used next to a wall tile.
type GrimeStyle int

const (
	GrimeStyleNone GrimeStyle = iota
	GrimeStyleFullWindow
	GrimeStyleTrim
	GrimeStyleDoubleLeft
	GrimeStyleDoubleRight
)

var grimeStyleNames = []string{"", "FullWindow", "Trim", "DoubleLeft", "DoubleRight"}

func (g GrimeStyle) String() string {
	if g < 0 || int(g) >= len(grimeStyleNames) {
		return fmt.Sprintf("GrimeStyle(%d)", int(g))
	}
	if g == GrimeStyleNone {
		return "None"
	}
	return grimeStyleNames[g]
}

func (g *GrimeStyle) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*g = GrimeStyleNone
	for i, name := range grimeStyleNames {
		if i > 0 && name == s {
			*g = GrimeStyle(i)
		}
	}
	return nil
}

func (g GrimeStyle) MarshalJSON() ([]byte, error) {
	if g <= GrimeStyleNone || int(g) >= len(grimeStyleNames) {
		return json.Marshal("")
	}
	return json.Marshal(grimeStyleNames[g])
}

type Properties struct {
	WallEdge   WallEdge   `json:",omitempty"`
	GrimeStyle GrimeStyle `json:",omitempty"`
}

// Per-tile properties keyed by tileset and index. Safe for concurrent use so
// that a file watcher can reload it while layouts are being resolved.
type PropertyTable struct {
	mu    sync.RWMutex
	props map[string]map[int]Properties
}

func NewPropertyTable() *PropertyTable {
	return &PropertyTable{
		props: make(map[string]map[int]Properties),
	}
}

// Reads a table from a json file of the form
//
//	{"<tileset>": {"<index>": {"WallEdge": "West", "GrimeStyle": "Trim"}}}
func LoadPropertyTable(path string) (*PropertyTable, error) {
	pt := NewPropertyTable()
	if err := pt.Reload(path); err != nil {
		return nil, err
	}
	return pt, nil
}

// Replaces the contents of the table with what is in 'path'. On error the
// table is left untouched.
func (pt *PropertyTable) Reload(path string) error {
	var raw map[string]map[string]Properties
	if err := base.LoadJson(path, &raw); err != nil {
		return err
	}
	props := make(map[string]map[int]Properties, len(raw))
	for tileset, byIndex := range raw {
		props[tileset] = make(map[int]Properties, len(byIndex))
		for key, p := range byIndex {
			index, err := strconv.Atoi(key)
			if err != nil {
				return fmt.Errorf("bad tile index %q for tileset %q in %q: %w", key, tileset, path, err)
			}
			props[tileset][index] = p
		}
	}

	pt.mu.Lock()
	pt.props = props
	pt.mu.Unlock()
	logging.Debug("loaded tile properties", "path", path, "tilesets", len(props))
	return nil
}

func (pt *PropertyTable) Set(tileset string, index int, p Properties) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	byIndex, ok := pt.props[tileset]
	if !ok {
		byIndex = make(map[int]Properties)
		pt.props[tileset] = byIndex
	}
	byIndex[index] = p
}

// The zero Properties is returned for the none tile and for tiles the table
// knows nothing about.
func (pt *PropertyTable) Lookup(t *Tile) Properties {
	if pt == nil || t.IsNone() {
		return Properties{}
	}
	pt.mu.RLock()
	defer pt.mu.RUnlock()
	return pt.props[t.Tileset][t.Index]
}
