package house

import (
	"fmt"

	"github.com/caffeine-storm/buildinged/tiles"
)

type WallShape int

const (
	WallPlain WallShape = iota
	WallPillar
	WallMergedCorner
)

func (s WallShape) String() string {
	switch s {
	case WallPlain:
		return "Plain"
	case WallPillar:
		return "Pillar"
	case WallMergedCorner:
		return "MergedCorner"
	}
	return fmt.Sprintf("invalid wall shape (%d)", int(s))
}

// What is on one side of a square. Door, Window and Furniture point at
// objects owned by the floor.
type WallInfo struct {
	Entry *tiles.Entry
	Trim  *tiles.Entry

	Door   *Door
	Window *Window

	// Set when a piece of furniture stands in for the wall.
	Furniture     *FurnitureTile
	FurnitureTile *tiles.Tile

	Shape WallShape
}

// Property lookup used by grime resolution.
type TileProperties interface {
	Properties(tile *tiles.Tile) tiles.Properties
}

// User painted tiles that influence grime on one square. Walls and Walls2
// stand in for the resolved wall tiles when classifying the wall edge; Grime
// and Grime2 replace the computed grime outright.
type GrimeOverrides struct {
	Walls, Walls2 *tiles.Tile
	Grime, Grime2 *tiles.Tile
}

// One resolved wall slot, as chosen by wall variant selection. Trim and
// grime are laid out to match.
type wallSlot struct {
	used   bool
	dir    Dir
	offset int
	direct bool
	merged bool
}

// The fully resolved render state of one cell of a floor.
type Square struct {
	walls    [NumDirs]WallInfo
	sections [NumSections]SectionValue

	// True if the cell is not inside any room.
	Exterior bool

	slots [2]wallSlot
}

func (s *Square) Wall(side Dir) WallInfo {
	return s.walls[side]
}

func (s *Square) Section(section Section) SectionValue {
	return s.sections[section]
}

// The tile drawn for a section, or the none tile.
func (s *Square) Tile(section Section) *tiles.Tile {
	return s.sections[section].Tile()
}

func (s *Square) SetWallSide(side Dir, entry *tiles.Entry) {
	w := &s.walls[side]
	w.Entry = entry
	w.Furniture = nil
	w.FurnitureTile = nil
	w.Shape = WallPlain
}

func (s *Square) SetWallFurniture(side Dir, ft *FurnitureTile, tile *tiles.Tile) {
	w := &s.walls[side]
	w.Entry = nil
	w.Furniture = ft
	w.FurnitureTile = tile
	w.Shape = WallPlain
}

func (s *Square) SetWallTrim(side Dir, trim *tiles.Entry) {
	s.walls[side].Trim = trim
}

func (s *Square) setPillar(entry, trim *tiles.Entry) {
	s.SetWallSide(W, entry)
	s.walls[W].Trim = trim
	s.walls[W].Shape = WallPillar
}

// Furniture standing in for a wall does not count.
func (s *Square) HasWallSide(side Dir) bool {
	return !s.walls[side].Entry.IsNone()
}

func (s *Square) HasDoor(side Dir) bool {
	d := s.walls[side].Door
	return d != nil && !d.Tile.IsNone()
}

func (s *Square) HasDoorFrame(side Dir) bool {
	d := s.walls[side].Door
	return d != nil && !d.FrameTile.IsNone()
}

func (s *Square) HasWindow(side Dir) bool {
	w := s.walls[side].Window
	return w != nil && !w.Tile.IsNone()
}

func (s *Square) HasCurtains(side Dir) bool {
	w := s.walls[side].Window
	return w != nil && !w.CurtainsTile.IsNone()
}

func (s *Square) HasShutters(side Dir) bool {
	w := s.walls[side].Window
	return w != nil && !w.ShuttersTile.IsNone()
}

// A side holds a door or a window, never both.
func (s *Square) SetDoor(side Dir, door *Door) {
	s.walls[side].Door = door
	s.walls[side].Window = nil
}

func (s *Square) SetWindow(side Dir, window *Window) {
	s.walls[side].Window = window
	s.walls[side].Door = nil
}

func (s *Square) ClearSection(section Section) {
	s.sections[section] = SectionValue{}
}

// Writes 'v' into the first empty slot of 'slots'. If every slot is taken
// the last one is overwritten.
func (s *Square) spill(slots []Section, v SectionValue) {
	if v.IsEmpty() {
		return
	}
	for _, section := range slots {
		if s.sections[section].IsEmpty() {
			s.sections[section] = v
			return
		}
	}
	s.sections[slots[len(slots)-1]] = v
}

// Like spill, but a full range shifts down, dropping its first value, so
// the most recent piece is always drawn on top.
func (s *Square) stack(slots []Section, v SectionValue) {
	if v.IsEmpty() {
		return
	}
	for _, section := range slots {
		if s.sections[section].IsEmpty() {
			s.sections[section] = v
			return
		}
	}
	for i := 1; i < len(slots); i++ {
		s.sections[slots[i-1]] = s.sections[slots[i]]
	}
	s.sections[slots[len(slots)-1]] = v
}

func (s *Square) ReplaceFloor(entry *tiles.Entry, offset int) {
	s.sections[SectionFloor] = EntryValue(entry, offset)
}

func (s *Square) ReplaceFloorTile(tile *tiles.Tile) {
	s.sections[SectionFloor] = TileValue(tile)
}

func (s *Square) ReplaceWall(entry *tiles.Entry, offset int) {
	s.spill(wallSections, EntryValue(entry, offset))
}

func (s *Square) ReplaceWallTile(tile *tiles.Tile) {
	s.spill(wallSections, TileValue(tile))
}

func (s *Square) ReplaceWallTrim(entry *tiles.Entry, offset int) {
	s.spill(wallTrimSections, EntryValue(entry, offset))
}

func (s *Square) ReplaceDoor(entry *tiles.Entry, offset int) {
	s.spill(doorSections, EntryValue(entry, offset))
}

func (s *Square) ReplaceFrame(entry *tiles.Entry, offset int) {
	s.spill(frameSections, EntryValue(entry, offset))
}

func (s *Square) ReplaceWindow(entry *tiles.Entry, offset int) {
	s.spill(windowSections, EntryValue(entry, offset))
}

// East and south curtains hang on the far side of the cell and go in the
// second curtains layer.
func (s *Square) ReplaceCurtains(entry *tiles.Entry, offset int) {
	if offset == tiles.CurtainsEast || offset == tiles.CurtainsSouth {
		s.spill(curtains2Sections, EntryValue(entry, offset))
		return
	}
	s.spill(curtainsSections, EntryValue(entry, offset))
}

func (s *Square) ReplaceShutters(entry *tiles.Entry, offset int) {
	s.spill(shutterSections, EntryValue(entry, offset))
}

func (s *Square) ReplaceFurniture(layer Layer, v SectionValue) {
	s.stack(layer.furnitureSections(), v)
}

func (s *Square) ReplaceRoof(entry *tiles.Entry, offset int) {
	s.spill(roofSections, EntryValue(entry, offset))
}

func (s *Square) ReplaceRoofCap(entry *tiles.Entry, offset int) {
	s.spill(roofCapSections, EntryValue(entry, offset))
}

func (s *Square) ReplaceRoofTop(entry *tiles.Entry, offset int) {
	s.sections[SectionRoofTop] = EntryValue(entry, offset)
}

func (s *Square) ReplaceFloorGrime(grime *tiles.Entry, props TileProperties, overrides GrimeOverrides) {
	s.replaceGrime(floorGrimeSections, grime, props, overrides)
}

func (s *Square) ReplaceWallGrime(grime *tiles.Entry, props TileProperties, overrides GrimeOverrides) {
	s.replaceGrime(wallGrimeSections, grime, props, overrides)
}

func (s *Square) replaceGrime(slots []Section, grime *tiles.Entry, props TileProperties, overrides GrimeOverrides) {
	userWalls := [2]*tiles.Tile{overrides.Walls, overrides.Walls2}
	userGrime := [2]*tiles.Tile{overrides.Grime, overrides.Grime2}
	for i, section := range slots {
		// Grime layer furniture stamped earlier keeps its slot.
		if !s.sections[section].IsEmpty() {
			continue
		}
		if !userGrime[i].IsNone() {
			s.sections[section] = TileValue(userGrime[i])
			continue
		}
		s.sections[section] = SectionValue{}
		if grime.IsNone() {
			continue
		}
		if offset, ok := s.grimeOffset(wallSections[i], userWalls[i], props); ok {
			s.sections[section] = EntryValue(grime, offset)
		}
	}
}

// Picks the grime offset that goes with whatever is drawn in 'wall'.
func (s *Square) grimeOffset(wall Section, userWall *tiles.Tile, props TileProperties) (int, bool) {
	var wallTile *tiles.Tile
	offset := -1
	switch v := s.sections[wall]; {
	case !userWall.IsNone():
		wallTile = userWall
		offset = grimeForEdge(props.Properties(wallTile).WallEdge)
	case v.IsEmpty():
		return 0, false
	case v.IsDirect():
		wallTile = v.Tile()
		offset = grimeForEdge(props.Properties(wallTile).WallEdge)
	default:
		wallTile = v.Tile()
		offset = grimeForWallOffset(v.Offset())
	}
	if offset < 0 {
		return 0, false
	}

	offset = applyGrimeStyle(offset, props.Properties(wallTile).GrimeStyle)

	// There is no grime for a corner where two different walls meet.
	if !sameEntry(s.walls[W].Entry, s.walls[N].Entry) {
		switch offset {
		case tiles.GrimeNorthWest:
			offset = tiles.GrimeWest
		case tiles.GrimeNorthWestTrim:
			offset = tiles.GrimeWestTrim
		}
	}
	return offset, true
}

func sameEntry(a, b *tiles.Entry) bool {
	if a.IsNone() && b.IsNone() {
		return true
	}
	return a == b
}

func grimeForWallOffset(offset int) int {
	switch offset {
	case tiles.WallWest:
		return tiles.GrimeWest
	case tiles.WallNorth:
		return tiles.GrimeNorth
	case tiles.WallNorthWest:
		return tiles.GrimeNorthWest
	case tiles.WallSouthEast:
		return tiles.GrimeSouthEast
	case tiles.WallWestWindow:
		return tiles.GrimeWestWindow
	case tiles.WallNorthWindow:
		return tiles.GrimeNorthWindow
	case tiles.WallWestDoor:
		return tiles.GrimeWestDoor
	case tiles.WallNorthDoor:
		return tiles.GrimeNorthDoor
	}
	return -1
}

func grimeForEdge(edge tiles.WallEdge) int {
	switch edge {
	case tiles.EdgeWest:
		return tiles.GrimeWest
	case tiles.EdgeNorth:
		return tiles.GrimeNorth
	case tiles.EdgeNorthWest:
		return tiles.GrimeNorthWest
	case tiles.EdgeSouthEast:
		return tiles.GrimeSouthEast
	case tiles.EdgeWestWindow:
		return tiles.GrimeWestWindow
	case tiles.EdgeNorthWindow:
		return tiles.GrimeNorthWindow
	case tiles.EdgeWestDoor:
		return tiles.GrimeWestDoor
	case tiles.EdgeNorthDoor:
		return tiles.GrimeNorthDoor
	}
	return -1
}

func applyGrimeStyle(offset int, style tiles.GrimeStyle) int {
	switch style {
	case tiles.GrimeStyleTrim:
		switch offset {
		case tiles.GrimeWest:
			return tiles.GrimeWestTrim
		case tiles.GrimeNorth:
			return tiles.GrimeNorthTrim
		case tiles.GrimeNorthWest:
			return tiles.GrimeNorthWestTrim
		case tiles.GrimeSouthEast:
			return tiles.GrimeSouthEastTrim
		}
	case tiles.GrimeStyleFullWindow:
		switch offset {
		case tiles.GrimeWestWindow:
			return tiles.GrimeWestTrim
		case tiles.GrimeNorthWindow:
			return tiles.GrimeNorthTrim
		}
	case tiles.GrimeStyleDoubleLeft:
		switch offset {
		case tiles.GrimeWest:
			return tiles.GrimeWestDoubleLeft
		case tiles.GrimeNorth:
			return tiles.GrimeNorthDoubleLeft
		}
	case tiles.GrimeStyleDoubleRight:
		switch offset {
		case tiles.GrimeWest:
			return tiles.GrimeWestDoubleRight
		case tiles.GrimeNorth:
			return tiles.GrimeNorthDoubleRight
		}
	}
	return offset
}
