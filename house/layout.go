package house

import (
	"github.com/caffeine-storm/buildinged/logging"
	"github.com/caffeine-storm/buildinged/tiles"
)

// The part of the tile catalog the layout engine needs.
type TileCatalog interface {
	NoneTile() *tiles.Tile
	Tile(name string) *tiles.Tile
	Properties(tile *tiles.Tile) tiles.Properties
}

// Rebuilds every square of the floor from its rooms and objects. The result
// depends only on the building, this floor, the floor below and the catalog;
// running it twice gives identical squares. Nothing but the squares and the
// room-index cache is written.
func (f *Floor) LayoutToSquares(catalog TileCatalog) {
	logging.Debug("laying out floor", "level", f.level, "width", f.width, "height", f.height, "objects", len(f.Objects))

	f.allocSquares()
	f.classifyCells()
	logging.Trace("classified cells", "level", f.level)

	f.layoutRoomWalls()
	f.layoutWallObjects()
	f.layoutWallFurniture(catalog)
	f.layoutPillars()
	logging.Trace("placed walls", "level", f.level)

	f.layoutObjects(catalog)
	f.selectWallVariants()
	f.finishDoorsAndWindows()
	logging.Trace("placed objects", "level", f.level)

	f.layoutFloorTiles()
	f.layoutTrim()
	f.layoutGrime(catalog)
	logging.Trace("finished floor", "level", f.level)
}

func (f *Floor) allocSquares() {
	f.squares = make([]Square, (f.width+1)*(f.height+1))
	f.roomIndex = make([]int, len(f.squares))
}

func (f *Floor) classifyCells() {
	index := make(map[*Room]int, len(f.building.Rooms))
	for i, r := range f.building.Rooms {
		index[r] = i
	}
	for y := 0; y <= f.height; y++ {
		for x := 0; x <= f.width; x++ {
			slot := f.squareSlot(x, y)
			f.roomIndex[slot] = -1
			if x < f.width && y < f.height {
				if r := f.RoomAt(x, y); r != nil && !r.EmptyOutside {
					if i, ok := index[r]; ok {
						f.roomIndex[slot] = i
					}
				}
			}
			f.squares[slot].Exterior = f.roomIndex[slot] < 0
		}
	}
}

// -1 outside of the square grid as well.
func (f *Floor) roomIndexOrExterior(x, y int) int {
	if !f.inSquares(x, y) {
		return -1
	}
	return f.RoomIndexAt(x, y)
}

func (f *Floor) exteriorAt(x, y int) bool {
	return f.roomIndexOrExterior(x, y) < 0
}

// Walls go on every boundary between outside and inside, all around the
// floor, and between different rooms. A wall between two rooms uses the
// walls of the room that owns the square it is drawn on.
func (f *Floor) layoutRoomWalls() {
	b := f.building
	var exteriorTrim *tiles.Entry
	if f.level == 0 {
		exteriorTrim = b.ExteriorWallTrim
	}

	place := func(sq *Square, side Dir, here, there int, edge bool) {
		switch {
		case edge || (here < 0) != (there < 0):
			sq.SetWallSide(side, b.ExteriorWall)
			sq.SetWallTrim(side, exteriorTrim)
		case here >= 0 && there >= 0 && here != there:
			room := b.Rooms[here]
			sq.SetWallSide(side, room.InteriorWall)
			sq.SetWallTrim(side, room.InteriorWallTrim)
		}
	}

	for y := 0; y <= f.height; y++ {
		for x := 0; x <= f.width; x++ {
			sq := f.Square(x, y)
			here := f.RoomIndexAt(x, y)
			if y < f.height {
				place(sq, W, here, f.roomIndexOrExterior(x-1, y), x == 0 || x == f.width)
			}
			if x < f.width {
				place(sq, N, here, f.roomIndexOrExterior(x, y-1), y == 0 || y == f.height)
			}
		}
	}
}

// Maps a cell side to the square that draws it: E and S sides belong to the
// neighbour's W and N.
func (f *Floor) wallSquare(x, y int, side Dir) (int, int, Dir) {
	switch side {
	case E:
		return x + 1, y, W
	case S:
		return x, y + 1, N
	}
	return x, y, side
}

func (f *Floor) layoutWallObjects() {
	for _, o := range f.Objects {
		wall, ok := o.(*WallObject)
		if !ok {
			continue
		}
		for i := 0; i < wall.Length; i++ {
			x, y := wall.X, wall.Y+i
			if wall.Dir == N || wall.Dir == S {
				x, y = wall.X+i, wall.Y
			}
			x, y, side := f.wallSquare(x, y, wall.Dir)
			if !f.inSquares(x, y) {
				continue
			}
			sq := f.Square(x, y)
			if sq.Exterior {
				sq.SetWallSide(side, wall.ExteriorTile)
				sq.SetWallTrim(side, wall.ExteriorTrim)
			} else {
				sq.SetWallSide(side, wall.InteriorTile)
				sq.SetWallTrim(side, wall.InteriorTrim)
			}
		}
	}
}

func (f *Floor) layoutWallFurniture(catalog TileCatalog) {
	for _, o := range f.Objects {
		furn, ok := o.(*FurnitureObject)
		if !ok || furn.FurnitureDef == nil || furn.Layer != LayerWalls {
			continue
		}
		ft := furn.Tile()
		if ft == nil {
			continue
		}
		for j := 0; j < ft.Height; j++ {
			for i := 0; i < ft.Width; i++ {
				tile := catalog.Tile(ft.TileName(i, j))
				if tile.IsNone() {
					continue
				}
				x, y, side := furn.cellFor(i, j)
				if !f.inSquares(x, y) {
					continue
				}
				f.Square(x, y).SetWallFurniture(side, ft, tile)
			}
		}
	}
}

type pillar struct {
	x, y        int
	entry, trim *tiles.Entry
}

// A square with no walls of its own gets a corner piece where a wall ends at
// it from the north or the west. Sources are read before any pillar is
// placed so pillars never feed other pillars.
func (f *Floor) layoutPillars() {
	var pillars []pillar
	for y := 0; y <= f.height; y++ {
		for x := 0; x <= f.width; x++ {
			sq := f.Square(x, y)
			if sq.HasWallSide(W) || sq.HasWallSide(N) {
				continue
			}
			if sq.walls[W].Furniture != nil || sq.walls[N].Furniture != nil {
				continue
			}
			if y > 0 {
				if north := f.Square(x, y-1); north.HasWallSide(W) {
					pillars = append(pillars, pillar{x, y, north.walls[W].Entry, north.walls[W].Trim})
					continue
				}
			}
			if x > 0 {
				if west := f.Square(x-1, y); west.HasWallSide(N) {
					pillars = append(pillars, pillar{x, y, west.walls[N].Entry, west.walls[N].Trim})
				}
			}
		}
	}
	for _, p := range pillars {
		f.Square(p.x, p.y).setPillar(p.entry, p.trim)
	}
}

func (f *Floor) layoutObjects(catalog TileCatalog) {
	for _, o := range f.Objects {
		switch obj := o.(type) {
		case *Door:
			if f.inSquares(obj.X, obj.Y) {
				f.Square(obj.X, obj.Y).SetDoor(obj.Dir, obj)
			}

		case *Window:
			if f.inSquares(obj.X, obj.Y) {
				f.Square(obj.X, obj.Y).SetWindow(obj.Dir, obj)
			}

		case *Stairs:
			for _, step := range obj.steps() {
				if f.inSquares(step.x, step.y) {
					f.Square(step.x, step.y).ReplaceFurniture(LayerFurniture, EntryValue(obj.Tile, step.offset))
				}
			}

		case *FurnitureObject:
			f.stampFurniture(obj, catalog)

		case *RoofObject:
			f.stampRoof(obj)
		}
	}
}

func (f *Floor) stampFurniture(furn *FurnitureObject, catalog TileCatalog) {
	if furn.FurnitureDef == nil || furn.Layer == LayerWalls {
		return
	}
	ft := furn.Tile()
	if ft == nil {
		return
	}
	for j := 0; j < ft.Height; j++ {
		for i := 0; i < ft.Width; i++ {
			tile := catalog.Tile(ft.TileName(i, j))
			if tile.IsNone() {
				continue
			}
			x, y, _ := furn.cellFor(i, j)
			if f.inSquares(x, y) {
				f.Square(x, y).ReplaceFurniture(furn.Layer, TileValue(tile))
			}
		}
	}
}

func (f *Floor) stampRoof(r *RoofObject) {
	for j := 0; j < r.Height; j++ {
		for i := 0; i < r.Width; i++ {
			x, y := r.X+i, r.Y+j
			if !f.inSquares(x, y) {
				continue
			}
			sq := f.Square(x, y)
			cell := r.cellAt(i, j)
			if cell.slope >= 0 {
				sq.ReplaceRoof(r.SlopeTiles, cell.slope)
			}
			if cell.cap >= 0 {
				sq.ReplaceRoofCap(r.CapTiles, cell.cap)
			}
			if cell.top >= 0 && !r.topOnFloorAbove() {
				sq.ReplaceRoofTop(r.TopTiles, cell.top)
			}
		}
	}
}

// The door on the W or N wall of (x, y): either the square's own or one
// placed on the E or S side of the neighbour across that wall.
func (f *Floor) doorOn(x, y int, side Dir) *Door {
	if d := f.Square(x, y).walls[side].Door; d != nil {
		return d
	}
	if nx, ny, ok := f.across(x, y, side); ok {
		return f.Square(nx, ny).walls[opposite(side)].Door
	}
	return nil
}

func (f *Floor) windowOn(x, y int, side Dir) *Window {
	if w := f.Square(x, y).walls[side].Window; w != nil {
		return w
	}
	if nx, ny, ok := f.across(x, y, side); ok {
		return f.Square(nx, ny).walls[opposite(side)].Window
	}
	return nil
}

// The square on the other side of the W or N wall of (x, y).
func (f *Floor) across(x, y int, side Dir) (int, int, bool) {
	nx, ny := x-1, y
	if side == N {
		nx, ny = x, y-1
	}
	return nx, ny, f.inSquares(nx, ny)
}

func opposite(side Dir) Dir {
	switch side {
	case N:
		return S
	case W:
		return E
	case E:
		return W
	}
	return N
}

func isCutout(offset int) bool {
	switch offset {
	case tiles.WallWestDoor, tiles.WallNorthDoor, tiles.WallWestWindow, tiles.WallNorthWindow:
		return true
	}
	return false
}

func (f *Floor) wallOffset(x, y int, side Dir) int {
	if side == W {
		switch {
		case f.doorOn(x, y, W) != nil:
			return tiles.WallWestDoor
		case f.windowOn(x, y, W) != nil:
			return tiles.WallWestWindow
		}
		return tiles.WallWest
	}
	switch {
	case f.doorOn(x, y, N) != nil:
		return tiles.WallNorthDoor
	case f.windowOn(x, y, N) != nil:
		return tiles.WallNorthWindow
	}
	return tiles.WallNorth
}

func (f *Floor) selectWallVariants() {
	for y := 0; y <= f.height; y++ {
		for x := 0; x <= f.width; x++ {
			f.selectWallVariant(x, y)
		}
	}
}

func (f *Floor) selectWallVariant(x, y int) {
	sq := f.Square(x, y)
	west, north := &sq.walls[W], &sq.walls[N]

	if west.Shape == WallPillar {
		sq.ReplaceWall(west.Entry, tiles.WallSouthEast)
		sq.slots[0] = wallSlot{used: true, dir: W, offset: tiles.WallSouthEast}
		return
	}

	hasWest, hasNorth := sq.HasWallSide(W), sq.HasWallSide(N)
	westOffset, northOffset := f.wallOffset(x, y, W), f.wallOffset(x, y, N)

	if hasWest && hasNorth && west.Entry == north.Entry &&
		westOffset == tiles.WallWest && northOffset == tiles.WallNorth {
		sq.ReplaceWall(west.Entry, tiles.WallNorthWest)
		west.Shape = WallMergedCorner
		north.Shape = WallMergedCorner
		sq.slots[0] = wallSlot{used: true, dir: W, offset: tiles.WallNorthWest, merged: true}
		return
	}

	// Old buildings expect a cut-out north wall to be drawn first when it
	// meets a plain west wall. Nothing else gets swapped.
	order := [2]Dir{W, N}
	offsets := [2]int{westOffset, northOffset}
	if hasWest && hasNorth && westOffset == tiles.WallWest && isCutout(northOffset) {
		order = [2]Dir{N, W}
		offsets = [2]int{northOffset, westOffset}
	}

	n := 0
	for i, side := range order {
		info := sq.walls[side]
		switch {
		case info.FurnitureTile != nil:
			sq.ReplaceWallTile(info.FurnitureTile)
			sq.slots[n] = wallSlot{used: true, dir: side, direct: true}
			n++
		case !info.Entry.IsNone():
			sq.ReplaceWall(info.Entry, offsets[i])
			sq.slots[n] = wallSlot{used: true, dir: side, offset: offsets[i]}
			n++
		}
	}
}

func (f *Floor) finishDoorsAndWindows() {
	for y := 0; y <= f.height; y++ {
		for x := 0; x <= f.width; x++ {
			for _, side := range [2]Dir{W, N} {
				if door := f.doorOn(x, y, side); door != nil {
					f.finishDoor(x, y, side, door)
				}
				if window := f.windowOn(x, y, side); window != nil {
					f.finishWindow(x, y, side, window)
				}
			}
		}
	}
}

func (f *Floor) finishDoor(x, y int, side Dir, door *Door) {
	sq := f.Square(x, y)
	if side == W {
		sq.ReplaceDoor(door.Tile, tiles.DoorWest)
		sq.ReplaceFrame(door.FrameTile, tiles.FrameWest)
	} else {
		sq.ReplaceDoor(door.Tile, tiles.DoorNorth)
		sq.ReplaceFrame(door.FrameTile, tiles.FrameNorth)
	}
}

func (f *Floor) finishWindow(x, y int, side Dir, window *Window) {
	sq := f.Square(x, y)
	nx, ny, hasNeighbour := f.across(x, y, side)

	if side == W {
		sq.ReplaceWindow(window.Tile, tiles.WindowWest)
	} else {
		sq.ReplaceWindow(window.Tile, tiles.WindowNorth)
	}

	// Curtains hang inside the room.
	if !window.CurtainsTile.IsNone() {
		switch {
		case !sq.Exterior:
			if side == W {
				sq.ReplaceCurtains(window.CurtainsTile, tiles.CurtainsWest)
			} else {
				sq.ReplaceCurtains(window.CurtainsTile, tiles.CurtainsNorth)
			}
		case hasNeighbour:
			if side == W {
				f.Square(nx, ny).ReplaceCurtains(window.CurtainsTile, tiles.CurtainsEast)
			} else {
				f.Square(nx, ny).ReplaceCurtains(window.CurtainsTile, tiles.CurtainsSouth)
			}
		}
	}

	if window.ShuttersTile.IsNone() {
		return
	}
	if !sq.Exterior && !f.exteriorAt(nx, ny) {
		return
	}
	type shutter struct {
		x, y, offset int
	}
	var shutters [2]shutter
	if side == W {
		shutters = [2]shutter{{x, y - 1, tiles.ShutterWestNorth}, {x, y + 1, tiles.ShutterWestSouth}}
	} else {
		shutters = [2]shutter{{x - 1, y, tiles.ShutterNorthWest}, {x + 1, y, tiles.ShutterNorthEast}}
	}
	for _, s := range shutters {
		if f.inSquares(s.x, s.y) {
			f.Square(s.x, s.y).ReplaceShutters(window.ShuttersTile, s.offset)
		}
	}
}

func (f *Floor) layoutFloorTiles() {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if r := f.RoomAt(x, y); r != nil {
				f.Square(x, y).ReplaceFloor(r.Floor, tiles.FloorFloor)
			}
		}
	}

	below := f.FloorBelow()
	if below == nil {
		return
	}
	for _, o := range below.Objects {
		switch obj := o.(type) {
		case *RoofObject:
			if !obj.topOnFloorAbove() {
				continue
			}
			for j := 0; j < obj.Height; j++ {
				for i := 0; i < obj.Width; i++ {
					x, y := obj.X+i, obj.Y+j
					if cell := obj.cellAt(i, j); cell.top >= 0 && f.inSquares(x, y) {
						f.Square(x, y).ReplaceRoofTop(obj.TopTiles, cell.top)
					}
				}
			}

		case *Stairs:
			for _, step := range obj.steps() {
				if f.inSquares(step.x, step.y) {
					f.Square(step.x, step.y).ClearSection(SectionFloor)
				}
			}
		}
	}
}

func (f *Floor) layoutTrim() {
	for y := 0; y <= f.height; y++ {
		for x := 0; x <= f.width; x++ {
			sq := f.Square(x, y)
			for i, slot := range sq.slots {
				if !slot.used || slot.direct {
					continue
				}
				if slot.merged {
					west, north := sq.walls[W].Trim, sq.walls[N].Trim
					if sameEntry(west, north) {
						sq.sections[wallTrimSections[0]] = EntryValue(west, tiles.WallNorthWest)
					} else {
						sq.sections[wallTrimSections[0]] = EntryValue(west, tiles.WallWest)
						sq.sections[wallTrimSections[1]] = EntryValue(north, tiles.WallNorth)
					}
					continue
				}
				sq.sections[wallTrimSections[i]] = EntryValue(sq.walls[slot.dir].Trim, slot.offset)
			}
		}
	}
}

func (f *Floor) userTile(catalog TileCatalog, layer string, x, y int) *tiles.Tile {
	g := f.grime[layer]
	if g == nil || x >= g.Width() || y >= g.Height() {
		return nil
	}
	return catalog.Tile(g.At(x, y))
}

func (f *Floor) layoutGrime(catalog TileCatalog) {
	b := f.building
	for y := 0; y <= f.height; y++ {
		for x := 0; x <= f.width; x++ {
			var wallGrime, floorGrime *tiles.Entry
			if i := f.RoomIndexAt(x, y); i >= 0 {
				wallGrime, floorGrime = b.Rooms[i].GrimeWall, b.Rooms[i].GrimeFloor
			} else if f.level == 0 {
				wallGrime, floorGrime = b.GrimeWall, b.GrimeFloor
			}

			walls := f.userTile(catalog, UserWalls, x, y)
			walls2 := f.userTile(catalog, UserWalls2, x, y)
			sq := f.Square(x, y)
			sq.ReplaceWallGrime(wallGrime, catalog, GrimeOverrides{
				Walls:  walls,
				Walls2: walls2,
				Grime:  f.userTile(catalog, UserWallGrime, x, y),
				Grime2: f.userTile(catalog, UserWallGrime2, x, y),
			})
			sq.ReplaceFloorGrime(floorGrime, catalog, GrimeOverrides{
				Walls:  walls,
				Walls2: walls2,
				Grime:  f.userTile(catalog, UserFloorGrime, x, y),
				Grime2: f.userTile(catalog, UserFloorGrime2, x, y),
			})
		}
	}
}
