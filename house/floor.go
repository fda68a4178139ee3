package house

import (
	"fmt"
	"image"
	"sort"

	"github.com/caffeine-storm/buildinged/tiles"
	"github.com/runningwild/glop/util/algorithm"
)

// Names of the user painted tile grids that the layout engine reads.
const (
	UserWalls       = "Walls"
	UserWalls2      = "Walls2"
	UserWallGrime   = "WallGrime"
	UserWallGrime2  = "WallGrime2"
	UserFloorGrime  = "FloorGrime"
	UserFloorGrime2 = "FloorGrime2"
)

type Floor struct {
	building *Building
	level    int

	width, height int

	// width*height, nil where there is no room
	rooms []*Room

	// Drawn in this order; later objects stack on top of earlier ones.
	Objects []Object

	// User painted tiles by layer name. Grids are (width+1)x(height+1), like
	// the squares, and only exist while non-empty.
	grime map[string]*FloorTileGrid

	// Everything below is rebuilt by LayoutToSquares.
	squares   []Square
	roomIndex []int
}

func newFloor(b *Building, level int) *Floor {
	return &Floor{
		building: b,
		level:    level,
		width:    b.Width,
		height:   b.Height,
		rooms:    make([]*Room, b.Width*b.Height),
		grime:    make(map[string]*FloorTileGrid),
	}
}

func (f *Floor) Building() *Building { return f.building }
func (f *Floor) Level() int          { return f.level }
func (f *Floor) Width() int          { return f.width }
func (f *Floor) Height() int         { return f.height }

func (f *Floor) FloorAbove() *Floor {
	return f.building.Floor(f.level + 1)
}

func (f *Floor) FloorBelow() *Floor {
	return f.building.Floor(f.level - 1)
}

func (f *Floor) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

func (f *Floor) roomSlot(x, y int) int {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		panic(fmt.Errorf("room access (%d, %d) out of bounds %dx%d", x, y, f.width, f.height))
	}
	return y*f.width + x
}

func (f *Floor) RoomAt(x, y int) *Room {
	return f.rooms[f.roomSlot(x, y)]
}

func (f *Floor) SetRoomAt(x, y int, r *Room) {
	f.rooms[f.roomSlot(x, y)] = r
}

// Assigns every cell of 'rect' that lies on this floor to 'r'.
func (f *Floor) FillRoom(rect image.Rectangle, r *Room) {
	rect = rect.Intersect(f.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			f.SetRoomAt(x, y, r)
		}
	}
}

func (f *Floor) AddObject(o Object) {
	f.Objects = append(f.Objects, o)
}

func (f *Floor) RemoveObject(o Object) bool {
	before := len(f.Objects)
	algorithm.Choose(&f.Objects, func(other Object) bool {
		return other != o
	})
	return len(f.Objects) != before
}

// Objects whose footprint covers (x, y), in drawing order.
func (f *Floor) ObjectsAt(x, y int) []Object {
	var ret []Object
	p := image.Pt(x, y)
	for _, o := range f.Objects {
		if p.In(o.Bounds()) {
			ret = append(ret, o)
		}
	}
	return ret
}

func (f *Floor) grimeBounds() image.Rectangle {
	return image.Rect(0, 0, f.width+1, f.height+1)
}

// Returns the painted grid for 'layer', or nil if nothing is painted there.
func (f *Floor) GrimeGrid(layer string) *FloorTileGrid {
	return f.grime[layer]
}

func (f *Floor) GrimeLayers() []string {
	var names []string
	for name := range f.grime {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f *Floor) GrimeAt(layer string, x, y int) string {
	g := f.grime[layer]
	if g == nil {
		if !image.Pt(x, y).In(f.grimeBounds()) {
			panic(fmt.Errorf("grime access (%d, %d) out of bounds %v", x, y, f.grimeBounds()))
		}
		return ""
	}
	return g.At(x, y)
}

// Calls 'fn' on the grid for 'layer', creating it if needed, and drops the
// grid again if it ends up empty.
func (f *Floor) editGrime(layer string, fn func(g *FloorTileGrid) bool) bool {
	g := f.grime[layer]
	if g == nil {
		g = NewFloorTileGrid(f.width+1, f.height+1)
	}
	changed := fn(g)
	if g.IsEmpty() {
		delete(f.grime, layer)
	} else {
		f.grime[layer] = g
	}
	return changed
}

func (f *Floor) SetGrime(layer string, x, y int, name string) bool {
	return f.editGrime(layer, func(g *FloorTileGrid) bool {
		return g.Replace(x, y, name)
	})
}

func (f *Floor) FillGrimeRegion(layer string, region Region, name string) bool {
	return f.editGrime(layer, func(g *FloorTileGrid) bool {
		return g.ReplaceRegion(region, name)
	})
}

func (f *Floor) CopyGrimeRegion(layer string, region Region, from *FloorTileGrid) bool {
	return f.editGrime(layer, func(g *FloorTileGrid) bool {
		return g.ReplaceRegionFrom(region, from)
	})
}

func (f *Floor) resize(width, height int) {
	rooms := make([]*Room, width*height)
	for y := 0; y < min(height, f.height); y++ {
		for x := 0; x < min(width, f.width); x++ {
			rooms[y*width+x] = f.rooms[y*f.width+x]
		}
	}
	f.rooms = rooms

	for name, g := range f.grime {
		clipped := g.CloneRect(image.Rect(0, 0, width+1, height+1))
		if clipped.IsEmpty() {
			delete(f.grime, name)
		} else {
			f.grime[name] = clipped
		}
	}

	bounds := image.Rect(0, 0, width, height)
	algorithm.Choose(&f.Objects, func(o Object) bool {
		return o.Bounds().In(bounds)
	})

	f.width, f.height = width, height
	f.squares = nil
	f.roomIndex = nil
}

func (f *Floor) HasSquares() bool {
	return f.squares != nil
}

func (f *Floor) SquaresWidth() int  { return f.width + 1 }
func (f *Floor) SquaresHeight() int { return f.height + 1 }

func (f *Floor) inSquares(x, y int) bool {
	return x >= 0 && y >= 0 && x <= f.width && y <= f.height
}

func (f *Floor) squareSlot(x, y int) int {
	if f.squares == nil {
		panic(fmt.Errorf("floor %d has not been laid out", f.level))
	}
	if !f.inSquares(x, y) {
		panic(fmt.Errorf("square access (%d, %d) out of bounds %dx%d", x, y, f.width+1, f.height+1))
	}
	return y*(f.width+1) + x
}

func (f *Floor) Square(x, y int) *Square {
	return &f.squares[f.squareSlot(x, y)]
}

// Index into Building.Rooms of the room owning (x, y), or -1 if the cell is
// exterior. Valid for every square position once the floor is laid out.
func (f *Floor) RoomIndexAt(x, y int) int {
	return f.roomIndex[f.squareSlot(x, y)]
}

// The tiles a renderer draws for 'layer' at (x, y), bottom to top.
func (f *Floor) LayerTiles(layer Layer, x, y int) []*tiles.Tile {
	sq := f.Square(x, y)
	var ret []*tiles.Tile
	for _, section := range layer.Sections() {
		if t := sq.Tile(section); !t.IsNone() {
			ret = append(ret, t)
		}
	}
	return ret
}
