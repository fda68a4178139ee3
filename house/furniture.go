package house

import (
	"image"

	"github.com/caffeine-storm/buildinged/base"
)

func MakeFurniture(name string) (*FurnitureObject, error) {
	f := FurnitureObject{Defname: name}
	if err := base.GetObject("furniture", &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func GetAllFurnitureNames() []string {
	return base.GetAllNamesInRegistry("furniture")
}

func LoadAllFurnitureInDir(dir string) (int, error) {
	base.RemoveRegistry("furniture")
	base.RegisterRegistry("furniture", make(map[string]*FurnitureDef))
	return base.RegisterAllObjectsInDir("furniture", dir, ".json")
}

// Layers that hang on a wall. E and S facing pieces in these layers are
// drawn on the neighbouring cell whose W or N wall they hang on.
func wallAttached(l Layer) bool {
	switch l {
	case LayerWallOverlay, LayerWallOverlay2, LayerWallFurniture, LayerFrames, LayerDoors, LayerWalls:
		return true
	}
	return false
}

// One orientation of a piece of furniture.
type FurnitureTile struct {
	Orient Dir

	Width, Height int

	// Row-major tile names, Width*Height of them. Empty names are holes.
	Tiles []string
}

func (ft *FurnitureTile) TileName(x, y int) string {
	if x < 0 || y < 0 || x >= ft.Width || y >= ft.Height {
		return ""
	}
	i := y*ft.Width + x
	if i >= len(ft.Tiles) {
		return ""
	}
	return ft.Tiles[i]
}

// All instances of the same piece of furniture have this data in common
type FurnitureDef struct {
	// Name of the object - should be unique among all furniture
	Name string

	// Output layer the piece is drawn into. Pieces in LayerWalls replace the
	// wall they sit on.
	Layer Layer

	// All available orientations for this piece of furniture
	Orientations []*FurnitureTile
}

type FurnitureObject struct {
	Defname string
	*FurnitureDef

	// Position of this object in cell coordinates.
	X, Y int

	// Index into FurnitureDef.Orientations
	Rotation int
}

func (f *FurnitureObject) Tile() *FurnitureTile {
	if f.FurnitureDef == nil || len(f.Orientations) == 0 {
		return nil
	}
	return f.Orientations[f.Rotation%len(f.Orientations)]
}

func (f *FurnitureObject) RotateLeft() {
	if f.Tile() == nil {
		return
	}
	f.Rotation = (f.Rotation + 1) % len(f.Orientations)
}

func (f *FurnitureObject) RotateRight() {
	if f.Tile() == nil {
		return
	}
	f.Rotation = (f.Rotation - 1 + len(f.Orientations)) % len(f.Orientations)
}

func (f *FurnitureObject) Pos() (int, int) { return f.X, f.Y }
func (f *FurnitureObject) isObject()       {}

func (f *FurnitureObject) Direction() Dir {
	if ft := f.Tile(); ft != nil {
		return ft.Orient
	}
	return W
}

func (f *FurnitureObject) Bounds() image.Rectangle {
	ft := f.Tile()
	if ft == nil {
		return image.Rect(f.X, f.Y, f.X, f.Y)
	}
	return image.Rect(f.X, f.Y, f.X+ft.Width, f.Y+ft.Height)
}

// Where the tile at (i, j) of the current orientation lands, and on which
// side when the piece replaces a wall.
func (f *FurnitureObject) cellFor(i, j int) (x, y int, side Dir) {
	x, y = f.X+i, f.Y+j
	side = f.Direction()
	if !wallAttached(f.Layer) {
		return x, y, side
	}
	switch side {
	case E:
		return x + 1, y, W
	case S:
		return x, y + 1, N
	}
	return x, y, side
}
