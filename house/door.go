package house

import (
	"image"

	"github.com/caffeine-storm/buildinged/tiles"
)

// A door sits on one side of a cell. Doors on an E or S side show up on the
// neighbouring cell's W or N wall.
type Door struct {
	X, Y int

	// Which side of the cell the door is on
	Dir Dir

	Tile      *tiles.Entry
	FrameTile *tiles.Entry
}

func (d *Door) Pos() (int, int)         { return d.X, d.Y }
func (d *Door) Direction() Dir          { return d.Dir }
func (d *Door) Bounds() image.Rectangle { return image.Rect(d.X, d.Y, d.X+1, d.Y+1) }
func (d *Door) isObject()               {}

type Window struct {
	X, Y int
	Dir  Dir

	Tile         *tiles.Entry
	CurtainsTile *tiles.Entry
	ShuttersTile *tiles.Entry
}

func (w *Window) Pos() (int, int)         { return w.X, w.Y }
func (w *Window) Direction() Dir          { return w.Dir }
func (w *Window) Bounds() image.Rectangle { return image.Rect(w.X, w.Y, w.X+1, w.Y+1) }
func (w *Window) isObject()               {}

// Stairs run three cells away from their anchor, towards the south for N
// facing stairs and towards the east for W facing ones. The floor above
// leaves those cells open.
type Stairs struct {
	X, Y int

	// N or W
	Dir Dir

	Tile *tiles.Entry
}

const stairsLength = 5

func (s *Stairs) Pos() (int, int) { return s.X, s.Y }
func (s *Stairs) Direction() Dir  { return s.Dir }
func (s *Stairs) isObject()       {}

func (s *Stairs) Bounds() image.Rectangle {
	if s.Dir == W {
		return image.Rect(s.X, s.Y, s.X+stairsLength, s.Y+1)
	}
	return image.Rect(s.X, s.Y, s.X+1, s.Y+stairsLength)
}

// The three cells that get stair tiles, with their offsets.
func (s *Stairs) steps() [3]stairStep {
	var ret [3]stairStep
	for i := range ret {
		if s.Dir == W {
			ret[i] = stairStep{x: s.X + i + 1, y: s.Y, offset: tiles.StairsWest1 + i}
		} else {
			ret[i] = stairStep{x: s.X, y: s.Y + i + 1, offset: tiles.StairsNorth1 + i}
		}
	}
	return ret
}

type stairStep struct {
	x, y   int
	offset int
}
