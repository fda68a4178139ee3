package house

import (
	"image"

	"github.com/caffeine-storm/buildinged/tiles"
)

// A run of explicitly placed wall along the W or N side of Length cells.
type WallObject struct {
	X, Y   int
	Dir    Dir
	Length int

	ExteriorTile *tiles.Entry
	InteriorTile *tiles.Entry
	ExteriorTrim *tiles.Entry
	InteriorTrim *tiles.Entry
}

func (w *WallObject) Pos() (int, int) { return w.X, w.Y }
func (w *WallObject) Direction() Dir  { return w.Dir }
func (w *WallObject) isObject()       {}

func (w *WallObject) Bounds() image.Rectangle {
	if w.Dir == W || w.Dir == E {
		return image.Rect(w.X, w.Y, w.X+1, w.Y+w.Length)
	}
	return image.Rect(w.X, w.Y, w.X+w.Length, w.Y+1)
}
