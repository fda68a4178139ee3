package house

import (
	"fmt"
	"image"

	"github.com/MobRulesGames/GoLLRB/llrb"
)

// A Region is a union of rectangles in cell coordinates.
type Region []image.Rectangle

func (r Region) Contains(x, y int) bool {
	p := image.Pt(x, y)
	for _, rect := range r {
		if p.In(rect) {
			return true
		}
	}
	return false
}

func (r Region) Bounds() image.Rectangle {
	var bounds image.Rectangle
	for _, rect := range r {
		bounds = bounds.Union(rect)
	}
	return bounds
}

type gridCell struct {
	index int
	name  string
}

func gridCellLess(a, b interface{}) bool {
	return a.(gridCell).index < b.(gridCell).index
}

// A FloorTileGrid holds user painted tile names for one layer of a floor.
// Cells start out empty (""). It is stored sparsely until more than a third
// of its cells are occupied, at which point it switches, permanently, to a
// flat array.
type FloorTileGrid struct {
	width, height int
	count         int

	sparse *llrb.Tree
	dense  []string
}

func NewFloorTileGrid(width, height int) *FloorTileGrid {
	if width < 0 || height < 0 {
		panic(fmt.Errorf("bad FloorTileGrid size %dx%d", width, height))
	}
	return &FloorTileGrid{
		width:  width,
		height: height,
		sparse: llrb.New(gridCellLess),
	}
}

func (g *FloorTileGrid) Width() int  { return g.width }
func (g *FloorTileGrid) Height() int { return g.height }
func (g *FloorTileGrid) Count() int  { return g.count }

func (g *FloorTileGrid) IsEmpty() bool {
	return g.count == 0
}

func (g *FloorTileGrid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

func (g *FloorTileGrid) isDense() bool {
	return g.dense != nil
}

func (g *FloorTileGrid) index(x, y int) int {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		panic(fmt.Errorf("FloorTileGrid access (%d, %d) out of bounds %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

func (g *FloorTileGrid) At(x, y int) string {
	index := g.index(x, y)
	if g.isDense() {
		return g.dense[index]
	}
	item := g.sparse.Get(gridCell{index: index})
	if item == nil {
		return ""
	}
	return item.(gridCell).name
}

// Sets the cell at (x, y); the empty name clears it. Returns true iff the
// cell changed.
func (g *FloorTileGrid) Replace(x, y int, name string) bool {
	old := g.At(x, y)
	if old == name {
		return false
	}
	index := g.index(x, y)
	switch {
	case old == "":
		g.count++
	case name == "":
		g.count--
	}

	if g.isDense() {
		g.dense[index] = name
		return true
	}

	if name == "" {
		g.sparse.Delete(gridCell{index: index})
	} else {
		g.sparse.ReplaceOrInsert(gridCell{index: index, name: name})
	}
	if g.count > g.width*g.height/3 {
		g.toDense()
	}
	return true
}

func (g *FloorTileGrid) toDense() {
	dense := make([]string, g.width*g.height)
	for i := range dense {
		if item := g.sparse.Get(gridCell{index: i}); item != nil {
			dense[i] = item.(gridCell).name
		}
	}
	g.dense = dense
	g.sparse = nil
}

func (g *FloorTileGrid) ReplaceAll(name string) bool {
	return g.ReplaceRect(g.Bounds(), name)
}

func (g *FloorTileGrid) ReplaceRect(r image.Rectangle, name string) bool {
	r = r.Intersect(g.Bounds())
	changed := false
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if g.Replace(x, y, name) {
				changed = true
			}
		}
	}
	return changed
}

func (g *FloorTileGrid) ReplaceRegion(region Region, name string) bool {
	changed := false
	for _, r := range region {
		if g.ReplaceRect(r, name) {
			changed = true
		}
	}
	return changed
}

// Copies the cells of 'from' that fall in 'region' into this grid. 'from' is
// positioned at the region's top-left corner, the way CloneRectRegion
// produces it.
func (g *FloorTileGrid) ReplaceRegionFrom(region Region, from *FloorTileGrid) bool {
	origin := region.Bounds().Min
	changed := false
	for _, r := range region {
		r = r.Intersect(g.Bounds())
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				fx, fy := x-origin.X, y-origin.Y
				if fx < 0 || fy < 0 || fx >= from.width || fy >= from.height {
					continue
				}
				if g.Replace(x, y, from.At(fx, fy)) {
					changed = true
				}
			}
		}
	}
	return changed
}

func (g *FloorTileGrid) Clone() *FloorTileGrid {
	return g.CloneRect(g.Bounds())
}

// Returns a new grid sized to 'r' holding this grid's cells within 'r'.
// Parts of 'r' outside of this grid are left empty.
func (g *FloorTileGrid) CloneRect(r image.Rectangle) *FloorTileGrid {
	return g.CloneRectRegion(r, Region{r})
}

// Like CloneRect but only cells that are also in 'region' are copied.
func (g *FloorTileGrid) CloneRectRegion(r image.Rectangle, region Region) *FloorTileGrid {
	clone := NewFloorTileGrid(r.Dx(), r.Dy())
	src := r.Intersect(g.Bounds())
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			if !region.Contains(x, y) {
				continue
			}
			if name := g.At(x, y); name != "" {
				clone.Replace(x-r.Min.X, y-r.Min.Y, name)
			}
		}
	}
	return clone
}
