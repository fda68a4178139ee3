package house

import (
	"fmt"
	"image"

	"github.com/caffeine-storm/buildinged/tiles"
)

type RoofType int

const (
	// Slopes are named for their low edge: SlopeS is lowest along its south
	// edge and rises to the north.
	SlopeW RoofType = iota
	SlopeN
	SlopeE
	SlopeS

	// Two slopes meeting at a ridge. PeakWE's ridge runs west to east.
	PeakWE
	PeakNS

	FlatTop
	CornerInner
	CornerOuter
)

var roofTypeNames = []string{
	"SlopeW", "SlopeN", "SlopeE", "SlopeS", "PeakWE", "PeakNS", "FlatTop", "CornerInner", "CornerOuter",
}

func (t RoofType) String() string {
	if t < 0 || int(t) >= len(roofTypeNames) {
		return fmt.Sprintf("invalid roof type (%d)", int(t))
	}
	return roofTypeNames[t]
}

func (t *RoofType) UnmarshalText(text []byte) error {
	for i, name := range roofTypeNames {
		if name == string(text) {
			*t = RoofType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown roof type %q", text)
}

func (t RoofType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

const maxRoofDepth = 3

type RoofObject struct {
	X, Y          int
	Width, Height int
	Type          RoofType

	// How many tiles tall the slope is, 1 through 3. The flat top of a
	// depth 3 roof is drawn on the floor above.
	Depth int

	CappedW, CappedN, CappedE, CappedS bool

	CapTiles   *tiles.Entry
	SlopeTiles *tiles.Entry
	TopTiles   *tiles.Entry
}

func (r *RoofObject) Pos() (int, int) { return r.X, r.Y }
func (r *RoofObject) isObject()       {}

func (r *RoofObject) Direction() Dir {
	switch r.Type {
	case SlopeW, PeakNS:
		return W
	case SlopeE:
		return E
	case SlopeS:
		return S
	}
	return N
}

func (r *RoofObject) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r *RoofObject) depth() int {
	if r.Depth < 1 {
		return 1
	}
	if r.Depth > maxRoofDepth {
		return maxRoofDepth
	}
	return r.Depth
}

// True when this roof's flat top belongs to the floor above.
func (r *RoofObject) topOnFloorAbove() bool {
	return r.depth() == maxRoofDepth
}

// Offsets for one cell of a roof. -1 means nothing in that part.
type roofCell struct {
	slope int
	cap   int
	top   int
}

// Computes the tiles for the cell at (i, j) relative to the roof's corner.
func (r *RoofObject) cellAt(i, j int) roofCell {
	cell := roofCell{slope: -1, cap: -1, top: -1}
	d := r.depth()
	topNorth := tiles.TopNorth1 + d - 1
	topWest := tiles.TopWest1 + d - 1

	endColumn := (i == 0 && r.CappedW) || (i == r.Width-1 && r.CappedE)
	endRow := (j == 0 && r.CappedN) || (j == r.Height-1 && r.CappedS)

	var k, slopeBase, capBase, top int
	capped := false
	switch r.Type {
	case SlopeS:
		k, slopeBase, capBase, top, capped = r.Height-1-j, tiles.SlopeS1, tiles.CapFallS1, topNorth, endColumn
	case SlopeN:
		k, slopeBase, capBase, top, capped = j, tiles.SlopeN1, tiles.CapRiseS1, topNorth, endColumn
	case SlopeE:
		k, slopeBase, capBase, top, capped = r.Width-1-i, tiles.SlopeE1, tiles.CapFallE1, topWest, endRow
	case SlopeW:
		k, slopeBase, capBase, top, capped = i, tiles.SlopeW1, tiles.CapRiseE1, topWest, endRow
	case PeakWE:
		north, south := j, r.Height-1-j
		if north < south {
			k, slopeBase, capBase = north, tiles.SlopeN1, tiles.CapRiseS1
		} else {
			k, slopeBase, capBase = south, tiles.SlopeS1, tiles.CapFallS1
		}
		top, capped = topNorth, endColumn
	case PeakNS:
		west, east := i, r.Width-1-i
		if west < east {
			k, slopeBase, capBase = west, tiles.SlopeW1, tiles.CapRiseE1
		} else {
			k, slopeBase, capBase = east, tiles.SlopeE1, tiles.CapFallE1
		}
		top, capped = topWest, endRow
	case CornerInner, CornerOuter:
		k = min(i, j)
		slopeBase = tiles.SlopeInner1
		if r.Type == CornerOuter {
			slopeBase = tiles.SlopeOuter1
		}
		capBase, top = -1, topNorth
	case FlatTop:
		cell.top = topNorth
		return cell
	}

	if k >= d {
		cell.top = top
		return cell
	}
	cell.slope = slopeBase + k
	if capped && capBase >= 0 {
		cell.cap = capBase + k
	}
	return cell
}
