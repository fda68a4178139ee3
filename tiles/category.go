package tiles

import "fmt"

// Each category groups entries that play the same structural role. All
// entries in a category share one offset enumeration.
type Category int

const (
	ExteriorWalls Category = iota
	InteriorWalls
	WallTrim
	Floors
	Doors
	DoorFrames
	Windows
	Curtains
	Shutters
	Stairs
	GrimeFloor
	GrimeWall
	RoofCaps
	RoofSlopes
	RoofTops

	NumCategories
)

var categoryNames = [NumCategories]string{
	ExteriorWalls: "exterior-walls",
	InteriorWalls: "interior-walls",
	WallTrim:      "wall-trim",
	Floors:        "floors",
	Doors:         "doors",
	DoorFrames:    "door-frames",
	Windows:       "windows",
	Curtains:      "curtains",
	Shutters:      "shutters",
	Stairs:        "stairs",
	GrimeFloor:    "grime-floor",
	GrimeWall:     "grime-wall",
	RoofCaps:      "roof-caps",
	RoofSlopes:    "roof-slopes",
	RoofTops:      "roof-tops",
}

func (c Category) String() string {
	if c < 0 || c >= NumCategories {
		return fmt.Sprintf("invalid category (%d)", int(c))
	}
	return categoryNames[c]
}

// Name of the base registry holding this category's entry defs.
func (c Category) RegistryName() string {
	return "tiles-" + c.String()
}

func (c Category) NumOffsets() int {
	return len(c.OffsetNames())
}

func (c Category) OffsetNames() []string {
	switch c {
	case ExteriorWalls, InteriorWalls, WallTrim:
		return wallOffsetNames
	case Floors:
		return floorOffsetNames
	case Doors:
		return doorOffsetNames
	case DoorFrames:
		return frameOffsetNames
	case Windows:
		return windowOffsetNames
	case Curtains:
		return curtainsOffsetNames
	case Shutters:
		return shuttersOffsetNames
	case Stairs:
		return stairsOffsetNames
	case GrimeFloor, GrimeWall:
		return grimeOffsetNames
	case RoofCaps:
		return roofCapOffsetNames
	case RoofSlopes:
		return roofSlopeOffsetNames
	case RoofTops:
		return roofTopOffsetNames
	}
	return nil
}

// Maps an offset name, as used in data files, to its value.
func (c Category) ParseOffset(name string) (int, bool) {
	for i, n := range c.OffsetNames() {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

func ParseCategory(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return Category(c), true
		}
	}
	return 0, false
}
