package house

import "fmt"

// The output layers of a resolved floor, bottom to top. Renderers draw every
// layer of a cell in this order.
type Layer int

const (
	LayerFloor Layer = iota
	LayerFloorGrime
	LayerFloorGrime2
	LayerWalls
	LayerWalls2
	LayerRoofCap
	LayerRoofCap2
	LayerWallOverlay
	LayerWallOverlay2
	LayerWallGrime
	LayerWallFurniture
	LayerFrames
	LayerDoors
	LayerCurtains
	LayerFurniture
	LayerFurniture2
	LayerCurtains2
	LayerRoof
	LayerRoof2
	LayerRoofTop

	NumLayers
)

var layerNames = [NumLayers]string{
	"Floor", "FloorGrime", "FloorGrime2", "Walls", "Walls2", "RoofCap", "RoofCap2",
	"WallOverlay", "WallOverlay2", "WallGrime", "WallFurniture", "Frames", "Doors",
	"Curtains", "Furniture", "Furniture2", "Curtains2", "Roof", "Roof2", "RoofTop",
}

var layerSections = [NumLayers][]Section{
	LayerFloor:         {SectionFloor},
	LayerFloorGrime:    {SectionFloorGrime},
	LayerFloorGrime2:   {SectionFloorGrime2},
	LayerWalls:         {SectionWall, SectionWallTrim, SectionWall3, SectionWallTrim3},
	LayerWalls2:        {SectionWall2, SectionWallTrim2, SectionWall4, SectionWallTrim4},
	LayerRoofCap:       {SectionRoofCap},
	LayerRoofCap2:      {SectionRoofCap2},
	LayerWallOverlay:   {SectionWallOverlay, SectionWallOverlay3},
	LayerWallOverlay2:  {SectionWallOverlay2, SectionWallOverlay4},
	LayerWallGrime:     {SectionWallGrime, SectionWallGrime2},
	LayerWallFurniture: {SectionWallFurniture, SectionWallFurniture2, SectionWallFurniture3, SectionWallFurniture4},
	LayerFrames:        {SectionFrame, SectionFrame2},
	LayerDoors:         {SectionDoor, SectionDoor2, SectionWindow, SectionWindow2},
	LayerCurtains:      {SectionCurtains, SectionCurtains3},
	LayerFurniture:     {SectionFurniture, SectionFurniture3},
	LayerFurniture2:    {SectionFurniture2, SectionFurniture4},
	LayerCurtains2:     {SectionCurtains2, SectionCurtains4},
	LayerRoof:          {SectionRoof},
	LayerRoof2:         {SectionRoof2},
	LayerRoofTop:       {SectionRoofTop},
}

func (l Layer) String() string {
	if l < 0 || l >= NumLayers {
		return fmt.Sprintf("invalid layer (%d)", int(l))
	}
	return layerNames[l]
}

func ParseLayer(name string) (Layer, bool) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), true
		}
	}
	return 0, false
}

func (l *Layer) UnmarshalText(text []byte) error {
	parsed, ok := ParseLayer(string(text))
	if !ok {
		return fmt.Errorf("unknown layer %q", text)
	}
	*l = parsed
	return nil
}

func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// The sections drawn into this layer, bottom to top.
func (l Layer) Sections() []Section {
	if l < 0 || l >= NumLayers {
		return nil
	}
	return layerSections[l]
}

// Section range that furniture in this layer is stacked into.
func (l Layer) furnitureSections() []Section {
	switch l {
	case LayerWallOverlay, LayerWallOverlay2:
		return wallOverlaySections
	case LayerWallFurniture:
		return wallFurnitureSections
	case LayerFrames:
		return frameSections
	case LayerDoors:
		return doorSections
	case LayerRoof, LayerRoof2:
		return roofSections
	case LayerRoofCap, LayerRoofCap2:
		return roofCapSections
	case LayerFloorGrime, LayerFloorGrime2:
		return floorGrimeSections
	case LayerWallGrime:
		return wallGrimeSections
	case LayerCurtains:
		return curtainsSections
	case LayerCurtains2:
		return curtains2Sections
	}
	return furnitureSections
}
