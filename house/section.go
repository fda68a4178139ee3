package house

import (
	"fmt"

	"github.com/caffeine-storm/buildinged/tiles"
)

// One independently paintable slot of a Square.
type Section int

const (
	SectionFloor Section = iota
	SectionFloorGrime
	SectionFloorGrime2
	SectionWall
	SectionWallTrim
	SectionWall2
	SectionWallTrim2
	SectionRoofCap
	SectionRoofCap2
	SectionWallOverlay
	SectionWallOverlay2
	SectionWallGrime
	SectionWallGrime2
	SectionWall3
	SectionWallTrim3
	SectionWall4
	SectionWallTrim4
	SectionWallOverlay3
	SectionWallOverlay4
	SectionWallFurniture
	SectionWallFurniture2
	SectionWallFurniture3
	SectionWallFurniture4
	SectionFrame
	SectionFrame2
	SectionDoor
	SectionDoor2
	SectionWindow
	SectionWindow2
	SectionCurtains
	SectionCurtains3
	SectionFurniture
	SectionFurniture3
	SectionFurniture2
	SectionFurniture4
	SectionCurtains2
	SectionCurtains4
	SectionRoof
	SectionRoof2
	SectionRoofTop

	NumSections
)

var sectionNames = [NumSections]string{
	SectionFloor:          "Floor",
	SectionFloorGrime:     "FloorGrime",
	SectionFloorGrime2:    "FloorGrime2",
	SectionWall:           "Wall",
	SectionWallTrim:       "WallTrim",
	SectionWall2:          "Wall2",
	SectionWallTrim2:      "WallTrim2",
	SectionRoofCap:        "RoofCap",
	SectionRoofCap2:       "RoofCap2",
	SectionWallOverlay:    "WallOverlay",
	SectionWallOverlay2:   "WallOverlay2",
	SectionWallGrime:      "WallGrime",
	SectionWallGrime2:     "WallGrime2",
	SectionWall3:          "Wall3",
	SectionWallTrim3:      "WallTrim3",
	SectionWall4:          "Wall4",
	SectionWallTrim4:      "WallTrim4",
	SectionWallOverlay3:   "WallOverlay3",
	SectionWallOverlay4:   "WallOverlay4",
	SectionWallFurniture:  "WallFurniture",
	SectionWallFurniture2: "WallFurniture2",
	SectionWallFurniture3: "WallFurniture3",
	SectionWallFurniture4: "WallFurniture4",
	SectionFrame:          "Frame",
	SectionFrame2:         "Frame2",
	SectionDoor:           "Door",
	SectionDoor2:          "Door2",
	SectionWindow:         "Window",
	SectionWindow2:        "Window2",
	SectionCurtains:       "Curtains",
	SectionCurtains3:      "Curtains3",
	SectionFurniture:      "Furniture",
	SectionFurniture3:     "Furniture3",
	SectionFurniture2:     "Furniture2",
	SectionFurniture4:     "Furniture4",
	SectionCurtains2:      "Curtains2",
	SectionCurtains4:      "Curtains4",
	SectionRoof:           "Roof",
	SectionRoof2:          "Roof2",
	SectionRoofTop:        "RoofTop",
}

func (s Section) String() string {
	if s < 0 || s >= NumSections {
		return fmt.Sprintf("invalid section (%d)", int(s))
	}
	return sectionNames[s]
}

// Slot ranges used by the spilling setters. Order is fill order.
var (
	wallSections          = []Section{SectionWall, SectionWall2, SectionWall3, SectionWall4}
	wallTrimSections      = []Section{SectionWallTrim, SectionWallTrim2, SectionWallTrim3, SectionWallTrim4}
	doorSections          = []Section{SectionDoor, SectionDoor2}
	frameSections         = []Section{SectionFrame, SectionFrame2}
	windowSections        = []Section{SectionWindow, SectionWindow2}
	curtainsSections      = []Section{SectionCurtains, SectionCurtains3}
	curtains2Sections     = []Section{SectionCurtains2, SectionCurtains4}
	shutterSections       = []Section{SectionCurtains3, SectionCurtains4}
	furnitureSections     = []Section{SectionFurniture, SectionFurniture2, SectionFurniture3, SectionFurniture4}
	wallOverlaySections   = []Section{SectionWallOverlay, SectionWallOverlay2, SectionWallOverlay3, SectionWallOverlay4}
	wallFurnitureSections = []Section{SectionWallFurniture, SectionWallFurniture2, SectionWallFurniture3, SectionWallFurniture4}
	roofSections          = []Section{SectionRoof, SectionRoof2}
	roofCapSections       = []Section{SectionRoofCap, SectionRoofCap2}
	floorGrimeSections    = []Section{SectionFloorGrime, SectionFloorGrime2}
	wallGrimeSections     = []Section{SectionWallGrime, SectionWallGrime2}
)

// A SectionValue is empty, an (entry, offset) pair, or a direct tile.
type SectionValue struct {
	entry  *tiles.Entry
	offset int
	tile   *tiles.Tile
}

func EntryValue(entry *tiles.Entry, offset int) SectionValue {
	if entry.IsNone() {
		return SectionValue{}
	}
	return SectionValue{entry: entry, offset: offset}
}

func TileValue(tile *tiles.Tile) SectionValue {
	if tile.IsNone() {
		return SectionValue{}
	}
	return SectionValue{tile: tile}
}

func (v SectionValue) IsEmpty() bool {
	return v.entry == nil && v.tile == nil
}

func (v SectionValue) IsDirect() bool {
	return v.tile != nil
}

// Entry and Offset are only meaningful when the value is not direct.
func (v SectionValue) Entry() *tiles.Entry {
	return v.entry
}

func (v SectionValue) Offset() int {
	return v.offset
}

// The tile to paint, or the none tile.
func (v SectionValue) Tile() *tiles.Tile {
	if v.tile != nil {
		return v.tile
	}
	if v.entry != nil {
		return v.entry.Tile(v.offset)
	}
	return tiles.NoneTile()
}

func (v SectionValue) String() string {
	switch {
	case v.tile != nil:
		return v.tile.String()
	case v.entry != nil:
		return fmt.Sprintf("%v[%d]", v.entry, v.offset)
	}
	return "<empty>"
}
