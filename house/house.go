package house

import (
	"fmt"

	"github.com/caffeine-storm/buildinged/logging"
	"github.com/caffeine-storm/buildinged/tiles"
)

type Building struct {
	Name string

	Width, Height int

	// Ordered bottom to top
	Floors []*Floor

	// A room's identity is its index in this list.
	Rooms []*Room

	// Defaults used for the outside of the building and for objects that are
	// placed without their own tiles.
	ExteriorWall     *tiles.Entry
	ExteriorWallTrim *tiles.Entry
	Door             *tiles.Entry
	DoorFrame        *tiles.Entry
	Window           *tiles.Entry
	Curtains         *tiles.Entry
	Shutters         *tiles.Entry
	Stairs           *tiles.Entry

	// Grime for exterior cells, only used on the ground floor.
	GrimeWall  *tiles.Entry
	GrimeFloor *tiles.Entry
}

func NewBuilding(width, height int) *Building {
	if width <= 0 || height <= 0 {
		panic(fmt.Errorf("bad building size %dx%d", width, height))
	}
	return &Building{
		Width:  width,
		Height: height,
	}
}

// Adds a new, empty, topmost floor.
func (b *Building) AddFloor() *Floor {
	f := newFloor(b, len(b.Floors))
	b.Floors = append(b.Floors, f)
	return f
}

func (b *Building) AddRoom(r *Room) int {
	b.Rooms = append(b.Rooms, r)
	return len(b.Rooms) - 1
}

// Returns -1 for rooms that are not part of this building.
func (b *Building) IndexOfRoom(r *Room) int {
	for i, room := range b.Rooms {
		if room == r {
			return i
		}
	}
	return -1
}

func (b *Building) Floor(level int) *Floor {
	if level < 0 || level >= len(b.Floors) {
		return nil
	}
	return b.Floors[level]
}

// Resizes every floor, keeping the top-left corner fixed. Rooms, painted
// tiles and objects that no longer fit are dropped.
func (b *Building) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Errorf("bad building size %dx%d", width, height))
	}
	logging.Info("resizing building", "name", b.Name, "from", fmt.Sprintf("%dx%d", b.Width, b.Height), "to", fmt.Sprintf("%dx%d", width, height))
	for _, f := range b.Floors {
		f.resize(width, height)
	}
	b.Width, b.Height = width, height
}

// Lays out every floor. Floors read the objects, not the squares, of the
// floor below so the order does not matter; bottom up is used anyway.
func (b *Building) LayoutToSquares(catalog TileCatalog) {
	for _, f := range b.Floors {
		f.LayoutToSquares(catalog)
	}
}
