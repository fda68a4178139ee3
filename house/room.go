package house

import "github.com/caffeine-storm/buildinged/tiles"

type Room struct {
	Name string

	// Rooms flagged this way are treated as outdoors: they get no walls of
	// their own and their cells are exterior.
	EmptyOutside bool

	Floor            *tiles.Entry
	InteriorWall     *tiles.Entry
	InteriorWallTrim *tiles.Entry
	GrimeWall        *tiles.Entry
	GrimeFloor       *tiles.Entry
}

func (r *Room) String() string {
	if r == nil {
		return "<no room>"
	}
	return r.Name
}
