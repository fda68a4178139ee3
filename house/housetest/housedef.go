package housetest

import (
	"image"

	"github.com/caffeine-storm/buildinged/house"
	"github.com/caffeine-storm/buildinged/tiles"
	"github.com/caffeine-storm/buildinged/tiles/tilestest"
)

// Every entry made by GivenACatalog has all of its offsets filled in, so
// the tile at offset o of entry "ext" is named "ext_<o>".
func GivenACatalog() *tilestest.Catalog {
	c := tilestest.NewCatalog()
	c.AddEntry(tiles.ExteriorWalls, "ext")
	c.AddEntry(tiles.WallTrim, "exttrim")
	c.AddEntry(tiles.InteriorWalls, "int")
	c.AddEntry(tiles.InteriorWalls, "plaster")
	c.AddEntry(tiles.WallTrim, "inttrim")
	c.AddEntry(tiles.Floors, "oak")
	c.AddEntry(tiles.Floors, "tile")
	c.AddEntry(tiles.Doors, "door")
	c.AddEntry(tiles.DoorFrames, "frame")
	c.AddEntry(tiles.Windows, "window")
	c.AddEntry(tiles.Curtains, "curtains")
	c.AddEntry(tiles.Shutters, "shutters")
	c.AddEntry(tiles.Stairs, "stairs")
	c.AddEntry(tiles.GrimeWall, "wallgrime")
	c.AddEntry(tiles.GrimeFloor, "floorgrime")
	c.AddEntry(tiles.RoofCaps, "caps")
	c.AddEntry(tiles.RoofSlopes, "slopes")
	c.AddEntry(tiles.RoofTops, "tops")
	return c
}

// A single storey building whose defaults all come from GivenACatalog.
func GivenABuilding(c tiles.Catalog, width, height int) *house.Building {
	b := house.NewBuilding(width, height)
	b.Name = "test"
	b.ExteriorWall = c.Entry(tiles.ExteriorWalls, "ext")
	b.ExteriorWallTrim = c.Entry(tiles.WallTrim, "exttrim")
	b.Door = c.Entry(tiles.Doors, "door")
	b.DoorFrame = c.Entry(tiles.DoorFrames, "frame")
	b.Window = c.Entry(tiles.Windows, "window")
	b.Curtains = c.Entry(tiles.Curtains, "curtains")
	b.Shutters = c.Entry(tiles.Shutters, "shutters")
	b.Stairs = c.Entry(tiles.Stairs, "stairs")
	b.AddFloor()
	return b
}

func GivenARoom(c tiles.Catalog, name string) *house.Room {
	return &house.Room{
		Name:         name,
		Floor:        c.Entry(tiles.Floors, "oak"),
		InteriorWall: c.Entry(tiles.InteriorWalls, "int"),
	}
}

// A building exactly filled by one room.
func GivenASingleRoomFloor(c tiles.Catalog, width, height int) (*house.Floor, *house.Room) {
	b := GivenABuilding(c, width, height)
	r := GivenARoom(c, "room")
	b.AddRoom(r)
	f := b.Floors[0]
	f.FillRoom(image.Rect(0, 0, width, height), r)
	return f, r
}

func GivenADoor(c tiles.Catalog, x, y int, dir house.Dir) *house.Door {
	return &house.Door{
		X: x, Y: y, Dir: dir,
		Tile:      c.Entry(tiles.Doors, "door"),
		FrameTile: c.Entry(tiles.DoorFrames, "frame"),
	}
}

func GivenAWindow(c tiles.Catalog, x, y int, dir house.Dir) *house.Window {
	return &house.Window{
		X: x, Y: y, Dir: dir,
		Tile:         c.Entry(tiles.Windows, "window"),
		CurtainsTile: c.Entry(tiles.Curtains, "curtains"),
		ShuttersTile: c.Entry(tiles.Shutters, "shutters"),
	}
}

func GivenAFurnitureObject(name string, layer house.Layer, x, y int, orient house.Dir, width, height int, tileNames ...string) *house.FurnitureObject {
	return &house.FurnitureObject{
		Defname: name,
		FurnitureDef: &house.FurnitureDef{
			Name:  name,
			Layer: layer,
			Orientations: []*house.FurnitureTile{{
				Orient: orient,
				Width:  width,
				Height: height,
				Tiles:  tileNames,
			}},
		},
		X: x,
		Y: y,
	}
}
