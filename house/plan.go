package house

import (
	"fmt"
	"image"

	"github.com/caffeine-storm/buildinged/base"
	"github.com/caffeine-storm/buildinged/logging"
	"github.com/caffeine-storm/buildinged/tiles"
)

// A PlanDef is a read-only json description of a building. Tile fields name
// catalog entries; empty names fall back to the building's defaults where
// there is one.
type PlanDef struct {
	Name          string
	Width, Height int

	ExteriorWall     string
	ExteriorWallTrim string
	Door             string
	DoorFrame        string
	Window           string
	Curtains         string
	Shutters         string
	Stairs           string
	GrimeWall        string
	GrimeFloor       string

	Rooms  []RoomDef
	Floors []FloorDef
}

type RoomDef struct {
	Name             string
	EmptyOutside     bool
	Floor            string
	InteriorWall     string
	InteriorWallTrim string
	GrimeWall        string
	GrimeFloor       string
}

type FloorDef struct {
	Rooms   []RoomRect
	Objects []ObjectDef

	// Painted tiles by layer name.
	Grime map[string][]PaintedTile
}

type RoomRect struct {
	Room                string
	X, Y, Width, Height int
}

type PaintedTile struct {
	X, Y int
	Tile string
}

// One placed object. Which fields matter depends on Type, which is one of
// Door, Window, Stairs, Furniture, Roof or Wall.
type ObjectDef struct {
	Type string
	X, Y int
	Dir  Dir

	Tile         string
	FrameTile    string
	CurtainsTile string
	ShuttersTile string

	// Furniture
	Name     string
	Rotation int

	// Roofs
	Width, Height int
	RoofType      RoofType
	Depth         int
	CappedW       bool
	CappedN       bool
	CappedE       bool
	CappedS       bool
	CapTiles      string
	SlopeTiles    string
	TopTiles      string

	// Walls
	Length       int
	ExteriorTile string
	InteriorTile string
	ExteriorTrim string
	InteriorTrim string
}

func LoadPlan(path string) (*PlanDef, error) {
	var plan PlanDef
	if err := base.LoadJson(path, &plan); err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	logging.Info("loaded plan", "path", path, "name", plan.Name, "floors", len(plan.Floors))
	return &plan, nil
}

func entryOr(catalog tiles.Catalog, category tiles.Category, name string, fallback *tiles.Entry) *tiles.Entry {
	if name == "" && fallback != nil {
		return fallback
	}
	return catalog.Entry(category, name)
}

func (p *PlanDef) Build(catalog tiles.Catalog) (*Building, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("plan %q has bad size %dx%d", p.Name, p.Width, p.Height)
	}
	b := NewBuilding(p.Width, p.Height)
	b.Name = p.Name
	b.ExteriorWall = catalog.Entry(tiles.ExteriorWalls, p.ExteriorWall)
	b.ExteriorWallTrim = catalog.Entry(tiles.WallTrim, p.ExteriorWallTrim)
	b.Door = catalog.Entry(tiles.Doors, p.Door)
	b.DoorFrame = catalog.Entry(tiles.DoorFrames, p.DoorFrame)
	b.Window = catalog.Entry(tiles.Windows, p.Window)
	b.Curtains = catalog.Entry(tiles.Curtains, p.Curtains)
	b.Shutters = catalog.Entry(tiles.Shutters, p.Shutters)
	b.Stairs = catalog.Entry(tiles.Stairs, p.Stairs)
	b.GrimeWall = catalog.Entry(tiles.GrimeWall, p.GrimeWall)
	b.GrimeFloor = catalog.Entry(tiles.GrimeFloor, p.GrimeFloor)

	rooms := make(map[string]*Room, len(p.Rooms))
	for _, rd := range p.Rooms {
		if _, ok := rooms[rd.Name]; ok {
			return nil, fmt.Errorf("plan %q: duplicate room %q", p.Name, rd.Name)
		}
		r := &Room{
			Name:             rd.Name,
			EmptyOutside:     rd.EmptyOutside,
			Floor:            catalog.Entry(tiles.Floors, rd.Floor),
			InteriorWall:     catalog.Entry(tiles.InteriorWalls, rd.InteriorWall),
			InteriorWallTrim: catalog.Entry(tiles.WallTrim, rd.InteriorWallTrim),
			GrimeWall:        catalog.Entry(tiles.GrimeWall, rd.GrimeWall),
			GrimeFloor:       catalog.Entry(tiles.GrimeFloor, rd.GrimeFloor),
		}
		rooms[rd.Name] = r
		b.AddRoom(r)
	}

	for level, fd := range p.Floors {
		f := b.AddFloor()
		for _, rr := range fd.Rooms {
			r, ok := rooms[rr.Room]
			if !ok {
				return nil, fmt.Errorf("plan %q floor %d: unknown room %q", p.Name, level, rr.Room)
			}
			f.FillRoom(image.Rect(rr.X, rr.Y, rr.X+rr.Width, rr.Y+rr.Height), r)
		}
		for i, od := range fd.Objects {
			o, err := od.build(b, catalog)
			if err != nil {
				return nil, fmt.Errorf("plan %q floor %d object %d: %w", p.Name, level, i, err)
			}
			f.AddObject(o)
		}
		for layer, painted := range fd.Grime {
			for _, pt := range painted {
				if !image.Pt(pt.X, pt.Y).In(f.grimeBounds()) {
					return nil, fmt.Errorf("plan %q floor %d: %s tile at (%d, %d) is off the floor", p.Name, level, layer, pt.X, pt.Y)
				}
				f.SetGrime(layer, pt.X, pt.Y, pt.Tile)
			}
		}
	}
	return b, nil
}

func (od *ObjectDef) build(b *Building, catalog tiles.Catalog) (Object, error) {
	switch od.Type {
	case "Door":
		return &Door{
			X: od.X, Y: od.Y, Dir: od.Dir,
			Tile:      entryOr(catalog, tiles.Doors, od.Tile, b.Door),
			FrameTile: entryOr(catalog, tiles.DoorFrames, od.FrameTile, b.DoorFrame),
		}, nil

	case "Window":
		return &Window{
			X: od.X, Y: od.Y, Dir: od.Dir,
			Tile:         entryOr(catalog, tiles.Windows, od.Tile, b.Window),
			CurtainsTile: entryOr(catalog, tiles.Curtains, od.CurtainsTile, b.Curtains),
			ShuttersTile: entryOr(catalog, tiles.Shutters, od.ShuttersTile, b.Shutters),
		}, nil

	case "Stairs":
		if od.Dir != N && od.Dir != W {
			return nil, fmt.Errorf("stairs must face N or W, not %v", od.Dir)
		}
		return &Stairs{
			X: od.X, Y: od.Y, Dir: od.Dir,
			Tile: entryOr(catalog, tiles.Stairs, od.Tile, b.Stairs),
		}, nil

	case "Furniture":
		furn, err := MakeFurniture(od.Name)
		if err != nil {
			return nil, err
		}
		if len(furn.Orientations) == 0 {
			return nil, fmt.Errorf("furniture %q has no orientations", od.Name)
		}
		furn.X, furn.Y = od.X, od.Y
		furn.Rotation = od.Rotation % len(furn.Orientations)
		return furn, nil

	case "Roof":
		if od.Width <= 0 || od.Height <= 0 {
			return nil, fmt.Errorf("roof has bad size %dx%d", od.Width, od.Height)
		}
		return &RoofObject{
			X: od.X, Y: od.Y, Width: od.Width, Height: od.Height,
			Type:       od.RoofType,
			Depth:      od.Depth,
			CappedW:    od.CappedW,
			CappedN:    od.CappedN,
			CappedE:    od.CappedE,
			CappedS:    od.CappedS,
			CapTiles:   catalog.Entry(tiles.RoofCaps, od.CapTiles),
			SlopeTiles: catalog.Entry(tiles.RoofSlopes, od.SlopeTiles),
			TopTiles:   catalog.Entry(tiles.RoofTops, od.TopTiles),
		}, nil

	case "Wall":
		if od.Length <= 0 {
			return nil, fmt.Errorf("wall has bad length %d", od.Length)
		}
		return &WallObject{
			X: od.X, Y: od.Y, Dir: od.Dir, Length: od.Length,
			ExteriorTile: entryOr(catalog, tiles.ExteriorWalls, od.ExteriorTile, b.ExteriorWall),
			InteriorTile: catalog.Entry(tiles.InteriorWalls, od.InteriorTile),
			ExteriorTrim: catalog.Entry(tiles.WallTrim, od.ExteriorTrim),
			InteriorTrim: catalog.Entry(tiles.WallTrim, od.InteriorTrim),
		}, nil
	}
	return nil, fmt.Errorf("unknown object type %q", od.Type)
}
