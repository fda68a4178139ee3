package tiles

// Offsets into the entries of ExteriorWalls, InteriorWalls and WallTrim.
const (
	WallWest = iota
	WallNorth
	WallNorthWest
	WallSouthEast
	WallWestWindow
	WallNorthWindow
	WallWestDoor
	WallNorthDoor
)

var wallOffsetNames = []string{
	"West", "North", "NorthWest", "SouthEast",
	"WestWindow", "NorthWindow", "WestDoor", "NorthDoor",
}

const (
	FloorFloor = iota
)

var floorOffsetNames = []string{"Floor"}

const (
	DoorWest = iota
	DoorNorth
	DoorWestOpen
	DoorNorthOpen
)

var doorOffsetNames = []string{"West", "North", "WestOpen", "NorthOpen"}

const (
	FrameWest = iota
	FrameNorth
)

var frameOffsetNames = []string{"West", "North"}

const (
	WindowWest = iota
	WindowNorth
)

var windowOffsetNames = []string{"West", "North"}

const (
	CurtainsWest = iota
	CurtainsNorth
	CurtainsEast
	CurtainsSouth
)

var curtainsOffsetNames = []string{"West", "North", "East", "South"}

// Shutters hang on the cells flanking a window. WestNorth is the shutter
// north of a west window, and so on.
const (
	ShutterWestNorth = iota
	ShutterWestSouth
	ShutterNorthWest
	ShutterNorthEast
)

var shuttersOffsetNames = []string{"WestNorth", "WestSouth", "NorthWest", "NorthEast"}

const (
	StairsWest1 = iota
	StairsWest2
	StairsWest3
	StairsNorth1
	StairsNorth2
	StairsNorth3
)

var stairsOffsetNames = []string{"West1", "West2", "West3", "North1", "North2", "North3"}

// Offsets into GrimeFloor and GrimeWall entries.
const (
	GrimeWest = iota
	GrimeNorth
	GrimeNorthWest
	GrimeSouthEast
	GrimeWestWindow
	GrimeNorthWindow
	GrimeWestDoor
	GrimeNorthDoor
	GrimeWestTrim
	GrimeNorthTrim
	GrimeNorthWestTrim
	GrimeSouthEastTrim
	GrimeWestDoubleLeft
	GrimeWestDoubleRight
	GrimeNorthDoubleLeft
	GrimeNorthDoubleRight
)

var grimeOffsetNames = []string{
	"West", "North", "NorthWest", "SouthEast",
	"WestWindow", "NorthWindow", "WestDoor", "NorthDoor",
	"WestTrim", "NorthTrim", "NorthWestTrim", "SouthEastTrim",
	"WestDoubleLeft", "WestDoubleRight", "NorthDoubleLeft", "NorthDoubleRight",
}

// Caps close off the open ends of a slope. A slope that is lowest at its
// south edge shows CapFallS tiles at its west and east ends.
const (
	CapRiseE1 = iota
	CapRiseE2
	CapRiseE3
	CapFallE1
	CapFallE2
	CapFallE3
	CapRiseS1
	CapRiseS2
	CapRiseS3
	CapFallS1
	CapFallS2
	CapFallS3
)

var roofCapOffsetNames = []string{
	"RiseE1", "RiseE2", "RiseE3", "FallE1", "FallE2", "FallE3",
	"RiseS1", "RiseS2", "RiseS3", "FallS1", "FallS2", "FallS3",
}

// Slope tiles are numbered by height above the slope's low edge.
const (
	SlopeS1 = iota
	SlopeS2
	SlopeS3
	SlopeE1
	SlopeE2
	SlopeE3
	SlopeW1
	SlopeW2
	SlopeW3
	SlopeN1
	SlopeN2
	SlopeN3
	SlopeInner1
	SlopeInner2
	SlopeInner3
	SlopeOuter1
	SlopeOuter2
	SlopeOuter3
)

var roofSlopeOffsetNames = []string{
	"SlopeS1", "SlopeS2", "SlopeS3",
	"SlopeE1", "SlopeE2", "SlopeE3",
	"SlopeW1", "SlopeW2", "SlopeW3",
	"SlopeN1", "SlopeN2", "SlopeN3",
	"Inner1", "Inner2", "Inner3",
	"Outer1", "Outer2", "Outer3",
}

const (
	TopWest1 = iota
	TopWest2
	TopWest3
	TopNorth1
	TopNorth2
	TopNorth3
)

var roofTopOffsetNames = []string{"West1", "West2", "West3", "North1", "North2", "North3"}
