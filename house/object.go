package house

import "image"

// Anything that can be placed on a floor. The set of object kinds is closed:
// *Door, *Window, *Stairs, *FurnitureObject, *RoofObject and *WallObject.
type Object interface {
	// The object's anchor cell.
	Pos() (x, y int)

	// Which way the object faces, or which cell side it sits on.
	Direction() Dir

	// Cells covered by the object.
	Bounds() image.Rectangle

	isObject()
}
