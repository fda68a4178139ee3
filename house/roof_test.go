package house_test

import (
	"image"
	"testing"

	"github.com/caffeine-storm/buildinged/house"
	"github.com/caffeine-storm/buildinged/house/housetest"
	"github.com/caffeine-storm/buildinged/tiles"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRoofs(t *testing.T) {
	Convey("Roofs", t, func() {
		catalog := housetest.GivenACatalog()
		f, r := housetest.GivenASingleRoomFloor(catalog, 4, 4)
		givenARoof := func(typ house.RoofType, depth, width, height int) *house.RoofObject {
			return &house.RoofObject{
				X: 0, Y: 0, Width: width, Height: height,
				Type:       typ,
				Depth:      depth,
				CapTiles:   catalog.Entry(tiles.RoofCaps, "caps"),
				SlopeTiles: catalog.Entry(tiles.RoofSlopes, "slopes"),
				TopTiles:   catalog.Entry(tiles.RoofTops, "tops"),
			}
		}

		Convey("slope up from their low edge and are capped at the ends", func() {
			roof := givenARoof(house.SlopeS, 2, 3, 3)
			roof.CappedW = true
			f.AddObject(roof)
			f.LayoutToSquares(catalog)

			So(tileName(f, house.SectionRoof, 1, 2), ShouldEqual, "slopes_0")
			So(tileName(f, house.SectionRoof, 1, 1), ShouldEqual, "slopes_1")
			So(f.Square(1, 0).Section(house.SectionRoof).IsEmpty(), ShouldBeTrue)
			So(tileName(f, house.SectionRoofTop, 1, 0), ShouldEqual, "tops_4")

			So(tileName(f, house.SectionRoofCap, 0, 2), ShouldEqual, "caps_9")
			So(tileName(f, house.SectionRoofCap, 0, 1), ShouldEqual, "caps_10")
			So(f.Square(0, 0).Section(house.SectionRoofCap).IsEmpty(), ShouldBeTrue)
			So(f.Square(2, 2).Section(house.SectionRoofCap).IsEmpty(), ShouldBeTrue)
		})

		Convey("peak in the middle", func() {
			f.AddObject(givenARoof(house.PeakNS, 3, 4, 1))
			f.LayoutToSquares(catalog)
			So(tileName(f, house.SectionRoof, 0, 0), ShouldEqual, "slopes_6")
			So(tileName(f, house.SectionRoof, 1, 0), ShouldEqual, "slopes_7")
			So(tileName(f, house.SectionRoof, 2, 0), ShouldEqual, "slopes_4")
			So(tileName(f, house.SectionRoof, 3, 0), ShouldEqual, "slopes_3")
		})

		Convey("share a cell by spilling", func() {
			f.AddObject(givenARoof(house.SlopeE, 1, 1, 1))
			f.AddObject(givenARoof(house.SlopeS, 1, 1, 1))
			f.LayoutToSquares(catalog)
			So(tileName(f, house.SectionRoof, 0, 0), ShouldEqual, "slopes_3")
			So(tileName(f, house.SectionRoof2, 0, 0), ShouldEqual, "slopes_0")
		})

		Convey("with a shallow flat top draw it on their own floor", func() {
			f.AddObject(givenARoof(house.FlatTop, 1, 2, 2))
			f.LayoutToSquares(catalog)
			So(tileName(f, house.SectionRoofTop, 1, 1), ShouldEqual, "tops_3")
		})

		Convey("with a depth 3 flat top draw it on the floor above", func() {
			f.AddObject(givenARoof(house.FlatTop, 3, 2, 2))
			above := f.Building().AddFloor()
			above.FillRoom(image.Rect(0, 0, 4, 4), r)
			f.Building().LayoutToSquares(catalog)

			So(f.Square(1, 1).Section(house.SectionRoofTop).IsEmpty(), ShouldBeTrue)
			So(tileName(above, house.SectionRoofTop, 1, 1), ShouldEqual, "tops_5")
			So(above.Square(2, 2).Section(house.SectionRoofTop).IsEmpty(), ShouldBeTrue)
		})

		Convey("corners use the corner slopes", func() {
			f.AddObject(givenARoof(house.CornerOuter, 2, 2, 2))
			f.LayoutToSquares(catalog)
			So(tileName(f, house.SectionRoof, 0, 0), ShouldEqual, "slopes_15")
			So(tileName(f, house.SectionRoof, 1, 1), ShouldEqual, "slopes_16")
		})
	})
}
