package viewer_test

import (
	"testing"

	"github.com/caffeine-storm/buildinged/house"
	"github.com/caffeine-storm/buildinged/house/housetest"
	"github.com/caffeine-storm/buildinged/tiles"
	"github.com/caffeine-storm/buildinged/viewer"
	"github.com/gdamore/tcell/v2"
	. "github.com/smartystreets/goconvey/convey"
)

func givenAScreen(width, height int) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	So(screen.Init(), ShouldBeNil)
	screen.SetSize(width, height)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestFloorViewer(t *testing.T) {
	Convey("A FloorViewer", t, func() {
		catalog := housetest.GivenACatalog()
		f, _ := housetest.GivenASingleRoomFloor(catalog, 3, 2)
		b := f.Building()
		b.AddFloor()
		b.LayoutToSquares(catalog)

		screen := givenAScreen(20, 10)
		defer screen.Fini()
		fv := viewer.MakeFloorViewer(screen, b, 0, house.LayerFloor)

		Convey("draws the floor layer", func() {
			fv.Draw()
			So(runeAt(screen, 0, 0), ShouldEqual, 't')
			So(runeAt(screen, 0, 1), ShouldEqual, 'o')
			So(runeAt(screen, 2, 2), ShouldEqual, 'o')
			So(runeAt(screen, 3, 1), ShouldEqual, '.')
			So(runeAt(screen, 0, 3), ShouldEqual, '.')
			So(runeAt(screen, 0, 4), ShouldEqual, ' ')
			So(runeAt(screen, 4, 1), ShouldEqual, ' ')
		})

		Convey("switches layers", func() {
			So(fv.Respond(key(tcell.KeyTab)), ShouldBeTrue)
			So(fv.Layer(), ShouldEqual, house.LayerFloorGrime)
			So(fv.Respond(char('p')), ShouldBeTrue)
			So(fv.Respond(char('p')), ShouldBeTrue)
			So(fv.Layer(), ShouldEqual, house.LayerRoofTop)

			fv.SetLayer(house.LayerWalls)
			fv.Draw()
			// Wall and trim are stacked in the corner, so the trim shows in
			// upper case.
			So(runeAt(screen, 0, 1), ShouldEqual, 'E')
			So(runeAt(screen, 1, 1), ShouldEqual, 'E')
			So(runeAt(screen, 1, 2), ShouldEqual, '.')
		})

		Convey("switches floors", func() {
			So(fv.Respond(char('+')), ShouldBeTrue)
			So(fv.Level(), ShouldEqual, 1)
			So(fv.Respond(key(tcell.KeyPgUp)), ShouldBeTrue)
			So(fv.Level(), ShouldEqual, 1)
			fv.Draw()
			So(runeAt(screen, 0, 1), ShouldEqual, '.')
			So(fv.Respond(key(tcell.KeyPgDn)), ShouldBeTrue)
			So(fv.Level(), ShouldEqual, 0)
		})

		Convey("pans within the floor", func() {
			small := givenAScreen(2, 2)
			defer small.Fini()
			fv := viewer.MakeFloorViewer(small, b, 0, house.LayerFloor)
			fv.Respond(key(tcell.KeyRight))
			fv.Respond(key(tcell.KeyRight))
			fv.Respond(key(tcell.KeyRight))
			fv.Respond(key(tcell.KeyDown))
			fv.Respond(key(tcell.KeyDown))
			fv.Respond(key(tcell.KeyDown))
			x, y := fv.GetFocus()
			So(x, ShouldEqual, 2)
			So(y, ShouldEqual, 2)

			fv.Respond(key(tcell.KeyUp))
			_, y = fv.GetFocus()
			So(y, ShouldEqual, 1)

			fv.Draw()
			So(runeAt(small, 0, 1), ShouldEqual, 'o')
			So(runeAt(small, 1, 1), ShouldEqual, '.')
		})

		Convey("quits", func() {
			So(fv.Respond(char('q')), ShouldBeFalse)
			So(fv.Respond(key(tcell.KeyEscape)), ShouldBeFalse)
		})

		Convey("runs until told to quit", func() {
			So(screen.PostEvent(char('n')), ShouldBeNil)
			So(screen.PostEvent(char('q')), ShouldBeNil)
			fv.Run()
			So(fv.Layer(), ShouldEqual, house.LayerFloorGrime)
		})

		Convey("relayouts on interrupt", func() {
			calls := 0
			fv.Relayout = func() { calls++ }
			So(fv.Interrupt(), ShouldBeNil)
			So(screen.PostEvent(char('q')), ShouldBeNil)
			fv.Run()
			So(calls, ShouldEqual, 1)
		})

		Convey("refuses missing floors", func() {
			So(func() { viewer.MakeFloorViewer(screen, b, 2, house.LayerFloor) }, ShouldPanic)
		})
	})
}

func TestCellRune(t *testing.T) {
	Convey("CellRune", t, func() {
		r, _ := viewer.CellRune(nil)
		So(r, ShouldEqual, '.')

		oak := &tiles.Tile{Tileset: "oak", Index: 1}
		brick := &tiles.Tile{Tileset: "brick", Index: 2}
		r, style := viewer.CellRune([]*tiles.Tile{oak})
		So(r, ShouldEqual, 'o')

		r, _ = viewer.CellRune([]*tiles.Tile{brick, oak})
		So(r, ShouldEqual, 'O')

		_, again := viewer.CellRune([]*tiles.Tile{{Tileset: "oak", Index: 7}})
		So(again, ShouldEqual, style)
	})
}
