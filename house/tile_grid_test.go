package house_test

import (
	"fmt"
	"image"
	"math/rand"
	"testing"

	"github.com/caffeine-storm/buildinged/house"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func TestFloorTileGrid(t *testing.T) {
	Convey("FloorTileGrid", t, func() {
		g := house.NewFloorTileGrid(6, 4)

		Convey("starts out empty", func() {
			So(g.IsEmpty(), ShouldBeTrue)
			So(g.At(5, 3), ShouldEqual, "")
			So(g.Width(), ShouldEqual, 6)
			So(g.Height(), ShouldEqual, 4)
		})

		Convey("reports changes and keeps count", func() {
			So(g.Replace(1, 2, "grime_1"), ShouldBeTrue)
			So(g.Replace(1, 2, "grime_1"), ShouldBeFalse)
			So(g.At(1, 2), ShouldEqual, "grime_1")
			So(g.Count(), ShouldEqual, 1)
			So(g.Replace(1, 2, "grime_2"), ShouldBeTrue)
			So(g.Count(), ShouldEqual, 1)
			So(g.Replace(1, 2, ""), ShouldBeTrue)
			So(g.Count(), ShouldEqual, 0)
			So(g.Replace(1, 2, ""), ShouldBeFalse)
		})

		Convey("panics out of bounds", func() {
			So(func() { g.At(6, 0) }, ShouldPanic)
			So(func() { g.At(0, -1) }, ShouldPanic)
			So(func() { g.Replace(-1, 0, "x_1") }, ShouldPanic)
		})

		Convey("fills rectangles clipped to the grid", func() {
			So(g.ReplaceRect(image.Rect(4, 2, 10, 10), "x_1"), ShouldBeTrue)
			So(g.Count(), ShouldEqual, 4)
			So(g.At(5, 3), ShouldEqual, "x_1")
			So(g.ReplaceRect(image.Rect(4, 2, 10, 10), "x_1"), ShouldBeFalse)
		})

		Convey("fills regions", func() {
			region := house.Region{image.Rect(0, 0, 1, 1), image.Rect(2, 2, 3, 4)}
			So(g.ReplaceRegion(region, "x_1"), ShouldBeTrue)
			So(g.Count(), ShouldEqual, 3)
			So(g.At(2, 3), ShouldEqual, "x_1")
			So(g.At(1, 1), ShouldEqual, "")
			So(g.ReplaceRegion(region, "x_1"), ShouldBeFalse)
		})

		Convey("fills everything", func() {
			So(g.ReplaceAll("x_1"), ShouldBeTrue)
			So(g.Count(), ShouldEqual, 24)
			So(g.ReplaceAll(""), ShouldBeTrue)
			So(g.IsEmpty(), ShouldBeTrue)
			So(g.ReplaceAll(""), ShouldBeFalse)
		})

		Convey("clones independently", func() {
			g.Replace(2, 1, "a_1")
			g.Replace(3, 2, "b_1")
			clone := g.Clone()
			clone.Replace(2, 1, "")
			So(g.At(2, 1), ShouldEqual, "a_1")
			So(clone.At(3, 2), ShouldEqual, "b_1")

			Convey("to a sub-rectangle", func() {
				sub := g.CloneRect(image.Rect(2, 1, 8, 3))
				So(sub.Width(), ShouldEqual, 6)
				So(sub.Height(), ShouldEqual, 2)
				So(sub.At(0, 0), ShouldEqual, "a_1")
				So(sub.At(1, 1), ShouldEqual, "b_1")
				So(sub.At(5, 1), ShouldEqual, "")
			})

			Convey("restricted to a region", func() {
				sub := g.CloneRectRegion(image.Rect(2, 1, 4, 3), house.Region{image.Rect(3, 2, 4, 3)})
				So(sub.At(0, 0), ShouldEqual, "")
				So(sub.At(1, 1), ShouldEqual, "b_1")
			})

			Convey("and copies back into a region", func() {
				sub := g.CloneRect(image.Rect(2, 1, 4, 3))
				other := house.NewFloorTileGrid(6, 4)
				So(other.ReplaceRegionFrom(house.Region{image.Rect(2, 1, 4, 3)}, sub), ShouldBeTrue)
				So(other.At(2, 1), ShouldEqual, "a_1")
				So(other.At(3, 2), ShouldEqual, "b_1")
				So(other.Count(), ShouldEqual, 2)
				So(other.ReplaceRegionFrom(house.Region{image.Rect(2, 1, 4, 3)}, sub), ShouldBeFalse)
			})
		})
	})
}

// Drives a grid well past the point where it switches storage and checks it
// against a plain map the whole way.
func TestFloorTileGridMatchesModel(t *testing.T) {
	const w, h = 9, 7
	rng := rand.New(rand.NewSource(1234))
	g := house.NewFloorTileGrid(w, h)
	model := map[image.Point]string{}

	check := func(step int) {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if !assert.Equal(t, model[image.Pt(x, y)], g.At(x, y), "step %d cell (%d, %d)", step, x, y) {
					t.FailNow()
				}
			}
		}
		assert.Equal(t, len(model), g.Count(), "step %d", step)
	}

	for step := 0; step < 400; step++ {
		x, y := rng.Intn(w), rng.Intn(h)
		name := ""
		// Bias towards filling so the grid crosses the threshold.
		if rng.Intn(4) != 0 {
			name = fmt.Sprintf("t_%d", rng.Intn(5))
		}
		want := model[image.Pt(x, y)] != name
		if name == "" {
			delete(model, image.Pt(x, y))
		} else {
			model[image.Pt(x, y)] = name
		}
		assert.Equal(t, want, g.Replace(x, y, name), "step %d", step)
		check(step)
	}
}
