package house_test

import (
	"strings"
	"testing"

	"github.com/caffeine-storm/buildinged/house/housetest"
	"github.com/caffeine-storm/buildinged/logging"
	"github.com/caffeine-storm/buildinged/logging/logtesting"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLayoutLogging(t *testing.T) {
	Convey("Laying out a floor", t, func() {
		catalog := housetest.GivenACatalog()
		f, _ := housetest.GivenASingleRoomFloor(catalog, 2, 2)

		Convey("is quiet at the default level", func() {
			lines := logtesting.CollectOutput(func() {
				f.LayoutToSquares(catalog)
			})
			So(lines, ShouldBeEmpty)
		})

		Convey("traces each stage when asked", func() {
			lines := logtesting.CollectOutput(func() {
				logging.TraceBracket(func() {
					f.LayoutToSquares(catalog)
				})
			})
			out := strings.Join(lines, "\n")
			So(out, ShouldContainSubstring, "laying out floor")
			So(out, ShouldContainSubstring, "placed walls")
			So(out, ShouldContainSubstring, "finished floor")
		})
	})
}
