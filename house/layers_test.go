package house_test

import (
	"encoding/json"
	"testing"

	"github.com/caffeine-storm/buildinged/house"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLayers(t *testing.T) {
	Convey("Layers", t, func() {
		Convey("cover every section exactly once", func() {
			seen := make(map[house.Section]house.Layer)
			for l := house.Layer(0); l < house.NumLayers; l++ {
				So(l.Sections(), ShouldNotBeEmpty)
				for _, s := range l.Sections() {
					prev, dup := seen[s]
					So(dup, ShouldBeFalse)
					if dup {
						t.Logf("%v is in both %v and %v", s, prev, l)
					}
					seen[s] = l
				}
			}
			So(len(seen), ShouldEqual, int(house.NumSections))
		})

		Convey("parse their own names", func() {
			for l := house.Layer(0); l < house.NumLayers; l++ {
				parsed, ok := house.ParseLayer(l.String())
				So(ok, ShouldBeTrue)
				So(parsed, ShouldEqual, l)
			}
			_, ok := house.ParseLayer("Basement")
			So(ok, ShouldBeFalse)
			So(house.NumLayers.String(), ShouldStartWith, "invalid")
			So(house.NumLayers.Sections(), ShouldBeNil)
		})

		Convey("round trip through json", func() {
			var def house.FurnitureDef
			So(json.Unmarshal([]byte(`{"Name": "shelf", "Layer": "WallFurniture"}`), &def), ShouldBeNil)
			So(def.Layer, ShouldEqual, house.LayerWallFurniture)

			data, err := json.Marshal(def)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"Layer":"WallFurniture"`)

			So(json.Unmarshal([]byte(`{"Layer": "Attic"}`), &def), ShouldNotBeNil)
		})
	})
}

func TestDirs(t *testing.T) {
	Convey("Dirs parse their own names", t, func() {
		for d := house.Dir(0); d < house.NumDirs; d++ {
			parsed, ok := house.ParseDir(d.String())
			So(ok, ShouldBeTrue)
			So(parsed, ShouldEqual, d)
		}
		_, ok := house.ParseDir("NE")
		So(ok, ShouldBeFalse)
	})
}
