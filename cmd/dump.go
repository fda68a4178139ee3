package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/caffeine-storm/buildinged/house"
)

// Writes the resolved tiles of 'floors', one block per non-empty layer:
//
//	# <building> floor <level> layer <layer>
//	<x> <y> <tile> [<tile>...]
//
// Tiles of a cell are listed bottom to top.
func dump(w io.Writer, b *house.Building, floors []*house.Floor, layers []house.Layer) error {
	out := bufio.NewWriter(w)
	for _, f := range floors {
		for _, layer := range layers {
			dumpLayer(out, b, f, layer)
		}
	}
	return out.Flush()
}

func dumpLayer(out *bufio.Writer, b *house.Building, f *house.Floor, layer house.Layer) {
	header := false
	for y := 0; y < f.SquaresHeight(); y++ {
		for x := 0; x < f.SquaresWidth(); x++ {
			stack := f.LayerTiles(layer, x, y)
			if len(stack) == 0 {
				continue
			}
			if !header {
				fmt.Fprintf(out, "# %s floor %d layer %v\n", b.Name, f.Level(), layer)
				header = true
			}
			names := make([]string, len(stack))
			for i, t := range stack {
				names[i] = t.Name()
			}
			fmt.Fprintf(out, "%d %d %s\n", x, y, strings.Join(names, " "))
		}
	}
}
