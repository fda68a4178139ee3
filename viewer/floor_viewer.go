// Package viewer draws resolved floors into a terminal, one layer at a time.
package viewer

import (
	"fmt"
	"hash/fnv"
	"unicode"
	"unicode/utf8"

	"github.com/caffeine-storm/buildinged/house"
	"github.com/caffeine-storm/buildinged/logging"
	"github.com/caffeine-storm/buildinged/tiles"
	"github.com/gdamore/tcell/v2"
)

// Rows above the board used for the status line.
const statusRows = 1

const emptyRune = '.'

type FloorViewerState struct {
	level int
	layer house.Layer

	// Square shown in the top-left corner of the board.
	fx, fy int
}

func (st *FloorViewerState) GetFocus() (int, int) {
	return st.fx, st.fy
}

func (st *FloorViewerState) Level() int         { return st.level }
func (st *FloorViewerState) Layer() house.Layer { return st.layer }

type FloorViewer struct {
	screen   tcell.Screen
	building *house.Building

	// Called from Run's goroutine when an interrupt event arrives, e.g. after
	// the tile properties were reloaded. Nil means interrupts only redraw.
	Relayout func()

	FloorViewerState
}

// Asks a running viewer to call Relayout and redraw. Safe to call from any
// goroutine.
func (fv *FloorViewer) Interrupt() error {
	return fv.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// The building must already be laid out.
func MakeFloorViewer(screen tcell.Screen, b *house.Building, level int, layer house.Layer) *FloorViewer {
	if b.Floor(level) == nil {
		panic(fmt.Errorf("building %q has no floor %d", b.Name, level))
	}
	return &FloorViewer{
		screen:   screen,
		building: b,
		FloorViewerState: FloorViewerState{
			level: level,
			layer: layer,
		},
	}
}

func (fv *FloorViewer) Floor() *house.Floor {
	return fv.building.Floor(fv.level)
}

func (fv *FloorViewer) GetState() FloorViewerState {
	return fv.FloorViewerState
}

func (fv *FloorViewer) SetState(state FloorViewerState) {
	fv.FloorViewerState = state
	fv.clampFocus()
}

func (fv *FloorViewer) String() string {
	return fmt.Sprintf("%s floor %d/%d layer %v", fv.building.Name, fv.level, len(fv.building.Floors)-1, fv.layer)
}

// The rune and style used for a cell whose layer holds 'stack', bottom to
// top. Only the topmost tile is shown.
func CellRune(stack []*tiles.Tile) (rune, tcell.Style) {
	if len(stack) == 0 {
		return emptyRune, tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	top := stack[len(stack)-1]
	r, _ := utf8.DecodeRuneInString(top.Tileset)
	if r == utf8.RuneError {
		r = '?'
	}
	if len(stack) > 1 {
		r = unicode.ToUpper(r)
	}
	h := fnv.New32a()
	h.Write([]byte(top.Tileset))
	color := tcell.PaletteColor(1 + int(h.Sum32()%14))
	return r, tcell.StyleDefault.Foreground(color)
}

func (fv *FloorViewer) drawString(x, y int, s string, style tcell.Style) {
	width, _ := fv.screen.Size()
	for _, r := range s {
		if x >= width {
			return
		}
		fv.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (fv *FloorViewer) Draw() {
	fv.screen.Clear()
	fv.drawString(0, 0, fv.String(), tcell.StyleDefault.Reverse(true))

	f := fv.Floor()
	if !f.HasSquares() {
		fv.drawString(0, statusRows, "not laid out", tcell.StyleDefault)
		fv.screen.Show()
		return
	}

	width, height := fv.screen.Size()
	for sy := statusRows; sy < height; sy++ {
		y := fv.fy + sy - statusRows
		if y >= f.SquaresHeight() {
			break
		}
		for sx := 0; sx < width; sx++ {
			x := fv.fx + sx
			if x >= f.SquaresWidth() {
				break
			}
			r, style := CellRune(f.LayerTiles(fv.layer, x, y))
			fv.screen.SetContent(sx, sy, r, nil, style)
		}
	}
	fv.screen.Show()
}

func (fv *FloorViewer) clampFocus() {
	f := fv.Floor()
	width, height := fv.screen.Size()
	maxx := max(0, f.SquaresWidth()-width)
	maxy := max(0, f.SquaresHeight()-(height-statusRows))
	fv.fx = min(max(fv.fx, 0), maxx)
	fv.fy = min(max(fv.fy, 0), maxy)
}

func (fv *FloorViewer) Pan(dx, dy int) {
	fv.fx += dx
	fv.fy += dy
	fv.clampFocus()
}

func (fv *FloorViewer) SetLayer(layer house.Layer) {
	fv.layer = (layer%house.NumLayers + house.NumLayers) % house.NumLayers
	logging.Debug("viewing layer", "layer", fv.layer)
}

// Moves to another floor if there is one; returns false otherwise.
func (fv *FloorViewer) SetLevel(level int) bool {
	if fv.building.Floor(level) == nil {
		return false
	}
	fv.level = level
	fv.clampFocus()
	logging.Debug("viewing floor", "level", level)
	return true
}

// Handles one event. Returns false once the viewer should close.
func (fv *FloorViewer) Respond(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		fv.screen.Sync()
		fv.clampFocus()

	case *tcell.EventInterrupt:
		if fv.Relayout != nil {
			fv.Relayout()
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			fv.SetLayer(fv.layer + 1)
		case tcell.KeyBacktab:
			fv.SetLayer(fv.layer - 1)
		case tcell.KeyPgUp:
			fv.SetLevel(fv.level + 1)
		case tcell.KeyPgDn:
			fv.SetLevel(fv.level - 1)
		case tcell.KeyLeft:
			fv.Pan(-1, 0)
		case tcell.KeyRight:
			fv.Pan(1, 0)
		case tcell.KeyUp:
			fv.Pan(0, -1)
		case tcell.KeyDown:
			fv.Pan(0, 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'n':
				fv.SetLayer(fv.layer + 1)
			case 'p':
				fv.SetLayer(fv.layer - 1)
			case '+':
				fv.SetLevel(fv.level + 1)
			case '-':
				fv.SetLevel(fv.level - 1)
			}
		}
	}
	return true
}

// Draws and handles events until the user quits or the screen is finalized.
// The caller owns the screen.
func (fv *FloorViewer) Run() {
	for {
		fv.Draw()
		ev := fv.screen.PollEvent()
		if ev == nil {
			return
		}
		if !fv.Respond(ev) {
			return
		}
	}
}
