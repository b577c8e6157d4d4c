// Package term is a tcell frontend for the Wireworld engine. Each cell is
// drawn two columns wide; the row below the grid is a status line.
package term

import (
	"context"
	"fmt"
	"unicode"

	"wireworld/internal/sims/wireworld"

	"github.com/gdamore/tcell/v2"
)

type quitSignal struct{}

// View draws an engine on a tcell screen and maps keys and mouse onto it.
type View struct {
	screen tcell.Screen
	engine *wireworld.Engine
	editor *wireworld.Editor
	styles []tcell.Style
	seed   int64

	showEdges bool
	dragging  bool
	lastCell  wireworld.Position
	cells     []uint8
	edges     []uint8

	onChange func()
}

// New returns a view of engine on screen. seed is used by the reset key.
func New(screen tcell.Screen, engine *wireworld.Engine, seed int64) *View {
	v := &View{
		screen: screen,
		engine: engine,
		editor: wireworld.NewEditor(engine),
		seed:   seed,
		edges:  engine.EdgeMask(),
	}
	for _, c := range engine.Palette() {
		bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		v.styles = append(v.styles, tcell.StyleDefault.Background(bg).Foreground(tcell.ColorGray))
	}
	return v
}

// Editor returns the view's painting front.
func (v *View) Editor() *wireworld.Editor { return v.editor }

// OnChange registers fn to run after every edit made through the view.
func (v *View) OnChange(fn func()) { v.onChange = fn }

// Wake asks the event loop to redraw. It is safe to call from any goroutine.
func (v *View) Wake() {
	_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Run polls screen events until the user quits or ctx is done.
func (v *View) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{}))
	}()

	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.handleEvent(ev) {
			return nil
		}
		v.Draw()
	}
}

// handleEvent applies ev and reports whether the loop should stop.
func (v *View) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		_, quit := ev.Data().(quitSignal)
		return quit
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
	return false
}

var brushRunes = map[rune]wireworld.State{
	'0': wireworld.Empty,
	'1': wireworld.Head,
	'2': wireworld.Tail,
	'3': wireworld.Conductor,
	'e': wireworld.Empty,
	'h': wireworld.Head,
	't': wireworld.Tail,
	'c': wireworld.Conductor,
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	r := unicode.ToLower(ev.Rune())
	if s, ok := brushRunes[r]; ok {
		v.editor.SetBrush(s)
		return false
	}
	ctrl := wireworld.IntervalControl()
	switch r {
	case 'q':
		return true
	case ' ':
		v.engine.Toggle()
	case 'n':
		v.engine.Tick()
		v.changed()
	case '+', '=':
		v.engine.SetInterval(ctrl.Clamp(v.engine.IntervalMS() + ctrl.Step))
	case '-', '_':
		v.engine.SetInterval(ctrl.Clamp(v.engine.IntervalMS() - ctrl.Step))
	case 'r':
		v.engine.Reset(v.seed)
		v.changed()
	case 'x':
		v.engine.Clear()
		v.changed()
	case 'g':
		v.showEdges = !v.showEdges
	}
	return false
}

// handleMouse paints while the primary button is held, stroking between
// consecutive samples.
func (v *View) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		v.dragging = false
		return
	}
	x, y := ev.Position()
	cell := wireworld.Position{Row: y + 1, Column: x/2 + 1}
	size := v.engine.Size()
	if cell.Row > size.H || cell.Column > size.W {
		v.dragging = false
		return
	}
	var err error
	switch {
	case !v.dragging:
		err = v.editor.Paint(cell)
	case cell != v.lastCell:
		err = v.editor.Stroke(v.lastCell, cell)
	default:
		return
	}
	if err != nil && !wireworld.IsOutOfBounds(err) {
		return
	}
	v.dragging = true
	v.lastCell = cell
	v.changed()
}

func (v *View) changed() {
	if v.onChange != nil {
		v.onChange()
	}
}

// Draw renders the grid and the status line.
func (v *View) Draw() {
	size := v.engine.Size()
	v.cells = v.engine.CopyCells(v.cells)
	v.screen.Clear()
	for i, c := range v.cells {
		x, y := (i%size.W)*2, i/size.W
		style := v.styles[0]
		if int(c) < len(v.styles) {
			style = v.styles[c]
		}
		glyph := ' '
		if v.showEdges && wireworld.State(c) == wireworld.Empty {
			glyph = edgeRune(wireworld.EdgeType(v.edges[i]))
		}
		v.screen.SetContent(x, y, glyph, nil, style)
		v.screen.SetContent(x+1, y, ' ', nil, style)
	}
	v.drawText(0, size.H, v.status())
	v.screen.Show()
}

func (v *View) status() string {
	state := "idle"
	if v.engine.Running() {
		state = "running"
	}
	pop := v.engine.Population()
	return fmt.Sprintf("tick %d  %s  %dms  brush %v  H%d t%d #%d  [space n +/- r x g q]",
		v.engine.Ticks(), state, v.engine.IntervalMS(), v.editor.Brush(),
		pop.Heads, pop.Tails, pop.Conductors)
}

func (v *View) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func edgeRune(e wireworld.EdgeType) rune {
	switch {
	case e.Corner():
		return '+'
	case e == wireworld.EdgeTop || e == wireworld.EdgeBottom:
		return '-'
	case e == wireworld.EdgeLeft || e == wireworld.EdgeRight:
		return '|'
	}
	return ' '
}
