//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"wireworld/internal/core"
	"wireworld/internal/render"
	"wireworld/internal/sims/wireworld"
	"wireworld/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Wireworld engine to the ebiten.Game interface. It is the
// input layer: keys and mouse map onto the editor and the engine controls.
type Game struct {
	engine  *wireworld.Engine
	editor  *wireworld.Editor
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep
	palette []color.RGBA

	scale    int
	tickOnce bool
	seed     int64

	dragging bool
	lastCell wireworld.Position

	onChange func()
}

// New constructs a Game for the provided engine.
func New(engine *wireworld.Engine, scale, hudWidth int, seed int64) *Game {
	size := engine.Size()
	return &Game{
		engine:  engine,
		editor:  wireworld.NewEditor(engine),
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(engine, hudWidth),
		overlay: ui.NewOverlay(engine, scale),
		step:    core.NewFixedStep(engine.Interval()),
		palette: engine.Palette(),
		scale:   scale,
		seed:    seed,
	}
}

// Editor exposes the painting front used by the mouse handlers.
func (g *Game) Editor() *wireworld.Editor { return g.editor }

// OnChange registers fn to run after every tick or edit, e.g. to publish
// frames to spectators.
func (g *Game) OnChange(fn func()) { g.onChange = fn }

// Reset restamps the configured circuit with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.engine.Reset(seed)
	g.tickOnce = false
	g.changed()
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()

	g.hud.SetStatus(g.status()...)
	g.hud.Update(g.viewWidth())
	g.overlay.Update()

	g.step.SetInterval(g.engine.Interval())
	if (g.engine.Running() && g.step.ShouldStep()) || g.tickOnce {
		g.engine.Tick()
		g.tickOnce = false
		g.changed()
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.engine.Toggle() {
			g.step.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.engine.Clear()
		g.changed()
	}
	for key, s := range brushKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.editor.SetBrush(s)
		}
	}
	ctrl := wireworld.IntervalControl()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.engine.SetInterval(ctrl.Clamp(g.engine.IntervalMS() + ctrl.Step))
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.engine.SetInterval(ctrl.Clamp(g.engine.IntervalMS() - ctrl.Step))
	}
}

var brushKeys = map[ebiten.Key]wireworld.State{
	ebiten.KeyDigit0: wireworld.Empty,
	ebiten.KeyDigit1: wireworld.Head,
	ebiten.KeyDigit2: wireworld.Tail,
	ebiten.KeyDigit3: wireworld.Conductor,
	ebiten.KeyE:      wireworld.Empty,
	ebiten.KeyH:      wireworld.Head,
	ebiten.KeyT:      wireworld.Tail,
	ebiten.KeyC:      wireworld.Conductor,
}

// handleMouse paints with the current brush while the left button is held,
// joining consecutive samples so fast drags leave no gaps.
func (g *Game) handleMouse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = false
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.viewWidth() {
		g.dragging = false
		return
	}
	cell := wireworld.Position{Row: my/g.scale + 1, Column: mx/g.scale + 1}
	var err error
	switch {
	case !g.dragging:
		err = g.editor.Paint(cell)
	case cell != g.lastCell:
		err = g.editor.Stroke(g.lastCell, cell)
	default:
		return
	}
	if err != nil && !wireworld.IsOutOfBounds(err) {
		return
	}
	g.dragging = true
	g.lastCell = cell
	g.changed()
}

func (g *Game) status() []string {
	state := "idle"
	if g.engine.Running() {
		state = "running"
	}
	return []string{
		fmt.Sprintf("Brush: %v", g.editor.Brush()),
		fmt.Sprintf("State: %s", state),
		"0-3/E H T C brush",
		"Space run  N step",
		"+/- interval  G edges",
		"R reset  X clear  Q quit",
	}
}

func (g *Game) changed() {
	if g.onChange != nil {
		g.onChange()
	}
}

func (g *Game) viewWidth() int { return g.engine.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	palette := g.palette
	if len(palette) == 0 {
		palette = render.DefaultPalette
	}
	g.painter.Blit(screen, g.engine.Cells(), palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
