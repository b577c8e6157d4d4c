//go:build ebiten

package ui

import (
	"image/color"

	"wireworld/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type edgeMaskProvider interface {
	EdgeMask() []uint8
}

// edgeTints is indexed by edge class: interior, the four sides, then the
// four corners.
var edgeTints = []color.RGBA{
	{},
	{R: 0, G: 90, B: 110, A: 90},
	{R: 0, G: 90, B: 110, A: 90},
	{R: 0, G: 90, B: 110, A: 90},
	{R: 0, G: 90, B: 110, A: 90},
	{R: 150, G: 0, B: 140, A: 130},
	{R: 150, G: 0, B: 140, A: 130},
	{R: 150, G: 0, B: 140, A: 130},
	{R: 150, G: 0, B: 140, A: 130},
}

// Overlay draws optional debugging visuals on top of the base simulation:
// the edge classification of boundary cells and the cell under the cursor.
type Overlay struct {
	sim       core.Sim
	scale     int
	showEdges bool

	edgeImg *ebiten.Image
	pixel   *ebiten.Image

	hoverX, hoverY int
	hover          bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showEdges = !o.showEdges
	}
	scale := max(o.scale, 1)
	size := o.sim.Size()
	mx, my := ebiten.CursorPosition()
	o.hoverX, o.hoverY = mx/scale, my/scale
	o.hover = mx >= 0 && my >= 0 && o.hoverX < size.W && o.hoverY < size.H
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := max(o.scale, 1)

	if o.showEdges {
		if provider, ok := o.sim.(edgeMaskProvider); ok {
			o.drawEdges(screen, provider.EdgeMask(), size, scale)
		}
	}
	if o.hover {
		o.drawOutline(screen, o.hoverX*scale, o.hoverY*scale, scale)
	}
}

func (o *Overlay) drawEdges(screen *ebiten.Image, mask []uint8, size core.Size, scale int) {
	if len(mask) != size.W*size.H {
		return
	}
	// Edge classes never change for a grid, so the image is built once.
	if o.edgeImg == nil {
		buf := make([]byte, 4*len(mask))
		for i, class := range mask {
			if int(class) >= len(edgeTints) {
				continue
			}
			tint := edgeTints[class]
			buf[i*4+0] = tint.R
			buf[i*4+1] = tint.G
			buf[i*4+2] = tint.B
			buf[i*4+3] = tint.A
		}
		o.edgeImg = ebiten.NewImage(size.W, size.H)
		o.edgeImg.WritePixels(buf)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.edgeImg, op)
}

func (o *Overlay) drawOutline(screen *ebiten.Image, x, y, side int) {
	c := color.RGBA{R: 255, G: 255, B: 255, A: 160}
	o.fillRect(screen, x, y, side, 1, c)
	o.fillRect(screen, x, y+side-1, side, 1, c)
	o.fillRect(screen, x, y, 1, side, c)
	o.fillRect(screen, x+side-1, y, 1, side, c)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
