//go:build ebiten

package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-life/session"
)

// Game adapts a session to the ebiten.Game interface
type Game struct {
	session *session.Session
	canvas  *canvas
}

// New constructs a Game for s
func New(s *session.Session) *Game {
	return &Game{session: s, canvas: newCanvas()}
}

// Update handles input and advances a running session once per tick
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if _, err := g.session.Click(ebiten.CursorPosition()); err != nil {
			return err
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.session.ToggleRunning()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.session.Start()
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.session.Scroll(dy)
		ebiten.SetTPS(g.session.TPS())
	}

	g.session.Tick()
	return nil
}

// Draw renders the board
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.canvas.dst = screen
	g.session.View().Draw(g.canvas, g.session.Grid())
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.session.RenderableSize()
}

// canvas draws rectangles by scaling a single white pixel
type canvas struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
}

func newCanvas() *canvas {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &canvas{pixel: pixel}
}

func (c *canvas) FillRect(x, y, w, h int, col color.Color) {
	if c.dst == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	c.dst.DrawImage(c.pixel, op)
}

func (c *canvas) StrokeRect(x, y, w, h int, col color.Color) {
	c.FillRect(x, y, w, 1, col)
	c.FillRect(x, y+h-1, w, 1, col)
	c.FillRect(x, y, 1, h, col)
	c.FillRect(x+w-1, y, 1, h, col)
}
