// Package board maps a cell grid onto pixels. It reads cells through Source
// and draws through Canvas, so it carries no dependency on a graphics library.
package board

import (
	"image/color"

	"github.com/sheikhrachel/go-life/cell"
)

var (
	BorderColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LiveColor   = color.RGBA{G: 255, A: 255}
	DeadColor   = color.RGBA{A: 255}
)

// Source is the read side of a grid
type Source interface {
	Width() int
	Height() int
	At(row, col int) (cell.State, error)
}

// Canvas is anything rectangles can be drawn on
type Canvas interface {
	FillRect(x, y, w, h int, c color.Color)
	StrokeRect(x, y, w, h int, c color.Color)
}

// View places a grid at a pixel origin with square cells
type View struct {
	Left     int
	Top      int
	CellSize int
}

// RenderableSize returns the pixel size of a rows x cols grid, origin included
func (v View) RenderableSize(rows, cols int) (width, height int) {
	return v.Left + cols*v.CellSize, v.Top + rows*v.CellSize
}

// CellAt converts a pixel position to grid coordinates. ok is false when the
// pixel lies outside a rows x cols grid.
func (v View) CellAt(px, py, rows, cols int) (row, col int, ok bool) {
	if v.CellSize <= 0 || px < v.Left || py < v.Top {
		return 0, 0, false
	}
	row = (py - v.Top) / v.CellSize
	col = (px - v.Left) / v.CellSize
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}

// Draw paints every cell as a bordered square
func (v View) Draw(dst Canvas, src Source) {
	for row := range src.Height() {
		for col := range src.Width() {
			state, err := src.At(row, col)
			if err != nil {
				continue
			}
			v.DrawCell(dst, row, col, state)
		}
	}
}

// DrawCell paints one cell: a one pixel border and a filled interior
func (v View) DrawCell(dst Canvas, row, col int, state cell.State) {
	x := v.Left + col*v.CellSize
	y := v.Top + row*v.CellSize
	dst.StrokeRect(x, y, v.CellSize, v.CellSize, BorderColor)

	fill := DeadColor
	if state == cell.Live {
		fill = LiveColor
	}
	dst.FillRect(x+1, y+1, v.CellSize-2, v.CellSize-2, fill)
}
