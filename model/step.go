package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/rules"
)

// errFrameShape is returned when src and dst do not have the same dimensions
var errFrameShape = errors.New("frame shapes differ")

// stepper computes dst as the generation following src. Implementations only
// read src and only write dst, and dst arrives all dead.
type stepper interface {
	step(src, dst *frame) error
}

// countLiveNeighbors counts living neighbors, clamping the 3x3 window to the
// grid instead of wrapping
func countLiveNeighbors(f *frame, row, col int) int {
	var (
		count  = 0
		height = len(f.cells)
		width  = len(f.cells[0])
		minRow = max(0, row-1)
		maxRow = min(height-1, row+1)
		minCol = max(0, col-1)
		maxCol = min(width-1, col+1)
	)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if f.cells[r][c] == cell.Live {
				count++
			}
		}
	}

	return count
}

func stepRows(src, dst *frame, startRow, endRow, startCol, endCol int) error {
	if len(dst.cells) != len(src.cells) {
		return errors.Wrapf(errFrameShape, "[stepRows] src has %d rows, dst has %d", len(src.cells), len(dst.cells))
	}
	for row := startRow; row < endRow; row++ {
		if len(dst.cells[row]) != len(src.cells[row]) {
			return errors.Wrapf(errFrameShape, "[stepRows] row %d: src has %d cols, dst has %d",
				row, len(src.cells[row]), len(dst.cells[row]))
		}
	}
	for row := startRow; row < endRow; row++ {
		for col := startCol; col < endCol; col++ {
			dst.cells[row][col] = rules.Conway(src.cells[row][col], countLiveNeighbors(src, row, col))
		}
	}
	return nil
}

type serialStepper struct{}

func (serialStepper) step(src, dst *frame) error {
	return stepRows(src, dst, 0, len(src.cells), 0, len(src.cells[0]))
}

// parallelStepper splits the rows into one band per worker
type parallelStepper struct {
	workers int
}

func newParallelStepper(workers int) parallelStepper {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return parallelStepper{workers: workers}
}

func (p parallelStepper) step(src, dst *frame) error {
	var (
		eg            errgroup.Group
		height        = len(src.cells)
		width         = len(src.cells[0])
		rowsPerWorker = (height + p.workers - 1) / p.workers // Ceiling division
	)

	for i := range p.workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			return stepRows(src, dst, startRow, endRow, 0, width)
		})
	}

	// Wait is the barrier between reading src and committing dst
	if err := eg.Wait(); err != nil {
		return errors.Wrapf(err, "[parallelStepper] %d workers", p.workers)
	}
	return nil
}

type bounds struct {
	minRow, maxRow, minCol, maxCol int
	valid                          bool
}

// activeBounds calculates the bounding box of living cells
func activeBounds(f *frame) (b bounds) {
	for row := range f.cells {
		for col, state := range f.cells[row] {
			if state != cell.Live {
				continue
			}
			if !b.valid {
				b = bounds{minRow: row, maxRow: row, minCol: col, maxCol: col, valid: true}
				continue
			}
			b.minRow = min(b.minRow, row)
			b.maxRow = max(b.maxRow, row)
			b.minCol = min(b.minCol, col)
			b.maxCol = max(b.maxCol, col)
		}
	}
	return
}

// boundedStepper only visits the live bounding box plus a one cell margin.
// Everything outside it has no live neighbors and stays dead.
type boundedStepper struct{}

func (boundedStepper) step(src, dst *frame) error {
	b := activeBounds(src)
	if !b.valid {
		return nil
	}

	var (
		height = len(src.cells)
		width  = len(src.cells[0])
	)
	return stepRows(src, dst,
		max(0, b.minRow-1), min(height, b.maxRow+2),
		max(0, b.minCol-1), min(width, b.maxCol+2),
	)
}
