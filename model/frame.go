package model

import (
	"crypto/md5"
	"sync"

	"github.com/sheikhrachel/go-life/cell"
)

// frame holds one full generation of cell states, indexed [row][col]. The
// digest is cached until the cells change; writers must call touch.
type frame struct {
	cells    [][]cell.State
	sum      [md5.Size]byte
	sumValid bool
}

func newFrame(width, height int) *frame {
	f := &frame{}
	f.reset(width, height)
	return f
}

// reset sizes the frame to width x height with every cell Dead
func (f *frame) reset(width, height int) {
	f.touch()
	if len(f.cells) != height {
		f.cells = make([][]cell.State, height)
	}
	for row := range f.cells {
		if len(f.cells[row]) != width {
			f.cells[row] = make([]cell.State, width)
			continue
		}
		clear(f.cells[row])
	}
}

func (f *frame) equal(other *frame) bool {
	if len(f.cells) != len(other.cells) {
		return false
	}
	for row := range f.cells {
		if len(f.cells[row]) != len(other.cells[row]) {
			return false
		}
		for col, state := range f.cells[row] {
			if other.cells[row][col] != state {
				return false
			}
		}
	}
	return true
}

// touch drops the cached digest
func (f *frame) touch() {
	f.sumValid = false
}

// digest returns the md5 sum of the frame's cells in row-major order
func (f *frame) digest() [md5.Size]byte {
	if f.sumValid {
		return f.sum
	}
	h := md5.New()
	for _, row := range f.cells {
		for _, state := range row {
			h.Write([]byte{byte(state)})
		}
	}
	copy(f.sum[:], h.Sum(nil))
	f.sumValid = true
	return f.sum
}

func (f *frame) population() (count int) {
	for _, row := range f.cells {
		for _, state := range row {
			if state == cell.Live {
				count++
			}
		}
	}
	return
}

// FramePool recycles generation buffers released by the history
type FramePool struct {
	pool sync.Pool
}

func NewFramePool() *FramePool {
	return &FramePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &frame{}
			},
		},
	}
}

// get retrieves a frame from the pool, sized and cleared. A nil pool allocates.
func (p *FramePool) get(width, height int) *frame {
	if p == nil {
		return newFrame(width, height)
	}
	f := p.pool.Get().(*frame)
	f.reset(width, height)
	return f
}

// put returns a frame to the pool. A nil pool drops it.
func (p *FramePool) put(f *frame) {
	if p == nil || f == nil {
		return
	}
	p.pool.Put(f)
}
