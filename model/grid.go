package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/cell"
)

var (
	// ErrOutOfRange is returned for coordinates outside the grid
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidSize is returned by NewGrid for non-positive dimensions
	ErrInvalidSize = errors.New("grid dimensions must be positive")
)

// Termination describes why a run halted
type Termination int

const (
	// NotTerminated means the grid can keep advancing
	NotTerminated Termination = iota
	// Extinct means every cell is dead
	Extinct
	// Repeated means the last advance produced an already visited generation
	Repeated
)

func (t Termination) String() string {
	switch t {
	case Extinct:
		return "extinction"
	case Repeated:
		return "repeated generation"
	default:
		return "running"
	}
}

// neighborOffsets lists the Moore neighborhood as (row, col) deltas
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size Game of Life board with cycle detection
type Grid struct {
	width      int
	height     int
	cur        *frame
	history    history
	pool       *FramePool
	stepper    stepper
	generation int
	repeated   bool
}

// Option configures a Grid at construction
type Option func(*Grid)

// WithPool recycles generation buffers through pool
func WithPool(pool *FramePool) Option {
	return func(g *Grid) { g.pool = pool }
}

// WithParallel splits each advance into row bands computed by up to workers
// goroutines. Non-positive workers means runtime.NumCPU.
func WithParallel(workers int) Option {
	return func(g *Grid) { g.stepper = newParallelStepper(workers) }
}

// WithBounded restricts each advance to the bounding box of live cells
func WithBounded() Option {
	return func(g *Grid) { g.stepper = boundedStepper{} }
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] width=%d height=%d", width, height)
	}
	g := &Grid{
		width:   width,
		height:  height,
		stepper: serialStepper{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.cur = g.pool.get(width, height)
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Generation returns the number of advances since construction or Clear
func (g *Grid) Generation() int {
	return g.generation
}

// HistoryLen returns the number of recorded generations
func (g *Grid) HistoryLen() int {
	return g.history.len()
}

func (g *Grid) checkBounds(op string, row, col int) error {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return errors.Wrapf(ErrOutOfRange, "[%s] row=%d col=%d on %dx%d grid", op, row, col, g.height, g.width)
	}
	return nil
}

// At returns the state of a cell
func (g *Grid) At(row, col int) (cell.State, error) {
	if err := g.checkBounds("At", row, col); err != nil {
		return cell.Dead, err
	}
	return g.cur.cells[row][col], nil
}

// Set assigns the state of a cell
func (g *Grid) Set(row, col int, state cell.State) error {
	if err := g.checkBounds("Set", row, col); err != nil {
		return err
	}
	g.cur.cells[row][col] = state
	g.cur.touch()
	g.repeated = false
	return nil
}

// Toggle flips a cell between Dead and Live
func (g *Grid) Toggle(row, col int) error {
	if err := g.checkBounds("Toggle", row, col); err != nil {
		return err
	}
	g.cur.cells[row][col] = g.cur.cells[row][col].Flip()
	g.cur.touch()
	g.repeated = false
	return nil
}

// NeighborsOf returns the in-bounds Moore neighbors of a cell. Offsets that
// fall outside the grid are skipped.
func (g *Grid) NeighborsOf(row, col int) ([]cell.State, error) {
	if err := g.checkBounds("NeighborsOf", row, col); err != nil {
		return nil, err
	}
	neighbors := make([]cell.State, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if r < 0 || r >= g.height || c < 0 || c >= g.width {
			continue
		}
		neighbors = append(neighbors, g.cur.cells[r][c])
	}
	return neighbors, nil
}

// Advance computes the next generation from the current one. The new
// generation is checked against history before the current one is recorded;
// on termination the history is discarded. A step error means the grid's own
// buffers are corrupt, so Advance panics rather than commit a partial
// generation.
func (g *Grid) Advance() {
	next := g.pool.get(g.width, g.height)
	if err := g.stepper.step(g.cur, next); err != nil {
		g.pool.put(next)
		panic(errors.Wrapf(err, "[Advance] generation %d", g.generation))
	}

	g.repeated = g.history.contains(next)
	g.history.push(g.cur)
	g.cur = next
	g.generation++

	if g.IsTerminated() {
		g.history.clear(g.pool.put)
	}
}

// Extinct reports whether every cell is dead
func (g *Grid) Extinct() bool {
	return g.cur.population() == 0
}

// Repeated reports whether the last advance reached a generation already seen
// since the previous halt
func (g *Grid) Repeated() bool {
	return g.repeated
}

// IsTerminated reports whether the run should halt
func (g *Grid) IsTerminated() bool {
	return g.Termination() != NotTerminated
}

// Termination returns the halt cause, extinction taking precedence
func (g *Grid) Termination() Termination {
	switch {
	case g.Extinct():
		return Extinct
	case g.repeated:
		return Repeated
	default:
		return NotTerminated
	}
}

// Population returns the number of live cells
func (g *Grid) Population() int {
	return g.cur.population()
}

// BoundingBoxSize returns the area of the smallest rectangle holding every
// live cell
func (g *Grid) BoundingBoxSize() int {
	b := activeBounds(g.cur)
	if !b.valid {
		return 0
	}
	return (b.maxRow - b.minRow + 1) * (b.maxCol - b.minCol + 1)
}

// Snapshot returns a copy of the current cells, indexed [row][col]
func (g *Grid) Snapshot() [][]cell.State {
	out := make([][]cell.State, g.height)
	for row := range out {
		out[row] = append([]cell.State(nil), g.cur.cells[row]...)
	}
	return out
}

// Clear kills every cell and forgets the history
func (g *Grid) Clear() {
	g.cur.reset(g.width, g.height)
	g.history.clear(g.pool.put)
	g.repeated = false
	g.generation = 0
}
