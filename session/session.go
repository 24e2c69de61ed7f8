// Package session drives a grid the way a user does: cells are edited while
// paused, and a running session advances once per tick until the grid halts.
package session

import (
	"time"

	"github.com/sheikhrachel/go-life/board"
	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Mode is the driver state
type Mode int

const (
	// Editing allows toggles and never advances
	Editing Mode = iota
	// Running advances once per tick and ignores toggles
	Running
)

func (m Mode) String() string {
	if m == Running {
		return "running"
	}
	return "editing"
}

// Session owns a grid, its pixel view and the tick rate
type Session struct {
	grid  *model.Grid
	view  board.View
	stats *utils.Stats
	mode  Mode

	tps     int
	tpsStep int
	minTPS  int
	maxTPS  int

	lastTick time.Time
}

// New builds a session for grid using the view and tick settings of cfg
func New(grid *model.Grid, cfg utils.Config) *Session {
	s := &Session{
		grid:    grid,
		view:    board.View{Left: cfg.Left, Top: cfg.Top, CellSize: cfg.CellSize},
		stats:   utils.NewStats(),
		tpsStep: cfg.TPSStep,
		minTPS:  max(1, cfg.MinTPS),
		maxTPS:  max(1, cfg.MaxTPS, cfg.MinTPS),
	}
	s.tps = s.clamp(cfg.TPS)
	return s
}

// NewGrid builds the grid described by cfg
func NewGrid(cfg utils.Config) (*model.Grid, error) {
	var opts []model.Option
	if cfg.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewFramePool()))
	}
	switch {
	case cfg.UseBoundedGrid:
		opts = append(opts, model.WithBounded())
	case cfg.Parallel:
		opts = append(opts, model.WithParallel(cfg.Workers))
	}
	return model.NewGrid(cfg.Width, cfg.Height, opts...)
}

// Seed clears the grid and fills it as cfg describes. Explicit cells are
// made live last, whatever the pattern left there.
func Seed(grid *model.Grid, cfg utils.Config) error {
	rng := model.NewRand(cfg.Seed)
	switch cfg.Pattern {
	case utils.PatternRandom:
		grid.Clear()
		grid.Randomize(cfg.RandomDensity, rng)
	case utils.PatternPatterns:
		grid.SeedPatterns(cfg.RandomDensity, rng)
	default:
		grid.Clear()
	}
	for _, rc := range cfg.Cells {
		if err := grid.Set(rc[0], rc[1], cell.Live); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) clamp(tps int) int {
	return min(max(tps, s.minTPS), s.maxTPS)
}

func (s *Session) Grid() *model.Grid { return s.grid }

func (s *Session) View() board.View { return s.view }

func (s *Session) Stats() *utils.Stats { return s.stats }

func (s *Session) Mode() Mode { return s.mode }

// TPS returns the current ticks per second
func (s *Session) TPS() int { return s.tps }

// Interval returns the time between ticks at the current rate
func (s *Session) Interval() time.Duration {
	return time.Second / time.Duration(s.tps)
}

// RenderableSize returns the pixel size of the board
func (s *Session) RenderableSize() (int, int) {
	return s.view.RenderableSize(s.grid.Height(), s.grid.Width())
}

// Click toggles the cell under a pixel. It reports false when the session is
// running or the pixel is off the board.
func (s *Session) Click(px, py int) (bool, error) {
	if s.mode != Editing {
		return false, nil
	}
	row, col, ok := s.view.CellAt(px, py, s.grid.Height(), s.grid.Width())
	if !ok {
		return false, nil
	}
	if err := s.grid.Toggle(row, col); err != nil {
		return false, err
	}
	return true, nil
}

// Start switches to Running
func (s *Session) Start() {
	if s.mode == Running {
		return
	}
	s.mode = Running
	s.lastTick = time.Time{}
}

// Stop switches to Editing without touching the grid
func (s *Session) Stop() {
	s.mode = Editing
}

// ToggleRunning flips between Editing and Running
func (s *Session) ToggleRunning() {
	if s.mode == Running {
		s.Stop()
		return
	}
	s.Start()
}

// Scroll adjusts the tick rate: scrolling down (dy < 0) speeds up, scrolling
// up slows down
func (s *Session) Scroll(dy float64) {
	switch {
	case dy < 0:
		s.tps = s.clamp(s.tps + s.tpsStep)
	case dy > 0:
		s.tps = s.clamp(s.tps - s.tpsStep)
	}
}

// Tick advances a running session by one generation. When the grid halts the
// session returns to Editing and the cause is returned.
func (s *Session) Tick() model.Termination {
	if s.mode != Running {
		return model.NotTerminated
	}

	now := time.Now()
	s.grid.Advance()
	var frameDuration time.Duration
	if !s.lastTick.IsZero() {
		frameDuration = now.Sub(s.lastTick)
	}
	s.lastTick = now
	s.stats.Update(s.stats.TotalGenerations+1, s.grid.Population(), frameDuration)

	cause := s.grid.Termination()
	if cause != model.NotTerminated {
		s.stats.RecordHalt(cause.String())
		s.Stop()
	}
	return cause
}
