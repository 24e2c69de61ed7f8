package session

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func testConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Width = 5
	cfg.Height = 5
	cfg.CellSize = 10
	cfg.Pattern = utils.PatternEmpty
	return cfg
}

func newSession(cfg utils.Config) *Session {
	grid, err := NewGrid(cfg)
	So(err, ShouldBeNil)
	So(Seed(grid, cfg), ShouldBeNil)
	return New(grid, cfg)
}

func TestEditing(t *testing.T) {
	Convey("Given a new session", t, func() {
		s := newSession(testConfig())

		Convey("It starts in Editing at the configured rate", func() {
			So(s.Mode(), ShouldEqual, Editing)
			So(s.TPS(), ShouldEqual, 10)
			So(s.Interval(), ShouldEqual, 100*time.Millisecond)
			w, h := s.RenderableSize()
			So(w, ShouldEqual, 50)
			So(h, ShouldEqual, 50)
		})

		Convey("A click toggles the cell under the pointer", func() {
			ok, err := s.Click(25, 12)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			state, _ := s.Grid().At(1, 2)
			So(state, ShouldEqual, cell.Live)
		})

		Convey("A click off the board is ignored", func() {
			ok, err := s.Click(55, 5)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
			So(s.Grid().Population(), ShouldEqual, 0)
		})

		Convey("Ticks do nothing while editing", func() {
			So(s.Tick(), ShouldEqual, model.NotTerminated)
			So(s.Grid().Generation(), ShouldEqual, 0)
		})
	})
}

func TestRunning(t *testing.T) {
	Convey("Given a session holding a blinker", t, func() {
		cfg := testConfig()
		cfg.Cells = [][2]int{{2, 1}, {2, 2}, {2, 3}}
		s := newSession(cfg)
		s.Start()

		Convey("Clicks are ignored while running", func() {
			ok, err := s.Click(5, 5)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
			So(s.Grid().Population(), ShouldEqual, 3)
		})

		Convey("The run halts on the repeat and returns to Editing", func() {
			So(s.Tick(), ShouldEqual, model.NotTerminated)
			So(s.Mode(), ShouldEqual, Running)
			So(s.Tick(), ShouldEqual, model.Repeated)
			So(s.Mode(), ShouldEqual, Editing)
			So(s.Stats().Halts[model.Repeated.String()], ShouldEqual, 1)
			So(s.Stats().TotalGenerations, ShouldEqual, 2)
		})

		Convey("ToggleRunning pauses and resumes", func() {
			s.ToggleRunning()
			So(s.Mode(), ShouldEqual, Editing)
			s.ToggleRunning()
			So(s.Mode(), ShouldEqual, Running)
		})
	})

	Convey("Given an empty board", t, func() {
		s := newSession(testConfig())

		Convey("Starting halts on the first tick by extinction", func() {
			s.Start()
			So(s.Tick(), ShouldEqual, model.Extinct)
			So(s.Mode(), ShouldEqual, Editing)
		})
	})
}

func TestScroll(t *testing.T) {
	Convey("Given a session at 10 ticks per second with a step of 3", t, func() {
		cfg := testConfig()
		cfg.MinTPS = 1
		cfg.MaxTPS = 15
		s := newSession(cfg)

		Convey("Scrolling down speeds up until the maximum", func() {
			s.Scroll(-1)
			So(s.TPS(), ShouldEqual, 13)
			s.Scroll(-1)
			So(s.TPS(), ShouldEqual, 15)
		})

		Convey("Scrolling up slows down until the minimum", func() {
			for range 5 {
				s.Scroll(1)
			}
			So(s.TPS(), ShouldEqual, 1)
		})

		Convey("A zero delta changes nothing", func() {
			s.Scroll(0)
			So(s.TPS(), ShouldEqual, 10)
		})
	})
}

func TestSeed(t *testing.T) {
	Convey("Given a config naming a cell off the board", t, func() {
		cfg := testConfig()
		cfg.Cells = [][2]int{{9, 9}}
		grid, err := NewGrid(cfg)
		So(err, ShouldBeNil)

		Convey("Seed reports ErrOutOfRange", func() {
			So(errors.Is(Seed(grid, cfg), model.ErrOutOfRange), ShouldBeTrue)
		})
	})

	Convey("Given listed cells on a board the pattern already filled", t, func() {
		cfg := testConfig()
		cfg.Pattern = utils.PatternRandom
		cfg.RandomDensity = 1
		cfg.Cells = [][2]int{{1, 1}}

		Convey("The listed cell stays live", func() {
			grid := newSession(cfg).Grid()
			state, err := grid.At(1, 1)
			So(err, ShouldBeNil)
			So(state, ShouldEqual, cell.Live)
			So(grid.Population(), ShouldEqual, 25)
		})
	})

	Convey("Given a cell listed twice", t, func() {
		cfg := testConfig()
		cfg.Cells = [][2]int{{2, 2}, {2, 2}}

		Convey("It is live once seeded", func() {
			grid := newSession(cfg).Grid()
			state, err := grid.At(2, 2)
			So(err, ShouldBeNil)
			So(state, ShouldEqual, cell.Live)
			So(grid.Population(), ShouldEqual, 1)
		})
	})

	Convey("Given a random pattern", t, func() {
		cfg := testConfig()
		cfg.Width, cfg.Height = 16, 16
		cfg.Pattern = utils.PatternRandom
		cfg.RandomDensity = 0.5

		Convey("The same seed gives the same board for every grid flavour", func() {
			a := newSession(cfg).Grid().Snapshot()
			cfg.Parallel = true
			b := newSession(cfg).Grid().Snapshot()
			So(b, ShouldResemble, a)
		})
	})
}

func TestPauseAndResume(t *testing.T) {
	Convey("Given a running block that has advanced once", t, func() {
		cfg := testConfig()
		cfg.Cells = [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
		s := newSession(cfg)
		s.Start()
		So(s.Tick(), ShouldEqual, model.NotTerminated)
		So(s.Grid().HistoryLen(), ShouldEqual, 1)

		Convey("Stopping keeps the history for the resumed run", func() {
			s.Stop()
			So(s.Mode(), ShouldEqual, Editing)
			So(s.Grid().HistoryLen(), ShouldEqual, 1)

			Convey("A stray cell added while paused dies and the block repeats on the first resumed tick", func() {
				ok, err := s.Click(45, 45)
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)

				s.Start()
				So(s.Tick(), ShouldEqual, model.Repeated)
				So(s.Mode(), ShouldEqual, Editing)
				So(s.Grid().HistoryLen(), ShouldEqual, 0)
				So(s.Grid().Population(), ShouldEqual, 4)
			})
		})
	})
}
