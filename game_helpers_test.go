package main

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/session"
	"github.com/sheikhrachel/go-life/utils"
)

func TestRestartGame(t *testing.T) {
	Convey("Given a blinker run that has halted", t, func() {
		config := utils.DefaultConfig()
		config.Width, config.Height = 12, 12
		config.Pattern = utils.PatternEmpty
		config.Cells = [][2]int{{5, 4}, {5, 5}, {5, 6}}
		config.StartDelay = 0
		config.RandomDensity = 0.3

		s, renderer, err := initializeGame(config)
		So(err, ShouldBeNil)
		So(renderer, ShouldNotBeNil)

		s.Start()
		So(s.Tick(), ShouldEqual, model.NotTerminated)
		So(s.Tick(), ShouldEqual, model.Repeated)
		So(s.Stats().Runs, ShouldEqual, 1)

		Convey("restartGame reseeds with a shifted seed and resumes", func() {
			So(restartGame(s, config), ShouldBeNil)
			So(s.Mode(), ShouldEqual, session.Running)
			So(s.Grid().Generation(), ShouldEqual, 0)
			So(s.Grid().HistoryLen(), ShouldEqual, 0)

			want, err := session.NewGrid(config)
			So(err, ShouldBeNil)
			reseed := config
			reseed.Seed += 1
			reseed.Pattern = utils.PatternPatterns
			So(session.Seed(want, reseed), ShouldBeNil)
			So(s.Grid().Snapshot(), ShouldResemble, want.Snapshot())

			Convey("The listed cells survive the reseed", func() {
				for _, rc := range config.Cells {
					state, err := s.Grid().At(rc[0], rc[1])
					So(err, ShouldBeNil)
					So(state.IsLive(), ShouldBeTrue)
				}
			})
		})
	})
}
