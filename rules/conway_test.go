package rules

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sheikhrachel/go-life/cell"
)

func TestConway(t *testing.T) {
	Convey("Given a dead cell", t, func() {
		Convey("It is born with exactly 3 live neighbors", func() {
			So(Conway(cell.Dead, 3), ShouldEqual, cell.Live)
		})
		Convey("It stays dead for any other count", func() {
			for _, n := range []int{0, 1, 2, 4, 5, 6, 7, 8} {
				So(Conway(cell.Dead, n), ShouldEqual, cell.Dead)
			}
		})
	})

	Convey("Given a live cell", t, func() {
		Convey("It survives with 2 or 3 live neighbors", func() {
			So(Conway(cell.Live, 2), ShouldEqual, cell.Live)
			So(Conway(cell.Live, 3), ShouldEqual, cell.Live)
		})
		Convey("It dies from under or overpopulation", func() {
			for _, n := range []int{0, 1, 4, 5, 6, 7, 8} {
				So(Conway(cell.Live, n), ShouldEqual, cell.Dead)
			}
		})
	})
}
