package cell

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestState(t *testing.T) {
	Convey("The zero value is Dead", t, func() {
		var s State
		So(s, ShouldEqual, Dead)
		So(s.IsLive(), ShouldBeFalse)
	})

	Convey("Flip moves between the two states", t, func() {
		So(Dead.Flip(), ShouldEqual, Live)
		So(Live.Flip(), ShouldEqual, Dead)
		So(Live.Flip().Flip(), ShouldEqual, Live)
	})

	Convey("String names the state", t, func() {
		So(Live.String(), ShouldEqual, "live")
		So(Dead.String(), ShouldEqual, "dead")
	})
}
