package playback

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestState(t *testing.T) {
	Convey("State.String", t, func() {
		So(StateStopped.String(), ShouldEqual, "Stopped")
		So(StatePlaying.String(), ShouldEqual, "Playing")
		So(StatePaused.String(), ShouldEqual, "Paused")
		So(State(42).String(), ShouldEqual, "Unknown")
	})
}

func TestPosition(t *testing.T) {
	Convey("Given an empty position", t, func() {
		var p Position

		Convey("It should report an unknown duration", func() {
			So(p.Known(), ShouldBeFalse)
			So(p.Fraction(), ShouldEqual, 0)
			So(p.TotalLabel(), ShouldEqual, "00:00")
		})

		Convey("When the duration becomes 180000 ms", func() {
			p.SetDuration(180000)

			Convey("The total label should read 03:00", func() {
				So(p.TotalLabel(), ShouldEqual, "03:00")
			})

			Convey("The timeline range should be [0, 180000]", func() {
				lo, hi := p.Range()
				So(lo, ShouldEqual, 0)
				So(hi, ShouldEqual, 180000)
			})

			Convey("Positions should be clamped into range", func() {
				p.SetCurrent(200000)
				So(p.CurrentMs, ShouldEqual, 180000)
				p.SetCurrent(-5)
				So(p.CurrentMs, ShouldEqual, 0)
			})

			Convey("Fraction should follow the position", func() {
				p.SetCurrent(45000)
				So(p.Fraction(), ShouldAlmostEqual, 0.25)
				So(p.CurrentLabel(), ShouldEqual, "00:45")
			})
		})

		Convey("Positions before the duration is known should be kept", func() {
			p.SetCurrent(65000)
			So(p.CurrentMs, ShouldEqual, 65000)

			Convey("and clamped once it arrives", func() {
				p.SetDuration(60000)
				So(p.CurrentMs, ShouldEqual, 60000)
			})
		})

		Convey("Reset should clear everything", func() {
			p.SetDuration(1000)
			p.SetCurrent(500)
			p.Reset()
			So(p, ShouldResemble, Position{})
		})
	})
}
