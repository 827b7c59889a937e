package selection

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSelection(t *testing.T) {
	Convey("Given an empty selection", t, func() {
		var s Selection

		Convey("It should not be complete", func() {
			So(s.Complete(), ShouldBeFalse)
			So(s.Start().IsPresent(), ShouldBeFalse)
			So(s.End().IsPresent(), ShouldBeFalse)
			So(s.Summary(), ShouldEqual, "Selection: —")
		})

		Convey("Marking only a start should leave it incomplete", func() {
			So(s.MarkStart(5000), ShouldBeNil)
			So(s.Complete(), ShouldBeFalse)
			So(s.Start().MustGet(), ShouldEqual, 5000)
			So(s.Summary(), ShouldEqual, "Selection: —")
		})

		Convey("Marking only an end should leave it incomplete", func() {
			So(s.MarkEnd(5000), ShouldBeNil)
			So(s.Complete(), ShouldBeFalse)
			So(s.End().MustGet(), ShouldEqual, 5000)
		})

		Convey("Marking start 5000 then end 15000", func() {
			So(s.MarkStart(5000), ShouldBeNil)
			So(s.MarkEnd(15000), ShouldBeNil)

			Convey("Should produce a valid selection", func() {
				start, end, ok := s.Bounds()
				So(ok, ShouldBeTrue)
				So(start, ShouldEqual, 5000)
				So(end, ShouldEqual, 15000)
				So(s.Summary(), ShouldEqual, "Selection: 00:05 → 00:15")
			})

			Convey("Re-marking the start past the end should clear both", func() {
				err := s.MarkStart(20000)
				So(errors.Is(err, ErrInvalidSelection), ShouldBeTrue)
				So(s.Complete(), ShouldBeFalse)
				So(s.Start().IsPresent(), ShouldBeFalse)
				So(s.End().IsPresent(), ShouldBeFalse)
			})
		})

		Convey("Marking start 10000 then end 5000 should fail and clear", func() {
			So(s.MarkStart(10000), ShouldBeNil)
			err := s.MarkEnd(5000)
			So(errors.Is(err, ErrInvalidSelection), ShouldBeTrue)
			So(s.Complete(), ShouldBeFalse)
			So(s.Summary(), ShouldEqual, "Selection: —")
		})

		Convey("Equal markers are invalid", func() {
			So(s.MarkStart(7000), ShouldBeNil)
			So(errors.Is(s.MarkEnd(7000), ErrInvalidSelection), ShouldBeTrue)
			So(s.Complete(), ShouldBeFalse)
		})

		Convey("Clear should unset both markers", func() {
			So(s.MarkStart(1000), ShouldBeNil)
			So(s.MarkEnd(2000), ShouldBeNil)
			s.Clear()
			So(s.Complete(), ShouldBeFalse)
			So(s.Summary(), ShouldEqual, "Selection: —")
		})
	})
}

func TestSelectionOrdering(t *testing.T) {
	points := []int64{0, 1, 999, 1000, 5000, 65000, 3_600_000}

	Convey("For every pair of marks", t, func() {
		for _, a := range points {
			for _, b := range points {
				var s Selection
				So(s.MarkStart(a), ShouldBeNil)
				err := s.MarkEnd(b)

				if a < b {
					So(err, ShouldBeNil)
					start, end, ok := s.Bounds()
					So(ok, ShouldBeTrue)
					So(start, ShouldEqual, a)
					So(end, ShouldEqual, b)
				} else {
					So(errors.Is(err, ErrInvalidSelection), ShouldBeTrue)
					So(s.Complete(), ShouldBeFalse)
				}
			}
		}
	})
}
