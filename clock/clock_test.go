package clock

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormat(t *testing.T) {
	Convey("Format", t, func() {
		So(Format(0), ShouldEqual, "00:00")
		So(Format(65), ShouldEqual, "01:05")
		So(Format(3661), ShouldEqual, "61:01")

		Convey("Should truncate fractions", func() {
			So(Format(59.999), ShouldEqual, "00:59")
		})

		Convey("Should not clamp minutes to two digits", func() {
			So(Format(6000), ShouldEqual, "100:00")
		})

		Convey("Should treat negative values as zero", func() {
			So(Format(-3), ShouldEqual, "00:00")
		})
	})
}

func TestFormatMillis(t *testing.T) {
	Convey("FormatMillis", t, func() {
		So(FormatMillis(180000), ShouldEqual, "03:00")
		So(FormatMillis(5999), ShouldEqual, "00:05")
		So(FormatMillis(0), ShouldEqual, "00:00")
	})
}
