package where

import (
	"path/filepath"
	"testing"

	"github.com/aschmelyun/tcut/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWhere(t *testing.T) {
	Convey("Given an in-memory filesystem and a custom config path", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		t.Setenv(EnvConfigPath, "/cfg/tcut")

		Convey("Config should honour the override and create it", func() {
			So(Config(), ShouldEqual, "/cfg/tcut")
			exists, err := filesystem.API().DirExists("/cfg/tcut")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("Logs should live under the config directory", func() {
			So(Logs(), ShouldEqual, filepath.Join("/cfg/tcut", "logs"))
		})
	})
}
