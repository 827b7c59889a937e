package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aschmelyun/tcut/filesystem"
	"github.com/aschmelyun/tcut/key"
	"github.com/aschmelyun/tcut/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/cfg")
		Reset(func() {
			filesystem.SetOsFs()
			viper.Reset()
		})

		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate defaults", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.PlayerBinary), ShouldEqual, "mpv")
			So(viper.GetInt(key.PlayerPollInterval), ShouldEqual, 50)
			So(viper.GetStringSlice(key.FilesExtensions), ShouldResemble, []string{".mp3", ".wav", ".m4a", ".flac", ".ogg"})
		})

		Convey("Should read values from the config file", func() {
			So(filesystem.API().WriteFile("/cfg/tcut.toml", []byte("[player]\npoll_interval = 20\n"), 0o644), ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.PlayerPollInterval), ShouldEqual, 20)
		})

		Convey("Should export variables from a .env file", func() {
			t.Setenv("TCUT_PLAYER_BINARY", "")
			So(os.Unsetenv("TCUT_PLAYER_BINARY"), ShouldBeNil)
			So(filesystem.API().WriteFile(filepath.Join("/cfg", ".env"), []byte("TCUT_PLAYER_BINARY=/opt/mpv\n"), 0o644), ShouldBeNil)

			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.PlayerBinary), ShouldEqual, "/opt/mpv")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("timeline.seek_step"), ShouldEqual, "timeline_seek_step")
		})

		Convey("Field.Env should be prefixed", func() {
			f := Default[key.TimelineSeekStep]
			So(f.Env(), ShouldEqual, "TCUT_TIMELINE_SEEK_STEP")
		})
	})
}
