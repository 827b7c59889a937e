package main

import (
	"bytes"
	"encoding/json"
	"sort"
	"testing"

	"github.com/aschmelyun/tcut/config"
	"github.com/aschmelyun/tcut/filesystem"
	"github.com/aschmelyun/tcut/key"
	"github.com/aschmelyun/tcut/where"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConfigCommand(t *testing.T) {
	Convey("Given the registered config fields", t, func() {
		Convey("selectFields should return every field sorted by key", func() {
			fields, err := selectFields(nil)
			So(err, ShouldBeNil)
			So(fields, ShouldHaveLength, len(config.Default))
			So(sort.SliceIsSorted(fields, func(i, j int) bool {
				return fields[i].Key < fields[j].Key
			}), ShouldBeTrue)
		})

		Convey("An unknown key should suggest the closest one", func() {
			_, err := selectFields([]string{"player.binry"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "did you mean "+key.PlayerBinary)
		})

		Convey("renderField should show the description and the env variable", func() {
			out := renderField(config.Default[key.PlayerBinary])
			So(out, ShouldContainSubstring, "mpv executable used for playback")
			So(out, ShouldContainSubstring, "TCUT_PLAYER_BINARY")
		})

		Convey("Running config info --json should print the selected fields", func() {
			var buf bytes.Buffer
			rootCmd.SetOut(&buf)
			rootCmd.SetArgs([]string{"config", "info", "--json", "-k", key.TimelineSeekStep})
			Reset(func() {
				rootCmd.SetOut(nil)
				rootCmd.SetArgs(nil)
			})

			So(rootCmd.Execute(), ShouldBeNil)

			var infos []fieldInfo
			So(json.Unmarshal(buf.Bytes(), &infos), ShouldBeNil)
			So(infos, ShouldHaveLength, 1)
			So(infos[0].Env, ShouldEqual, "TCUT_TIMELINE_SEEK_STEP")
			So(infos[0].Description, ShouldEqual, "Seconds skipped by the left/right keys")
		})

		Convey("Running config where should report disabled logs", func() {
			filesystem.SetMemMapFs()
			t.Setenv(where.EnvConfigPath, "/cfg")
			Reset(filesystem.SetOsFs)

			var buf bytes.Buffer
			rootCmd.SetOut(&buf)
			rootCmd.SetArgs([]string{"config", "where"})
			Reset(func() {
				rootCmd.SetOut(nil)
				rootCmd.SetArgs(nil)
			})

			So(rootCmd.Execute(), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "/cfg/tcut.toml")
			So(buf.String(), ShouldContainSubstring, "disabled")
		})
	})
}
