package where

import (
	"path/filepath"
	"testing"

	"github.com/mediagrab/mediagrab/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs() lives under Config()", func() {
			path := Logs()
			So(filepath.Dir(path), ShouldEqual, Config())
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("History() is a json file in Cache()", func() {
			So(filepath.Dir(History()), ShouldEqual, Cache())
			So(filepath.Ext(History()), ShouldEqual, ".json")
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/mediagrab")
			So(Config(), ShouldEqual, "/custom/mediagrab")
			So(lo.Must(filesystem.API().IsDir("/custom/mediagrab")), ShouldBeTrue)
		})
	})
}
