package util

import (
	"math"
	"regexp"
	"testing"

	"github.com/mediagrab/mediagrab/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "option", "options"), ShouldEqual, "1 option")
		So(Quantify(3, "option", "options"), ShouldEqual, "3 options")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history"), ShouldEqual, "History")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`^(?P<width>\d+)x(?P<height>\d+)$`)
		groups := ReGroups(re, "1280x720")
		So(groups["width"], ShouldEqual, "1280")
		So(groups["height"], ShouldEqual, "720")
		So(ReGroups(re, "720p"), ShouldBeEmpty)
	})
}

func TestDigits(t *testing.T) {
	Convey("Digits", t, func() {
		So(Digits("1080p"), ShouldEqual, 1080)
		So(Digits("720p 2"), ShouldEqual, 7202)
		So(Digits("HD with Watermark"), ShouldEqual, 0)
		So(Digits(""), ShouldEqual, 0)
		So(Digits("99999999999999999999999"), ShouldEqual, math.MaxInt)
		So(Digits("1080p 60fps 2024 99999999999999999999"), ShouldEqual, math.MaxInt)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/a/b", 0755), ShouldBeNil)
		So(fs.WriteFile("/a/b/c.json", []byte("{}"), 0644), ShouldBeNil)

		So(Delete("/a/b/c.json"), ShouldBeNil)
		So(lo.Must(fs.Exists("/a/b/c.json")), ShouldBeFalse)

		So(Delete("/a"), ShouldBeNil)
		So(lo.Must(fs.Exists("/a")), ShouldBeFalse)

		So(Delete("/nope"), ShouldNotBeNil)
	})
}
