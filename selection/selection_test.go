package selection

import (
	"testing"

	"github.com/mediagrab/mediagrab/option"
	. "github.com/smartystreets/goconvey/convey"
)

func result() *option.Result {
	return &option.Result{
		Options: []*option.DownloadOption{
			{URL: "mp4-1080", Format: "mp4", Quality: "1080p", HasAudio: true},
			{URL: "mp4-720", Format: "mp4", Quality: "720p", HasAudio: true},
			{URL: "webm-1080", Format: "webm", Quality: "1080p"},
			{URL: "webm-480", Format: "webm", Quality: "480p", HasAudio: true},
			{URL: "mp3", Format: "mp3", Quality: "Audio", HasAudio: true},
		},
		DefaultFormat:  "mp4",
		DefaultQuality: "1080p",
	}
}

func TestSelection(t *testing.T) {
	Convey("Given a fresh selection", t, func() {
		s := New(result())

		Convey("It starts at the defaults", func() {
			So(s.Format(), ShouldEqual, "mp4")
			So(s.Quality(), ShouldEqual, "1080p")
			So(s.URL().MustGet(), ShouldEqual, "mp4-1080")
			So(s.Formats(), ShouldResemble, []string{"mp4", "webm", "mp3"})
			So(s.Qualities(), ShouldResemble, []string{"1080p", "720p"})
		})

		Convey("Selecting a quality exposes its URL", func() {
			s.SelectQuality("720p")
			So(s.URL().MustGet(), ShouldEqual, "mp4-720")
		})

		Convey("Selecting a format prefers a quality with audio", func() {
			s.SelectFormat("webm")
			So(s.Qualities(), ShouldResemble, []string{"1080p", "480p"})
			So(s.Quality(), ShouldEqual, "480p")
			So(s.URL().MustGet(), ShouldEqual, "webm-480")
		})

		Convey("Switching back re-applies the default rule", func() {
			s.SelectQuality("720p")
			s.SelectFormat("webm")
			s.SelectFormat("mp4")
			So(s.Quality(), ShouldEqual, "1080p")
		})

		Convey("Unknown choices select nothing", func() {
			s.SelectQuality("4k")
			So(s.Current().IsAbsent(), ShouldBeTrue)
			So(s.URL().IsAbsent(), ShouldBeTrue)

			s.SelectFormat("flv")
			So(s.Quality(), ShouldBeEmpty)
			So(s.Qualities(), ShouldBeEmpty)
			So(s.URL().IsAbsent(), ShouldBeTrue)
		})
	})
}
