package history

import (
	"testing"

	"github.com/mediagrab/mediagrab/filesystem"
	"github.com/mediagrab/mediagrab/option"
	"github.com/mediagrab/mediagrab/platform"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a normalized result", t, func() {
		result := &option.Result{
			Platform: platform.YouTube,
			Options: []*option.DownloadOption{
				{URL: "a", Format: "mp4", Quality: "720p", HasAudio: true},
				{URL: "b", Format: "mp4", Quality: "360p", HasAudio: true},
			},
			DefaultFormat:  "mp4",
			DefaultQuality: "720p",
			Metadata:       option.Metadata{Title: "A video"},
		}

		Convey("When saving a pick", func() {
			err := Save("https://youtu.be/x", result, "mp4", "360p")
			So(err, ShouldBeNil)

			Convey("Then it is stored under the source URL", func() {
				entries, err := Get()
				So(err, ShouldBeNil)

				entry := entries["https://youtu.be/x"]
				So(entry, ShouldNotBeNil)
				So(entry.Platform, ShouldEqual, "youtube")
				So(entry.Quality, ShouldEqual, "360p")
				So(entry.Options, ShouldEqual, 2)
				So(entry.String(), ShouldEqual, "A video (youtube)")
			})

			Convey("Then saving again replaces the entry", func() {
				So(Save("https://youtu.be/x", result, "mp4", "720p"), ShouldBeNil)

				entries, err := List()
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 1)
				So(entries[0].Quality, ShouldEqual, "720p")
			})

			Convey("Then it is suggested for partial input", func() {
				So(Suggest("youtu"), ShouldResemble, []string{"https://youtu.be/x"})
				So(Suggest("vimeo"), ShouldBeEmpty)
			})

			Convey("Then removing it empties the history", func() {
				entries, _ := List()
				So(Remove(entries[0]), ShouldBeNil)

				entries, err := List()
				So(err, ShouldBeNil)
				So(entries, ShouldBeEmpty)
			})
		})
	})
}
