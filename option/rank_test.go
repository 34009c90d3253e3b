package option

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRank(t *testing.T) {
	Convey("Given unordered options", t, func() {
		options := []*DownloadOption{
			{Format: "webm", Quality: "1080p"},
			{Format: "mp4", Quality: "360p", HasAudio: true},
			{Format: "webm", Quality: "720p", HasAudio: true},
			{Format: "mp4", Quality: "1080p", HasAudio: true},
			{Format: "mp3", Quality: "Audio", HasAudio: true},
		}

		Rank(options)

		Convey("Audio first, then mp4, then the larger number", func() {
			So(keys(options), ShouldResemble, []string{
				"mp4 (1080p)",
				"mp4 (360p)",
				"webm (720p)",
				"mp3 (Audio)",
				"webm (1080p)",
			})
		})

		Convey("Formats lists each format once in ranked order", func() {
			So(Formats(options), ShouldResemble, []string{"mp4", "webm", "mp3"})
		})
	})

	Convey("Ties keep their extraction order", t, func() {
		options := []*DownloadOption{
			{URL: "1", Format: "mp4", Quality: "HD"},
			{URL: "2", Format: "mp4", Quality: "SD"},
			{URL: "3", Format: "mp4", Quality: "HD with Watermark"},
		}

		Rank(options)
		So(options[0].URL+options[1].URL+options[2].URL, ShouldEqual, "123")
	})

	Convey("Oversized numbers rank as the largest", t, func() {
		options := []*DownloadOption{
			{URL: "a", Format: "mp4", Quality: "720p"},
			{URL: "b", Format: "mp4", Quality: "1080p 60fps 2024 99999999999999999999"},
		}

		Rank(options)
		So(options[0].URL+options[1].URL, ShouldEqual, "ba")
	})
}

func TestDefaultQuality(t *testing.T) {
	Convey("Given options of several formats", t, func() {
		options := []*DownloadOption{
			{Format: "mp4", Quality: "1080p"},
			{Format: "mp4", Quality: "720p", HasAudio: true},
			{Format: "webm", Quality: "480p"},
			{Format: "webm", Quality: "360p"},
		}

		Convey("The first quality with audio is preferred", func() {
			So(DefaultQuality(options, "mp4").MustGet(), ShouldEqual, "720p")
		})

		Convey("Without audio the first quality is used", func() {
			So(DefaultQuality(options, "webm").MustGet(), ShouldEqual, "480p")
		})

		Convey("Unknown formats have no default", func() {
			So(DefaultQuality(options, "flv").IsAbsent(), ShouldBeTrue)
		})

		Convey("Find looks up a format and quality pair", func() {
			So(Find(options, "webm", "360p").MustGet(), ShouldEqual, options[3])
			So(Find(options, "webm", "720p").IsAbsent(), ShouldBeTrue)
		})
	})
}
