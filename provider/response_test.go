package provider

import (
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecode(t *testing.T) {
	Convey("Given a formats-shaped response", t, func() {
		body := `{
			"title": "clip",
			"formats": {
				"webm": {"480p": {"url": "u2"}},
				"mp4": {"720p": {"url": "u1", "size": "4 MB"}, "360p": {"url": "u3", "size": 1024}}
			}
		}`

		response, err := Decode(strings.NewReader(body))
		So(err, ShouldBeNil)

		Convey("It reports the formats shape", func() {
			So(response.Shape(), ShouldEqual, ShapeFormats)
			So(response.Failed(), ShouldBeFalse)
			So(response.Title.String(), ShouldEqual, "clip")
		})

		Convey("Document order is kept on both levels", func() {
			var formats, qualities []string
			for pair := response.Formats.Oldest(); pair != nil; pair = pair.Next() {
				formats = append(formats, pair.Key)
			}
			mp4, ok := response.Formats.Get("mp4")
			So(ok, ShouldBeTrue)
			for pair := mp4.Oldest(); pair != nil; pair = pair.Next() {
				qualities = append(qualities, pair.Key)
			}

			So(formats, ShouldResemble, []string{"webm", "mp4"})
			So(qualities, ShouldResemble, []string{"720p", "360p"})
		})

		Convey("Sizes keep their literal text", func() {
			mp4, _ := response.Formats.Get("mp4")
			small, _ := mp4.Get("360p")
			So(small.Size.String(), ShouldEqual, "1024")
			So(small.Size.IsNumber(), ShouldBeTrue)
		})
	})

	Convey("Given a medias-shaped response", t, func() {
		body := `{"medias": [
			{"url": "a.mp4", "height": 720, "mimeType": "video/mp4;codecs=mp4a", "formatId": 18, "noWatermark": true, "extra": {"ignored": 1}},
			{"url": "b.mp4", "height": "1080", "formatId": "18", "noWatermark": null}
		]}`

		response, err := Decode(strings.NewReader(body))
		So(err, ShouldBeNil)
		So(response.Shape(), ShouldEqual, ShapeMedias)
		So(response.Medias, ShouldHaveLength, 2)

		first, second := response.Medias[0], response.Medias[1]

		Convey("Numbers and strings are both accepted", func() {
			So(first.Height.String(), ShouldEqual, "720")
			So(second.Height.String(), ShouldEqual, "1080")
		})

		Convey("Only numeric ids compare equal to numbers", func() {
			So(first.FormatID.Equals(18), ShouldBeTrue)
			So(second.FormatID.Equals(18), ShouldBeFalse)
		})

		Convey("Null reads as absent", func() {
			So(first.NoWatermark.Bool().MustGet(), ShouldBeTrue)
			So(second.NoWatermark.Bool().IsAbsent(), ShouldBeTrue)
			So(second.Ext.Present(), ShouldBeFalse)
		})
	})

	Convey("Given an error response", t, func() {
		response, err := Decode(strings.NewReader(`{"status": "error", "message": "private video"}`))
		So(err, ShouldBeNil)
		So(response.Failed(), ShouldBeTrue)
		So(response.Message.String(), ShouldEqual, "private video")
		So(response.Shape(), ShouldEqual, ShapeNone)
	})

	Convey("Given malformed JSON", t, func() {
		_, err := Decode(strings.NewReader(`{"medias": [`))
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldStartWith, "decode provider response")
	})
}

func TestBuild(t *testing.T) {
	Convey("Given a response built in code", t, func() {
		qualities := NewQualities()
		qualities.Set("1080p", &Details{URL: "u", Size: Str("12 MB")})

		formats := NewFormats()
		formats.Set("mp4", qualities)

		Convey("It has the formats shape", func() {
			So((&Response{Formats: formats}).Shape(), ShouldEqual, ShapeFormats)
			So((&Response{Formats: NewFormats()}).Shape(), ShouldEqual, ShapeFormats)
		})

		Convey("It encodes in insertion order", func() {
			data, err := json.Marshal(formats)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"mp4":{"1080p":{"url":"u","size":"12 MB"}}}`)
		})

		Convey("An empty response has no shape", func() {
			So((&Response{}).Shape(), ShouldEqual, ShapeNone)
			So((&Response{Medias: []*Media{}}).Shape(), ShouldEqual, ShapeMedias)
		})
	})
}

func TestScalar(t *testing.T) {
	Convey("Scalar", t, func() {
		Convey("Blank strings have no text", func() {
			So(Str("  ").Text().IsAbsent(), ShouldBeTrue)
			So(Str("mp4").Text().MustGet(), ShouldEqual, "mp4")
		})

		Convey("Objects and arrays carry no scalar value", func() {
			var s Scalar
			So(json.Unmarshal([]byte(`{"name": "x"}`), &s), ShouldBeNil)
			So(s.Present(), ShouldBeFalse)
		})

		Convey("Marshalling keeps the original kind", func() {
			data, err := json.Marshal(struct {
				A Scalar `json:"a"`
				B Scalar `json:"b"`
				C Scalar `json:"c"`
				D Scalar `json:"d"`
			}{Num(720), Str("720"), Bool(false), Scalar{}})
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"a":720,"b":"720","c":false,"d":null}`)
		})

		Convey("Boolean strings are understood", func() {
			So(Str("true").Bool().MustGet(), ShouldBeTrue)
			So(Str("maybe").Bool().IsAbsent(), ShouldBeTrue)
		})
	})
}
