package filesystem

import (
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestOpen(t *testing.T) {
	Convey("Given a response file on the in-memory backend", t, func() {
		SetMemMapFs()
		So(API().WriteFile("/tmp/response.json", []byte(`{"status":"success"}`), 0644), ShouldBeNil)

		Convey("Open reads it back", func() {
			r, err := Open("/tmp/response.json")
			So(err, ShouldBeNil)
			defer r.Close()

			data, err := io.ReadAll(r)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"status":"success"}`)
		})

		Convey("Open fails for a missing file", func() {
			_, err := Open("/tmp/missing.json")
			So(err, ShouldNotBeNil)
		})
	})
}
