package network

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mediagrab/mediagrab/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	Convey("Given a timeout", t, func() {
		Convey("A plain client uses an ordinary transport", func() {
			client := New(5*time.Second, false)
			So(client.Timeout, ShouldEqual, 5*time.Second)
			_, ok := client.Transport.(*http.Transport)
			So(ok, ShouldBeTrue)
		})

		Convey("A spoofing client uses the fingerprint transport", func() {
			client := New(5*time.Second, true)
			_, ok := client.Transport.(*SpoofTransport)
			So(ok, ShouldBeTrue)
		})
	})

	Convey("Given config values", t, func() {
		viper.Set(key.ProviderTimeout, 0)
		viper.Set(key.NetworkSpoofTLS, false)
		defer viper.Set(key.ProviderTimeout, 60)

		Convey("A non-positive timeout falls back to a minute", func() {
			So(FromConfig().Timeout, ShouldEqual, time.Minute)
		})
	})
}

func TestSpoofTransport(t *testing.T) {
	Convey("Given a plain HTTP server", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			_, _ = w.Write(body)
		}))
		defer server.Close()

		Convey("Requests pass through the ordinary transport", func() {
			client := &http.Client{Transport: NewSpoofTransport(time.Second)}
			resp, err := client.Post(server.URL, "text/plain", bytes.NewBufferString("ping"))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			So(string(body), ShouldEqual, "ping")
		})
	})

	Convey("Given a request with a replayable body", t, func() {
		req, _ := http.NewRequest(http.MethodPost, "https://example.com", bytes.NewBufferString("payload"))

		Convey("rewind hands out a fresh body", func() {
			_, _ = io.ReadAll(req.Body)
			clone, err := rewind(req)
			So(err, ShouldBeNil)

			body, _ := io.ReadAll(clone.Body)
			So(string(body), ShouldEqual, "payload")
		})
	})
}
