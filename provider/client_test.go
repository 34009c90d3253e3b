package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFetch(t *testing.T) {
	Convey("Given an extraction service", t, func() {
		var received fetchRequest
		var authorization, requestID string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization = r.Header.Get("Authorization")
			requestID = r.Header.Get("X-Request-ID")
			_ = json.NewDecoder(r.Body).Decode(&received)

			switch received.URL {
			case "https://tiktok.com/@a/video/1":
				_, _ = w.Write([]byte(`{"status": "success", "medias": [{"url": "x.mp4", "quality": "hd_no_watermark"}]}`))
			case "https://tiktok.com/@a/video/private":
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"status": "error", "message": "private video"}`))
			default:
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte("upstream down"))
			}
		}))
		defer server.Close()

		client := NewClient(server.Client(), server.URL, "secret")

		Convey("It posts the source URL with the token", func() {
			response, err := client.Fetch(context.Background(), "https://tiktok.com/@a/video/1")
			So(err, ShouldBeNil)
			So(received.URL, ShouldEqual, "https://tiktok.com/@a/video/1")
			So(authorization, ShouldEqual, "Bearer secret")
			So(response.Medias, ShouldHaveLength, 1)
		})

		Convey("Each request carries a v7 request id", func() {
			_, err := client.Fetch(context.Background(), "https://tiktok.com/@a/video/1")
			So(err, ShouldBeNil)
			id, err := uuid.Parse(requestID)
			So(err, ShouldBeNil)
			So(id.Version(), ShouldEqual, uuid.Version(7))
		})

		Convey("Error payloads are returned as responses", func() {
			response, err := client.Fetch(context.Background(), "https://tiktok.com/@a/video/private")
			So(err, ShouldBeNil)
			So(response.Failed(), ShouldBeTrue)
			So(response.Message.String(), ShouldEqual, "private video")
		})

		Convey("Other failures surface the status", func() {
			_, err := client.Fetch(context.Background(), "https://example.org")
			var httpErr *HTTPError
			So(errors.As(err, &httpErr), ShouldBeTrue)
			So(httpErr.Code, ShouldEqual, http.StatusBadGateway)
			So(httpErr.Body, ShouldEqual, "upstream down")
		})

		Convey("A cancelled context aborts the request", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := client.Fetch(ctx, "https://tiktok.com/@a/video/1")
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})

	Convey("Without an endpoint", t, func() {
		_, err := NewClient(http.DefaultClient, "", "").Fetch(context.Background(), "https://x.com")
		So(err, ShouldEqual, ErrNoEndpoint)
	})
}
