package request

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	convey.Convey("A full request line parses into its three tokens", t, func() {
		req, err := Parse([]byte("GET /index.html HTTP/1.1\r\nHost: localhost\r\n\r\n"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(req.Method, convey.ShouldEqual, "GET")
		convey.So(req.URI, convey.ShouldEqual, "/index.html")
		convey.So(req.HTTPVersion, convey.ShouldEqual, "HTTP/1.1")
	})

	convey.Convey("A missing version falls back to 1.1", t, func() {
		req, err := Parse([]byte("GET /\r\n"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(req.URI, convey.ShouldEqual, "/")
		convey.So(req.HTTPVersion, convey.ShouldEqual, "1.1")
	})

	convey.Convey("A bare method leaves the URI empty", t, func() {
		req, err := Parse([]byte("GET\r\n"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(req.Method, convey.ShouldEqual, "GET")
		convey.So(req.URI, convey.ShouldBeEmpty)
		convey.So(req.HTTPVersion, convey.ShouldEqual, "1.1")
	})

	convey.Convey("Only the first line is examined", t, func() {
		req, err := Parse([]byte("OPTIONS * HTTP/1.1\r\nPOST /other HTTP/1.0\r\n"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(req.Method, convey.ShouldEqual, "OPTIONS")
		convey.So(req.URI, convey.ShouldEqual, "*")
	})

	convey.Convey("An unknown verb still parses", t, func() {
		req, err := Parse([]byte("BREW /pot HTTP/1.1\r\n"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(req.Method, convey.ShouldEqual, "BREW")
	})

	convey.Convey("Unusable input is rejected", t, func() {
		convey.Convey("an empty buffer", func() {
			_, err := Parse(nil)
			convey.So(err, convey.ShouldEqual, ErrMalformedRequest)
		})
		convey.Convey("a bare CRLF", func() {
			_, err := Parse([]byte("\r\n"))
			convey.So(err, convey.ShouldEqual, ErrMalformedRequest)
		})
		convey.Convey("a line starting with a space", func() {
			_, err := Parse([]byte(" GET / HTTP/1.1\r\n"))
			convey.So(err, convey.ShouldEqual, ErrMalformedRequest)
		})
	})
}
