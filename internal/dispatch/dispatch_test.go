package dispatch

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/qdamian/crudeserver/internal/request"
	"github.com/qdamian/crudeserver/internal/response"
)

func dispatchRaw(t *testing.T, rawRequest string) string {
	t.Helper()
	req, err := request.Parse([]byte(rawRequest))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	buf := new(bytes.Buffer)
	Handle(response.NewWriter(buf), req)
	return buf.String()
}

func body(raw string) string {
	_, b, _ := strings.Cut(raw, "\r\n\r\n")
	return b
}

func TestHandleNotImplemented(t *testing.T) {
	convey.Convey("Any method outside the table yields a fixed 501", t, func() {
		for _, raw := range []string{
			"DELETE / HTTP/1.1\r\n",
			"POST /a.txt HTTP/1.1\r\n",
			"get / HTTP/1.1\r\n", // lookup is case-sensitive
			"BREW /pot HTTP/1.1\r\n",
		} {
			out := dispatchRaw(t, raw)
			convey.So(out, convey.ShouldStartWith, "HTTP/1.1 501 Not Implemented\r\n")
			convey.So(body(out), convey.ShouldEqual, "<h1>501 Not Implemented</h1>")
			convey.So(out, convey.ShouldContainSubstring, "Content-Type: text/html\r\n")
		}
	})
}

func TestHandleOptions(t *testing.T) {
	convey.Convey("OPTIONS advertises the implemented methods for any URI", t, func() {
		for _, raw := range []string{
			"OPTIONS / HTTP/1.1\r\n",
			"OPTIONS /whatever/ignored HTTP/1.1\r\n",
			"OPTIONS\r\n",
		} {
			out := dispatchRaw(t, raw)
			convey.So(out, convey.ShouldStartWith, "HTTP/1.1 200 OK\r\n")
			convey.So(out, convey.ShouldContainSubstring, "Allow: OPTIONS, GET\r\n")
			convey.So(body(out), convey.ShouldBeEmpty)
		}
	})
}

func TestHandleGet(t *testing.T) {
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })

	if err := os.WriteFile("a.txt", []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	convey.Convey("GET delegates to the content resolver", t, func() {
		out := dispatchRaw(t, "GET /a.txt HTTP/1.1\r\n")
		convey.So(out, convey.ShouldStartWith, "HTTP/1.1 200 OK\r\n")
		convey.So(body(out), convey.ShouldEqual, "hello")

		convey.Convey("including its 404 shape", func() {
			out := dispatchRaw(t, "GET /nope HTTP/1.1\r\n")
			convey.So(out, convey.ShouldStartWith, "HTTP/1.1 404 Not Found\r\n")
			convey.So(body(out), convey.ShouldEqual, "<h1>404 Not Found: nope</h1>")
		})
	})
}
