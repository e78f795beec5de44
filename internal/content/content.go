package content

import (
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/astaxie/beego/logs"

	"github.com/qdamian/crudeserver/internal/headers"
	"github.com/qdamian/crudeserver/internal/response"
)

// fallbackType is used when nothing can be guessed from the extension.
const fallbackType = "text/html"

// Result carries everything a handler needs to frame a response for a
// resolved path.
type Result struct {
	Status  response.StatusCode
	Headers headers.Headers
	Body    []byte
}

// Resolve maps a request URI onto the filesystem, relative to the
// process working directory. Traversal outside the serving root is not
// prevented; that limitation is inherited deliberately from the
// reference behavior.
func Resolve(uri string) *Result {
	relPath := cleanPath(uri)
	logs.Info("requested path: %s", relPath)

	info, err := os.Stat(relPath)
	if err != nil {
		return notFound(relPath)
	}

	contentType := mime.TypeByExtension(filepath.Ext(relPath))
	if contentType == "" {
		contentType = fallbackType
	}

	var body []byte
	if info.IsDir() {
		body, err = renderDirectory(relPath)
	} else {
		body, err = os.ReadFile(relPath)
	}
	if err != nil {
		// The path can vanish or turn unreadable between the stat and
		// the read; degrade instead of taking the server down.
		logs.Warn("read failed for %s: %v", relPath, err)
		return notFound(relPath)
	}

	return &Result{
		Status:  response.StatusOK,
		Headers: headers.Headers{"Content-Type": contentType},
		Body:    body,
	}
}

// cleanPath percent-decodes the URI and strips the separators around
// it. An empty result means the serving root itself.
func cleanPath(uri string) string {
	decoded, err := url.PathUnescape(uri)
	if err != nil {
		// Keep the raw string on a bad escape; the stat below will
		// sort out whether anything matches it.
		decoded = uri
	}
	relPath := strings.Trim(decoded, "/")
	if relPath == "" {
		relPath = "."
	}
	return relPath
}

func notFound(relPath string) *Result {
	return &Result{
		Status: response.StatusNotFound,
		Body:   []byte(fmt.Sprintf("<h1>404 Not Found: %s</h1>", relPath)),
	}
}

// renderDirectory lists the immediate children of dir as an HTML
// fragment: subdirectories first, then files, each a link. Order
// within each group is whatever the filesystem yields; nothing is
// recursed into.
func renderDirectory(dir string) ([]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(dir)
	if dir == "." {
		base = ""
	}

	var b strings.Builder
	b.WriteString(`<head><meta charset="UTF-8"></head>`)
	for _, entry := range entries {
		if entry.IsDir() {
			writeEntry(&b, "📁", base, entry.Name())
		}
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			writeEntry(&b, "🗎", base, entry.Name())
		}
	}
	return []byte(b.String()), nil
}

// writeEntry renders one child link. The href is percent-encoded per
// path segment so that decoding an incoming URI gives the name back
// verbatim.
func writeEntry(b *strings.Builder, marker, base, name string) {
	href := url.PathEscape(base) + "/" + url.PathEscape(name)
	fmt.Fprintf(b, "<p>%s <a href=%q>%s</a></p>\n", marker, href, name)
}
