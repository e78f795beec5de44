package response

import (
	"fmt"
	"io"

	"github.com/qdamian/crudeserver/internal/headers"
)

// StatusCode represents an HTTP status code
type StatusCode int

// HTTP status codes we emit
const (
	StatusOK             StatusCode = 200
	StatusNotFound       StatusCode = 404
	StatusNotImplemented StatusCode = 501
)

// StatusText maps each supported code to its reason phrase. Passing a
// code outside this table is a programming error, not a runtime
// condition; it renders with an empty phrase.
var StatusText = map[StatusCode]string{
	StatusOK:             "OK",
	StatusNotFound:       "Not Found",
	StatusNotImplemented: "Not Implemented",
}

// WriteStatusLine writes the HTTP status line to the writer
func WriteStatusLine(w io.Writer, code StatusCode) error {
	_, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n", int(code), StatusText[code])
	return err
}

// WriteHeaders merges hdrs over the default headers and writes the
// header block followed by the blank line separating headers from body.
// The blank line goes out even when no body follows.
func WriteHeaders(w io.Writer, hdrs headers.Headers) error {
	merged := headers.Merge(headers.Default(), hdrs)
	for key, value := range merged {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", key, value); err != nil {
			return err
		}
	}

	_, err := w.Write([]byte("\r\n"))
	return err
}

// writerState tracks the state of the response writer
type writerState int

const (
	stateStart writerState = iota
	stateStatusWritten
	stateHeadersWritten
	stateBodyWritten
)

// Writer frames a full response onto an underlying writer: status
// line, then headers, then an optional body, in that order only.
type Writer struct {
	writer io.Writer
	state  writerState
}

// NewWriter creates a new response writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  stateStart,
	}
}

// WriteStatusLine writes the HTTP status line
func (w *Writer) WriteStatusLine(code StatusCode) error {
	if w.state != stateStart {
		return fmt.Errorf("status line must be written first")
	}

	err := WriteStatusLine(w.writer, code)
	if err == nil {
		w.state = stateStatusWritten
	}
	return err
}

// WriteHeaders writes the HTTP headers, merged over the defaults
func (w *Writer) WriteHeaders(hdrs headers.Headers) error {
	if w.state != stateStatusWritten {
		return fmt.Errorf("headers must be written after status line and before body")
	}

	err := WriteHeaders(w.writer, hdrs)
	if err == nil {
		w.state = stateHeadersWritten
	}
	return err
}

// WriteBody writes the response body
func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != stateHeadersWritten {
		return 0, fmt.Errorf("body must be written after headers")
	}

	n, err := w.writer.Write(p)
	if err == nil {
		w.state = stateBodyWritten
	}
	return n, err
}
