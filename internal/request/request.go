package request

import (
	"bytes"
	"errors"
)

// Request is the parsed request line. Only the first line of the raw
// data is examined; header lines and any body are ignored.
type Request struct {
	Method      string
	URI         string
	HTTPVersion string
}

// ErrMalformedRequest is returned when the buffer holds no usable
// request line: an empty read, or a line starting without a method
// token.
var ErrMalformedRequest = errors.New("malformed request line")

const defaultVersion = "1.1"

var crlf = []byte("\r\n")

// Parse extracts the request line from the first bytes read off a
// connection. Token 0 is the method, token 1 (if present) the URI,
// token 2 (if present) the HTTP version. Browsers sometimes omit the
// URI when asking for the homepage, and the version along with it, so
// both stay optional. The method token is not validated against any
// verb set here; an unknown verb is the dispatcher's problem.
func Parse(data []byte) (*Request, error) {
	line, _, _ := bytes.Cut(data, crlf)
	tokens := bytes.Split(line, []byte(" "))
	if len(tokens[0]) == 0 {
		return nil, ErrMalformedRequest
	}

	req := &Request{
		Method:      string(tokens[0]),
		HTTPVersion: defaultVersion,
	}
	if len(tokens) > 1 {
		req.URI = string(tokens[1])
	}
	if len(tokens) > 2 {
		req.HTTPVersion = string(tokens[2])
	}
	return req, nil
}
