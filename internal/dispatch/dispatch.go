package dispatch

import (
	"github.com/astaxie/beego/logs"

	"github.com/qdamian/crudeserver/internal/content"
	"github.com/qdamian/crudeserver/internal/headers"
	"github.com/qdamian/crudeserver/internal/request"
	"github.com/qdamian/crudeserver/internal/response"
)

// handlerFunc is an implemented method handler.
type handlerFunc func(w *response.Writer, req *request.Request)

// methodHandlers is the closed set of methods this server implements.
// Lookup is exact and case-sensitive; anything else, including a
// garbled method token, falls through to the 501 handler.
var methodHandlers = map[string]handlerFunc{
	"GET":     handleGet,
	"OPTIONS": handleOptions,
}

// Handle routes a parsed request to its method handler. It satisfies
// server.Handler.
func Handle(w *response.Writer, req *request.Request) {
	handler, ok := methodHandlers[req.Method]
	if !ok {
		handler = handleNotImplemented
	}
	handler(w, req)
}

func handleGet(w *response.Writer, req *request.Request) {
	logs.Info("requested URI: %s", req.URI)

	result := content.Resolve(req.URI)
	w.WriteStatusLine(result.Status)
	w.WriteHeaders(result.Headers)
	w.WriteBody(result.Body)
}

// handleOptions advertises the implemented methods. The URI is never
// inspected and no body is sent.
func handleOptions(w *response.Writer, _ *request.Request) {
	w.WriteStatusLine(response.StatusOK)
	w.WriteHeaders(headers.Headers{"Allow": "OPTIONS, GET"})
}

var notImplementedBody = []byte("<h1>501 Not Implemented</h1>")

func handleNotImplemented(w *response.Writer, _ *request.Request) {
	w.WriteStatusLine(response.StatusNotImplemented)
	w.WriteHeaders(nil)
	w.WriteBody(notImplementedBody)
}
