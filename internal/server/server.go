package server

import (
	"fmt"
	"net"
	"strconv"
	"sync/atomic"

	"github.com/astaxie/beego/logs"

	"github.com/qdamian/crudeserver/internal/request"
	"github.com/qdamian/crudeserver/internal/response"
)

// Handler processes one parsed request and writes the response. The
// server is composed with a handler rather than extended by one, so
// anything with this shape can sit behind the accept loop.
type Handler func(w *response.Writer, req *request.Request)

// Reference listening configuration.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8888

	// DefaultReadSize bounds the single read performed per connection.
	// A request line longer than this arrives truncated and parses
	// garbled; that is an accepted limit, not a bug.
	DefaultReadSize = 1024
)

// Config holds the listening parameters. Port 0 asks the kernel for a
// free port; Addr reports the outcome.
type Config struct {
	Host     string
	Port     int
	ReadSize int
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		ReadSize: DefaultReadSize,
	}
}

// Server owns the listening socket for its whole lifetime. It accepts
// one connection at a time and serves it to completion before the next
// accept, so a slow client head-of-line-blocks everyone behind it.
// Serving each connection on its own goroutine is a possible
// extension, at the cost of the strict ordering this model guarantees.
type Server struct {
	listener net.Listener
	handler  Handler
	readSize int
	closed   atomic.Bool
}

// Serve binds the listener and starts the accept loop in a background
// goroutine.
func Serve(cfg Config, handler Handler) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.ReadSize <= 0 {
		cfg.ReadSize = DefaultReadSize
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := &Server{
		listener: listener,
		handler:  handler,
		readSize: cfg.ReadSize,
	}

	go s.listen()

	return s, nil
}

// Addr returns the bound listen address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Close stops the server and closes the listener
func (s *Server) Close() error {
	s.closed.Store(true)
	return s.listener.Close()
}

// listen accepts connections and serves them strictly one after
// another. A connection's failure never stops the loop.
func (s *Server) listen() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// If server is closed, ignore connection errors
			if s.closed.Load() {
				return
			}
			logs.Error("accept failed: %v", err)
			continue
		}

		logs.Info("connected by %s", conn.RemoteAddr())
		s.handle(conn)
	}
}

// handle serves a single connection: one bounded read, parse,
// dispatch, close.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, s.readSize)
	n, err := conn.Read(buf)
	if err != nil {
		// Client went away before sending anything useful.
		logs.Warn("read failed: %v", err)
		return
	}

	req, err := request.Parse(buf[:n])
	if err != nil {
		// Close without a response rather than guess at a reply.
		logs.Warn("dropping connection: %v", err)
		return
	}

	s.handler(response.NewWriter(conn), req)
}
