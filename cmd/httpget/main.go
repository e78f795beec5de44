package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
)

var (
	addr   = flag.String("addr", "127.0.0.1:8888", "server address")
	method = flag.String("method", "GET", "request method")
)

// One-shot raw client: sends a single request the way the server reads
// it, then prints everything until the server closes the connection.
func main() {
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		path = "/"
	}

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to dial %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	fmt.Fprintf(conn, "%s %s HTTP/1.1\r\nHost: %s\r\nConnection: close\r\n\r\n",
		*method, path, *addr)

	reply, err := io.ReadAll(conn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read response: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(reply)
}
