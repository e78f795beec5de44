package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/qdamian/crudeserver/internal/request"
	"github.com/qdamian/crudeserver/internal/server"
)

var addr = flag.String("addr", ":8888", "listen address")

// Dumps the request line of whatever connects, without answering.
// Handy for seeing what clients actually put on the wire.
func main() {
	flag.Parse()

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to listen: %v\n", err)
		os.Exit(1)
	}
	defer ln.Close()
	fmt.Println("Listening on", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to accept connection: %v\n", err)
			continue
		}

		buf := make([]byte, server.DefaultReadSize)
		n, err := conn.Read(buf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read: %v\n", err)
			conn.Close()
			continue
		}

		req, err := request.Parse(buf[:n])
		if err != nil {
			fmt.Printf("Error parsing request: %v\n", err)
		} else {
			fmt.Println("Request line:")
			fmt.Printf("- Method: %s\n", req.Method)
			fmt.Printf("- URI: %s\n", req.URI)
			fmt.Printf("- Version: %s\n", req.HTTPVersion)
		}

		conn.Close()
		fmt.Println("Connection closed")
	}
}
