// Package export serves a document's plain text over a one-shot TCP
// connection so it can be pulled onto another machine with nc or curl.
package export

import (
	"context"
	"fmt"
	"net"

	"tableflip.dev/scriv/pkg/document"
)

// DefaultPort is where Serve listens when no port is configured.
const DefaultPort = 7879

// Server exports a single document and then stops.
type Server struct {
	Port int
}

// Serve listens on the configured port, writes the document's exported
// text to the first client that connects, then returns. It returns
// early when the context is cancelled.
func (s *Server) Serve(ctx context.Context, doc *document.Document) error {
	port := s.Port
	if port == 0 {
		port = DefaultPort
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("export listen: %w", err)
	}
	defer ln.Close()

	// Unblock Accept when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			ln.Close()
		case <-done:
		}
	}()

	conn, err := ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("export accept: %w", err)
	}
	defer conn.Close()

	if _, err := fmt.Fprint(conn, doc.Export()); err != nil {
		return fmt.Errorf("export write: %w", err)
	}
	return nil
}

// Addr reports the address clients should connect to.
func (s *Server) Addr() string {
	port := s.Port
	if port == 0 {
		port = DefaultPort
	}
	return fmt.Sprintf(":%d", port)
}
