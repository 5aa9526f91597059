package export

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"tableflip.dev/scriv/pkg/document"
)

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestServeOneShot(t *testing.T) {
	s := &Server{Port: freePort(t)}
	doc := document.FromText("Notes", "hello\nworld")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(context.Background(), doc)
	}()

	var conn net.Conn
	var err error
	for i := 0; i < 50; i++ {
		conn, err = net.Dial("tcp", s.Addr())
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	got, err := io.ReadAll(conn)
	if err != nil {
		t.Fatal(err)
	}
	want := "Notes\n\nhello\nworld"
	if string(got) != want {
		t.Fatalf("received %q, want %q", got, want)
	}

	if err := <-errCh; err != nil {
		t.Fatalf("Serve: %v", err)
	}
}

func TestServeCancel(t *testing.T) {
	s := &Server{Port: freePort(t)}
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(ctx, document.New("Notes"))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
