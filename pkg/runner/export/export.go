package export

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/scriv/pkg/dateutil"
	"tableflip.dev/scriv/pkg/document"
	exporter "tableflip.dev/scriv/pkg/export"
	"tableflip.dev/scriv/pkg/store"
)

// Export serves one document or journal entry over TCP until a client
// pulls it.
type Export struct {
	Title       string
	Journal     string
	Port        int
	Persistence store.Persistence
}

func (e *Export) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	doc, err := e.load()
	if err != nil {
		return err
	}

	srv := &exporter.Server{Port: e.Port}
	fmt.Printf("serving %q on %s, connect with: nc <host> %s\n", doc.Title, srv.Addr(), srv.Addr()[1:])
	return srv.Serve(ctx, doc)
}

func (e *Export) load() (*document.Document, error) {
	if e.Journal != "" {
		date, err := dateutil.Parse(e.Journal)
		if err != nil {
			return nil, err
		}
		text, err := e.Persistence.LoadEntry(date)
		if err != nil {
			return nil, err
		}
		return document.FromText(date.String(), text), nil
	}
	body, err := e.Persistence.LoadDocument(e.Title)
	if err != nil {
		return nil, err
	}
	return document.FromText(e.Title, body), nil
}
