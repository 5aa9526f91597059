package list

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/scriv/pkg/printers"
	"tableflip.dev/scriv/pkg/store"
	"tableflip.dev/scriv/pkg/textbuf"
)

type List struct {
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list, no persistence")
	}

	names, err := l.Persistence.ListDocuments()
	if err != nil {
		return err
	}

	infos := make([]printers.DocumentInfo, 0, len(names))
	for _, name := range names {
		body, err := l.Persistence.LoadDocument(name)
		if err != nil {
			continue
		}
		buf := textbuf.FromText(body)
		infos = append(infos, printers.DocumentInfo{
			Title: name,
			Words: buf.WordCount(),
			Lines: buf.LineCount(),
		})
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Documents")
	pp.Documents(infos...)
	return nil
}
