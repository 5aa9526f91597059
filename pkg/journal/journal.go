// Package journal manages the one-entry-per-day writing surface: a
// current date, its buffer, and substring search across stored days.
package journal

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/scriv/pkg/dateutil"
	"tableflip.dev/scriv/pkg/store"
	"tableflip.dev/scriv/pkg/textbuf"
)

// MaxSearchResults caps how many days a search reports.
const MaxSearchResults = 10

// Result is one search hit: the day and its first matching line.
type Result struct {
	Date dateutil.Date
	Line string
}

// Journal is the per-date editing session. Exactly one day is open at a
// time; paging to another day saves the current one first.
type Journal struct {
	persistence store.Persistence
	date        dateutil.Date
	buffer      *textbuf.Buffer
}

// New returns a journal session over the given store, with no day open
// yet; call Today or Open before editing.
func New(p store.Persistence) *Journal {
	return &Journal{persistence: p, buffer: textbuf.New()}
}

// Date returns the currently open day.
func (j *Journal) Date() dateutil.Date { return j.date }

// Buffer returns the buffer for the currently open day.
func (j *Journal) Buffer() *textbuf.Buffer { return j.buffer }

// Today opens the day the supplied clock value falls on. The caller
// provides an already-localized epoch-millisecond reading.
func (j *Journal) Today(nowMS int64) error {
	return j.Open(dateutil.FromEpochMS(nowMS))
}

// Open loads the entry for a day, or starts an empty one when none is
// stored.
func (j *Journal) Open(date dateutil.Date) error {
	j.date = date
	text, err := j.persistence.LoadEntry(date)
	switch {
	case errors.Is(err, store.ErrNotFound):
		j.buffer = textbuf.New()
	case err != nil:
		return err
	default:
		j.buffer = textbuf.FromText(text)
	}
	j.buffer.ClearModified()
	return nil
}

// Save writes the current day's entry. Days that were never touched and
// hold no words are not written, so paging through empty days leaves no
// records behind.
func (j *Journal) Save() error {
	if !j.buffer.Modified() && j.buffer.WordCount() == 0 {
		return nil
	}
	if err := j.persistence.SaveEntry(j.date, j.buffer.String()); err != nil {
		return err
	}
	j.buffer.ClearModified()
	return nil
}

// PrevDay saves the open entry and pages to the previous calendar day.
func (j *Journal) PrevDay() error {
	if err := j.Save(); err != nil {
		return err
	}
	return j.Open(j.date.Prev())
}

// NextDay saves the open entry and pages to the next calendar day.
func (j *Journal) NextDay() error {
	if err := j.Save(); err != nil {
		return err
	}
	return j.Open(j.date.Next())
}

// Search scans stored entries for a case-insensitive substring, oldest
// first. Each day contributes at most its first matching line, and at
// most MaxSearchResults days are reported. An empty query matches
// nothing.
func (j *Journal) Search(ctx context.Context, query string) ([]Result, error) {
	if query == "" {
		return nil, nil
	}
	needle := strings.ToLower(query)

	dates, err := j.persistence.ListEntryDates(ctx)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, date := range dates {
		text, err := j.persistence.LoadEntry(date)
		if err != nil {
			// A single unreadable day should not kill the search.
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			if strings.Contains(strings.ToLower(line), needle) {
				results = append(results, Result{Date: date, Line: line})
				break
			}
		}
		if len(results) >= MaxSearchResults {
			break
		}
	}
	return results, nil
}

// OpenResult saves the current day and jumps to a search hit.
func (j *Journal) OpenResult(r Result) error {
	if err := j.Save(); err != nil {
		return err
	}
	return j.Open(r.Date)
}
