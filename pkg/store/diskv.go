// Package store persists documents, journal entries, and settings as
// binary codec records in a diskv-backed key-value store.
//
// Keyspaces: documents live under docs-<hex title> with a docs-_index
// record listing titles in creation order; journal entries live under
// journal-<YYYY-MM-DD>, so key order is chronological order; settings
// live under a single fixed key.
package store

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/scriv/pkg/codec"
	"tableflip.dev/scriv/pkg/dateutil"
)

// ErrNotFound reports a missing document or journal entry.
var ErrNotFound = errors.New("store: not found")

// Persistence is the storage contract for the writing surfaces.
type Persistence interface {
	ListDocuments() ([]string, error)
	LoadDocument(title string) (string, error)
	SaveDocument(title, body string) error
	DeleteDocument(title string) error
	NextDocumentName(prefix string) (string, error)

	LoadEntry(date dateutil.Date) (string, error)
	SaveEntry(date dateutil.Date, text string) error
	DeleteEntry(date dateutil.Date) error
	ListEntryDates(ctx context.Context) ([]dateutil.Date, error)

	LoadSettings() (codec.Settings, error)
	SaveSettings(codec.Settings) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          cfg.BasePath(),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

const (
	docPrefix     = "docs"
	journalPrefix = "journal"
	indexKey      = "docs-_index"
	settingsKey   = "config-settings"
)

func (p *persistence) ListDocuments() ([]string, error) {
	if !p.d.Has(indexKey) {
		return nil, nil
	}
	data, err := p.d.Read(indexKey)
	if err != nil {
		return nil, fmt.Errorf("store: read index: %w", err)
	}
	names, err := codec.DecodeIndex(data)
	if err != nil {
		return nil, fmt.Errorf("store: index: %w", err)
	}
	return names, nil
}

func (p *persistence) LoadDocument(title string) (string, error) {
	key := docKey(title)
	if !p.d.Has(key) {
		return "", fmt.Errorf("store: document %q: %w", title, ErrNotFound)
	}
	data, err := p.d.Read(key)
	if err != nil {
		return "", fmt.Errorf("store: read %q: %w", title, err)
	}
	_, body, err := codec.DecodeDocument(data)
	if err != nil {
		return "", fmt.Errorf("store: document %q: %w", title, err)
	}
	return body, nil
}

func (p *persistence) SaveDocument(title, body string) error {
	data, err := codec.EncodeDocument(title, body)
	if err != nil {
		return fmt.Errorf("store: document %q: %w", title, err)
	}
	if err := p.d.Write(docKey(title), data); err != nil {
		return fmt.Errorf("store: write %q: %w", title, err)
	}

	names, err := p.ListDocuments()
	if err != nil {
		return err
	}
	for _, name := range names {
		if name == title {
			return nil
		}
	}
	return p.writeIndex(append(names, title))
}

func (p *persistence) DeleteDocument(title string) error {
	if err := p.d.Erase(docKey(title)); err != nil && p.d.Has(docKey(title)) {
		return fmt.Errorf("store: delete %q: %w", title, err)
	}
	names, err := p.ListDocuments()
	if err != nil {
		return err
	}
	kept := names[:0]
	for _, name := range names {
		if name != title {
			kept = append(kept, name)
		}
	}
	return p.writeIndex(kept)
}

// NextDocumentName returns the first unused title in the series
// "prefix", "prefix 2", "prefix 3", ...
func (p *persistence) NextDocumentName(prefix string) (string, error) {
	names, err := p.ListDocuments()
	if err != nil {
		return "", err
	}
	taken := make(map[string]bool, len(names))
	for _, name := range names {
		taken[name] = true
	}
	for n := 1; ; n++ {
		candidate := prefix
		if n > 1 {
			candidate = fmt.Sprintf("%s %d", prefix, n)
		}
		if !taken[candidate] {
			return candidate, nil
		}
	}
}

func (p *persistence) writeIndex(names []string) error {
	data, err := codec.EncodeIndex(names)
	if err != nil {
		return fmt.Errorf("store: index: %w", err)
	}
	if err := p.d.Write(indexKey, data); err != nil {
		return fmt.Errorf("store: write index: %w", err)
	}
	return nil
}

func (p *persistence) LoadEntry(date dateutil.Date) (string, error) {
	key := entryKey(date)
	if !p.d.Has(key) {
		return "", fmt.Errorf("store: entry %s: %w", date, ErrNotFound)
	}
	data, err := p.d.Read(key)
	if err != nil {
		return "", fmt.Errorf("store: read entry %s: %w", date, err)
	}
	return string(data), nil
}

func (p *persistence) SaveEntry(date dateutil.Date, text string) error {
	if err := p.d.Write(entryKey(date), []byte(text)); err != nil {
		return fmt.Errorf("store: write entry %s: %w", date, err)
	}
	return nil
}

func (p *persistence) DeleteEntry(date dateutil.Date) error {
	if err := p.d.Erase(entryKey(date)); err != nil && p.d.Has(entryKey(date)) {
		return fmt.Errorf("store: delete entry %s: %w", date, err)
	}
	return nil
}

// ListEntryDates returns every journal date in chronological order. The
// zero-padded keys sort lexicographically into date order, so no parsing
// round trip is needed to order them.
func (p *persistence) ListEntryDates(ctx context.Context) ([]dateutil.Date, error) {
	var keys []string
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, journalPrefix+"-") {
			keys = append(keys, key)
		}
	}
	// Keys arrive in walk order; normalize.
	sort.Strings(keys)

	dates := make([]dateutil.Date, 0, len(keys))
	for _, key := range keys {
		d, err := dateutil.Parse(strings.TrimPrefix(key, journalPrefix+"-"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: skipping entry key %q: %v\n", key, err)
			continue
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func (p *persistence) LoadSettings() (codec.Settings, error) {
	if !p.d.Has(settingsKey) {
		return codec.DefaultSettings(), nil
	}
	data, err := p.d.Read(settingsKey)
	if err != nil {
		return codec.Settings{}, fmt.Errorf("store: read settings: %w", err)
	}
	s, err := codec.DecodeSettings(data)
	if err != nil {
		return codec.Settings{}, fmt.Errorf("store: settings: %w", err)
	}
	return s, nil
}

func (p *persistence) SaveSettings(s codec.Settings) error {
	if err := p.d.Write(settingsKey, codec.EncodeSettings(s)); err != nil {
		return fmt.Errorf("store: write settings: %w", err)
	}
	return nil
}

// docKey makes `docs-<hex title>`; hex keeps arbitrary titles out of the
// path transform and the filesystem.
func docKey(title string) string {
	return fmt.Sprintf("%s-%s", docPrefix, hex.EncodeToString([]byte(title)))
}

// entryKey makes `journal-YYYY-MM-DD`.
func entryKey(date dateutil.Date) string {
	return fmt.Sprintf("%s-%s", journalPrefix, date)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
