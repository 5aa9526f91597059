package editor

import (
	"testing"

	"tableflip.dev/scriv/pkg/store"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func newSession(t *testing.T) *Session {
	t.Helper()
	p, err := store.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	return New(p)
}

func TestCreateNamesSequentially(t *testing.T) {
	s := newSession(t)

	doc, err := s.Create()
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "Untitled" {
		t.Fatalf("title = %q", doc.Title)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	doc, err = s.Create()
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "Untitled 2" {
		t.Fatalf("second title = %q", doc.Title)
	}
}

func TestSaveAndOpen(t *testing.T) {
	s := newSession(t)
	doc, err := s.Create()
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "drafting" {
		if err := doc.Body.InsertRune(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	reopened, err := s.Open("Untitled")
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Body.String() != "drafting" {
		t.Fatalf("body = %q", reopened.Body.String())
	}
	if reopened.Body.Modified() {
		t.Fatal("loaded document marked modified")
	}
}

func TestOpenUnknownTitleStartsEmpty(t *testing.T) {
	s := newSession(t)
	doc, err := s.Open("Ghost")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "Ghost" || doc.Body.String() != "" {
		t.Fatalf("doc = %q / %q", doc.Title, doc.Body.String())
	}
}

func TestDelete(t *testing.T) {
	s := newSession(t)
	if _, err := s.Create(); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(); err != nil {
		t.Fatal(err)
	}
	if s.Document() != nil {
		t.Fatal("document still open after delete")
	}
	names, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Fatalf("names = %v", names)
	}
}

func TestSaveWithoutDocumentIsNoop(t *testing.T) {
	s := newSession(t)
	if err := s.Save(); err != nil {
		t.Fatalf("Save with nothing open: %v", err)
	}
}
