package catalog

import (
	"errors"
	"testing"

	"github.com/edutena/pathways/internal/domain"
)

func TestPageSizes(t *testing.T) {
	c := New()

	for _, p := range []domain.Pathway{
		domain.PathwaySTEM,
		domain.PathwaySocialSciences,
		domain.PathwayArtsAndSports,
	} {
		short := c.Page(p, false)
		if len(short) != ShortPageSize {
			t.Errorf("%s short page = %d careers, want %d", p, len(short), ShortPageSize)
		}
		full := c.Page(p, true)
		if len(full) != 10 {
			t.Errorf("%s full page = %d careers, want 10", p, len(full))
		}
		// The short page must be a stable prefix of the full catalog.
		for i, rec := range short {
			if full[i].Name != rec.Name {
				t.Errorf("%s short page diverges from full catalog at %d: %q vs %q",
					p, i, rec.Name, full[i].Name)
			}
		}
	}
}

func TestGetBounds(t *testing.T) {
	c := New()

	if _, err := c.Get(domain.PathwaySTEM, 6, false); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("index 6 on short page: err = %v, want ErrIndexOutOfRange", err)
	}
	rec, err := c.Get(domain.PathwaySTEM, 6, true)
	if err != nil {
		t.Fatalf("index 6 on full page: unexpected error %v", err)
	}
	if rec.Name == "" {
		t.Error("index 6 on full page returned an empty record")
	}
	if _, err := c.Get(domain.PathwaySTEM, 0, true); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("index 0: err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := c.Get(domain.PathwaySTEM, 11, true); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("index 11: err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestOriginalShortlistPreserved(t *testing.T) {
	c := New()

	want := map[domain.Pathway][]string{
		domain.PathwaySTEM:           {"Engineering", "Data Science", "Medicine"},
		domain.PathwaySocialSciences: {"Law", "Psychology", "Economics"},
		domain.PathwayArtsAndSports:  {"Design", "Music", "Sports"},
	}
	for p, names := range want {
		page := c.Page(p, false)
		for i, name := range names {
			if page[i].Name != name {
				t.Errorf("%s career %d = %q, want %q", p, i+1, page[i].Name, name)
			}
		}
	}
}

func TestUnknownPathwayFallsBackToSTEM(t *testing.T) {
	c := New()

	got := c.Page(domain.Pathway("corrupted"), false)
	stem := c.Page(domain.PathwaySTEM, false)
	if len(got) != len(stem) || got[0].Name != stem[0].Name {
		t.Errorf("unknown pathway page = %v, want STEM page", got)
	}
}
