// Package catalog serves the static career reference data per pathway.
package catalog

import (
	"fmt"
	"log/slog"

	"github.com/edutena/pathways/internal/domain"
)

// ShortPageSize is the number of careers shown before "more" widens
// the page to the full catalog.
const ShortPageSize = 5

// ErrIndexOutOfRange is returned for a selection outside the visible page.
var ErrIndexOutOfRange = fmt.Errorf("career index out of range")

// Catalog holds the pre-ranked career lists. The list order is the
// authoritative ranking (sorted by market demand at curation time);
// nothing is re-sorted at runtime.
type Catalog struct {
	careers map[domain.Pathway][]domain.CareerRecord
}

// New returns the catalog backed by the built-in career tables.
func New() *Catalog {
	return &Catalog{careers: careerTables}
}

// lookup returns the list for a pathway, falling back to STEM's list
// for an unknown key. The fallback masks bad data rather than failing
// the conversation, so it logs loudly when it fires.
func (c *Catalog) lookup(p domain.Pathway) []domain.CareerRecord {
	if list, ok := c.careers[p]; ok {
		return list
	}
	slog.Warn("unknown pathway key, serving STEM careers as fallback", "pathway", string(p))
	return c.careers[domain.PathwaySTEM]
}

// Page returns the visible career list for a pathway: the short page,
// or the full catalog when full is set.
func (c *Catalog) Page(p domain.Pathway, full bool) []domain.CareerRecord {
	list := c.lookup(p)
	if full || len(list) <= ShortPageSize {
		return list
	}
	return list[:ShortPageSize]
}

// Get returns the career at a 1-based index into the visible page, or
// ErrIndexOutOfRange when the index falls outside it.
func (c *Catalog) Get(p domain.Pathway, index int, full bool) (domain.CareerRecord, error) {
	page := c.Page(p, full)
	if index < 1 || index > len(page) {
		return domain.CareerRecord{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(page))
	}
	return page[index-1], nil
}
