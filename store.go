package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrStoreCorrupt reports a database file that does not parse as the expected
// schema. It is surfaced, never repaired, to avoid silent data loss.
var ErrStoreCorrupt = errors.New("store corrupt")

// Store persists the ordered note collection to a single JSON file.
//
// The file holds one object with a single "notes" list. It is created lazily
// with an empty list on first access, and rewritten whole on every save.
type Store struct {
	Path string
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store { return &Store{Path: path} }

// jnote is the persisted form of a Note.
// to parse a json, we use a dedicated local struct with tag annotation.
type jnote struct {
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// jstore is the persisted form of the whole database file.
type jstore struct {
	Notes []jnote `json:"notes"`
}

// Load reads the full note collection in insertion order.
//
// A missing file is not an error: the store is bootstrapped with an empty
// list and created reports true. Any parse or schema failure wraps
// ErrStoreCorrupt and leaves the file untouched.
func (s *Store) Load() (notes []Note, created bool, err error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.Save(nil); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read store file %q: %w", s.Path, err)
	}

	// The "notes" list is the schema; a file without it is corrupt, not empty.
	var js struct {
		Notes *[]jnote `json:"notes"`
	}
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, false, fmt.Errorf("store file %q: %w: %v", s.Path, ErrStoreCorrupt, err)
	}
	if js.Notes == nil {
		return nil, false, fmt.Errorf("store file %q: %w: missing \"notes\" list", s.Path, ErrStoreCorrupt)
	}

	notes = make([]Note, 0, len(*js.Notes))
	for i, jn := range *js.Notes {
		day, err := ParseDate(jn.Date)
		if err != nil {
			return nil, false, fmt.Errorf("store file %q: note %d: %w: %v", s.Path, i, ErrStoreCorrupt, err)
		}
		cat, err := parseCategoryName(jn.Category)
		if err != nil {
			return nil, false, fmt.Errorf("store file %q: note %d: %w: %v", s.Path, i, ErrStoreCorrupt, err)
		}
		notes = append(notes, Note{
			Date:        day,
			Category:    cat,
			Amount:      jn.Amount,
			Description: jn.Description,
		})
	}
	return notes, false, nil
}

// Save rewrites the full note collection.
//
// The new content is written to a temporary file in the same directory and
// renamed over the target, so a failed save leaves the prior file untouched.
func (s *Store) Save(notes []Note) error {
	js := jstore{Notes: make([]jnote, 0, len(notes))}
	for _, n := range notes {
		js.Notes = append(js.Notes, jnote{
			Date:        n.Date.String(),
			Category:    n.Category.String(),
			Amount:      n.Amount,
			Description: n.Description,
		})
	}

	data, err := json.MarshalIndent(js, "", "    ")
	if err != nil {
		return fmt.Errorf("could not encode store: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".notes-*.json")
	if err != nil {
		return fmt.Errorf("could not create temporary store file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op once the rename succeeded

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write store file %q: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary store file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("could not replace store file %q: %w", s.Path, err)
	}
	return nil
}
