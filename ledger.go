package notes

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoteNotFound reports update or delete criteria that match no note.
	ErrNoteNotFound = errors.New("note not found")
	// ErrNoCriteria reports a selection with no usable criteria.
	ErrNoCriteria = errors.New("no criteria")
)

// Ledger executes the note operations against a single store and keeps the
// text mirror in lockstep with it.
//
// Every operation is one-shot: load the full store, compute, rewrite the full
// store, regenerate (or remove) the mirror. Exclusive sequential access to the
// backing files between invocations is assumed; concurrent processes racing on
// the same files are out of scope.
type Ledger struct {
	store  *Store
	mirror *Mirror

	// Now supplies the current date for created and updated notes.
	// Tests override it to pin the clock.
	Now func() Date
}

// NewLedger returns a ledger over the given database and mirror file paths.
func NewLedger(dbPath, textPath string) *Ledger {
	return &Ledger{
		store:  NewStore(dbPath),
		mirror: NewMirror(textPath),
		Now:    Today,
	}
}

// Sync describes the side effects of an operation on the backing files, so
// the caller can report them.
type Sync struct {
	Bootstrapped bool        // the database file was created by this operation
	Mirror       MirrorEvent // what happened to the text mirror
	Empty        bool        // the store holds no notes after the operation
}

// Change holds the replacement values for an update.
type Change struct {
	Category    Category
	Amount      decimal.Decimal // positive magnitude; the sign is re-derived
	Description string
}

// Create validates and appends a new note dated today.
func (l *Ledger) Create(c Category, magnitude decimal.Decimal, description string) (Note, Sync, error) {
	// Validate before touching the store, so an invalid note leaves it as is.
	n, err := NewNote(l.Now(), c, magnitude, description)
	if err != nil {
		return Note{}, Sync{}, err
	}

	all, created, err := l.store.Load()
	if err != nil {
		return Note{}, Sync{}, err
	}
	all = append(all, n)
	if err := l.store.Save(all); err != nil {
		return Note{}, Sync{}, err
	}
	ev, err := l.mirror.Sync(all)
	return n, Sync{Bootstrapped: created, Mirror: ev}, err
}

// ReadAll returns every note in store order.
func (l *Ledger) ReadAll() ([]Note, Sync, error) {
	all, created, err := l.store.Load()
	if err != nil {
		return nil, Sync{}, err
	}
	return all, Sync{Bootstrapped: created, Empty: len(all) == 0}, nil
}

// Update replaces the first note matching the old criteria, in store order,
// with a fresh note built from the change. The date of the updated note is
// refreshed to today, and its amount sign re-derived from the new category.
//
// The old criteria must carry date, category and amount; a missing
// description only matches notes without one.
func (l *Ledger) Update(old Criteria, change Change) (before, after Note, sync Sync, err error) {
	if old.Date == nil || old.Category == nil || old.Amount == nil {
		return Note{}, Note{}, Sync{}, fmt.Errorf("%w: update requires the previous date, category and amount", ErrNoCriteria)
	}
	old = withDefaultDescription(old)

	after, err = NewNote(l.Now(), change.Category, change.Amount, change.Description)
	if err != nil {
		return Note{}, Note{}, Sync{}, err
	}

	all, created, err := l.store.Load()
	if err != nil {
		return Note{}, Note{}, Sync{}, err
	}
	i, ok := old.firstMatch(all)
	if !ok {
		return Note{}, Note{}, Sync{}, fmt.Errorf("%w: no note matches the previous values", ErrNoteNotFound)
	}
	before = all[i]
	all[i] = after
	if err := l.store.Save(all); err != nil {
		return Note{}, Note{}, Sync{}, err
	}
	ev, err := l.mirror.Sync(all)
	return before, after, Sync{Bootstrapped: created, Mirror: ev}, err
}

// Delete removes the first note matching the criteria, in store order.
// When the last note goes, the mirror file goes with it.
func (l *Ledger) Delete(criteria Criteria) (Note, Sync, error) {
	if criteria.Date == nil || criteria.Category == nil || criteria.Amount == nil {
		return Note{}, Sync{}, fmt.Errorf("%w: delete requires the date, category and amount", ErrNoCriteria)
	}
	criteria = withDefaultDescription(criteria)

	all, created, err := l.store.Load()
	if err != nil {
		return Note{}, Sync{}, err
	}
	i, ok := criteria.firstMatch(all)
	if !ok {
		return Note{}, Sync{}, fmt.Errorf("%w: no note matches these values", ErrNoteNotFound)
	}
	deleted := all[i]
	all = slices.Delete(all, i, i+1)
	if err := l.store.Save(all); err != nil {
		return Note{}, Sync{}, err
	}
	ev, err := l.mirror.Sync(all)
	return deleted, Sync{Bootstrapped: created, Mirror: ev, Empty: len(all) == 0}, err
}

// Find returns every note matching the criteria, in store order. An empty
// result is not an error, but at least one criterion is required.
func (l *Ledger) Find(criteria Criteria) ([]Note, Sync, error) {
	if criteria.IsZero() {
		return nil, Sync{}, fmt.Errorf("%w: find requires at least one of date, category or amount", ErrNoCriteria)
	}
	all, created, err := l.store.Load()
	if err != nil {
		return nil, Sync{}, err
	}
	return criteria.Filter(all), Sync{Bootstrapped: created, Empty: len(all) == 0}, nil
}

// Balance returns the signed sum of all note amounts.
func (l *Ledger) Balance() (decimal.Decimal, error) {
	all, _, err := l.store.Load()
	if err != nil {
		return decimal.Zero, err
	}
	return BalanceOf(all), nil
}

// Clear empties the store and removes the mirror. Clearing an already empty
// store is a no-op that still succeeds.
func (l *Ledger) Clear() (Sync, error) {
	_, created, err := l.store.Load()
	if err != nil {
		return Sync{}, err
	}
	if err := l.store.Save(nil); err != nil {
		return Sync{}, err
	}
	ev, err := l.mirror.Sync(nil)
	return Sync{Bootstrapped: created, Mirror: ev, Empty: true}, err
}

// BalanceOf sums the signed amounts of the given notes.
func BalanceOf(notes []Note) decimal.Decimal {
	total := decimal.Zero
	for _, n := range notes {
		total = total.Add(n.Amount)
	}
	return total
}

// withDefaultDescription pins an unsupplied description criterion to the
// empty one, so update and delete without a description only match notes
// without one.
func withDefaultDescription(c Criteria) Criteria {
	if c.Description == nil {
		empty := ""
		c.Description = &empty
	}
	return c
}
