package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// MirrorEvent reports what a mirror synchronization did to the text file.
type MirrorEvent int

const (
	// MirrorNone means the file was absent and stays absent.
	MirrorNone MirrorEvent = iota
	// MirrorCreated means the file was written for the first time.
	MirrorCreated
	// MirrorUpdated means an existing file was regenerated.
	MirrorUpdated
	// MirrorDeleted means the file was removed because the store is empty.
	MirrorDeleted
)

func (e MirrorEvent) String() string {
	switch e {
	case MirrorCreated:
		return "created"
	case MirrorUpdated:
		return "updated"
	case MirrorDeleted:
		return "deleted"
	default:
		return "unchanged"
	}
}

const mirrorSeparator = "------------------------------"

// Mirror maintains the human-readable text projection of the store.
//
// The file exists iff the store is non-empty. It is always regenerated whole
// from the in-memory notes, never patched, so it cannot drift from the store.
type Mirror struct {
	Path string
}

// NewMirror returns a mirror backed by the given file path.
func NewMirror(path string) *Mirror { return &Mirror{Path: path} }

// Sync regenerates the mirror from the given notes, or removes it when there
// are none, and reports what it did.
func (m *Mirror) Sync(notes []Note) (MirrorEvent, error) {
	_, err := os.Stat(m.Path)
	existed := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return MirrorNone, fmt.Errorf("could not stat mirror file %q: %w", m.Path, err)
	}

	if len(notes) == 0 {
		if !existed {
			return MirrorNone, nil
		}
		if err := os.Remove(m.Path); err != nil {
			return MirrorNone, fmt.Errorf("could not remove mirror file %q: %w", m.Path, err)
		}
		return MirrorDeleted, nil
	}

	if err := os.WriteFile(m.Path, []byte(mirrorContent(notes)), 0644); err != nil {
		return MirrorNone, fmt.Errorf("could not write mirror file %q: %w", m.Path, err)
	}
	if existed {
		return MirrorUpdated, nil
	}
	return MirrorCreated, nil
}

// mirrorContent renders all notes in store order followed by the balance line.
func mirrorContent(notes []Note) string {
	var b strings.Builder
	for _, n := range notes {
		b.WriteString(n.String())
		b.WriteString("\n\n")
	}
	b.WriteString(mirrorSeparator)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Current balance is: %s\n", BalanceOf(notes).StringFixed(2))
	return b.String()
}
