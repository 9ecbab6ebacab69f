package notes

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidCategory reports a category ordinal outside {1, 2}.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidAmount reports a non-positive amount magnitude.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Category classifies a note as money spent or money received.
type Category int

const (
	// Waste is money spent; notes in this category carry a negative amount.
	Waste Category = iota + 1
	// Income is money received; notes in this category carry a positive amount.
	Income
)

func (c Category) String() string {
	switch c {
	case Waste:
		return "waste"
	case Income:
		return "income"
	default:
		return "unknown"
	}
}

// Ordinal returns the numeric form of the category as supplied on the command line.
func (c Category) Ordinal() int { return int(c) }

// ParseCategory resolves a category from its ordinal (1 = waste, 2 = income).
func ParseCategory(ordinal int) (Category, error) {
	switch ordinal {
	case 1:
		return Waste, nil
	case 2:
		return Income, nil
	default:
		return 0, fmt.Errorf("%w: ordinal %d is not 1 (waste) or 2 (income)", ErrInvalidCategory, ordinal)
	}
}

// parseCategoryName resolves a category from its persisted string name.
func parseCategoryName(name string) (Category, error) {
	switch name {
	case "waste":
		return Waste, nil
	case "income":
		return Income, nil
	default:
		return 0, fmt.Errorf("%w: unknown name %q", ErrInvalidCategory, name)
	}
}

// Note is a single ledger record. Once valid, every note satisfies the sign
// invariant: Amount is negative iff Category is Waste.
type Note struct {
	Date        Date
	Category    Category
	Amount      decimal.Decimal // signed; the sign is derived from Category
	Description string          // "" when no description was supplied
}

// NewNote builds a note dated 'on' from a positive amount magnitude.
// The stored amount sign is derived from the category; callers never supply a
// pre-signed amount.
func NewNote(on Date, c Category, magnitude decimal.Decimal, description string) (Note, error) {
	if c != Waste && c != Income {
		return Note{}, fmt.Errorf("%w: %d", ErrInvalidCategory, c)
	}
	if !magnitude.IsPositive() {
		return Note{}, fmt.Errorf("%w: the amount of money must be a positive number, got %s", ErrInvalidAmount, magnitude)
	}
	return Note{
		Date:        on,
		Category:    c,
		Amount:      signedAmount(c, magnitude),
		Description: description,
	}, nil
}

// signedAmount derives the stored amount from a positive magnitude.
func signedAmount(c Category, magnitude decimal.Decimal) decimal.Decimal {
	if c == Waste {
		return magnitude.Neg()
	}
	return magnitude
}

// String renders the note as its four labeled lines, the same form used by
// the text mirror and the terminal output.
func (n Note) String() string {
	return fmt.Sprintf("Date: %s\nCategory: %s\nAmount: %s\nDescription: %s",
		n.Date, n.Category, n.Amount, n.Description)
}

// Equal reports whether two notes carry the same field values. Notes have no
// identity beyond their fields.
func (n Note) Equal(o Note) bool {
	return n.Date == o.Date &&
		n.Category == o.Category &&
		n.Amount.Equal(o.Amount) &&
		n.Description == o.Description
}
