package notes

import (
	"github.com/shopspring/decimal"
)

// Criteria selects notes by exact field equality. A nil field imposes no
// constraint; a note matches when every supplied field is equal.
//
// The amount criterion is supplied as a positive magnitude, like everywhere
// else on the caller surface. When a category criterion is also supplied, the
// magnitude is re-signed from it and compared exactly to the stored amount;
// alone, it is compared to the stored amount's absolute value, so a search for
// 34.69 finds the income note worth 34.69 as well as the waste note worth
// -34.69.
type Criteria struct {
	Date        *Date
	Category    *Category
	Amount      *decimal.Decimal
	Description *string
}

// IsZero reports whether no criterion is supplied.
func (c Criteria) IsZero() bool {
	return c.Date == nil && c.Category == nil && c.Amount == nil && c.Description == nil
}

// Matches reports whether n satisfies every supplied criterion.
func (c Criteria) Matches(n Note) bool {
	if c.Date != nil && *c.Date != n.Date {
		return false
	}
	if c.Category != nil && *c.Category != n.Category {
		return false
	}
	if c.Amount != nil {
		if c.Category != nil {
			if !signedAmount(*c.Category, *c.Amount).Equal(n.Amount) {
				return false
			}
		} else if !c.Amount.Equal(n.Amount.Abs()) {
			return false
		}
	}
	if c.Description != nil && *c.Description != n.Description {
		return false
	}
	return true
}

// Filter returns the notes satisfying the criteria, preserving store order.
func (c Criteria) Filter(notes []Note) []Note {
	var matches []Note
	for _, n := range notes {
		if c.Matches(n) {
			matches = append(matches, n)
		}
	}
	return matches
}

// firstMatch returns the index of the first note satisfying the criteria.
// Update and delete both select this way when several notes match.
func (c Criteria) firstMatch(notes []Note) (int, bool) {
	for i, n := range notes {
		if c.Matches(n) {
			return i, true
		}
	}
	return 0, false
}
