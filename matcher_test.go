package notes

import (
	"testing"

	"github.com/shopspring/decimal"
)

// fixture helpers

func dateOf(s string) *Date {
	d := MustParseDate(s)
	return &d
}

func catOf(c Category) *Category { return &c }

func amtOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func descOf(s string) *string { return &s }

func TestCriteria_Filter(t *testing.T) {
	store := []Note{
		{Date: MustParseDate("2024-05-01"), Category: Income, Amount: decimal.RequireFromString("34.69"), Description: "Cashback"},
		{Date: MustParseDate("2024-05-01"), Category: Waste, Amount: decimal.RequireFromString("-34.69"), Description: "Parking fine"},
		{Date: MustParseDate("2024-05-02"), Category: Income, Amount: decimal.RequireFromString("100"), Description: ""},
	}

	testCases := []struct {
		name     string
		criteria Criteria
		want     []int // indices into store, in order
	}{
		{
			name:     "date only",
			criteria: Criteria{Date: dateOf("2024-05-01")},
			want:     []int{0, 1},
		},
		{
			name:     "category only",
			criteria: Criteria{Category: catOf(Income)},
			want:     []int{0, 2},
		},
		{
			name:     "amount only matches both signs",
			criteria: Criteria{Amount: amtOf("34.69")},
			want:     []int{0, 1},
		},
		{
			name:     "amount with category is signed",
			criteria: Criteria{Category: catOf(Waste), Amount: amtOf("34.69")},
			want:     []int{1},
		},
		{
			name:     "empty description only matches notes without one",
			criteria: Criteria{Description: descOf("")},
			want:     []int{2},
		},
		{
			name: "all criteria",
			criteria: Criteria{
				Date:        dateOf("2024-05-01"),
				Category:    catOf(Income),
				Amount:      amtOf("34.69"),
				Description: descOf("Cashback"),
			},
			want: []int{0},
		},
		{
			name:     "no matches is empty, not an error",
			criteria: Criteria{Amount: amtOf("9000")},
			want:     nil,
		},
		{
			name:     "date excludes everything",
			criteria: Criteria{Date: dateOf("1999-01-01")},
			want:     nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.criteria.Filter(store)
			if len(got) != len(tc.want) {
				t.Fatalf("Filter returned %d notes, want %d", len(got), len(tc.want))
			}
			for i, idx := range tc.want {
				if !got[i].Equal(store[idx]) {
					t.Errorf("match %d = %+v, want store[%d]", i, got[i], idx)
				}
			}
		})
	}
}

func TestCriteria_FirstMatch(t *testing.T) {
	day := MustParseDate("2024-05-01")
	// two indistinguishable notes: the first in store order wins
	store := []Note{
		{Date: day, Category: Income, Amount: decimal.RequireFromString("5"), Description: ""},
		{Date: day, Category: Income, Amount: decimal.RequireFromString("5"), Description: ""},
	}

	c := Criteria{Date: &day, Category: catOf(Income), Amount: amtOf("5"), Description: descOf("")}
	i, ok := c.firstMatch(store)
	if !ok {
		t.Fatal("firstMatch should find a note")
	}
	if i != 0 {
		t.Errorf("firstMatch = %d, want 0 (first in store order)", i)
	}

	none := Criteria{Amount: amtOf("9000")}
	if _, ok := none.firstMatch(store); ok {
		t.Error("firstMatch should not find anything for amount 9000")
	}
}

func TestCriteria_IsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Error("empty criteria should be zero")
	}
	if (Criteria{Amount: amtOf("1")}).IsZero() {
		t.Error("criteria with an amount should not be zero")
	}
}
