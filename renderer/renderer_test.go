package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/zizevskikh-dev/notes"
)

func TestSection(t *testing.T) {
	n, err := notes.NewNote(notes.MustParseDate("2024-05-01"), notes.Income, decimal.RequireFromString("34.69"), "Cashback")
	if err != nil {
		t.Fatal(err)
	}

	got := Section("Created note", []notes.Note{n})
	if !strings.HasPrefix(got, "## Created note\n") {
		t.Errorf("section should start with its heading, got %q", got)
	}
	// the four labeled lines survive markdown rendering inside a fence
	if !strings.Contains(got, "```\nDate: 2024-05-01\nCategory: income\nAmount: 34.69\nDescription: Cashback\n```") {
		t.Errorf("section should fence the note verbatim, got %q", got)
	}
}

func TestBalance(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "0", want: "Your current balance is: 0.00"},
		{in: "34.69", want: "Your current balance is: 34.69"},
		{in: "-5", want: "Your current balance is: -5.00"},
	}
	for _, tc := range testCases {
		if got := Balance(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Errorf("Balance(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
