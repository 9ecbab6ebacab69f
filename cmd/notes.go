package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/zizevskikh-dev/notes"
	"github.com/zizevskikh-dev/notes/renderer"
)

// parseCategoryFlag resolves a -cat style ordinal flag.
func parseCategoryFlag(ordinal int) (notes.Category, error) {
	c, err := notes.ParseCategory(ordinal)
	if err != nil {
		return 0, err
	}
	return c, nil
}

// parseAmountFlag parses a -amt style flag, keeping the exact decimal value.
func parseAmountFlag(s string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: expected a decimal number", s)
	}
	return amt, nil
}

// --- Create Command ---

type createCmd struct {
	cat  int
	amt  string
	desc string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new note in the database" }
func (*createCmd) Usage() string {
	return `notes create -cat <1|2> -amt <amount> [-desc <text>]

  Creates a note dated today. Category 1 is a waste, category 2 is an income;
  the stored amount sign is derived from the category, so the amount is always
  given as a positive number.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.cat, "cat", 0, "Category ordinal: 1 = waste, 2 = income")
	f.StringVar(&c.amt, "amt", "", "Positive amount of money")
	f.StringVar(&c.desc, "desc", "", "An optional description for the note")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.cat == 0 || c.amt == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	cat, err := parseCategoryFlag(c.cat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	amt, err := parseAmountFlag(c.amt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	n, sync, err := openLedger().Create(cat, amt, c.desc)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("The new note has been created!")
	printMarkdown(renderer.Section("Created note", []notes.Note{n}))
	reportSync(sync)
	return subcommands.ExitSuccess
}

// --- Update Command ---

type updateCmd struct {
	date string
	cat  int
	amt  string
	desc string

	newCat  int
	newAmt  string
	newDesc string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "replace an existing note with new values" }
func (*updateCmd) Usage() string {
	return `notes update -date <YYYY-MM-DD> -cat <1|2> -amt <amount> [-desc <text>] -new-cat <1|2> -new-amt <amount> [-new-desc <text>]

  Finds the note by its previous date, category, amount and description, and
  replaces its values. The first matching note in store order is selected.
  The updated note is dated today.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Previous note date (YYYY-MM-DD)")
	f.IntVar(&c.cat, "cat", 0, "Previous category ordinal: 1 = waste, 2 = income")
	f.StringVar(&c.amt, "amt", "", "Previous positive amount of money")
	f.StringVar(&c.desc, "desc", "", "Previous description; leave unset for notes without one")
	f.IntVar(&c.newCat, "new-cat", 0, "New category ordinal: 1 = waste, 2 = income")
	f.StringVar(&c.newAmt, "new-amt", "", "New positive amount of money")
	f.StringVar(&c.newDesc, "new-desc", "", "New description")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" || c.cat == 0 || c.amt == "" || c.newCat == 0 || c.newAmt == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	old, status := parseSelection(c.date, c.cat, c.amt, c.desc)
	if status != subcommands.ExitSuccess {
		return status
	}
	newCat, err := parseCategoryFlag(c.newCat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	newAmt, err := parseAmountFlag(c.newAmt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	before, after, sync, err := openLedger().Update(old, notes.Change{
		Category:    newCat,
		Amount:      newAmt,
		Description: c.newDesc,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("The update finished successfully!")
	printMarkdown(renderer.Section("Before the update", []notes.Note{before}) +
		renderer.Section("After the update", []notes.Note{after}))
	reportSync(sync)
	return subcommands.ExitSuccess
}

// --- Delete Command ---

type deleteCmd struct {
	date string
	cat  int
	amt  string
	desc string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a note from the database" }
func (*deleteCmd) Usage() string {
	return `notes delete -date <YYYY-MM-DD> -cat <1|2> -amt <amount> [-desc <text>]

  Deletes the note matching the given date, category, amount and description.
  The first matching note in store order is selected. When the last note goes,
  the mirror file is removed too.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Note date (YYYY-MM-DD)")
	f.IntVar(&c.cat, "cat", 0, "Category ordinal: 1 = waste, 2 = income")
	f.StringVar(&c.amt, "amt", "", "Positive amount of money")
	f.StringVar(&c.desc, "desc", "", "Description; leave unset for notes without one")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" || c.cat == 0 || c.amt == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	criteria, status := parseSelection(c.date, c.cat, c.amt, c.desc)
	if status != subcommands.ExitSuccess {
		return status
	}

	deleted, sync, err := openLedger().Delete(criteria)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("The note has been deleted successfully!")
	printMarkdown(renderer.Section("Deleted note", []notes.Note{deleted}))
	if sync.Empty {
		fmt.Println("Database is empty!")
	}
	reportSync(sync)
	return subcommands.ExitSuccess
}

// --- Clear Command ---

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all the notes from the database" }
func (*clearCmd) Usage() string {
	return `notes clear

  Empties the database and removes the mirror file. Clearing an already empty
  database succeeds and changes nothing.
`
}

func (*clearCmd) SetFlags(_ *flag.FlagSet) {}

func (*clearCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sync, err := openLedger().Clear()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("The notes history has been cleaned!")
	reportSync(sync)
	return subcommands.ExitSuccess
}

// parseSelection builds the full selection criteria used by update and delete.
// An empty description is part of the selection: it matches notes without one.
func parseSelection(date string, cat int, amt, desc string) (notes.Criteria, subcommands.ExitStatus) {
	day, err := notes.ParseDate(date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return notes.Criteria{}, subcommands.ExitUsageError
	}
	category, err := parseCategoryFlag(cat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return notes.Criteria{}, subcommands.ExitUsageError
	}
	amount, err := parseAmountFlag(amt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return notes.Criteria{}, subcommands.ExitUsageError
	}
	return notes.Criteria{
		Date:        &day,
		Category:    &category,
		Amount:      &amount,
		Description: &desc,
	}, subcommands.ExitSuccess
}
