package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/zizevskikh-dev/notes"
	"github.com/zizevskikh-dev/notes/renderer"
)

// --- Read Command ---

type readCmd struct{}

func (*readCmd) Name() string     { return "read" }
func (*readCmd) Synopsis() string { return "display all the notes from the database" }
func (*readCmd) Usage() string {
	return `notes read

  Displays every note in the database, in the order they were created.
`
}

func (*readCmd) SetFlags(_ *flag.FlagSet) {}

func (*readCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	all, sync, err := openLedger().ReadAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	reportSync(sync)
	if sync.Empty {
		fmt.Println("Can't show any notes because the database is empty")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Section("All of your notes", all))
	return subcommands.ExitSuccess
}

// --- Find Command ---

type findCmd struct {
	date string
	cat  int
	amt  string
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "find notes by date, category or amount" }
func (*findCmd) Usage() string {
	return `notes find [-date <YYYY-MM-DD>] [-cat <1|2>] [-amt <amount>]

  Finds every note matching all the given values exactly. At least one value
  is required. An amount matches regardless of its sign, so -amt 34.69 finds
  incomes of 34.69 and wastes of -34.69 alike.
`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Note date (YYYY-MM-DD)")
	f.IntVar(&c.cat, "cat", 0, "Category ordinal: 1 = waste, 2 = income")
	f.StringVar(&c.amt, "amt", "", "Positive amount of money")
}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" && c.cat == 0 && c.amt == "" {
		fmt.Fprintln(os.Stderr, "You need to add at least one argument to filter the notes")
		f.Usage()
		return subcommands.ExitUsageError
	}

	var criteria notes.Criteria
	if c.date != "" {
		day, err := notes.ParseDate(c.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		criteria.Date = &day
	}
	if c.cat != 0 {
		category, err := parseCategoryFlag(c.cat)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		criteria.Category = &category
	}
	if c.amt != "" {
		amount, err := parseAmountFlag(c.amt)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		criteria.Amount = &amount
	}

	matches, sync, err := openLedger().Find(criteria)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	reportSync(sync)
	if len(matches) == 0 {
		fmt.Println("No matches in your search")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Section("Search result", matches))
	return subcommands.ExitSuccess
}

// --- Balance Command ---

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the current amount of money" }
func (*balanceCmd) Usage() string {
	return `notes balance

  Displays the signed sum of all note amounts, with two decimals.
`
}

func (*balanceCmd) SetFlags(_ *flag.FlagSet) {}

func (*balanceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	total, err := openLedger().Balance()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Balance(total))
	return subcommands.ExitSuccess
}
