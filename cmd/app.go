// Package cmd implements the CLI application to manage the note ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/zizevskikh-dev/notes"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "notes")
	c.Register(&readCmd{}, "notes")
	c.Register(&updateCmd{}, "notes")
	c.Register(&deleteCmd{}, "notes")
	c.Register(&findCmd{}, "notes")
	c.Register(&clearCmd{}, "notes")

	c.Register(&balanceCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", envOr("NOTES_DB", "db.json"), "Path to the notes database file (JSON)")
var textFile = flag.String("text", envOr("NOTES_TEXT", "db.txt"), "Path to the human-readable mirror file")

var loadEnv sync.Once

// envOr returns the value of the environment variable, or the fallback when
// unset. An optional .env file in the working directory is loaded first.
func envOr(key, fallback string) string {
	loadEnv.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openLedger wires a ledger against the configured files.
func openLedger() *notes.Ledger {
	return notes.NewLedger(*dbFile, *textFile)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when styling is unavailable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// reportSync prints the file lifecycle notices for an operation.
func reportSync(s notes.Sync) {
	if s.Bootstrapped {
		fmt.Printf("Database %q has been created!\n", *dbFile)
	}
	switch s.Mirror {
	case notes.MirrorCreated, notes.MirrorUpdated, notes.MirrorDeleted:
		fmt.Printf("File %q has been %s!\n", *textFile, s.Mirror)
	}
}
