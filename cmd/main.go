// Package cmd implements the CLI application to manage a session ledger.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/mverdier/bankroll"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "sessions")
	c.Register(&editCmd{}, "sessions")
	c.Register(&deleteCmd{}, "sessions")

	c.Register(&logCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&stakesCmd{}, "reports")
	c.Register(&bankrollCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")
	c.Register(&exportCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the shared flags.

var ledgerDir = flag.String("ledger-dir", ".", "Path to the directory holding the ledger files")
var defaultCurrency = flag.String("currency", bankroll.DefaultCurrency, "Display currency for amounts (ISO 4217 code)")
var Verbose = flag.Bool("v", false, "Enable verbose logging")

// DecodeLedger loads the named ledger from the ledger directory. An empty
// name selects the only ledger, or an empty default one on first use.
func DecodeLedger(name string) (*bankroll.Ledger, error) {
	l, err := bankroll.FindLedger(*ledgerDir, name, *defaultCurrency)
	if err != nil {
		return nil, err
	}
	vlog("loaded ledger %q with %d sessions", l.Name(), l.Len())
	return l, nil
}

// view returns the sorted, filtered session list every report consumes.
func view(l *bankroll.Ledger, filter bankroll.TypeFilter) []bankroll.Session {
	return bankroll.FilterByType(bankroll.SortedView(l.ListAll()), filter)
}

// printMarkdown renders markdown for the terminal. When the renderer is
// unavailable the raw markdown is printed instead: presentation failures
// must never get in the way of the data.
func printMarkdown(source string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(110))
	if err == nil {
		if out, rerr := r.Render(source); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	vlog("markdown renderer unavailable: %v", err)
	fmt.Println(source)
}

func vlog(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

// errorf reports a command error on stderr.
func errorf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
