package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mverdier/bankroll"
)

type fmtCmd struct {
	ledger string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `bkr fmt [-l <ledger_name>]

  Rewrites the ledger file in a canonical form: sessions sanitized,
  sorted by date, and indented. By default it formats all ledgers
  in-place. Use -l to format a single one.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to format. Formats all by default.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var ledgers []*bankroll.Ledger
	if c.ledger != "" {
		l, err := DecodeLedger(c.ledger)
		if err != nil {
			return errorf("Error loading ledger: %v", err)
		}
		ledgers = append(ledgers, l)
	} else {
		var err error
		ledgers, err = bankroll.FindLedgers(*ledgerDir)
		if err != nil {
			return errorf("Error loading ledgers: %v", err)
		}
	}

	if len(ledgers) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no ledgers found to format.")
		return subcommands.ExitSuccess
	}

	for _, l := range ledgers {
		l.Normalize()
		fmt.Fprintf(os.Stderr, "Formatted ledger %q (%d sessions).\n", l.Name(), l.Len())
	}
	return subcommands.ExitSuccess
}
