package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mverdier/bankroll"
	"github.com/mverdier/bankroll/renderer"
)

type bankrollCmd struct {
	ledger string
	filter string
}

func (*bankrollCmd) Name() string     { return "bankroll" }
func (*bankrollCmd) Synopsis() string { return "running profit, session by session" }
func (*bankrollCmd) Usage() string {
	return `bkr bankroll [-t <all|cash|tournament>]

  Prints the cumulative profit after each session, in chronological
  order. The last row is the current bankroll movement to date.
`
}

func (c *bankrollCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to read. Defaults to the only ledger if one exists.")
	f.StringVar(&c.filter, "t", "all", "Session type filter: all, cash or tournament")
}

func (c *bankrollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := bankroll.ParseTypeFilter(c.filter)
	if err != nil {
		return errorf("Error: %v", err)
	}

	l, err := DecodeLedger(c.ledger)
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	points := bankroll.BankrollSeries(view(l, filter))
	printMarkdown(renderer.BankrollMarkdown(points))
	return subcommands.ExitSuccess
}
