package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mverdier/bankroll"
	"github.com/mverdier/bankroll/renderer"
)

type stakesCmd struct {
	ledger string
	filter string
}

func (*stakesCmd) Name() string     { return "stakes" }
func (*stakesCmd) Synopsis() string { return "profit broken down by stake" }
func (*stakesCmd) Usage() string {
	return `bkr stakes [-t <all|cash|tournament>]

  Groups sessions by their stake label and prints the session count and
  total profit per stake, in the order stakes first appear.
`
}

func (c *stakesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to read. Defaults to the only ledger if one exists.")
	f.StringVar(&c.filter, "t", "all", "Session type filter: all, cash or tournament")
}

func (c *stakesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := bankroll.ParseTypeFilter(c.filter)
	if err != nil {
		return errorf("Error: %v", err)
	}

	l, err := DecodeLedger(c.ledger)
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	groups := bankroll.StakeBreakdown(view(l, filter))
	printMarkdown(renderer.StakesMarkdown(groups))
	return subcommands.ExitSuccess
}
