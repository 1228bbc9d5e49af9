package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mverdier/bankroll"
	"github.com/mverdier/bankroll/renderer"
)

type summaryCmd struct {
	ledger string
	filter string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "overall, last-7 and last-30 session results" }
func (*summaryCmd) Usage() string {
	return `bkr summary [-t <all|cash|tournament>]

  Prints the session count, total and average profit and return on
  investment, for all sessions and for the last 7 and 30 recorded ones.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to read. Defaults to the only ledger if one exists.")
	f.StringVar(&c.filter, "t", "all", "Session type filter: all, cash or tournament")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := bankroll.ParseTypeFilter(c.filter)
	if err != nil {
		return errorf("Error: %v", err)
	}

	l, err := DecodeLedger(c.ledger)
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	o := bankroll.NewOverview(view(l, filter), filter)
	printMarkdown(renderer.OverviewMarkdown(o))
	return subcommands.ExitSuccess
}
