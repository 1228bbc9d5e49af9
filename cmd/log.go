package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mverdier/bankroll"
	"github.com/mverdier/bankroll/renderer"
)

type logCmd struct {
	ledger string
	filter string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list recorded sessions, newest first" }
func (*logCmd) Usage() string {
	return `bkr log [-t <all|cash|tournament>]

  Prints the session log as a table, most recent session first.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to read. Defaults to the only ledger if one exists.")
	f.StringVar(&c.filter, "t", "all", "Session type filter: all, cash or tournament")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := bankroll.ParseTypeFilter(c.filter)
	if err != nil {
		return errorf("Error: %v", err)
	}

	l, err := DecodeLedger(c.ledger)
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	printMarkdown(renderer.SessionsMarkdown(view(l, filter)))
	return subcommands.ExitSuccess
}
