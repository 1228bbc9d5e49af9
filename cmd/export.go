package cmd

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/mverdier/bankroll"
)

type exportCmd struct {
	ledger string
	output string
	filter string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export sessions as CSV" }
func (*exportCmd) Usage() string {
	return `bkr export [-o <file>] [-t <all|cash|tournament>]

  Writes the sessions as CSV in chronological order, to the file or to
  stdout when no file is given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to export. Defaults to the only ledger if one exists.")
	f.StringVar(&c.output, "o", "", "File to write. Writes to stdout when empty.")
	f.StringVar(&c.filter, "t", "all", "Session type filter: all, cash or tournament")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := bankroll.ParseTypeFilter(c.filter)
	if err != nil {
		return errorf("Error: %v", err)
	}

	l, err := DecodeLedger(c.ledger)
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return errorf("Error creating %q: %v", c.output, err)
		}
		defer file.Close()
		w = file
	}

	if err := bankroll.ExportCSV(w, view(l, filter)); err != nil {
		return errorf("Error exporting sessions: %v", err)
	}
	return subcommands.ExitSuccess
}
