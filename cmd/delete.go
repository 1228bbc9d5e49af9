package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	ledger string
	id     string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a session by id" }
func (*deleteCmd) Usage() string {
	return `bkr delete -id <id>

  Deletes the session with the given id. Deleting an unknown id changes
  nothing.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to delete from. Defaults to the only ledger if one exists.")
	f.StringVar(&c.id, "id", "", "Id of the session to delete")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	l, err := DecodeLedger(c.ledger)
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	if l.Delete(c.id) {
		fmt.Printf("Deleted session %s\n", c.id)
	} else {
		fmt.Printf("No session with id %s, nothing deleted.\n", c.id)
	}
	return subcommands.ExitSuccess
}
