package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mverdier/bankroll"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	ledger   string
	id       string
	date     string
	typ      string
	location string
	stake    string
	buyIn    string
	cashOut  string
	notes    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing session in place" }
func (*editCmd) Usage() string {
	return `bkr edit -id <id> [-d <date>] [-t <type>] [-location <where>] [-stake <label>] [-b <buy-in>] [-c <cash-out>] [-n <notes>]

  Edits the session with the given id. Flags that are not set keep the
  session's current values; the profit is derived again from the result.
  There is no history: an edit overwrites in place.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to edit. Defaults to the only ledger if one exists.")
	f.StringVar(&c.id, "id", "", "Id of the session to edit (see 'bkr export')")
	f.StringVar(&c.date, "d", "", "Session date (YYYY-MM-DD)")
	f.StringVar(&c.typ, "t", "", "Session type (cash, tournament)")
	f.StringVar(&c.location, "location", "", "Where the session was played")
	f.StringVar(&c.stake, "stake", "", "Stake or buy-in label")
	f.StringVar(&c.buyIn, "b", "", "Buy-in amount")
	f.StringVar(&c.cashOut, "c", "", "Cash-out or payout amount")
	f.StringVar(&c.notes, "n", "", "Free-form notes")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	l, err := DecodeLedger(c.ledger)
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	editor := bankroll.NewEditor(l)
	seed, ok := editor.StartEdit(c.id)
	if !ok {
		return errorf("No session with id %q, nothing to edit.", c.id)
	}

	// flags that were set on the command line override the seed values
	var status subcommands.ExitStatus
	f.Visit(func(fl *flag.Flag) {
		if status != 0 {
			return
		}
		switch fl.Name {
		case "d":
			seed.Date = c.date
		case "t":
			typ, err := bankroll.ParseType(c.typ)
			if err != nil {
				status = errorf("Error: %v", err)
				return
			}
			seed.Type = typ
		case "location":
			seed.Location = c.location
		case "stake":
			seed.Stake = c.stake
		case "b":
			buyIn, err := bankroll.ParseAmount(c.buyIn, *defaultCurrency)
			if err != nil {
				status = errorf("Error parsing buy-in %q: %v", c.buyIn, err)
				return
			}
			seed.BuyIn = buyIn
		case "c":
			cashOut, err := bankroll.ParseAmount(c.cashOut, *defaultCurrency)
			if err != nil {
				status = errorf("Error parsing cash-out %q: %v", c.cashOut, err)
				return
			}
			seed.CashOut = cashOut
		case "n":
			seed.Notes = c.notes
		}
	})
	if status != 0 {
		editor.Cancel()
		return status
	}

	s := editor.Submit(seed)
	fmt.Printf("Updated session %s, P/L %s\n", s.ID, s.Profit.SignedString())
	return subcommands.ExitSuccess
}
