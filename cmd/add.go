package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mverdier/bankroll"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	ledger   string
	date     string
	typ      string
	location string
	stake    string
	buyIn    string
	cashOut  string
	notes    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new session" }
func (*addCmd) Usage() string {
	return `bkr add [-d <date>] [-t <type>] [-location <where>] [-stake <label>] -b <buy-in> -c <cash-out> [-n <notes>]

  Records a new session in the ledger. The profit is derived from the
  cash-out minus the buy-in.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to record into. Defaults to the only ledger if one exists.")
	f.StringVar(&c.date, "d", bankroll.Today(), "Session date (YYYY-MM-DD)")
	f.StringVar(&c.typ, "t", "cash", "Session type (cash, tournament)")
	f.StringVar(&c.location, "location", "", "Where the session was played")
	f.StringVar(&c.stake, "stake", "", "Stake or buy-in label, e.g. 1/2 or 50 MTT")
	f.StringVar(&c.buyIn, "b", "0", "Buy-in amount")
	f.StringVar(&c.cashOut, "c", "0", "Cash-out or payout amount")
	f.StringVar(&c.notes, "n", "", "Free-form notes")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input, status := c.input(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	l, err := DecodeLedger(c.ledger)
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	s := l.Create(input)
	fmt.Printf("Recorded session %s on %s, P/L %s\n", s.ID, s.Date, s.Profit.SignedString())
	return subcommands.ExitSuccess
}

// input parses the flag values into the caller-supplied session fields.
func (c *addCmd) input(f *flag.FlagSet) (bankroll.SessionInput, subcommands.ExitStatus) {
	typ, err := bankroll.ParseType(c.typ)
	if err != nil {
		errorf("Error: %v", err)
		f.Usage()
		return bankroll.SessionInput{}, subcommands.ExitUsageError
	}
	buyIn, err := bankroll.ParseAmount(c.buyIn, *defaultCurrency)
	if err != nil {
		errorf("Error parsing buy-in %q: %v", c.buyIn, err)
		return bankroll.SessionInput{}, subcommands.ExitUsageError
	}
	cashOut, err := bankroll.ParseAmount(c.cashOut, *defaultCurrency)
	if err != nil {
		errorf("Error parsing cash-out %q: %v", c.cashOut, err)
		return bankroll.SessionInput{}, subcommands.ExitUsageError
	}

	return bankroll.SessionInput{
		Date:     c.date,
		Type:     typ,
		Location: c.location,
		Stake:    c.stake,
		BuyIn:    buyIn,
		CashOut:  cashOut,
		Notes:    c.notes,
	}, subcommands.ExitSuccess
}
