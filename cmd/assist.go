package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/mverdier/bankroll/agent"
)

type assistCmd struct {
	ledger string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the bankroll coach" }
func (*assistCmd) Usage() string {
	return `bkr assist [<prompt>]

  Starts an interactive session with the AI bankroll coach. The coach
  can read the ledger's summaries, stakes breakdown and bankroll curve
  to answer questions about the results.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to discuss. Defaults to the only ledger if one exists.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	l, err := DecodeLedger(c.ledger)
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return errorf("Error initializing Gemini's client: %v", err)
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewCoach(l))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		return errorf("Agent failed: %v", err)
	}
	return subcommands.ExitSuccess
}
