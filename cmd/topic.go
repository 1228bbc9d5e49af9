package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mverdier/bankroll/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `bkr topic [<topic>...]

  Shows documentation for the given topics, or the readme when no topic
  is given. Use 'bkr topic "*"' to print everything.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return errorf("Error reading doc: %v", err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
