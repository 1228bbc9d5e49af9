package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/mverdier/bankroll"
)

type importCmd struct {
	ledger string
	file   string
	path   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import sessions from a JSON document" }
func (*importCmd) Usage() string {
	return `bkr import [-f <file>] [-path <jsonpath>]

  Reads a JSON document from the file, or stdin when no file is given,
  and imports every element of the session list it holds. Malformed
  entries are repaired field by field, never rejected. Use -path to
  point inside a larger document, e.g. '$.data.sessions'.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to import into. Defaults to the only ledger if one exists.")
	f.StringVar(&c.file, "f", "", "File to read. Reads stdin when empty.")
	f.StringVar(&c.path, "path", "$", "JSONPath to the session list inside the document")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.file != "" {
		file, err := os.Open(c.file)
		if err != nil {
			return errorf("Error opening %q: %v", c.file, err)
		}
		defer file.Close()
		r = file
	}

	l, err := DecodeLedger(c.ledger)
	if err != nil {
		return errorf("Error loading ledger: %v", err)
	}

	n, err := bankroll.ImportSessions(l, r, c.path)
	if err != nil {
		return errorf("Error importing sessions: %v", err)
	}

	fmt.Printf("Imported %d sessions into ledger %q.\n", n, l.Name())
	return subcommands.ExitSuccess
}
