package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/mverdier/bankroll/cmd"
)

func main() {
	// completion mode prints candidates and exits before anything else
	cmd.Complete()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	// an unknown subcommand may be an external bkr-<name> extension
	if args := flag.Args(); len(args) > 0 && !knows(commander, args[0]) {
		if ran, code := cmd.RunExtension(args[0], args[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func knows(cdr *subcommands.Commander, name string) bool {
	found := false
	cdr.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
