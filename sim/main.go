// Command sim simulates investment portfolios under market conditions and stress scenarios.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/simfolio/cmd"
	"github.com/google/subcommands"
)

func main() {
	// answers shell completion requests, when run as a completion script.
	cmd.Completion().Complete("sim")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
