package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/simfolio/renderer"
	"github.com/google/subcommands"
)

type strategiesCmd struct{}

func (*strategiesCmd) Name() string     { return "strategies" }
func (*strategiesCmd) Synopsis() string { return "display the allocation of each strategy" }
func (*strategiesCmd) Usage() string {
	return `sim strategies

  Displays the weight of every asset in each configured strategy.
`
}

func (*strategiesCmd) SetFlags(f *flag.FlagSet) {}

func (*strategiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, _, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}
	u, err := cfg.AssetUniverse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s, err := cfg.AllocationStrategies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StrategiesMarkdown(u, s))
	return subcommands.ExitSuccess
}

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "describe the assets of the universe" }
func (*assetsCmd) Usage() string {
	return `sim assets

  Lists the tickers of the configured universe with their description.
`
}

func (*assetsCmd) SetFlags(f *flag.FlagSet) {}

func (*assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, _, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}
	u, err := cfg.AssetUniverse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AssetsMarkdown(u))
	return subcommands.ExitSuccess
}
