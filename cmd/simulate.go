package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/simfolio/renderer"
	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	simulateFlags
	chart string
	rows  int
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "simulate a portfolio under a market condition and a scenario"
}
func (*simulateCmd) Usage() string {
	return `sim simulate [-from <date>] [-to <date>] [-strategy <name>] [-condition <name>] [-scenario <name>] [-chart <file.png>] ...

  Fetches historical prices of the universe, simulates the strategy day by
  day with the market condition and scenario overlays, then applies
  inflation and capital gains tax to the final value.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.simulateFlags.SetFlags(f)
	f.StringVar(&c.chart, "chart", "", "Write a PNG chart of the portfolio value to this file.")
	f.IntVar(&c.rows, "rows", renderer.DefaultMaxRows, "Maximum number of rows in the value table.")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}
	req, err := c.request(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := cfg.Params(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in simulation parameters: %v\n", err)
		return subcommands.ExitUsageError
	}

	sess, err := openSession(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}
	run, err := sess.Simulate(ctx, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error simulating: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderRun(renderer.NewRunView(run, cfg.Defaults.Currency, c.rows)))

	if c.chart != "" {
		png, err := renderer.Chart(run)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.chart, png, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing chart %q: %v\n", c.chart, err)
			return subcommands.ExitFailure
		}
		log.Info().Str("file", c.chart).Msg("chart written")
	}
	return subcommands.ExitSuccess
}
