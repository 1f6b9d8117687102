package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/config"
	"github.com/etnz/simfolio/date"
	"github.com/etnz/simfolio/renderer"
	"github.com/google/subcommands"
)

// metricsCmd holds the flags for the 'metrics' subcommand.
type metricsCmd struct {
	rangeFlags
	riskFree optFloat
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "yearly performance metrics of a strategy" }
func (*metricsCmd) Usage() string {
	return `sim metrics [-from <date>] [-to <date>] [-strategy <name>] [-risk-free <rate>]

  Computes the annual returns of the strategy, without overlays, their mean
  and standard deviation, and the Sharpe ratio.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.Var(&c.riskFree, "risk-free", "Annual risk free rate, as a fraction. Defaults to the configured rate.")
}

func (c *metricsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}
	// metrics use the range and strategy of a plain simulation.
	p, err := cfg.Params(config.Request{From: c.from.v, To: c.to.v, Strategy: c.strategy})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in parameters: %v\n", err)
		return subcommands.ExitUsageError
	}
	riskFree := *cfg.Defaults.RiskFreeRate
	if c.riskFree.v != nil {
		riskFree = *c.riskFree.v
	}

	sess, err := openSession(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}
	r := date.NewRange(p.From, p.To)
	m, err := sess.Performance(ctx, p.Allocation, r, riskFree)
	if err != nil && !errors.Is(err, simfolio.ErrMetricsUndefined) {
		fmt.Fprintf(os.Stderr, "Error computing metrics: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderMetrics(renderer.NewMetricsView(p.Strategy, r, m, err)))
	return subcommands.ExitSuccess
}
