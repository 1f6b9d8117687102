package cmd

import (
	"flag"
	"io"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/config"
	"github.com/etnz/simfolio/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the application.
// Flags taking a strategy, a condition or a scenario predict the configured names.
func Completion() *complete.Command {
	cfg, err := loadConfig()
	if err != nil {
		cfg = config.Default()
	}
	strategies := make(predict.Set, 0, len(cfg.Strategies))
	for _, s := range cfg.Strategies {
		strategies = append(strategies, s.Name)
	}
	scenarios := predict.Set{"None"}
	for _, s := range cfg.Scenarios {
		scenarios = append(scenarios, s.Name)
	}
	conditions := make(predict.Set, 0, len(simfolio.MarketConditions))
	for _, c := range simfolio.MarketConditions {
		conditions = append(conditions, c.String())
	}
	known := map[string]complete.Predictor{
		"strategy":  strategies,
		"scenario":  scenarios,
		"condition": conditions,
		"chart":     predict.Files("*.png"),
		"list":      predict.Nothing,
	}

	root := &complete.Command{
		Sub: make(map[string]*complete.Command, len(Commands)),
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			p, ok := known[f.Name]
			if !ok {
				p = predict.Something
			}
			sub.Flags[f.Name] = p
		})
		root.Sub[c.Name()] = sub
	}
	if topics, err := docs.List(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "readme"))
	}
	return root
}
