package cmd

import (
	"flag"
	"strconv"

	"github.com/etnz/simfolio/config"
	"github.com/etnz/simfolio/date"
)

// optFloat is a float flag that knows whether it was set.
type optFloat struct{ v *float64 }

func (o *optFloat) String() string {
	if o == nil || o.v == nil {
		return ""
	}
	return strconv.FormatFloat(*o.v, 'g', -1, 64)
}

func (o *optFloat) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	o.v = &f
	return nil
}

// optDate is a date flag that knows whether it was set.
type optDate struct{ v *date.Date }

func (o *optDate) String() string {
	if o == nil || o.v == nil {
		return ""
	}
	return o.v.String()
}

func (o *optDate) Set(s string) error {
	d, err := date.Parse(s)
	if err != nil {
		return err
	}
	o.v = &d
	return nil
}

// rangeFlags are the flags selecting a date range and a strategy.
type rangeFlags struct {
	from, to optDate
	strategy string
}

func (c *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.Var(&c.from, "from", "Start date of the simulation (YYYY-MM-DD). Defaults to the configured date.")
	f.Var(&c.to, "to", "End date of the simulation (YYYY-MM-DD). Defaults to the configured date.")
	f.StringVar(&c.strategy, "strategy", "", "Allocation strategy. Defaults to the configured strategy.")
}

// simulateFlags are the flags of a simulation request.
type simulateFlags struct {
	rangeFlags
	tax, inflation, investment optFloat
	condition                  string
	conditionFrom, conditionTo optDate
	scenario                   string
	impact                     optFloat
	scenarioFrom, scenarioTo   optDate
	seed                       string
}

func (c *simulateFlags) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.Var(&c.tax, "tax", "Capital gains tax rate, as a fraction.")
	f.Var(&c.inflation, "inflation", "Inflation rate applied to the final value, as a fraction.")
	f.Var(&c.investment, "investment", "Initial investment.")
	f.StringVar(&c.condition, "condition", "None", "Market condition: None, Bull, Bear or Volatile.")
	f.Var(&c.conditionFrom, "condition-from", "Start date of the market condition.")
	f.Var(&c.conditionTo, "condition-to", "End date of the market condition.")
	f.StringVar(&c.scenario, "scenario", "None", "Scenario preset name (e.g. \"Market Crash\"), or a custom name with -impact.")
	f.Var(&c.impact, "impact", "Daily return multiplier of the scenario. Overrides the preset.")
	f.Var(&c.scenarioFrom, "scenario-from", "Start date of the scenario.")
	f.Var(&c.scenarioTo, "scenario-to", "End date of the scenario.")
	f.StringVar(&c.seed, "seed", "", "Seed of the Volatile condition. Defaults to a random seed.")
}

// request builds the simulation request, unset flags take the configured defaults.
func (c *simulateFlags) request(cfg *config.Config) (config.Request, error) {
	r := config.Request{
		From:              c.from.v,
		To:                c.to.v,
		InitialInvestment: c.investment.v,
		TaxRate:           c.tax.v,
		InflationRate:     c.inflation.v,
		Strategy:          c.strategy,
		Condition:         c.condition,
		ConditionWindow:   window(c.conditionFrom, c.conditionTo, cfg.Defaults.ConditionWindow),
		Scenario:          c.scenario,
		Impact:            c.impact.v,
		ScenarioWindow:    window(c.scenarioFrom, c.scenarioTo, cfg.Defaults.ScenarioWindow),
	}
	if c.seed != "" {
		seed, err := strconv.ParseUint(c.seed, 10, 64)
		if err != nil {
			return r, err
		}
		r.Seed = &seed
	}
	return r, nil
}

// window returns the window bounded by from and to, each defaulting to def bounds. It is nil if no bound is set.
func window(from, to optDate, def *date.Range) *date.Range {
	if from.v == nil && to.v == nil {
		return nil
	}
	var w date.Range
	if def != nil {
		w = *def
	}
	if from.v != nil {
		w.From = *from.v
	}
	if to.v != nil {
		w.To = *to.v
	}
	return &w
}
