package config

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
)

// Request holds the parameters of a simulation as entered by a user, on the
// command line or through the dashboard. Unset fields take the configured defaults.
type Request struct {
	From              *date.Date  `json:"from,omitempty"`
	To                *date.Date  `json:"to,omitempty"`
	InitialInvestment *float64    `json:"initial_investment,omitempty"`
	TaxRate           *float64    `json:"tax_rate,omitempty"`
	InflationRate     *float64    `json:"inflation_rate,omitempty"`
	Strategy          string      `json:"strategy,omitempty"`
	Condition         string      `json:"condition,omitempty"`
	ConditionWindow   *date.Range `json:"condition_window,omitempty"`
	// Scenario is the name of a preset, or of a custom scenario when Impact is set.
	Scenario       string      `json:"scenario,omitempty"`
	Impact         *float64    `json:"impact,omitempty"`
	ScenarioWindow *date.Range `json:"scenario_window,omitempty"`
	Seed           *uint64     `json:"seed,omitempty"`
}

// Params resolves r into simulation parameters. An unset seed is drawn at random.
func (c *Config) Params(r Request) (simfolio.Params, error) {
	d := c.Defaults
	p := simfolio.Params{
		From:              or(r.From, d.From),
		To:                or(r.To, d.To),
		InitialInvestment: or(r.InitialInvestment, d.InitialInvestment),
		TaxRate:           or(r.TaxRate, *d.TaxRate),
		InflationRate:     or(r.InflationRate, *d.InflationRate),
		Strategy:          r.Strategy,
		Seed:              or(r.Seed, rand.Uint64()),
	}

	if p.Strategy == "" {
		p.Strategy = d.Strategy
	}
	strategies, err := c.AllocationStrategies()
	if err != nil {
		return p, err
	}
	if p.Allocation, err = strategies.Get(p.Strategy); err != nil {
		return p, err
	}

	if p.Condition, err = simfolio.ParseMarketCondition(r.Condition); err != nil {
		return p, err
	}
	if p.Condition != simfolio.NoCondition {
		p.ConditionWindow = window(r.ConditionWindow, d.ConditionWindow)
	}

	name := strings.TrimSpace(r.Scenario)
	if strings.EqualFold(name, "none") {
		name = ""
	}
	switch {
	case name == "" && r.Impact == nil:
		// no scenario
	case r.Impact != nil:
		if name == "" {
			name = "Custom"
		}
		p.Scenario = simfolio.Scenario{Name: name, Impact: *r.Impact}
	default:
		preset, err := c.Scenario(name)
		if err != nil {
			return p, err
		}
		p.Scenario = simfolio.Scenario{Name: preset.Name, Impact: preset.Impact}
	}
	if p.Scenario.Name != "" {
		p.Scenario.Window = window(r.ScenarioWindow, d.ScenarioWindow)
	}

	if p.InitialInvestment <= 0 {
		return p, fmt.Errorf("initial investment must be > 0, got %v", p.InitialInvestment)
	}
	return p, nil
}

func or[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// window returns a copy of w, or of def when w is nil.
func window(w, def *date.Range) *date.Range {
	if w == nil {
		w = def
	}
	if w == nil {
		return nil
	}
	c := *w
	return &c
}
