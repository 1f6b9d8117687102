package config

import (
	"testing"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
)

func TestParamsDefaults(t *testing.T) {
	cfg := Default()
	p, err := cfg.Params(Request{})
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	if p.From != DefaultFrom || p.To != DefaultTo || p.InitialInvestment != 10000 || p.TaxRate != 0.15 || p.InflationRate != 0.02 {
		t.Errorf("Params() = %+v want the configured defaults", p)
	}
	if p.Strategy != "Balanced" || p.Allocation["AGG"] != 0.40 {
		t.Errorf("Params() strategy = %q %v want Balanced", p.Strategy, p.Allocation)
	}
	if p.Condition != simfolio.NoCondition || p.ConditionWindow != nil {
		t.Errorf("Params() condition = %v %v want none", p.Condition, p.ConditionWindow)
	}
	if p.Scenario.Window != nil {
		t.Errorf("Params() scenario = %+v want none", p.Scenario)
	}
}

func TestParamsOverrides(t *testing.T) {
	cfg := Default()
	from, tax, seed := date.New(2020, 1, 2), 0.3, uint64(42)
	w := date.NewRange(date.New(2020, 3, 1), date.New(2020, 3, 31))
	p, err := cfg.Params(Request{
		From:      &from,
		TaxRate:   &tax,
		Strategy:  "Aggressive",
		Condition: "volatile",
		Scenario:  "Market Crash",
		Seed:      &seed,
		// condition window defaults, scenario window is explicit.
		ScenarioWindow: &w,
	})
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	if p.From != from || p.TaxRate != tax || p.Seed != seed {
		t.Errorf("Params() = %+v", p)
	}
	if p.Condition != simfolio.Volatile || *p.ConditionWindow != DefaultConditionWindow {
		t.Errorf("Params() condition = %v over %v want Volatile over %v", p.Condition, p.ConditionWindow, DefaultConditionWindow)
	}
	if p.Scenario.Name != "Market Crash" || p.Scenario.Impact != 0.8 || *p.Scenario.Window != w {
		t.Errorf("Params() scenario = %+v", p.Scenario)
	}
}

func TestParamsCustomScenario(t *testing.T) {
	cfg := Default()
	impact := 0.5
	p, err := cfg.Params(Request{Scenario: "Black Swan", Impact: &impact})
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	if p.Scenario.Name != "Black Swan" || p.Scenario.Impact != 0.5 || *p.Scenario.Window != DefaultScenarioWindow {
		t.Errorf("Params() scenario = %+v", p.Scenario)
	}
}

func TestParamsErrors(t *testing.T) {
	cfg := Default()
	zero := 0.0
	testCases := []struct {
		name string
		r    Request
	}{
		{"unknown strategy", Request{Strategy: "YOLO"}},
		{"unknown condition", Request{Condition: "sideways"}},
		{"unknown scenario", Request{Scenario: "Apocalypse"}},
		{"zero investment", Request{InitialInvestment: &zero}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := cfg.Params(tc.r); err == nil {
				t.Errorf("Params(%+v) error = nil want an error", tc.r)
			}
		})
	}
}
