package cmd

import (
	"flag"
	"strings"
	"testing"

	"github.com/etnz/simfolio/config"
	"github.com/etnz/simfolio/date"
)

func parse(t *testing.T, args ...string) *simulateFlags {
	t.Helper()
	c := &simulateFlags{}
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error: %v", args, err)
	}
	return c
}

func TestSimulateFlagsDefaults(t *testing.T) {
	cfg := config.Default()
	r, err := parse(t).request(cfg)
	if err != nil {
		t.Fatalf("request() error: %v", err)
	}
	if r.From != nil || r.TaxRate != nil || r.ConditionWindow != nil || r.Seed != nil {
		t.Errorf("request() = %+v want unset fields", r)
	}
	p, err := cfg.Params(r)
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	if p.From != config.DefaultFrom || p.TaxRate != config.DefaultTaxRate {
		t.Errorf("Params() = %+v want the configured defaults", p)
	}
}

func TestSimulateFlags(t *testing.T) {
	cfg := config.Default()
	c := parse(t,
		"-from", "2020-01-02", "-tax", "0", "-investment", "500",
		"-condition", "bear", "-condition-to", "2021-03-31",
		"-scenario", "Growth", "-impact", "1.3", "-seed", "7",
	)
	r, err := c.request(cfg)
	if err != nil {
		t.Fatalf("request() error: %v", err)
	}
	p, err := cfg.Params(r)
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	if p.From != date.New(2020, 1, 2) || p.TaxRate != 0 || p.InitialInvestment != 500 || p.Seed != 7 {
		t.Errorf("Params() = %+v", p)
	}
	// the window keeps the configured start.
	if want := date.NewRange(date.New(2021, 1, 1), date.New(2021, 3, 31)); *p.ConditionWindow != want {
		t.Errorf("condition window = %v want %v", p.ConditionWindow, want)
	}
	if p.Scenario.Name != "Growth" || p.Scenario.Impact != 1.3 {
		t.Errorf("scenario = %+v want Growth ×1.3", p.Scenario)
	}
}

func TestSimulateFlagsErrors(t *testing.T) {
	c := &simulateFlags{}
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse([]string{"-from", "yesterday"}); err == nil {
		t.Errorf("Parse(-from yesterday) error = nil want an error")
	}
	if _, err := parse(t, "-seed", "-1").request(config.Default()); err == nil {
		t.Errorf("request(-seed -1) error = nil want an error")
	}
}

func TestCompletion(t *testing.T) {
	root := Completion()
	for _, name := range []string{"simulate", "metrics", "strategies", "assets", "serve"} {
		if _, ok := root.Sub[name]; !ok {
			t.Errorf("Completion() has no %q command", name)
		}
	}
	sim := root.Sub["simulate"]
	for _, f := range []string{"from", "strategy", "condition", "scenario-from", "impact", "chart"} {
		if _, ok := sim.Flags[f]; !ok {
			t.Errorf("Completion() simulate has no -%s flag", f)
		}
	}
	got := sim.Flags["strategy"].Predict("")
	if len(got) != 3 {
		t.Errorf("strategy predictions = %v want the 3 configured strategies", got)
	}
}

func TestManual(t *testing.T) {
	testCases := []struct {
		args      []string
		wantTitle string
		wantErr   bool
	}{
		{nil, "# sim", false},
		{[]string{" Overlays "}, "# ", false},
		{[]string{"*"}, "# ", false},
		{[]string{"rebalancing"}, "", true},
	}
	for _, tc := range testCases {
		got, err := manual(tc.args)
		if (err != nil) != tc.wantErr {
			t.Errorf("manual(%q) error = %v want error %v", tc.args, err, tc.wantErr)
			continue
		}
		if !strings.HasPrefix(got, tc.wantTitle) {
			t.Errorf("manual(%q) = %.40q... want a %q title", tc.args, got, tc.wantTitle)
		}
	}
}
