package renderer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
)

// DefaultMaxRows is the default number of value rows in a run report.
const DefaultMaxRows = 24

// RunView is a Run formatted for reports.
type RunView struct {
	ID, Label     string
	Strategy      string
	Range         string
	Initial       string
	TaxRate       string
	InflationRate string
	Condition     string
	Scenario      string
	Seed          uint64
	Allocation    []WeightRow

	Degenerate bool
	Terminal   string
	Return     string
	Gains      string
	Tax        string
	FlatDays   int

	Values []ValueRow
}

type WeightRow struct{ Asset, Weight string }

type ValueRow struct{ Date, Value string }

// NewRunView formats run in currency cur, with at most maxRows value rows
// (DefaultMaxRows if maxRows <= 0). The first and last values are always listed.
func NewRunView(run *simfolio.Run, cur string, maxRows int) *RunView {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	p := run.Params
	v := &RunView{
		ID:            run.ID.String(),
		Label:         run.Label(),
		Strategy:      p.Strategy,
		Range:         date.NewRange(p.From, p.To).String(),
		Initial:       simfolio.M(p.InitialInvestment, cur).String(),
		TaxRate:       simfolio.Fraction(p.TaxRate).String(),
		InflationRate: simfolio.Fraction(p.InflationRate).String(),
		Condition:     conditionLabel(p.Condition, p.ConditionWindow),
		Scenario:      scenarioLabel(p.Scenario),
		Seed:          p.Seed,
		Degenerate:    run.Degenerate,
		Terminal:      simfolio.M(run.Terminal, cur).String(),
		Gains:         simfolio.M(run.Gains, cur).String(),
		Tax:           simfolio.M(run.Tax, cur).String(),
		FlatDays:      run.FlatDays,
	}
	if v.Strategy == "" {
		v.Strategy = "custom"
	}
	if p.InitialInvestment != 0 {
		v.Return = simfolio.Fraction(run.Terminal/p.InitialInvestment - 1).SignedString()
	}

	assets := make([]simfolio.Asset, 0, len(p.Allocation))
	for a := range p.Allocation {
		assets = append(assets, a)
	}
	slices.Sort(assets)
	for _, a := range assets {
		v.Allocation = append(v.Allocation, WeightRow{string(a), simfolio.Fraction(p.Allocation[a]).String()})
	}

	for _, i := range sample(run.Values.Len(), maxRows) {
		on, value := run.Values.At(i)
		v.Values = append(v.Values, ValueRow{on.String(), simfolio.M(value, cur).String()})
	}
	return v
}

// sample returns at most max evenly spread indexes in [0, n), including the first and the last.
func sample(n, max int) []int {
	if n <= max {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if max < 2 {
		return []int{n - 1}
	}
	idx := make([]int, max)
	for i := range idx {
		idx[i] = i * (n - 1) / (max - 1)
	}
	return idx
}

func conditionLabel(c simfolio.MarketCondition, w *date.Range) string {
	if c == simfolio.NoCondition || w == nil {
		return simfolio.NoCondition.String()
	}
	return fmt.Sprintf("%s over %s", c, w)
}

func scenarioLabel(s simfolio.Scenario) string {
	if s.Window == nil {
		return "None"
	}
	name := strings.TrimSpace(s.Name)
	if name == "" {
		name = "Custom"
	}
	return fmt.Sprintf("%s ×%g over %s", name, s.Impact, s.Window)
}
