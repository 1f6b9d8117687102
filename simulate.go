package simfolio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/etnz/simfolio/date"
	"github.com/rs/zerolog"
)

// Params are the inputs of a single simulation run.
type Params struct {
	From              date.Date       `json:"from"`
	To                date.Date       `json:"to"`
	InitialInvestment float64         `json:"initial_investment"`
	TaxRate           float64         `json:"tax_rate"`
	InflationRate     float64         `json:"inflation_rate"`
	Strategy          string          `json:"strategy,omitempty"` // label of the Allocation
	Allocation        Allocation      `json:"allocation"`
	Condition         MarketCondition `json:"condition"`
	ConditionWindow   *date.Range     `json:"condition_window,omitempty"`
	Scenario          Scenario        `json:"scenario"`
	// Seed feeds the random source of the Volatile condition.
	Seed uint64 `json:"seed"`

	Logger *zerolog.Logger `json:"-"`
}

// NewSource returns the deterministic random source for seed.
func NewSource(seed uint64) rand.Source { return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15) }

// Run is the outcome of a simulation.
//
// A Run is never modified once returned by Simulate, except for its identity,
// which is stamped once when it is stored in a session.
type Run struct {
	ID      RunID     `json:"id"`
	Created time.Time `json:"created"`
	Params  Params    `json:"params"`

	// Values holds one value per business day of the simulated range. The
	// last one is adjusted for inflation and tax.
	Values *date.History[float64] `json:"-"`

	Gains    float64 `json:"gains"`    // running capital gains, the tax base
	Tax      float64 `json:"tax"`      // tax amount deducted from the last value
	Terminal float64 `json:"terminal"` // adjusted last value
	// Degenerate is true when From is not before To, or the range holds no
	// business day: Values only holds the unadjusted seed.
	Degenerate bool `json:"degenerate,omitempty"`
	FlatDays   int  `json:"flat_days"` // business days without return data
}

// Label returns a human readable label of the run, based on its creation time.
func (r *Run) Label() string { return r.Created.Format(RunLabelFormat) }

// Simulate walks every business day in [p.From, p.To] and compounds the
// portfolio value with the projected, overlaid daily return.
//
// The first business day holds the initial investment. A day without return
// data, or with an undefined return for any asset, carries the previous value
// forward. Positive day-over-day changes accrue as capital gains. After the
// last day, the last value is reduced by inflation then by the tax on gains.
//
// When From is not before To, or the range holds no business day, the run is
// degenerate: a single seed value, without adjustment. A forward range with a
// single business day still gets the final adjustment. A return row holding an asset with no weight in the
// allocation aborts the run with a *DayError.
func Simulate(returns *ReturnSeries, p Params) (*Run, error) {
	log := orNop(p.Logger)
	days := date.NewRange(p.From, p.To).BusinessDayList()

	run := &Run{Params: p, Values: date.NewHistory[float64](max(len(days), 1))}
	if !p.From.Before(p.To) || len(days) == 0 {
		seedDay := p.From
		if len(days) > 0 {
			seedDay = days[0]
		}
		run.Values.Append(seedDay, p.InitialInvestment)
		run.Terminal = p.InitialInvestment
		run.Degenerate = true
		log.Debug().Stringer("from", p.From).Stringer("to", p.To).Int("business_days", len(days)).Msg("degenerate range")
		return run, nil
	}

	overlay := NewOverlay(p.Condition, p.ConditionWindow, p.Scenario, NewSource(p.Seed))
	assets := returns.Assets()

	previous := p.InitialInvestment
	var gains float64
	run.Values.Append(days[0], previous)
	first := true
	for _, on := range days[1:] {
		row, ok := returns.Row(on)
		if !ok || !defined(row) {
			log.Debug().Stringer("date", on).Bool("row", ok).Msg("no return data, carrying value forward")
			run.FlatDays++
			run.Values.Append(on, previous)
			continue
		}
		r, err := p.Allocation.Project(assets, row)
		if err != nil {
			return nil, &DayError{Date: on, Err: err}
		}
		if first {
			first = false
			log.Debug().Stringer("date", on).Float64("return", r).Msg("first portfolio return")
		}
		r = overlay.Apply(on, r)

		value := previous * (1 + r)
		gains += math.Max(0, value-previous)
		run.Values.Append(on, value)
		previous = value
	}

	final := previous * (1 - p.InflationRate)
	run.Tax = gains * p.TaxRate
	final -= run.Tax
	run.Values.SetLatest(final)
	run.Gains = gains
	run.Terminal = final

	log.Debug().
		Int("business_days", len(days)).
		Int("flat_days", run.FlatDays).
		Float64("gains", gains).
		Float64("tax", run.Tax).
		Float64("terminal", final).
		Msg("simulation complete")
	return run, nil
}
