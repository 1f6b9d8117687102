package simfolio

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/etnz/simfolio/date"
	"gonum.org/v1/gonum/stat/distuv"
)

// MarketCondition is a market regime overriding daily returns.
type MarketCondition int

const (
	NoCondition MarketCondition = iota
	Bull
	Bear
	Volatile
)

// Multipliers applied to the daily return by each MarketCondition.
const (
	BullMultiplier    = 1.55
	BearMultiplier    = 0.95
	VolatileMean      = 1.0
	VolatileDeviation = 0.05
)

// MarketConditions lists every condition, in display order.
var MarketConditions = []MarketCondition{NoCondition, Bull, Bear, Volatile}

func (c MarketCondition) String() string {
	switch c {
	case NoCondition:
		return "None"
	case Bull:
		return "Bull"
	case Bear:
		return "Bear"
	case Volatile:
		return "Volatile"
	default:
		return fmt.Sprintf("MarketCondition(%d)", int(c))
	}
}

// ParseMarketCondition parses a condition name, case insensitive. The empty string is NoCondition.
func ParseMarketCondition(s string) (MarketCondition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoCondition, nil
	case "bull":
		return Bull, nil
	case "bear":
		return Bear, nil
	case "volatile":
		return Volatile, nil
	default:
		return NoCondition, fmt.Errorf("unknown market condition %q, want one of None, Bull, Bear, Volatile", s)
	}
}

func (c MarketCondition) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *MarketCondition) UnmarshalText(text []byte) error {
	parsed, err := ParseMarketCondition(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Scenario is a named stress override: within its window, the daily return is multiplied by Impact.
//
// The name is a label only.
type Scenario struct {
	Name   string      `json:"name,omitempty"`
	Impact float64     `json:"impact"`
	Window *date.Range `json:"window,omitempty"`
}

// Overlay adjusts daily returns with a market condition and a scenario, each gated by its own window.
type Overlay struct {
	Condition       MarketCondition
	ConditionWindow *date.Range
	Scenario        Scenario

	volatile distuv.Normal
}

// NewOverlay returns an Overlay. src feeds the Volatile condition draws; it
// must be set when the condition is Volatile.
func NewOverlay(condition MarketCondition, window *date.Range, scenario Scenario, src rand.Source) *Overlay {
	return &Overlay{
		Condition:       condition,
		ConditionWindow: window,
		Scenario:        scenario,
		volatile:        distuv.Normal{Mu: VolatileMean, Sigma: VolatileDeviation, Src: src},
	}
}

// multiplier returns the condition multiplier. Volatile draws a fresh value on each call.
func (o *Overlay) multiplier() float64 {
	switch o.Condition {
	case Bull:
		return BullMultiplier
	case Bear:
		return BearMultiplier
	case Volatile:
		return o.volatile.Rand()
	default:
		return 1
	}
}

// Apply returns the return r of day on, adjusted by the condition then by the
// scenario, when their window contains on. Outside every window r is returned
// unchanged.
func (o *Overlay) Apply(on date.Date, r float64) float64 {
	if o.Condition != NoCondition && date.Active(o.ConditionWindow, on) {
		r *= o.multiplier()
	}
	if date.Active(o.Scenario.Window, on) {
		r *= o.Scenario.Impact
	}
	return r
}
