package simfolio

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, for display.
type Money struct {
	value     decimal.Decimal // as major unit value
	cur       string
	undefined bool // NaN or infinite source value
}

// M returns value in currency cur. A NaN or infinite value is undefined and
// prints as "n/a".
func M(value float64, cur string) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{cur: cur, undefined: true}
	}
	return Money{value: decimal.NewFromFloat(value), cur: cur}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted in its currency, rounded to the currency's minor unit.
func (m Money) String() string {
	if m.undefined {
		return "n/a"
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.undefined {
		return "n/a"
	}
	if m.value.Round(int32(m.currency().Fraction)).IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string { return m.cur }
func (m Money) Sub(n Money) Money {
	if m.cur != n.cur {
		panic("currency mismatch " + m.cur + "!=" + n.cur)
	}
	if m.undefined || n.undefined {
		return Money{cur: m.cur, undefined: true}
	}
	return Money{value: m.value.Sub(n.value), cur: m.cur}
}

// Percent is a percentage: 12.5 means 12.5%.
type Percent float64

// Fraction converts a fraction (0.125) into a Percent (12.5%).
func Fraction(f float64) Percent { return Percent(100 * f) }

func (p Percent) String() string {
	if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
		return "n/a"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
