package simfolio

import (
	"math"
	"testing"
)

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(10000, "USD"), "$10,000.00"},
		{M(9450.004, "USD"), "$9,450.00"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%v.String() = %q want %q", tc.m.value, got, tc.want)
		}
	}
	if got := M(0.001, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString() = %q want %q", got, "-")
	}
	if got := M(10, "USD").SignedString(); got != "+$10.00" {
		t.Errorf("SignedString() = %q want %q", got, "+$10.00")
	}
}

func TestMoneyUndefined(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m := M(v, "USD")
		if got := m.String(); got != "n/a" {
			t.Errorf("M(%v).String() = %q want %q", v, got, "n/a")
		}
		if got := m.SignedString(); got != "n/a" {
			t.Errorf("M(%v).SignedString() = %q want %q", v, got, "n/a")
		}
		if got := M(10, "USD").Sub(m).String(); got != "n/a" {
			t.Errorf("M(10).Sub(M(%v)) = %q want %q", v, got, "n/a")
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Fraction(0.125).String(); got != "12.50%" {
		t.Errorf("Fraction(0.125).String() = %q want %q", got, "12.50%")
	}
	if got := Percent(math.NaN()).String(); got != "n/a" {
		t.Errorf("Percent(NaN).String() = %q want %q", got, "n/a")
	}
	if got := Fraction(-0.02).SignedString(); got != "-2.00%" {
		t.Errorf("SignedString() = %q want %q", got, "-2.00%")
	}
}
