package simfolio

import (
	"math"
	"testing"

	"github.com/etnz/simfolio/date"
)

var nan = math.NaN()

// approx reports whether a and b are equal up to 1e-9.
func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// singleAsset returns a return series of one asset "X", starting on day with
// an undefined return, followed by the given returns on the next business days.
func singleAsset(t *testing.T, day date.Date, returns ...float64) *ReturnSeries {
	t.Helper()
	days := []date.Date{day}
	rows := [][]float64{{nan}}
	on := day
	for _, r := range returns {
		on = on.Add(1).NextBusinessDay()
		days = append(days, on)
		rows = append(rows, []float64{r})
	}
	s, err := NewReturnSeries([]Asset{"X"}, days, rows)
	if err != nil {
		t.Fatalf("NewReturnSeries() error: %v", err)
	}
	return s
}

// values returns the run values as a slice.
func values(r *Run) []float64 { return r.Values.Series() }

func approxSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !approx(a[i], b[i]) {
			return false
		}
	}
	return true
}
