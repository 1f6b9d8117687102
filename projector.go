package simfolio

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/simfolio/date"
	"github.com/rs/zerolog"
)

// ErrMissingWeight is returned when a return row holds an asset that has no weight in the Allocation.
var ErrMissingWeight = errors.New("missing weight")

// MissingWeightError reports the Asset that has no weight in the Allocation.
type MissingWeightError struct {
	Asset Asset
}

func (e *MissingWeightError) Error() string {
	return fmt.Sprintf("%v for asset %q", ErrMissingWeight, e.Asset)
}

func (e *MissingWeightError) Unwrap() error { return ErrMissingWeight }

// Project returns the portfolio return of a single day: the dot product of
// the weights and the returns, where returns[j] is the return of assets[j].
//
// Every asset must have a weight.
func (a Allocation) Project(assets []Asset, returns []float64) (float64, error) {
	var r float64
	for j, asset := range assets {
		w, ok := a[asset]
		if !ok {
			return math.NaN(), &MissingWeightError{Asset: asset}
		}
		r += w * returns[j]
	}
	return r, nil
}

// PortfolioReturns projects every row of the return series into a single
// portfolio return. Undefined rows project to NaN.
func PortfolioReturns(returns *ReturnSeries, alloc Allocation, log *zerolog.Logger) (*date.History[float64], error) {
	log = orNop(log)
	assets := returns.Assets()
	h := date.NewHistory[float64](returns.Len())
	first := true
	for i := range returns.Len() {
		on, row := returns.At(i)
		r, err := alloc.Project(assets, row)
		if err != nil {
			return nil, &DayError{Date: on, Err: err}
		}
		if first && !math.IsNaN(r) {
			first = false
			log.Debug().Stringer("date", on).Float64("return", r).Msg("first portfolio return")
		}
		h.Append(on, r)
	}
	return h, nil
}

// DayError reports the day on which a simulation failed.
type DayError struct {
	Date date.Date
	Err  error
}

func (e *DayError) Error() string { return fmt.Sprintf("on %s: %v", e.Date, e.Err) }

func (e *DayError) Unwrap() error { return e.Err }

var nop = zerolog.Nop()

// orNop returns log, or a disabled logger if log is nil.
func orNop(log *zerolog.Logger) *zerolog.Logger {
	if log == nil {
		return &nop
	}
	return log
}
