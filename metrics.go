package simfolio

import (
	"errors"
	"math"

	"github.com/etnz/simfolio/date"
	"gonum.org/v1/gonum/stat"
)

// DefaultRiskFreeRate is the annual risk free rate used by the Sharpe ratio.
const DefaultRiskFreeRate = 0.01

// ErrMetricsUndefined is returned when annual returns do not vary enough to define a Sharpe ratio.
var ErrMetricsUndefined = errors.New("performance metrics undefined: need at least two years of non constant annual returns")

// YearReturn is the compounded return of a calendar year.
type YearReturn struct {
	Year   int     `json:"year"`
	Return float64 `json:"return"`
}

// Metrics summarize a return series on a yearly basis.
type Metrics struct {
	Years        []YearReturn `json:"years"`
	MeanReturn   float64      `json:"mean_return"`
	StdDev       float64      `json:"std_dev"` // sample standard deviation of annual returns
	Sharpe       float64      `json:"sharpe"`
	RiskFreeRate float64      `json:"risk_free_rate"`
}

// AnnualReturns compounds daily returns per calendar year: ∏(1+r) - 1.
//
// Undefined (NaN) returns are skipped. Every year from the first to the last
// one of the series is reported: a year without any defined return, or
// without any date at all, has a zero annual return.
func AnnualReturns(returns *date.History[float64]) []YearReturn {
	var years []YearReturn
	for on, r := range returns.Values() {
		if n := len(years); n == 0 {
			years = append(years, YearReturn{Year: on.Year(), Return: 1})
		}
		for years[len(years)-1].Year < on.Year() {
			years = append(years, YearReturn{Year: years[len(years)-1].Year + 1, Return: 1})
		}
		if !math.IsNaN(r) {
			years[len(years)-1].Return *= 1 + r
		}
	}
	for i := range years {
		years[i].Return--
	}
	return years
}

// Performance computes the mean and the sample standard deviation of the
// annual returns, and the Sharpe ratio (mean - riskFree) / stddev.
//
// When the standard deviation is zero or undefined (less than two years),
// Sharpe is NaN and ErrMetricsUndefined is returned along with the metrics.
func Performance(returns *date.History[float64], riskFree float64) (Metrics, error) {
	m := Metrics{
		Years:        AnnualReturns(returns),
		MeanReturn:   math.NaN(),
		StdDev:       math.NaN(),
		Sharpe:       math.NaN(),
		RiskFreeRate: riskFree,
	}
	annual := make([]float64, len(m.Years))
	for i, y := range m.Years {
		annual[i] = y.Return
	}
	if len(annual) > 0 {
		m.MeanReturn = stat.Mean(annual, nil)
	}
	if len(annual) < 2 {
		return m, ErrMetricsUndefined
	}
	m.StdDev = stat.StdDev(annual, nil)
	if m.StdDev == 0 || math.IsNaN(m.StdDev) {
		return m, ErrMetricsUndefined
	}
	m.Sharpe = (m.MeanReturn - riskFree) / m.StdDev
	return m, nil
}
