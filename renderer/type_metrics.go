package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
)

// MetricsView is the yearly performance of a strategy formatted for reports.
type MetricsView struct {
	Strategy  string
	Range     string
	RiskFree  string
	Years     []YearRow
	Mean      string
	StdDev    string
	Sharpe    string
	Undefined bool
}

type YearRow struct {
	Year   int
	Return string
}

// NewMetricsView formats m, err is the error returned along with m by simfolio.Performance.
func NewMetricsView(strategy string, r date.Range, m simfolio.Metrics, err error) *MetricsView {
	v := &MetricsView{
		Strategy:  strategy,
		Range:     r.String(),
		RiskFree:  simfolio.Fraction(m.RiskFreeRate).String(),
		Mean:      simfolio.Fraction(m.MeanReturn).SignedString(),
		StdDev:    simfolio.Fraction(m.StdDev).String(),
		Sharpe:    "n/a",
		Undefined: errors.Is(err, simfolio.ErrMetricsUndefined),
	}
	if !math.IsNaN(m.Sharpe) {
		v.Sharpe = fmt.Sprintf("%.2f", m.Sharpe)
	}
	for _, y := range m.Years {
		v.Years = append(v.Years, YearRow{y.Year, simfolio.Fraction(y.Return).SignedString()})
	}
	return v
}
