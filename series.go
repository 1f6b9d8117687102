package simfolio

import (
	"fmt"
	"math"
	"slices"

	"github.com/etnz/simfolio/date"
)

// table is a chronological matrix of values, one column per asset.
// Undefined values are NaN.
type table struct {
	assets []Asset
	days   []date.Date
	rows   [][]float64
	index  map[date.Date]int
}

func newTable(assets []Asset, days []date.Date, rows [][]float64) (table, error) {
	if len(days) != len(rows) {
		return table{}, fmt.Errorf("got %d dates for %d rows", len(days), len(rows))
	}
	t := table{
		assets: slices.Clone(assets),
		days:   slices.Clone(days),
		rows:   make([][]float64, len(rows)),
		index:  make(map[date.Date]int, len(days)),
	}
	for i, on := range days {
		if i > 0 && !days[i-1].Before(on) {
			return table{}, fmt.Errorf("dates must be strictly increasing: %v then %v", days[i-1], on)
		}
		if len(rows[i]) != len(assets) {
			return table{}, fmt.Errorf("row %v has %d values for %d assets", on, len(rows[i]), len(assets))
		}
		t.rows[i] = slices.Clone(rows[i])
		t.index[on] = i
	}
	return t, nil
}

// Assets returns the column order.
func (t table) Assets() []Asset { return slices.Clone(t.assets) }

// Len returns the number of dates.
func (t table) Len() int { return len(t.days) }

// Days returns the dates, in chronological order.
func (t table) Days() []date.Date { return slices.Clone(t.days) }

// At returns the i-th date and its row. The row must not be modified.
func (t table) At(i int) (date.Date, []float64) { return t.days[i], t.rows[i] }

// Row returns the row for a given date, and whether that date is present.
// The row must not be modified.
func (t table) Row(on date.Date) ([]float64, bool) {
	i, ok := t.index[on]
	if !ok {
		return nil, false
	}
	return t.rows[i], true
}

// Column returns the values of a single asset as a History.
func (t table) Column(asset Asset) (*date.History[float64], bool) {
	j := slices.Index(t.assets, asset)
	if j < 0 {
		return nil, false
	}
	h := date.NewHistory[float64](len(t.days))
	for i, on := range t.days {
		h.Append(on, t.rows[i][j])
	}
	return h, true
}

// PriceSeries holds adjusted closing prices per asset on consecutive dates.
//
// It is read-only once built.
type PriceSeries struct{ table }

// NewPriceSeries returns a PriceSeries. rows[i][j] is the price of assets[j] on days[i];
// days must be strictly increasing. Missing prices are NaN.
func NewPriceSeries(assets []Asset, days []date.Date, rows [][]float64) (*PriceSeries, error) {
	t, err := newTable(assets, days, rows)
	if err != nil {
		return nil, fmt.Errorf("invalid price series: %w", err)
	}
	return &PriceSeries{t}, nil
}

// ReturnSeries holds daily fractional returns per asset.
//
// The first date has no defined return. An undefined return (NaN) means there
// is no data for that asset on that day.
type ReturnSeries struct{ table }

// NewReturnSeries returns a ReturnSeries built from explicit returns, with the same layout as NewPriceSeries.
func NewReturnSeries(assets []Asset, days []date.Date, rows [][]float64) (*ReturnSeries, error) {
	t, err := newTable(assets, days, rows)
	if err != nil {
		return nil, fmt.Errorf("invalid return series: %w", err)
	}
	return &ReturnSeries{t}, nil
}

// Returns derives the day-over-day fractional change of every asset:
// price[i]/price[i-1] - 1. The first row is undefined and missing prices
// propagate as undefined returns.
func (p *PriceSeries) Returns() *ReturnSeries {
	rows := make([][]float64, len(p.rows))
	for i := range p.rows {
		row := make([]float64, len(p.assets))
		for j := range row {
			if i == 0 {
				row[j] = math.NaN()
				continue
			}
			// NaN operands yield NaN.
			row[j] = p.rows[i][j]/p.rows[i-1][j] - 1
		}
		rows[i] = row
	}
	return &ReturnSeries{table{
		assets: slices.Clone(p.assets),
		days:   slices.Clone(p.days),
		rows:   rows,
		index:  p.index,
	}}
}

// defined reports whether every value in the row is a number.
func defined(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}
