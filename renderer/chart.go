package renderer

import (
	"errors"
	"fmt"

	"github.com/etnz/simfolio"
	"github.com/vicanso/go-charts/v2"
)

// Chart renders the value of run over time as a PNG line chart.
func Chart(run *simfolio.Run) ([]byte, error) {
	n := run.Values.Len()
	if n == 0 {
		return nil, errors.New("cannot chart a run without values")
	}
	xLabels := make([]string, n)
	values := make([]float64, n)
	minVal, maxVal := run.Terminal, run.Terminal
	for i := range n {
		on, v := run.Values.At(i)
		xLabels[i] = on.Format("Jan '06")
		values[i] = v
		minVal, maxVal = min(minVal, v), max(maxVal, v)
	}

	padding := (maxVal - minVal) * 0.05
	if padding == 0 {
		padding = maxVal * 0.05
	}
	yMin, yMax := minVal-padding, maxVal+padding

	splitNum := 6
	if n <= 30 {
		splitNum = max(n/3, 1)
	}

	p := run.Params
	title := fmt.Sprintf("%s • %s..%s", p.Strategy, p.From, p.To)
	painter, err := charts.LineRender(
		[][]float64{values},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			SplitNumber: splitNum,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	buf, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}
