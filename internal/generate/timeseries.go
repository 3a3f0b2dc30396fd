package generate

import (
	"math"

	"datasynth/internal/dataset"
)

// timeSeriesTable builds one daily observation per row: a base value
// with linear trend, a 30-day seasonal cycle, and gaussian noise, plus
// derived cumulative and 7-day moving-average columns.
func (g *Generator) timeSeriesTable(count int) *dataset.Table {
	t := dataset.New("timeseries",
		"date", "value", "category_a", "category_b", "cumulative",
		"moving_avg_7d")

	start := g.anchor.AddDate(0, 0, -count)
	values := make([]float64, count)
	for i := range values {
		trend := 50 * float64(i) / float64(max(count-1, 1))
		seasonal := 10 * math.Sin(2*math.Pi*float64(i)/30)
		noise := g.rng.NormFloat64() * 5
		values[i] = 100 + trend + seasonal + noise
	}

	cumulative := 0.0
	for i, v := range values {
		cumulative += v

		// Moving average warms up: fewer than 7 points average what
		// exists so far.
		windowStart := max(i-6, 0)
		sum := 0.0
		for _, w := range values[windowStart : i+1] {
			sum += w
		}
		avg := sum / float64(i+1-windowStart)

		t.Append(
			start.AddDate(0, 0, i).Format("2006-01-02"),
			round2f(v),
			round2f(20+g.rng.Float64()*60),
			round2f(10+g.rng.Float64()*50),
			round2f(cumulative),
			round2f(avg),
		)
	}
	return t
}
