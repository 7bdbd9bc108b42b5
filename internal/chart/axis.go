// Package chart derives chart-ready data from raw series: Y-axis domains
// with rounded tick steps, brush selection ranges, and date-bucketed
// series points. It owns no rendering; the front end feeds these values
// straight into its charting library.
package chart

import (
	"math"
	"strconv"
)

// AxisTick is one labelled tick on a chart axis.
type AxisTick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Domain is a Y-axis range snapped to rounded tick steps.
type Domain struct {
	Min   float64    `json:"min"`
	Max   float64    `json:"max"`
	Step  float64    `json:"step"`
	Ticks []AxisTick `json:"ticks"`
}

// NiceDomain expands [min, max] to a domain whose bounds and tick step are
// "nice" numbers (1, 2, 2.5 or 5 times a power of ten), with roughly
// tickCount ticks. A tickCount below 2 defaults to 5. Equal bounds are
// widened by one unit before snapping so a flat series still charts.
func NiceDomain(min, max float64, tickCount int) Domain {
	if tickCount < 2 {
		tickCount = 5
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		max = min + 1
	}

	step := niceNum((max-min)/float64(tickCount-1), true)
	niceMin := math.Floor(min/step) * step
	niceMax := math.Ceil(max/step) * step

	d := Domain{Min: niceMin, Max: niceMax, Step: step}
	// The half-step guard keeps float drift from dropping the last tick.
	for v := niceMin; v <= niceMax+step/2; v += step {
		// Snap accumulated float error back onto the step grid.
		tick := math.Round(v/step) * step
		d.Ticks = append(d.Ticks, AxisTick{Value: tick, Label: formatTick(tick)})
	}
	return d
}

// niceNum rounds x to a nice number. When round is true it picks the
// closest nice value, otherwise the smallest nice value >= x.
func niceNum(x float64, round bool) float64 {
	if x <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(x))
	frac := x / math.Pow(10, exp)

	var nice float64
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 2.25:
			nice = 2
		case frac < 3.75:
			nice = 2.5
		case frac < 7.5:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 2.5:
			nice = 2.5
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow(10, exp)
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
