package tui

import (
	"math"
	"strings"

	"kospi-dashboard/internal/chart"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline scales the last width points of data onto eight block heights.
// Missing points render as spaces and a flat series sits on the lowest block.
func Sparkline(data []chart.Point, width int) string {
	if width <= 0 || len(data) == 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range data {
		if !usable(p) {
			continue
		}
		lo = math.Min(lo, p.Y.Float64)
		hi = math.Max(hi, p.Y.Float64)
	}
	if math.IsInf(lo, 1) {
		return strings.Repeat(" ", len(data))
	}

	var b strings.Builder
	for _, p := range data {
		if !usable(p) {
			b.WriteByte(' ')
			continue
		}
		idx := 0
		if hi > lo {
			idx = int(math.Round((p.Y.Float64 - lo) / (hi - lo) * float64(len(sparkBlocks)-1)))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

func usable(p chart.Point) bool {
	return p.Y.Valid && !math.IsNaN(p.Y.Float64) && !math.IsInf(p.Y.Float64, 0)
}

// lastValue returns the newest non-missing value.
func lastValue(data []chart.Point) (float64, bool) {
	for i := len(data) - 1; i >= 0; i-- {
		if usable(data[i]) {
			return data[i].Y.Float64, true
		}
	}
	return 0, false
}
