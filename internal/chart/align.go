// Package chart derives render-ready series and annotations from a snapshot.
// Every builder is pure and total: empty or all-null input yields empty or
// placeholder output, never a panic.
package chart

import (
	"kospi-dashboard/internal/domain"
	"kospi-dashboard/internal/format"

	"github.com/guregu/null/v6"
)

// Point is one aligned sample. A null Y means no data for that date, which is
// distinct from a zero value.
type Point struct {
	X int64      `json:"x"`
	Y null.Float `json:"y"`
}

// Axis is the dense OHLCV date axis.
type Axis struct {
	dates []string
	ts    []int64
}

// NewAxis builds the axis from candles in their given order. A date that does
// not parse keeps its slot with a zero timestamp.
func NewAxis(candles []domain.Candle) Axis {
	a := Axis{
		dates: make([]string, len(candles)),
		ts:    make([]int64, len(candles)),
	}
	for i, c := range candles {
		a.dates[i] = c.Date
		a.ts[i], _ = format.Timestamp(c.Date)
	}
	return a
}

func (a Axis) Len() int { return len(a.dates) }

// Timestamp returns the UTC-midnight milliseconds at index i.
func (a Axis) Timestamp(i int) int64 { return a.ts[i] }

// Index returns the position of date on the axis.
func (a Axis) Index(date string) (int, bool) {
	for i, d := range a.dates {
		if d == date {
			return i, true
		}
	}
	return 0, false
}

// Align maps a sparse date-keyed series onto the axis. The result always has
// Len() points in axis order; dates off the axis are dropped and a repeated
// date keeps its last value.
func Align(axis Axis, sparse []domain.IndicatorPoint) []Point {
	values := make(map[string]null.Float, len(sparse))
	for _, p := range sparse {
		values[p.Date] = p.Value
	}
	return AlignValues(axis, values)
}

// AlignValues is Align over an already keyed mapping.
func AlignValues(axis Axis, values map[string]null.Float) []Point {
	out := make([]Point, axis.Len())
	for i := range out {
		out[i] = Point{X: axis.ts[i], Y: values[axis.dates[i]]}
	}
	return out
}

// HasData reports whether at least one point carries a value.
func HasData(points []Point) bool {
	return CountPresent(points) > 0
}

// CountPresent counts points with a value.
func CountPresent(points []Point) int {
	n := 0
	for _, p := range points {
		if p.Y.Valid {
			n++
		}
	}
	return n
}
