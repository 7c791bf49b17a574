package chart

import (
	"math"

	"kospi-dashboard/internal/domain"

	"github.com/guregu/null/v6"
)

// obvShare is the fraction of the volume axis the rescaled OBV may occupy.
const obvShare = 0.8

type VolumeChart struct {
	Bars []Bar  `json:"bars"`
	OBV  Series `json:"obv"`
}

func BuildVolume(candles []domain.Candle, ind domain.Indicators, theme Theme) VolumeChart {
	axis := NewAxis(candles)
	bars := make([]Bar, axis.Len())
	maxVolume := 0.0
	for i, c := range candles {
		bars[i] = Bar{X: axis.Timestamp(i), Y: c.Volume, Color: theme.Colors.Muted}
		if c.Open.Valid && c.Close.Valid {
			if c.Close.Float64 >= c.Open.Float64 {
				bars[i].Color = theme.Colors.Up
			} else {
				bars[i].Color = theme.Colors.Down
			}
		}
		if c.Volume.Valid && c.Volume.Float64 > maxVolume {
			maxVolume = c.Volume.Float64
		}
	}
	obv := RescaleOBV(Align(axis, ind.Series(domain.IndicatorOBV)), maxVolume)
	return VolumeChart{
		Bars: bars,
		OBV:  line(domain.IndicatorOBV, "OBV(정규화)", theme.Colors.Cyan, 1.5, 0, obv),
	}
}

// RescaleOBV maps the cumulative series onto 80% of maxVolume:
// y / max|obv| * maxVolume * 0.8. An all-zero series uses a unit denominator.
func RescaleOBV(obv []Point, maxVolume float64) []Point {
	scale := 0.0
	for _, p := range obv {
		if p.Y.Valid && !math.IsNaN(p.Y.Float64) {
			scale = math.Max(scale, math.Abs(p.Y.Float64))
		}
	}
	if scale == 0 || math.IsInf(scale, 0) {
		scale = 1
	}
	out := make([]Point, len(obv))
	for i, p := range obv {
		out[i] = Point{X: p.X}
		if p.Y.Valid {
			out[i].Y = null.FloatFrom(p.Y.Float64 / scale * maxVolume * obvShare)
		}
	}
	return out
}
