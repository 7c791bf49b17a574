package chart

import "kospi-dashboard/internal/domain"

// PriceChart is the candlestick panel with its overlays and annotations.
type PriceChart struct {
	Candles  []CandlePoint `json:"candles"`
	Overlays []Series      `json:"overlays"`
	Markers  []Marker      `json:"markers"`
	Levels   []LevelLine   `json:"levels"`
	BandFill string        `json:"bandFill"`
}

// Candles emits one entry per OHLCV day, nulls included.
func Candles(candles []domain.Candle) []CandlePoint {
	axis := NewAxis(candles)
	out := make([]CandlePoint, len(candles))
	for i, c := range candles {
		out[i] = CandlePoint{X: axis.Timestamp(i), Open: c.Open, High: c.High, Low: c.Low, Close: c.Close}
	}
	return out
}

// Overlays aligns the moving averages listed in the theme followed by the
// upper and lower Bollinger bands.
func Overlays(axis Axis, ind domain.Indicators, theme Theme) []Series {
	out := make([]Series, 0, len(theme.MovingAverages)+2)
	for _, ma := range theme.MovingAverages {
		out = append(out, line(ma.Key, ma.Label, ma.Color, ma.Width, ma.Dash, Align(axis, ind.Series(ma.Key))))
	}
	out = append(out,
		line(domain.IndicatorBBUpper, "BB상단", theme.Colors.BBUpper, 1, 3, Align(axis, ind.Series(domain.IndicatorBBUpper))),
		line(domain.IndicatorBBLower, "BB하단", theme.Colors.BBLower, 1, 3, Align(axis, ind.Series(domain.IndicatorBBLower))),
	)
	return out
}

// BuildPrice assembles the main chart. levels is the snapshot's
// supportResistance list, already ordered by proximity to price.
func BuildPrice(candles []domain.Candle, ind domain.Indicators, signals []domain.Signal, levels []domain.Level, theme Theme) PriceChart {
	axis := NewAxis(candles)
	return PriceChart{
		Candles:  Candles(candles),
		Overlays: Overlays(axis, ind, theme),
		Markers:  SignalMarkers(signals, theme),
		Levels:   LevelLines(levels, theme),
		BandFill: theme.Colors.BBFill,
	}
}
