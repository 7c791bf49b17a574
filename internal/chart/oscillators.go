package chart

import "kospi-dashboard/internal/domain"

// RSIChart carries RSI(14) and, when published, the VKOSPI volatility index.
type RSIChart struct {
	RSI        Series      `json:"rsi"`
	VKOSPI     Series      `json:"vkospi"`
	HasVKOSPI  bool        `json:"hasVkospi"`
	Thresholds []Threshold `json:"thresholds"`
	Bands      []Band      `json:"bands"`
}

func BuildRSI(candles []domain.Candle, ind domain.Indicators, theme Theme) RSIChart {
	axis := NewAxis(candles)
	vk := Align(axis, ind.Series(domain.IndicatorVKOSPI))
	return RSIChart{
		RSI:        line(domain.IndicatorRSI14, "RSI(14)", theme.Colors.Cyan, 2, 0, Align(axis, ind.Series(domain.IndicatorRSI14))),
		VKOSPI:     line(domain.IndicatorVKOSPI, "VKOSPI", theme.Colors.Amber, 1, 3, vk),
		HasVKOSPI:  HasData(vk),
		Thresholds: RSIThresholds(theme),
		Bands:      RSIBands(theme),
	}
}

// MACDChart holds the histogram bars and the MACD and signal lines, all on
// the OHLCV axis.
type MACDChart struct {
	Histogram []Bar     `json:"histogram"`
	MACD      Series    `json:"macd"`
	Signal    Series    `json:"signal"`
	ZeroLine  Threshold `json:"zeroLine"`
}

func BuildMACD(candles []domain.Candle, ind domain.Indicators, theme Theme) MACDChart {
	axis := NewAxis(candles)
	hist := Align(axis, ind.Series(domain.IndicatorMACDHist))
	bars := make([]Bar, len(hist))
	for i, p := range hist {
		bars[i] = Bar{X: p.X, Y: p.Y, Color: theme.Colors.Muted}
		if p.Y.Valid {
			if p.Y.Float64 >= 0 {
				bars[i].Color = theme.Colors.Up
			} else {
				bars[i].Color = theme.Colors.Down
			}
		}
	}
	return MACDChart{
		Histogram: bars,
		MACD:      line(domain.IndicatorMACD, "MACD", theme.Colors.Cyan, 2, 0, Align(axis, ind.Series(domain.IndicatorMACD))),
		Signal:    line(domain.IndicatorMACDSignal, "시그널", theme.Colors.Amber, 1.5, 4, Align(axis, ind.Series(domain.IndicatorMACDSignal))),
		ZeroLine:  ZeroLine(theme),
	}
}
