package chart

import (
	"kospi-dashboard/internal/domain"

	"github.com/guregu/null/v6"
)

// MinCorrelationObservations is the rolling window length; a pair with fewer
// valid observations on the axis is not drawn.
const MinCorrelationObservations = 60

// InsufficientCorrelationMessage is reported when no pair can be drawn.
const InsufficientCorrelationMessage = "insufficient common trading days"

// ComparisonChart holds benchmark series normalized to 100 at the window start.
type ComparisonChart struct {
	Series   []Series  `json:"series"`
	Baseline Threshold `json:"baseline"`
	Empty    bool      `json:"empty"`
}

func BuildComparison(candles []domain.Candle, cmp *domain.Comparison, theme Theme) ComparisonChart {
	out := ComparisonChart{Series: []Series{}, Baseline: BaselineHundred(theme)}
	if cmp == nil {
		out.Empty = true
		return out
	}
	axis := NewAxis(candles)
	add := func(key, name, color string, dash int, src []domain.IndicatorPoint) {
		if len(src) == 0 {
			return
		}
		data := Align(axis, src)
		if !HasData(data) {
			return
		}
		out.Series = append(out.Series, line(key, name, color, 2, dash, data))
	}
	add("kospi", "KOSPI", theme.Colors.Cyan, 0, cmp.KospiNormalized)
	add("qqq", "QQQ", theme.Colors.QQQ, 4, cmp.QQQNormalized)
	add("sox", "SOX", theme.Colors.SOX, 6, cmp.SOXNormalized)
	out.Empty = len(out.Series) == 0
	return out
}

// CorrelationChart is the rolling 60-day correlation of KOSPI against QQQ and SOX.
type CorrelationChart struct {
	Series     []Series    `json:"series"`
	Thresholds []Threshold `json:"thresholds"`
	Empty      bool        `json:"empty"`
	Message    string      `json:"message,omitempty"`
}

func BuildCorrelation(candles []domain.Candle, corr *domain.Correlations, theme Theme) CorrelationChart {
	out := CorrelationChart{Series: []Series{}, Thresholds: CorrelationThresholds(theme)}
	if corr != nil {
		axis := NewAxis(candles)
		qqq := make(map[string]null.Float, len(corr.Rolling60))
		sox := make(map[string]null.Float, len(corr.Rolling60))
		for _, r := range corr.Rolling60 {
			qqq[r.Date] = r.KospiQQQ
			sox[r.Date] = r.KospiSOX
		}
		if data := AlignValues(axis, qqq); CountPresent(data) >= MinCorrelationObservations {
			out.Series = append(out.Series, line("kospi_qqq", "KOSPI-QQQ 상관계수", theme.Colors.QQQ, 2, 0, data))
		}
		if data := AlignValues(axis, sox); CountPresent(data) >= MinCorrelationObservations {
			out.Series = append(out.Series, line("kospi_sox", "KOSPI-SOX 상관계수", theme.Colors.SOX, 2, 4, data))
		}
	}
	if len(out.Series) == 0 {
		out.Empty, out.Message = true, InsufficientCorrelationMessage
	}
	return out
}
