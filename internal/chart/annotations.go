package chart

import (
	"math"

	"kospi-dashboard/internal/domain"
	"kospi-dashboard/internal/format"

	"github.com/dustin/go-humanize"
)

// MaxLevels caps the support/resistance lines drawn on the price chart.
const MaxLevels = 6

// Marker shapes.
const (
	ShapeTriangle     = "triangle"
	ShapeTriangleDown = "triangle-down"
)

// Marker is a positional overlay for one trading signal.
type Marker struct {
	X            int64                 `json:"x"`
	Y            float64               `json:"y"`
	Type         domain.SignalType     `json:"type"`
	Strength     domain.SignalStrength `json:"strength"`
	Reason       string                `json:"reason"`
	Size         int                   `json:"size"`
	Shape        string                `json:"shape"`
	Color        string                `json:"color"`
	OffsetY      int                   `json:"offsetY"`
	Label        string                `json:"label"`
	LabelOffsetY int                   `json:"labelOffsetY"`
}

// LevelLine is a horizontal support or resistance line.
type LevelLine struct {
	Y          float64          `json:"y"`
	Kind       domain.LevelKind `json:"kind"`
	Color      string           `json:"color"`
	LabelColor string           `json:"labelColor"`
	Width      float64          `json:"width"`
	Dash       int              `json:"dashArray"`
	Label      string           `json:"label"`
}

// Threshold is a fixed horizontal reference line such as RSI 70.
type Threshold struct {
	Y          float64 `json:"y"`
	Color      string  `json:"color"`
	LabelColor string  `json:"labelColor,omitempty"`
	Width      float64 `json:"width"`
	Dash       int     `json:"dashArray"`
	Label      string  `json:"label,omitempty"`
}

// Band shades the value range between From and To.
type Band struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// MarkerSize returns the size tier for a strength.
func MarkerSize(s domain.SignalStrength) int {
	switch s {
	case domain.StrengthStrong:
		return 8
	case domain.StrengthModerate:
		return 6
	}
	return 4
}

// SignalMarkers emits one marker per signal with a usable price and date.
// BUY markers sit below the price, SELL markers above.
func SignalMarkers(signals []domain.Signal, theme Theme) []Marker {
	markers := make([]Marker, 0, len(signals))
	for _, s := range signals {
		if !s.Price.Valid || math.IsNaN(s.Price.Float64) || !s.Type.Valid() {
			continue
		}
		ts, ok := format.Timestamp(s.Date)
		if !ok {
			continue
		}
		m := Marker{
			X:        ts,
			Y:        s.Price.Float64,
			Type:     s.Type,
			Strength: s.Strength,
			Reason:   s.Reason,
			Size:     MarkerSize(s.Strength),
		}
		if s.Type == domain.SignalBuy {
			m.Shape, m.Color, m.OffsetY, m.Label, m.LabelOffsetY = ShapeTriangle, theme.Colors.Buy, 10, "▲", 28
		} else {
			m.Shape, m.Color, m.OffsetY, m.Label, m.LabelOffsetY = ShapeTriangleDown, theme.Colors.Sell, -10, "▼", -28
		}
		markers = append(markers, m)
	}
	return markers
}

// LevelLines styles at most MaxLevels levels, keeping the caller's order.
// Levels without a price or a kind are skipped.
func LevelLines(levels []domain.Level, theme Theme) []LevelLine {
	out := make([]LevelLine, 0, min(len(levels), MaxLevels))
	for _, l := range levels {
		if len(out) == MaxLevels {
			break
		}
		if !l.Level.Valid || !l.Type.Valid() {
			continue
		}
		line := LevelLine{
			Y:     l.Level.Float64,
			Kind:  l.Type,
			Width: 1,
			Dash:  4,
		}
		if l.Type == domain.LevelSupport {
			line.Color = theme.Colors.SupportLine
			line.LabelColor = theme.Colors.Green
			line.Label = "S " + humanize.Commaf(l.Level.Float64)
		} else {
			line.Color = theme.Colors.ResistanceLine
			line.LabelColor = theme.Colors.Red
			line.Label = "R " + humanize.Commaf(l.Level.Float64)
		}
		out = append(out, line)
	}
	return out
}

// RSIThresholds are the overbought, oversold and midline references.
func RSIThresholds(theme Theme) []Threshold {
	return []Threshold{
		{Y: 70, Color: theme.Colors.OverboughtLine, LabelColor: theme.Colors.Red, Width: 1, Dash: 4, Label: "과매수(70)"},
		{Y: 30, Color: theme.Colors.OversoldLine, LabelColor: theme.Colors.Green, Width: 1, Dash: 4, Label: "과매도(30)"},
		{Y: 50, Color: theme.Colors.GuideLine, Width: 1, Dash: 4},
	}
}

// RSIBands shade the overbought zone above 70 and the oversold zone below 30.
func RSIBands(theme Theme) []Band {
	return []Band{
		{From: 70, To: 100, Color: theme.Colors.RSIOverbought},
		{From: 0, To: 30, Color: theme.Colors.RSIOversold},
	}
}

// CorrelationThresholds mark strong positive, zero and strong negative correlation.
func CorrelationThresholds(theme Theme) []Threshold {
	return []Threshold{
		{Y: 0.7, Color: theme.Colors.Green + "66", LabelColor: theme.Colors.Green + "aa", Width: 1, Dash: 3, Label: "강양상관(0.7)"},
		{Y: 0, Color: theme.Colors.GuideLine, Width: 1, Dash: 4},
		{Y: -0.7, Color: theme.Colors.Red + "66", LabelColor: theme.Colors.Red + "aa", Width: 1, Dash: 3, Label: "강음상관(-0.7)"},
	}
}

// ZeroLine is the MACD histogram baseline.
func ZeroLine(theme Theme) Threshold {
	return Threshold{Y: 0, Color: theme.Colors.ZeroLine, Width: 1, Dash: 3}
}

// BaselineHundred marks the normalization base of comparison series.
func BaselineHundred(theme Theme) Threshold {
	return Threshold{Y: 100, Color: theme.Colors.GuideLine, Width: 1, Dash: 3}
}
