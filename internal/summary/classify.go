// Package summary maps snapshot values onto the categorical buckets and
// labels the dashboard shows. Lower bounds are inclusive everywhere.
package summary

import (
	"math"

	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/domain"
)

// Bucket grades a performance metric.
type Bucket string

const (
	Favorable   Bucket = "favorable"
	Neutral     Bucket = "neutral"
	Unfavorable Bucket = "unfavorable"
)

func (b Bucket) Tone() domain.Tone {
	switch b {
	case Favorable:
		return domain.TonePositive
	case Unfavorable:
		return domain.ToneNegative
	}
	return domain.ToneNeutral
}

func grade(v, favorable, neutral float64) Bucket {
	switch {
	case math.IsNaN(v):
		return Neutral
	case v >= favorable:
		return Favorable
	case v >= neutral:
		return Neutral
	}
	return Unfavorable
}

// WinRateBucket grades the fraction of profitable signals.
func WinRateBucket(v float64) Bucket { return grade(v, 0.6, 0.5) }

// SharpeBucket grades the annualized Sharpe ratio.
func SharpeBucket(v float64) Bucket { return grade(v, 1.5, 0.5) }

// DrawdownBucket grades a maximum drawdown given as a non-positive fraction.
func DrawdownBucket(v float64) Bucket { return grade(v, -0.05, -0.15) }

// Position52W places current within [low, high] as a percentage clamped to
// [0, 100]. A degenerate range or non-finite input yields 50.
func Position52W(high, low, current float64) float64 {
	for _, v := range []float64{high, low, current} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 50
		}
	}
	if high == low {
		return 50
	}
	return clamp(100*(current-low)/(high-low), 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

type CorrelationStrength string

const (
	StrengthStrong   CorrelationStrength = "strong"
	StrengthModerate CorrelationStrength = "moderate"
	StrengthWeak     CorrelationStrength = "weak"
)

// Label is the short Korean badge text.
func (s CorrelationStrength) Label() string {
	switch s {
	case StrengthStrong:
		return "강"
	case StrengthModerate:
		return "중"
	}
	return "약"
}

// Strength buckets |v|: 0.7 and above is strong, 0.4 and above moderate.
func Strength(v float64) CorrelationStrength {
	a := math.Abs(v)
	switch {
	case a >= 0.7:
		return StrengthStrong
	case a >= 0.4:
		return StrengthModerate
	}
	return StrengthWeak
}

type CorrelationTone string

const (
	ToneStrongPositive CorrelationTone = "strong-positive"
	ToneWeakPositive   CorrelationTone = "weak-positive"
	ToneNegative       CorrelationTone = "negative"
	ToneNeutral        CorrelationTone = "neutral"
)

// Tone colors a correlation by sign and size.
func Tone(v float64) CorrelationTone {
	switch {
	case v > 0.5:
		return ToneStrongPositive
	case v > 0.2:
		return ToneWeakPositive
	case v < -0.2:
		return ToneNegative
	}
	return ToneNeutral
}

// Color resolves the correlation tone against the theme.
func (t CorrelationTone) Color(theme chart.Theme) string {
	switch t {
	case ToneStrongPositive:
		return theme.Colors.Green
	case ToneWeakPositive:
		return theme.Colors.Cyan
	case ToneNegative:
		return theme.Colors.Red
	}
	return theme.Colors.Amber
}

// ConfidenceBar is the bullish/bearish gauge of the decision card.
type ConfidenceBar struct {
	Confidence int     `json:"confidence"`
	Dots       int     `json:"dots"`
	Fill       float64 `json:"fill"`
	Side       string  `json:"side"`
	Translate  float64 `json:"translate"`
}

const maxConfidence = 4

// NewConfidenceBar clamps confidence to [-4, 4] and derives the gauge:
// |c| dots out of 4, fill |c|/4 on the side given by the sign, and the
// horizontal offset (c/4)*50-50 percent.
func NewConfidenceBar(c int) ConfidenceBar {
	c = max(-maxConfidence, min(maxConfidence, c))
	abs := c
	if abs < 0 {
		abs = -abs
	}
	side := "none"
	switch {
	case c > 0:
		side = "bullish"
	case c < 0:
		side = "bearish"
	}
	return ConfidenceBar{
		Confidence: c,
		Dots:       abs,
		Fill:       float64(abs) / maxConfidence,
		Side:       side,
		Translate:  float64(c)/maxConfidence*50 - 50,
	}
}
