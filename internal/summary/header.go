package summary

import (
	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/domain"
	"kospi-dashboard/internal/format"

	"github.com/guregu/null/v6"
)

type RangeView struct {
	High         null.Float `json:"high"`
	Low          null.Float `json:"low"`
	Current      null.Float `json:"current"`
	Position     float64    `json:"position"`
	PositionText string     `json:"positionText"`
	HighText     string     `json:"highText"`
	LowText      string     `json:"lowText"`
	CurrentText  string     `json:"currentText"`
}

// Range52W recomputes and clamps the 52-week position. When the bounds are
// incomplete the published position is clamped instead, and with neither the
// position defaults to 50.
func Range52W(r *domain.Range52W) RangeView {
	if r == nil {
		r = &domain.Range52W{}
	}
	pos := 50.0
	switch {
	case r.High.Valid && r.Low.Valid && r.Current.Valid:
		pos = Position52W(r.High.Float64, r.Low.Float64, r.Current.Float64)
	case r.Position.Valid:
		pos = Position52W(100, 0, r.Position.Float64)
	}
	return RangeView{
		High:         r.High,
		Low:          r.Low,
		Current:      r.Current,
		Position:     pos,
		PositionText: format.Number(null.FloatFrom(pos), 0) + "%",
		HighText:     format.Number(r.High, 0),
		LowText:      format.Number(r.Low, 0),
		CurrentText:  format.Number(r.Current, 2),
	}
}

type ReturnBadge struct {
	Name   string     `json:"name"`
	Return null.Float `json:"return"`
	Text   string     `json:"text"`
	Up     bool       `json:"up"`
	Color  string     `json:"color"`
}

// Returns lists the one-year return of each benchmark that published one.
func Returns(cmp *domain.Comparison, theme chart.Theme) []ReturnBadge {
	out := []ReturnBadge{}
	if cmp == nil {
		return out
	}
	for _, b := range []struct {
		name string
		v    null.Float
	}{{"QQQ", cmp.QQQReturn}, {"SOX", cmp.SOXReturn}, {"KOSPI", cmp.KospiReturn}} {
		if !b.v.Valid {
			continue
		}
		up := b.v.Float64 >= 0
		color := theme.Colors.Down
		if up {
			color = theme.Colors.Up
		}
		out = append(out, ReturnBadge{Name: b.name, Return: b.v, Text: format.Pct(b.v, 1), Up: up, Color: color})
	}
	return out
}

type CorrelationBadge struct {
	Pair     string              `json:"pair"`
	Value    null.Float          `json:"value"`
	Text     string              `json:"text"`
	Strength CorrelationStrength `json:"strength"`
	Label    string              `json:"label"`
	Tone     CorrelationTone     `json:"tone"`
	Color    string              `json:"color"`
}

// Correlations classifies the point-in-time coefficients. A missing value
// reads as zero, which is weak and neutral.
func Correlations(c *domain.Correlations, theme chart.Theme) []CorrelationBadge {
	var cur domain.CorrelationPair
	if c != nil {
		cur = c.Current
	}
	out := make([]CorrelationBadge, 0, 2)
	for _, p := range []struct {
		pair string
		v    null.Float
	}{{"KOSPI-QQQ", cur.KospiQQQ}, {"KOSPI-SOX", cur.KospiSOX}} {
		strength, tone := Strength(p.v.Float64), Tone(p.v.Float64)
		out = append(out, CorrelationBadge{
			Pair:     p.pair,
			Value:    p.v,
			Text:     format.Corr(p.v),
			Strength: strength,
			Label:    "상관 " + strength.Label(),
			Tone:     tone,
			Color:    tone.Color(theme),
		})
	}
	return out
}

// Header is the top strip: latest close, daily change and context badges.
type Header struct {
	Close           null.Float         `json:"close"`
	CloseText       string             `json:"closeText"`
	Change          null.Float         `json:"change"`
	ChangeText      string             `json:"changeText"`
	ChangePct       null.Float         `json:"changePct"`
	ChangePctText   string             `json:"changePctText"`
	Up              bool               `json:"up"`
	Color           string             `json:"color"`
	Range           RangeView          `json:"range52w"`
	Returns         []ReturnBadge      `json:"returns"`
	Correlations    []CorrelationBadge `json:"correlations"`
	LastUpdated     string             `json:"lastUpdated"`
	LastUpdatedText string             `json:"lastUpdatedText"`
	DataStart       string             `json:"dataStart"`
	DataEnd         string             `json:"dataEnd"`
	TotalDays       int                `json:"totalDays"`
}

func BuildHeader(snap *domain.Snapshot, theme chart.Theme) Header {
	h := Header{
		Range:           Range52W(snap.Range52W),
		Returns:         Returns(snap.Comparison, theme),
		Correlations:    Correlations(snap.Correlations, theme),
		LastUpdated:     snap.Metadata.LastUpdated,
		LastUpdatedText: format.DateTime(snap.Metadata.LastUpdated),
		DataStart:       snap.Metadata.DataStart,
		DataEnd:         snap.Metadata.DataEnd,
		TotalDays:       snap.Metadata.TotalDays,
	}
	n := len(snap.OHLCV)
	if n > 0 {
		h.Close = snap.OHLCV[n-1].Close
	}
	if n > 1 && h.Close.Valid && snap.OHLCV[n-2].Close.Valid {
		prev := snap.OHLCV[n-2].Close.Float64
		h.Change = null.FloatFrom(h.Close.Float64 - prev)
		if prev != 0 {
			h.ChangePct = null.FloatFrom(h.Change.Float64 / prev * 100)
		}
	}
	h.Up = !h.Change.Valid || h.Change.Float64 >= 0
	h.Color = theme.Colors.Down
	if h.Up {
		h.Color = theme.Colors.Up
	}
	h.CloseText = format.Number(h.Close, 2)
	arrow := "▼ "
	if h.Up {
		arrow = "▲ "
	}
	abs := h.Change
	if abs.Valid && abs.Float64 < 0 {
		abs = null.FloatFrom(-abs.Float64)
	}
	h.ChangeText = arrow + format.Number(abs, 2)
	h.ChangePctText = format.Pct(h.ChangePct, 1)
	return h
}
