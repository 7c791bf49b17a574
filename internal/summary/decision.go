package summary

import (
	"strconv"

	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/domain"
	"kospi-dashboard/internal/format"

	"github.com/guregu/null/v6"
)

// StateMeta is the fallback presentation of a decision state, used when the
// snapshot leaves a field blank.
type StateMeta struct {
	Label     string
	Advice    string
	Color     string
	CashRatio int
	Condition string
	Action    string
}

// MetaFor returns the presentation defaults of a state.
func MetaFor(s domain.DecisionState, theme chart.Theme) StateMeta {
	meta := stateText(s)
	meta.Color = theme.StateColor(s)
	return meta
}

func stateText(s domain.DecisionState) StateMeta {
	switch s {
	case domain.StateStrongBuy:
		return StateMeta{"강력 매수 구간", "공격적 매수", "", 10, "RSI < 30 + BB 하단", "공격적 분할 매수"}
	case domain.StateBullish:
		return StateMeta{"상승 추세 지속", "보유 유지", "", 20, "강세 지표 3개 이상", "보유 / 추가 매수"}
	case domain.StateBearish:
		return StateMeta{"하락 추세 주의", "현금 비중 증가", "", 60, "약세 지표 3개 이상", "현금 비중 확대"}
	case domain.StateStrongSell:
		return StateMeta{"강력 현금 확보 구간", "현금 비중 확대", "", 70, "RSI > 70 + BB 상단", "수익 실현 / 현금화"}
	}
	return StateMeta{"중립 - 관망 구간", "분할 매수 관찰", "", 40, "혼조 신호", "관망 / 분할 접근"}
}

type IndicatorRow struct {
	Name   string           `json:"name"`
	Value  string           `json:"value"`
	Signal domain.SubSignal `json:"signal"`
	Label  string           `json:"label"`
	Tone   domain.Tone      `json:"tone"`
	Color  string           `json:"color"`
}

type LevelRow struct {
	Label string           `json:"label"`
	Level null.Float       `json:"level"`
	Text  string           `json:"text"`
	Kind  domain.LevelKind `json:"kind"`
	Color string           `json:"color"`
}

// TreeRow is one branch of the strategy decision tree.
type TreeRow struct {
	Condition string               `json:"condition"`
	Action    string               `json:"action"`
	State     domain.DecisionState `json:"state"`
	Active    bool                 `json:"active"`
	Color     string               `json:"color"`
}

// DecisionPanel is the render-ready decision sidebar.
type DecisionPanel struct {
	Present     bool                 `json:"present"`
	State       domain.DecisionState `json:"state"`
	Label       string               `json:"label"`
	Advice      string               `json:"advice"`
	Description string               `json:"description"`
	Strategy    string               `json:"strategy"`
	Color       string               `json:"color"`
	Tone        domain.Tone          `json:"tone"`
	CashRatio   int                  `json:"cashRatio"`
	EquityRatio int                  `json:"equityRatio"`
	Confidence  ConfidenceBar        `json:"confidence"`
	Indicators  []IndicatorRow       `json:"indicators"`
	Resistance  []LevelRow           `json:"resistance"`
	Support     []LevelRow           `json:"support"`
	Tree        []TreeRow            `json:"tree"`
}

// Decision normalizes the decision tree block. A nil block yields a panel
// with Present=false and a neutral, inactive tree.
func Decision(dt *domain.DecisionTree, theme chart.Theme) DecisionPanel {
	if dt == nil {
		return DecisionPanel{
			Tone:       domain.ToneNeutral,
			Color:      theme.Colors.Neutral,
			Confidence: NewConfidenceBar(0),
			Indicators: []IndicatorRow{},
			Resistance: []LevelRow{},
			Support:    []LevelRow{},
			Tree:       decisionTree("", "", theme),
		}
	}
	meta := MetaFor(dt.CurrentState, theme)
	p := DecisionPanel{
		Present:     true,
		State:       dt.CurrentState,
		Label:       firstNonEmpty(dt.StateLabel, meta.Label),
		Advice:      firstNonEmpty(dt.Advice, meta.Advice),
		Description: dt.Description,
		Strategy:    dt.Strategy,
		Color:       firstNonEmpty(dt.Color, meta.Color),
		Tone:        dt.CurrentState.Tone(),
		Confidence:  NewConfidenceBar(int(dt.Confidence.Int64)),
	}
	if dt.CurrentState == "" {
		p.Color = firstNonEmpty(dt.Color, theme.Colors.Neutral)
	}

	cash := meta.CashRatio
	if dt.CashRatio.Valid {
		cash = int(clamp(float64(dt.CashRatio.Int64), 0, 100))
	}
	p.CashRatio, p.EquityRatio = cash, 100-cash

	ind := dt.Indicators
	p.Indicators = []IndicatorRow{
		indicatorRow("RSI(14)", plainValue(ind.RSI.Value), ind.RSI, theme),
		indicatorRow("MACD", plainValue(ind.MACD.Value), ind.MACD, theme),
		indicatorRow("BB 위치", percentValue(ind.BBPosition.Value), ind.BBPosition, theme),
		indicatorRow("추세", "", ind.Trend, theme),
	}
	p.Resistance = levelRows(dt.ResistanceLevels, domain.LevelResistance, theme.Colors.Red)
	p.Support = levelRows(dt.SupportLevels, domain.LevelSupport, theme.Colors.Green)
	p.Tree = decisionTree(dt.CurrentState, p.Color, theme)
	return p
}

func indicatorRow(name, value string, r domain.IndicatorReading, theme chart.Theme) IndicatorRow {
	tone := r.Signal.Tone()
	return IndicatorRow{
		Name:   name,
		Value:  value,
		Signal: r.Signal,
		Label:  r.Label,
		Tone:   tone,
		Color:  theme.ToneColor(tone),
	}
}

func plainValue(v null.Float) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

func percentValue(v null.Float) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64*100, 'f', 0, 64) + "%"
}

func levelRows(levels []domain.LabeledLevel, kind domain.LevelKind, color string) []LevelRow {
	out := make([]LevelRow, 0, len(levels))
	for _, l := range levels {
		out = append(out, LevelRow{
			Label: l.Label,
			Level: l.Level,
			Text:  format.Number(l.Level, 2),
			Kind:  kind,
			Color: color,
		})
	}
	return out
}

func decisionTree(current domain.DecisionState, activeColor string, theme chart.Theme) []TreeRow {
	rows := make([]TreeRow, 0, len(domain.DecisionStates))
	for _, s := range domain.DecisionStates {
		meta := MetaFor(s, theme)
		row := TreeRow{
			Condition: meta.Condition,
			Action:    meta.Action,
			State:     s,
			Active:    s == current,
			Color:     theme.Colors.Inactive,
		}
		if row.Active {
			row.Color = activeColor
		}
		rows = append(rows, row)
	}
	return rows
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
