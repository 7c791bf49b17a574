package chart

import "kospi-dashboard/internal/domain"

// Palette holds every color the charts use.
type Palette struct {
	Background    string `json:"bg"`
	Card          string `json:"card"`
	Border        string `json:"border"`
	Text          string `json:"text"`
	Muted         string `json:"muted"`
	Cyan          string `json:"cyan"`
	Green         string `json:"green"`
	Red           string `json:"red"`
	Amber         string `json:"amber"`
	Up            string `json:"up"`
	Down          string `json:"down"`
	BBUpper       string `json:"bbUpper"`
	BBLower       string `json:"bbLower"`
	BBFill        string `json:"bbFill"`
	RSIOverbought string `json:"rsiOverbought"`
	RSIOversold   string `json:"rsiOversold"`
	Buy           string `json:"buy"`
	Sell          string `json:"sell"`
	QQQ           string `json:"qqq"`
	SOX           string `json:"sox"`
	Inactive      string `json:"inactive"`

	SupportLine    string `json:"supportLine"`
	ResistanceLine string `json:"resistanceLine"`
	OverboughtLine string `json:"overboughtLine"`
	OversoldLine   string `json:"oversoldLine"`
	GuideLine      string `json:"guideLine"`
	ZeroLine       string `json:"zeroLine"`

	// Decision state colors.
	StrongBuy  string `json:"strongBuy"`
	Bullish    string `json:"bullish"`
	Neutral    string `json:"neutral"`
	Bearish    string `json:"bearish"`
	StrongSell string `json:"strongSell"`
}

// MovingAverageStyle describes one moving-average overlay.
type MovingAverageStyle struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Color string  `json:"color"`
	Width float64 `json:"width"`
	Dash  int     `json:"dashArray"`
}

// Theme is passed by value into every builder; builders never modify it.
type Theme struct {
	Colors         Palette
	MovingAverages []MovingAverageStyle
}

// DefaultTheme returns a fresh copy of the dark dashboard theme.
func DefaultTheme() Theme {
	return Theme{
		Colors: Palette{
			Background:    "#0a0f1a",
			Card:          "#0f1623",
			Border:        "#1e2d45",
			Text:          "#e2e8f0",
			Muted:         "#64748b",
			Cyan:          "#00d4ff",
			Green:         "#00ff88",
			Red:           "#ff3366",
			Amber:         "#ffaa00",
			Up:            "#00c087",
			Down:          "#ff4060",
			BBUpper:       "#4dc3ff",
			BBLower:       "#4dc3ff",
			BBFill:        "rgba(77, 195, 255, 0.06)",
			RSIOverbought: "rgba(255, 51, 102, 0.15)",
			RSIOversold:   "rgba(0, 255, 136, 0.15)",
			Buy:           "#00ff88",
			Sell:          "#ff3366",
			QQQ:           "#a78bfa",
			SOX:           "#fb923c",
			Inactive:      "#2a3f5f",

			SupportLine:    "rgba(0, 255, 136, 0.5)",
			ResistanceLine: "rgba(255, 51, 102, 0.5)",
			OverboughtLine: "rgba(255, 51, 102, 0.6)",
			OversoldLine:   "rgba(0, 255, 136, 0.6)",
			GuideLine:      "rgba(100, 116, 139, 0.3)",
			ZeroLine:       "rgba(100, 116, 139, 0.4)",

			StrongBuy:  "#00ff88",
			Bullish:    "#00cc66",
			Neutral:    "#ffaa00",
			Bearish:    "#ff6644",
			StrongSell: "#ff3366",
		},
		MovingAverages: []MovingAverageStyle{
			{Key: domain.IndicatorMA5, Label: "MA5", Color: "#FFD700", Width: 1},
			{Key: domain.IndicatorMA20, Label: "MA20", Color: "#FF69B4", Width: 1.5},
			{Key: domain.IndicatorMA60, Label: "MA60", Color: "#00BFFF", Width: 1.5},
			{Key: domain.IndicatorMA120, Label: "MA120", Color: "#FF8C00", Width: 1, Dash: 4},
			{Key: domain.IndicatorMA240, Label: "MA240", Color: "#9370DB", Width: 1, Dash: 4},
		},
	}
}

// StateColor is the accent color of a decision state. Anything outside the
// closed set gets the neutral color.
func (t Theme) StateColor(s domain.DecisionState) string {
	switch s {
	case domain.StateStrongBuy:
		return t.Colors.StrongBuy
	case domain.StateBullish:
		return t.Colors.Bullish
	case domain.StateBearish:
		return t.Colors.Bearish
	case domain.StateStrongSell:
		return t.Colors.StrongSell
	}
	return t.Colors.Neutral
}

// ToneColor resolves a semantic tone to a palette color.
func (t Theme) ToneColor(tone domain.Tone) string {
	switch tone {
	case domain.TonePositive:
		return t.Colors.Green
	case domain.ToneNegative:
		return t.Colors.Red
	}
	return t.Colors.Amber
}
