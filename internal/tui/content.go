package tui

import (
	"fmt"
	"strings"

	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/dashboard"
	"kospi-dashboard/internal/format"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/guregu/null/v6"
)

const (
	labelWidth    = 14
	minSparkWidth = 20
)

func renderOverview(v *dashboard.Dashboard, st styles) string {
	h, m := v.Header, v.Metrics
	var b strings.Builder

	b.WriteString(st.title.Render("KOSPI") + "  " + st.text.Bold(true).Render(h.CloseText) + "  ")
	b.WriteString(color(h.Color, h.ChangeText+" ("+h.ChangePctText+")") + "\n")
	b.WriteString(st.muted.Render(fmt.Sprintf("%s ~ %s  %d days", h.DataStart, h.DataEnd, h.TotalDays)) + "\n")

	b.WriteString(st.section.Render("52주 범위") + "\n")
	bar := progress.New(progress.WithSolidFill(st.colors.Cyan), progress.WithWidth(30), progress.WithoutPercentage())
	b.WriteString(fmt.Sprintf("%s %s %s  %s\n", h.Range.LowText, bar.ViewAs(h.Range.Position/100), h.Range.HighText, h.Range.PositionText))

	if len(h.Returns) > 0 {
		b.WriteString(st.section.Render("1년 수익률") + "\n")
		for _, r := range h.Returns {
			b.WriteString(fmt.Sprintf("%-*s %s\n", labelWidth, r.Name, color(r.Color, r.Text)))
		}
	}
	if len(h.Correlations) > 0 {
		b.WriteString(st.section.Render("상관계수") + "\n")
		for _, c := range h.Correlations {
			b.WriteString(fmt.Sprintf("%-*s %s %s\n", labelWidth, c.Pair, color(c.Color, c.Text), st.muted.Render(c.Label)))
		}
	}

	cards := []string{
		metricCard(st, "승률", m.WinRate.Text, m.WinRate.Sub, m.WinRate.Color),
		metricCard(st, "MDD", m.Drawdown.Text, m.Drawdown.Sub, m.Drawdown.Color),
		metricCard(st, "Sharpe", m.Sharpe.Text, m.Sharpe.Sub, m.Sharpe.Color),
		metricCard(st, "시그널", fmt.Sprintf("%d", m.Signals.Total),
			fmt.Sprintf("매수 %d / 매도 %d / 강 %d", m.Signals.Buy, m.Signals.Sell, m.Signals.Strong), ""),
	}
	b.WriteString("\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	return b.String()
}

func metricCard(st styles, title, value, sub, hex string) string {
	return st.card.Render(st.muted.Render(title) + "\n" + color(hex, value) + "\n" + st.muted.Render(sub))
}

func renderCharts(v *dashboard.Dashboard, st styles, width int) string {
	sw := max(width-labelWidth-14, minSparkWidth)
	c := v.Charts
	var b strings.Builder

	line := func(label string, data []chart.Point, hex string, decimals int) {
		last := format.Placeholder
		if val, ok := lastValue(data); ok {
			last = format.Number(null.FloatFrom(val), decimals)
		}
		b.WriteString(fmt.Sprintf("%-*s %s %s\n", labelWidth, label, color(hex, Sparkline(data, sw)), st.muted.Render(last)))
	}

	closes := make([]chart.Point, len(c.Main.Candles))
	for i, p := range c.Main.Candles {
		closes[i] = chart.Point{X: p.X, Y: p.Close}
	}
	b.WriteString(st.section.Render("가격") + "\n")
	line("Close", closes, v.Header.Color, 2)
	for _, s := range c.Main.Overlays {
		line(s.Name, s.Data, s.Color, 2)
	}

	b.WriteString(st.section.Render("보조지표") + "\n")
	line(c.RSI.RSI.Name, c.RSI.RSI.Data, c.RSI.RSI.Color, 1)
	if c.RSI.HasVKOSPI {
		line(c.RSI.VKOSPI.Name, c.RSI.VKOSPI.Data, c.RSI.VKOSPI.Color, 2)
	}
	line("MACD", c.MACD.MACD.Data, c.MACD.MACD.Color, 2)
	vol := make([]chart.Point, len(c.Volume.Bars))
	for i, bar := range c.Volume.Bars {
		vol[i] = chart.Point{X: bar.X, Y: bar.Y}
	}
	line("Volume", vol, st.colors.Muted, 0)

	b.WriteString(st.section.Render("글로벌 비교") + "\n")
	if c.Comparison.Empty {
		b.WriteString(st.muted.Render("비교 데이터 없음") + "\n")
	}
	for _, s := range c.Comparison.Series {
		line(s.Name, s.Data, s.Color, 1)
	}
	if c.Correlation.Empty {
		b.WriteString(st.muted.Render(c.Correlation.Message) + "\n")
	}
	for _, s := range c.Correlation.Series {
		line(s.Name, s.Data, s.Color, 2)
	}

	for _, f := range c.Flows {
		b.WriteString(st.section.Render("수급 "+strings.ToUpper(f.Market)) + "\n")
		if f.Empty {
			b.WriteString(st.muted.Render(f.Message) + "\n")
			continue
		}
		for _, s := range f.Lines {
			line(s.Name, s.Data, s.Color, 0)
		}
	}
	return b.String()
}

func renderDecision(v *dashboard.Dashboard, st styles) string {
	d := v.Decision
	if !d.Present {
		return st.muted.Render("의사결정 데이터 없음")
	}
	var b strings.Builder
	b.WriteString(color(d.Color, lipgloss.NewStyle().Bold(true).Render(d.Label)) + "  " + st.muted.Render(string(d.State)) + "\n")
	b.WriteString(d.Advice + "\n")
	if d.Description != "" {
		b.WriteString(st.muted.Render(d.Description) + "\n")
	}
	b.WriteString(fmt.Sprintf("현금 %d%% / 주식 %d%%\n", d.CashRatio, d.EquityRatio))
	dots := strings.Repeat("●", d.Confidence.Dots) + strings.Repeat("○", 4-d.Confidence.Dots)
	b.WriteString(fmt.Sprintf("확신도 %+d %s\n", d.Confidence.Confidence, st.tone(d.Tone).Render(dots)))

	if len(d.Indicators) > 0 {
		b.WriteString(st.section.Render("지표") + "\n")
		for _, row := range d.Indicators {
			b.WriteString(fmt.Sprintf("%-*s %-10s %s\n", labelWidth, row.Name, row.Value, st.tone(row.Tone).Render(row.Label)))
		}
	}
	if len(d.Resistance)+len(d.Support) > 0 {
		b.WriteString(st.section.Render("지지/저항") + "\n")
		for _, l := range d.Resistance {
			b.WriteString(fmt.Sprintf("%-*s %s\n", labelWidth, l.Label, color(l.Color, l.Text)))
		}
		b.WriteString(fmt.Sprintf("%-*s %s\n", labelWidth, "현재가", v.Header.CloseText))
		for _, l := range d.Support {
			b.WriteString(fmt.Sprintf("%-*s %s\n", labelWidth, l.Label, color(l.Color, l.Text)))
		}
	}
	if len(d.Tree) > 0 {
		b.WriteString(st.section.Render("전략 트리") + "\n")
		for _, row := range d.Tree {
			marker := "  "
			if row.Active {
				marker = "▶ "
			}
			text := fmt.Sprintf("%s%-24s %s", marker, row.Condition, row.Action)
			if row.Active {
				text = color(row.Color, text)
			} else {
				text = st.muted.Render(text)
			}
			b.WriteString(text + "\n")
		}
	}
	if d.Strategy != "" {
		b.WriteString("\n" + d.Strategy)
	}
	return b.String()
}

func renderSignals(v *dashboard.Dashboard, st styles) string {
	rows := v.RecentSignals("desc", 0)
	if len(rows) == 0 {
		return st.muted.Render("시그널 없음")
	}
	tableRows := make([]table.Row, len(rows))
	for i, s := range rows {
		tableRows[i] = table.Row{s.DateText, string(s.Type), string(s.Strength), s.PriceText, s.Reason}
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "날짜", Width: 14},
			{Title: "구분", Width: 5},
			{Title: "강도", Width: 9},
			{Title: "가격", Width: 10},
			{Title: "사유", Width: 36},
		}),
		table.WithRows(tableRows),
		table.WithHeight(len(tableRows)+1),
		table.WithFocused(false),
	)
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)
	return t.View()
}
