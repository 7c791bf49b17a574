package chart

import (
	"testing"

	"kospi-dashboard/internal/domain"

	"github.com/guregu/null/v6"
)

func TestSignalMarkers(t *testing.T) {
	theme := DefaultTheme()
	signals := []domain.Signal{
		{Date: "2024-01-02", Type: domain.SignalBuy, Strength: domain.StrengthStrong, Price: null.FloatFrom(2500)},
		{Date: "2024-01-03", Type: domain.SignalSell, Strength: domain.StrengthModerate, Price: null.FloatFrom(2600)},
		{Date: "2024-01-04", Type: domain.SignalSell, Strength: domain.StrengthWeak, Price: null.FloatFrom(2610)},
		{Date: "2024-01-05", Type: domain.SignalBuy, Strength: domain.StrengthWeak},
	}
	markers := SignalMarkers(signals, theme)
	if len(markers) != 3 {
		t.Fatalf("expected 3 markers, got %d", len(markers))
	}

	buy := markers[0]
	if buy.Size != 8 || buy.Shape != ShapeTriangle || buy.OffsetY != 10 || buy.Label != "▲" || buy.LabelOffsetY != 28 || buy.Color != theme.Colors.Buy {
		t.Fatalf("unexpected buy marker: %+v", buy)
	}
	sell := markers[1]
	if sell.Size != 6 || sell.Shape != ShapeTriangleDown || sell.OffsetY != -10 || sell.Label != "▼" || sell.LabelOffsetY != -28 || sell.Color != theme.Colors.Sell {
		t.Fatalf("unexpected sell marker: %+v", sell)
	}
	if markers[2].Size != 4 {
		t.Fatalf("expected weak size 4, got %d", markers[2].Size)
	}
}

func TestLevelLinesCapAndStyle(t *testing.T) {
	theme := DefaultTheme()
	var levels []domain.Level
	levels = append(levels, domain.Level{Type: domain.LevelSupport})
	for i := 0; i < 8; i++ {
		kind := domain.LevelSupport
		if i%2 == 1 {
			kind = domain.LevelResistance
		}
		levels = append(levels, domain.Level{Level: null.FloatFrom(2450 + float64(i)*10), Type: kind})
	}

	lines := LevelLines(levels, theme)
	if len(lines) != MaxLevels {
		t.Fatalf("expected %d lines, got %d", MaxLevels, len(lines))
	}
	if lines[0].Label != "S 2,450" || lines[0].LabelColor != theme.Colors.Green || lines[0].Dash != 4 {
		t.Fatalf("unexpected support line: %+v", lines[0])
	}
	if lines[1].Label != "R 2,460" || lines[1].LabelColor != theme.Colors.Red {
		t.Fatalf("unexpected resistance line: %+v", lines[1])
	}
	if len(LevelLines(nil, theme)) != 0 {
		t.Fatal("expected no lines for nil input")
	}
}

func TestThresholdBands(t *testing.T) {
	theme := DefaultTheme()
	rsi := RSIThresholds(theme)
	if len(rsi) != 3 || rsi[0].Y != 70 || rsi[1].Y != 30 || rsi[2].Y != 50 {
		t.Fatalf("unexpected rsi thresholds: %+v", rsi)
	}
	corr := CorrelationThresholds(theme)
	if len(corr) != 3 || corr[0].Y != 0.7 || corr[1].Y != 0 || corr[2].Y != -0.7 {
		t.Fatalf("unexpected correlation thresholds: %+v", corr)
	}
	if BaselineHundred(theme).Y != 100 || ZeroLine(theme).Y != 0 {
		t.Fatal("unexpected baselines")
	}
	bands := RSIBands(theme)
	if len(bands) != 2 || bands[0].From != 70 || bands[0].Color != theme.Colors.RSIOverbought || bands[1].To != 30 || bands[1].Color != theme.Colors.RSIOversold {
		t.Fatalf("unexpected rsi bands: %+v", bands)
	}
}

func TestAnnotationsFollowTheme(t *testing.T) {
	theme := DefaultTheme()
	theme.Colors.SupportLine = "#111111"
	theme.Colors.ResistanceLine = "#222222"
	theme.Colors.OverboughtLine = "#333333"
	theme.Colors.GuideLine = "#444444"
	theme.Colors.ZeroLine = "#555555"

	lines := LevelLines([]domain.Level{
		{Level: null.FloatFrom(2450), Type: domain.LevelSupport},
		{Level: null.FloatFrom(2700), Type: domain.LevelResistance},
	}, theme)
	if len(lines) != 2 || lines[0].Color != "#111111" || lines[1].Color != "#222222" {
		t.Fatalf("unexpected level colors: %+v", lines)
	}
	rsi := RSIThresholds(theme)
	if rsi[0].Color != "#333333" || rsi[2].Color != "#444444" {
		t.Fatalf("unexpected threshold colors: %+v", rsi)
	}
	if ZeroLine(theme).Color != "#555555" || BaselineHundred(theme).Color != "#444444" {
		t.Fatal("expected baselines from the theme")
	}
	if p := BuildPrice(nil, nil, nil, nil, theme); p.BandFill != theme.Colors.BBFill {
		t.Fatalf("unexpected band fill %q", p.BandFill)
	}
}
