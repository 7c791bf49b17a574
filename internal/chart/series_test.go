package chart

import (
	"math"
	"reflect"
	"testing"

	"kospi-dashboard/internal/domain"

	"github.com/guregu/null/v6"
)

func TestRescaleOBVAllZero(t *testing.T) {
	obv := []Point{{X: 1, Y: null.FloatFrom(0)}, {X: 2, Y: null.FloatFrom(0)}, {X: 3}}
	got := RescaleOBV(obv, 5000)
	for i, p := range got[:2] {
		if !p.Y.Valid || p.Y.Float64 != 0 || math.IsNaN(p.Y.Float64) {
			t.Fatalf("point %d: expected 0, got %+v", i, p)
		}
	}
	if got[2].Y.Valid {
		t.Fatal("missing OBV must stay missing")
	}
}

func TestRescaleOBVScalesToVolume(t *testing.T) {
	obv := []Point{{Y: null.FloatFrom(-200)}, {Y: null.FloatFrom(100)}}
	got := RescaleOBV(obv, 1000)
	if got[0].Y.Float64 != -800 || got[1].Y.Float64 != 400 {
		t.Fatalf("unexpected rescale: %+v", got)
	}
}

func TestBuildVolume(t *testing.T) {
	theme := DefaultTheme()
	candles := []domain.Candle{
		{Date: "2024-01-02", Open: null.FloatFrom(10), Close: null.FloatFrom(11), Volume: null.FloatFrom(500)},
		{Date: "2024-01-03", Open: null.FloatFrom(11), Close: null.FloatFrom(10), Volume: null.FloatFrom(1000)},
		{Date: "2024-01-04"},
	}
	ind := domain.Indicators{domain.IndicatorOBV: {{Date: "2024-01-03", Value: null.FloatFrom(50)}}}
	v := BuildVolume(candles, ind, theme)
	if len(v.Bars) != 3 || len(v.OBV.Data) != 3 {
		t.Fatalf("expected axis-length series, got %d bars %d obv", len(v.Bars), len(v.OBV.Data))
	}
	if v.Bars[0].Color != theme.Colors.Up || v.Bars[1].Color != theme.Colors.Down || v.Bars[2].Color != theme.Colors.Muted {
		t.Fatalf("unexpected bar colors: %+v", v.Bars)
	}
	if v.OBV.Data[1].Y.Float64 != 800 || v.OBV.Data[0].Y.Valid {
		t.Fatalf("unexpected obv: %+v", v.OBV.Data)
	}
}

func TestBuildRSIVKOSPIFlag(t *testing.T) {
	theme := DefaultTheme()
	candles := candlesFor("2024-01-02", "2024-01-03")
	r := BuildRSI(candles, domain.Indicators{
		domain.IndicatorRSI14:  {{Date: "2024-01-03", Value: null.FloatFrom(55)}},
		domain.IndicatorVKOSPI: {{Date: "2024-01-03", Value: null.Float{}}},
	}, theme)
	if r.HasVKOSPI {
		t.Fatal("all-null VKOSPI should not be drawn")
	}
	if len(r.RSI.Data) != 2 || len(r.Thresholds) != 3 {
		t.Fatalf("unexpected rsi chart: %+v", r)
	}

	r = BuildRSI(candles, domain.Indicators{domain.IndicatorVKOSPI: {{Date: "2024-01-02", Value: null.FloatFrom(18.2)}}}, theme)
	if !r.HasVKOSPI {
		t.Fatal("expected VKOSPI to be drawn")
	}
}

func TestBuildMACDAlignsAllSeries(t *testing.T) {
	theme := DefaultTheme()
	candles := candlesFor("2024-01-02", "2024-01-03", "2024-01-04")
	m := BuildMACD(candles, domain.Indicators{
		domain.IndicatorMACDHist: {{Date: "2024-01-02", Value: null.FloatFrom(-1)}, {Date: "2024-01-04", Value: null.FloatFrom(0)}, {Date: "2025-01-01", Value: null.FloatFrom(3)}},
		domain.IndicatorMACD:     {{Date: "2024-01-03", Value: null.FloatFrom(2)}},
	}, theme)
	if len(m.Histogram) != 3 || len(m.MACD.Data) != 3 || len(m.Signal.Data) != 3 {
		t.Fatal("all MACD series must match the axis length")
	}
	if m.Histogram[0].Color != theme.Colors.Down || m.Histogram[1].Color != theme.Colors.Muted || m.Histogram[2].Color != theme.Colors.Up {
		t.Fatalf("unexpected histogram colors: %+v", m.Histogram)
	}
}

func TestBuildPrice(t *testing.T) {
	theme := DefaultTheme()
	candles := candlesFor("2024-01-02", "2024-01-03")
	candles[1].High = null.Float{}
	p := BuildPrice(candles, domain.Indicators{domain.IndicatorMA5: {{Date: "2024-01-03", Value: null.FloatFrom(2525)}}}, nil, nil, theme)

	if len(p.Candles) != 2 || p.Candles[1].High.Valid {
		t.Fatalf("null price fields should still emit an entry: %+v", p.Candles)
	}
	if len(p.Overlays) != len(theme.MovingAverages)+2 {
		t.Fatalf("expected %d overlays, got %d", len(theme.MovingAverages)+2, len(p.Overlays))
	}
	for _, s := range p.Overlays {
		if len(s.Data) != 2 {
			t.Fatalf("overlay %s has %d points", s.Name, len(s.Data))
		}
	}
	if p.Overlays[0].Name != "MA5" || !p.Overlays[0].Data[1].Y.Valid {
		t.Fatalf("unexpected MA5 overlay: %+v", p.Overlays[0])
	}
}

func TestBuildersAreTotalOnEmptyInput(t *testing.T) {
	theme := DefaultTheme()
	p := BuildPrice(nil, nil, nil, nil, theme)
	if len(p.Candles) != 0 || len(p.Markers) != 0 {
		t.Fatalf("unexpected price chart: %+v", p)
	}
	if v := BuildVolume(nil, nil, theme); len(v.Bars) != 0 || len(v.OBV.Data) != 0 {
		t.Fatal("expected empty volume chart")
	}
	if c := BuildCorrelation(nil, nil, theme); !c.Empty || c.Message != InsufficientCorrelationMessage {
		t.Fatalf("unexpected correlation chart: %+v", c)
	}
	if c := BuildComparison(nil, nil, theme); !c.Empty {
		t.Fatal("expected empty comparison chart")
	}
	if f := BuildFlows(nil, nil, theme); len(f) != 0 {
		t.Fatal("expected no flow charts")
	}
}

func TestBuildersAreIdempotent(t *testing.T) {
	theme := DefaultTheme()
	candles := candlesFor("2024-01-02", "2024-01-03")
	ind := domain.Indicators{domain.IndicatorMA20: {{Date: "2024-01-02", Value: null.FloatFrom(1)}}}
	signals := []domain.Signal{{Date: "2024-01-02", Type: domain.SignalBuy, Price: null.FloatFrom(1)}}

	if !reflect.DeepEqual(BuildPrice(candles, ind, signals, nil, theme), BuildPrice(candles, ind, signals, nil, theme)) {
		t.Fatal("BuildPrice is not deterministic")
	}
	if !reflect.DeepEqual(BuildVolume(candles, ind, theme), BuildVolume(candles, ind, theme)) {
		t.Fatal("BuildVolume is not deterministic")
	}
}

func TestBuildFlows(t *testing.T) {
	theme := DefaultTheme()
	candles := candlesFor("2024-01-02", "2024-01-03", "2024-01-04")
	blocks := map[string]*domain.SupplyDemand{
		domain.MarketKOSDAQ: {Unit: "억원", Series: []domain.FlowRow{{Date: "2024-01-02", Foreign: null.FloatFrom(5)}}},
		domain.MarketKOSPI: {Unit: "억원", LastDate: "2024-01-04", Series: []domain.FlowRow{
			{Date: "2024-01-02", Foreign: null.FloatFrom(100), Institution: null.FloatFrom(-50), Individual: null.FloatFrom(-50)},
			{Date: "2024-01-04", Foreign: null.FloatFrom(-10), Institution: null.FloatFrom(20), Individual: null.FloatFrom(-10)},
		}},
	}
	charts := BuildFlows(candles, blocks, theme)
	if len(charts) != 2 || charts[0].Market != domain.MarketKOSPI || charts[1].Market != domain.MarketKOSDAQ {
		t.Fatalf("unexpected market order: %+v", charts)
	}
	kospi := charts[0]
	if kospi.Empty || len(kospi.Lines) != 3 || len(kospi.Lines[0].Data) != 3 {
		t.Fatalf("unexpected kospi chart: %+v", kospi)
	}
	if kospi.Lines[0].Data[1].Y.Valid || kospi.Lines[0].Data[2].Y.Float64 != -10 {
		t.Fatalf("unexpected foreign line: %+v", kospi.Lines[0].Data)
	}
	kosdaq := charts[1]
	if !kosdaq.Empty || kosdaq.Message == "" || len(kosdaq.Lines) != 0 {
		t.Fatalf("single-point flow should be a placeholder: %+v", kosdaq)
	}
}

func rollingFixture(dates []string, valid int) *domain.Correlations {
	c := &domain.Correlations{}
	for i, d := range dates {
		r := domain.RollingCorrelation{Date: d, KospiSOX: null.FloatFrom(0.3)}
		if i < valid {
			r.KospiQQQ = null.FloatFrom(0.5)
		}
		c.Rolling60 = append(c.Rolling60, r)
	}
	return c
}

func TestBuildCorrelationRequiresFullWindow(t *testing.T) {
	theme := DefaultTheme()
	dates := tradingDays("2024-01-01", 80)
	candles := candlesFor(dates...)

	c := BuildCorrelation(candles, rollingFixture(dates[:59], 59), theme)
	if !c.Empty || c.Message != InsufficientCorrelationMessage || len(c.Series) != 0 {
		t.Fatalf("59 observations must not draw a line: %+v", c)
	}

	c = BuildCorrelation(candles, rollingFixture(dates, 59), theme)
	if c.Empty || len(c.Series) != 1 || c.Series[0].Key != "kospi_sox" {
		t.Fatalf("expected only the SOX pair: %+v", c.Series)
	}
	if len(c.Series[0].Data) != 80 {
		t.Fatalf("expected axis-length series, got %d", len(c.Series[0].Data))
	}

	c = BuildCorrelation(candles, rollingFixture(dates, 60), theme)
	if len(c.Series) != 2 {
		t.Fatalf("expected both pairs, got %d", len(c.Series))
	}
}

func TestBuildComparison(t *testing.T) {
	theme := DefaultTheme()
	candles := candlesFor("2024-01-02", "2024-01-03")
	c := BuildComparison(candles, &domain.Comparison{
		KospiNormalized: []domain.IndicatorPoint{{Date: "2024-01-02", Value: null.FloatFrom(100)}, {Date: "2024-01-03", Value: null.FloatFrom(101.5)}},
		QQQNormalized:   []domain.IndicatorPoint{{Date: "2024-01-02", Value: null.Float{}}},
	}, theme)
	if c.Empty || len(c.Series) != 1 || c.Series[0].Name != "KOSPI" {
		t.Fatalf("unexpected comparison chart: %+v", c)
	}
	if c.Baseline.Y != 100 {
		t.Fatalf("unexpected baseline %v", c.Baseline.Y)
	}
}
