// Package render draws dashboard charts as PNG images with go-chart.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/dashboard"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 1200
	DefaultHeight = 500
	MaxWidth      = 2400
	MaxHeight     = 1600
)

var (
	ErrUnknownChart = errors.New("chart cannot be rendered")
	// ErrNoData means no series had the two points needed to draw a line.
	ErrNoData = errors.New("not enough data to render chart")
)

// Names lists the charts PNG accepts.
var Names = []string{dashboard.ChartMain, dashboard.ChartRSI, dashboard.ChartVolume, dashboard.ChartComparison}

// Options sizes the image. Zero values fall back to the defaults and
// oversized values are capped.
type Options struct {
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return min(w, MaxWidth), min(h, MaxHeight)
}

// PNG writes the named chart of view to w.
func PNG(w io.Writer, view *dashboard.Dashboard, name string, theme chart.Theme, opts Options) error {
	if view == nil {
		return ErrNoData
	}
	var series []gochart.Series
	switch name {
	case dashboard.ChartMain:
		series = priceSeries(view.Charts.Main, theme)
	case dashboard.ChartRSI:
		series = rsiSeries(view.Charts.RSI)
	case dashboard.ChartVolume:
		series = volumeSeries(view.Charts.Volume, theme)
	case dashboard.ChartComparison:
		if view.Charts.Comparison.Empty {
			return ErrNoData
		}
		series = comparisonSeries(view.Charts.Comparison)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	if !hasLine(series) {
		return ErrNoData
	}

	width, height := opts.size()
	graph := gochart.Chart{
		Width:      width,
		Height:     height,
		Background: gochart.Style{FillColor: color(theme.Colors.Background)},
		Canvas:     gochart.Style{FillColor: color(theme.Colors.Card)},
		XAxis: gochart.XAxis{
			Style:          axisStyle(theme),
			ValueFormatter: gochart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis:          gochart.YAxis{Style: axisStyle(theme)},
		YAxisSecondary: gochart.YAxis{Style: axisStyle(theme)},
		Series:         series,
	}
	graph.Elements = []gochart.Renderable{gochart.LegendThin(&graph, gochart.Style{
		FillColor:   color(theme.Colors.Card),
		FontColor:   color(theme.Colors.Text),
		StrokeColor: color(theme.Colors.Border),
	})}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render %s chart: %w", name, err)
	}
	return nil
}

func priceSeries(c chart.PriceChart, theme chart.Theme) []gochart.Series {
	closes := make([]chart.Point, len(c.Candles))
	for i, p := range c.Candles {
		closes[i] = chart.Point{X: p.X, Y: p.Close}
	}
	out := appendLine(nil, "Close", closes, style(theme.Colors.Text, 2, 0))
	for _, s := range c.Overlays {
		out = appendLine(out, s.Key, s.Data, style(s.Color, s.Width, s.Dash))
	}

	start, end, ok := span(closes)
	if !ok {
		return out
	}
	for _, l := range c.Levels {
		out = append(out, hline(string(l.Kind), l.Y, start, end, style(l.LabelColor, l.Width, l.Dash)))
	}
	if len(c.Markers) > 0 {
		marks := gochart.AnnotationSeries{Name: "Signals"}
		for _, m := range c.Markers {
			label := "B"
			if m.Shape == chart.ShapeTriangleDown {
				label = "S"
			}
			marks.Annotations = append(marks.Annotations, gochart.Value2{
				XValue: gochart.TimeToFloat64(timeOf(m.X)),
				YValue: m.Y,
				Label:  label,
				Style:  gochart.Style{StrokeColor: color(m.Color), FontColor: color(m.Color)},
			})
		}
		out = append(out, marks)
	}
	return out
}

func rsiSeries(c chart.RSIChart) []gochart.Series {
	out := appendLine(nil, "RSI(14)", c.RSI.Data, style(c.RSI.Color, c.RSI.Width, c.RSI.Dash))
	if c.HasVKOSPI {
		if vk, ok := timeSeries("VKOSPI", c.VKOSPI.Data, style(c.VKOSPI.Color, c.VKOSPI.Width, c.VKOSPI.Dash)); ok {
			vk.YAxis = gochart.YAxisSecondary
			out = append(out, vk)
		}
	}
	if start, end, ok := span(c.RSI.Data); ok {
		for _, t := range c.Thresholds {
			out = append(out, hline(fmt.Sprintf("%.0f", t.Y), t.Y, start, end, style(t.Color, t.Width, t.Dash)))
		}
	}
	return out
}

func volumeSeries(c chart.VolumeChart, theme chart.Theme) []gochart.Series {
	vol := make([]chart.Point, len(c.Bars))
	for i, b := range c.Bars {
		vol[i] = chart.Point{X: b.X, Y: b.Y}
	}
	var out []gochart.Series
	if ts, ok := timeSeries("Volume", vol, gochart.Style{}); ok {
		out = append(out, gochart.HistogramSeries{
			Name:        "Volume",
			Style:       gochart.Style{StrokeColor: color(theme.Colors.Muted), FillColor: color(theme.Colors.Muted).WithAlpha(160)},
			InnerSeries: ts,
		})
	}
	return appendLine(out, "OBV", c.OBV.Data, style(c.OBV.Color, c.OBV.Width, c.OBV.Dash))
}

func comparisonSeries(c chart.ComparisonChart) []gochart.Series {
	var out []gochart.Series
	for _, s := range c.Series {
		out = appendLine(out, s.Name, s.Data, style(s.Color, s.Width, s.Dash))
	}
	if len(c.Series) > 0 {
		if start, end, ok := span(c.Series[0].Data); ok {
			b := c.Baseline
			out = append(out, hline("100", b.Y, start, end, style(b.Color, b.Width, b.Dash)))
		}
	}
	return out
}

func appendLine(out []gochart.Series, name string, data []chart.Point, st gochart.Style) []gochart.Series {
	if ts, ok := timeSeries(name, data, st); ok {
		out = append(out, ts)
	}
	return out
}

// timeSeries drops missing and undated points. ok is false when fewer than
// two points remain.
func timeSeries(name string, data []chart.Point, st gochart.Style) (gochart.TimeSeries, bool) {
	ts := gochart.TimeSeries{Name: name, Style: st}
	for _, p := range data {
		if !drawable(p) {
			continue
		}
		ts.XValues = append(ts.XValues, timeOf(p.X))
		ts.YValues = append(ts.YValues, p.Y.Float64)
	}
	return ts, len(ts.XValues) >= 2
}

func drawable(p chart.Point) bool {
	return p.X != 0 && p.Y.Valid && !math.IsNaN(p.Y.Float64) && !math.IsInf(p.Y.Float64, 0)
}

func span(data []chart.Point) (time.Time, time.Time, bool) {
	var start, end time.Time
	n := 0
	for _, p := range data {
		if !drawable(p) {
			continue
		}
		t := timeOf(p.X)
		if n == 0 || t.Before(start) {
			start = t
		}
		if n == 0 || t.After(end) {
			end = t
		}
		n++
	}
	return start, end, n >= 2
}

func hline(name string, y float64, start, end time.Time, st gochart.Style) gochart.TimeSeries {
	return gochart.TimeSeries{
		Name:    name,
		Style:   st,
		XValues: []time.Time{start, end},
		YValues: []float64{y, y},
	}
}

func hasLine(series []gochart.Series) bool {
	for _, s := range series {
		switch s.(type) {
		case gochart.TimeSeries, gochart.HistogramSeries:
			return true
		}
	}
	return false
}

func timeOf(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func style(c string, width float64, dash int) gochart.Style {
	st := gochart.Style{StrokeColor: color(c), StrokeWidth: width}
	if dash > 0 {
		st.StrokeDashArray = []float64{float64(dash), float64(dash)}
	}
	return st
}

func axisStyle(theme chart.Theme) gochart.Style {
	return gochart.Style{
		StrokeColor: color(theme.Colors.Border),
		FontColor:   color(theme.Colors.Muted),
	}
}

func color(css string) drawing.Color {
	return drawing.ParseColor(css)
}
