// Package dashboard assembles the render-ready view model from a snapshot.
package dashboard

import (
	"sort"

	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/domain"
	"kospi-dashboard/internal/format"
	"kospi-dashboard/internal/summary"

	"github.com/guregu/null/v6"
)

// Chart names accepted by Dashboard.Chart.
const (
	ChartMain        = "main"
	ChartRSI         = "rsi"
	ChartMACD        = "macd"
	ChartVolume      = "volume"
	ChartComparison  = "comparison"
	ChartCorrelation = "correlation"
	ChartFlows       = "flows"
)

// ChartNames lists every chart in display order.
var ChartNames = []string{ChartMain, ChartRSI, ChartMACD, ChartVolume, ChartComparison, ChartCorrelation, ChartFlows}

type Charts struct {
	Main        chart.PriceChart       `json:"main"`
	RSI         chart.RSIChart         `json:"rsi"`
	MACD        chart.MACDChart        `json:"macd"`
	Volume      chart.VolumeChart      `json:"volume"`
	Comparison  chart.ComparisonChart  `json:"comparison"`
	Correlation chart.CorrelationChart `json:"correlation"`
	Flows       []chart.FlowChart      `json:"flows"`
}

type SignalRow struct {
	Date      string                `json:"date"`
	DateText  string                `json:"dateText"`
	Type      domain.SignalType     `json:"type"`
	Strength  domain.SignalStrength `json:"strength"`
	Reason    string                `json:"reason"`
	Price     null.Float            `json:"price"`
	PriceText string                `json:"priceText"`
	Color     string                `json:"color"`
}

// Dashboard is the complete view model for one snapshot.
type Dashboard struct {
	Header   summary.Header         `json:"header"`
	Metrics  summary.MetricsSummary `json:"metrics"`
	Decision summary.DecisionPanel  `json:"decision"`
	Charts   Charts                 `json:"charts"`
	Signals  []SignalRow            `json:"signals"`
}

// Build derives every panel. The snapshot is only read.
func Build(snap *domain.Snapshot, theme chart.Theme) *Dashboard {
	if snap == nil {
		snap = &domain.Snapshot{}
	}
	return &Dashboard{
		Header:   summary.BuildHeader(snap, theme),
		Metrics:  summary.Metrics(snap.Metrics, snap.Signals, theme),
		Decision: summary.Decision(snap.DecisionTree, theme),
		Charts: Charts{
			Main:        chart.BuildPrice(snap.OHLCV, snap.Indicators, snap.Signals, snap.SupportResistance, theme),
			RSI:         chart.BuildRSI(snap.OHLCV, snap.Indicators, theme),
			MACD:        chart.BuildMACD(snap.OHLCV, snap.Indicators, theme),
			Volume:      chart.BuildVolume(snap.OHLCV, snap.Indicators, theme),
			Comparison:  chart.BuildComparison(snap.OHLCV, snap.Comparison, theme),
			Correlation: chart.BuildCorrelation(snap.OHLCV, snap.Correlations, theme),
			Flows:       chart.BuildFlows(snap.OHLCV, snap.SupplyDemand, theme),
		},
		Signals: signalRows(snap.Signals, theme),
	}
}

func signalRows(signals []domain.Signal, theme chart.Theme) []SignalRow {
	rows := make([]SignalRow, 0, len(signals))
	for _, s := range signals {
		color := theme.Colors.Sell
		if s.Type == domain.SignalBuy {
			color = theme.Colors.Buy
		}
		rows = append(rows, SignalRow{
			Date:      s.Date,
			DateText:  format.Date(s.Date),
			Type:      s.Type,
			Strength:  s.Strength,
			Reason:    s.Reason,
			Price:     s.Price,
			PriceText: format.Number(s.Price, 2),
			Color:     color,
		})
	}
	return rows
}

// Chart returns the named chart.
func (d *Dashboard) Chart(name string) (any, bool) {
	switch name {
	case ChartMain:
		return d.Charts.Main, true
	case ChartRSI:
		return d.Charts.RSI, true
	case ChartMACD:
		return d.Charts.MACD, true
	case ChartVolume:
		return d.Charts.Volume, true
	case ChartComparison:
		return d.Charts.Comparison, true
	case ChartCorrelation:
		return d.Charts.Correlation, true
	case ChartFlows:
		return d.Charts.Flows, true
	}
	return nil, false
}

// Summary is the compact header, metrics and correlation view.
type Summary struct {
	Header  summary.Header         `json:"header"`
	Metrics summary.MetricsSummary `json:"metrics"`
}

func (d *Dashboard) Summary() Summary {
	return Summary{Header: d.Header, Metrics: d.Metrics}
}

// RecentSignals returns signals newest first ("desc", the default) or oldest
// first ("asc"), truncated to limit when limit > 0. The dashboard is not modified.
func (d *Dashboard) RecentSignals(order string, limit int) []SignalRow {
	rows := make([]SignalRow, len(d.Signals))
	copy(rows, d.Signals)
	if order != "asc" {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	} else {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
