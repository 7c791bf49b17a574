package summary

import (
	"fmt"
	"strconv"

	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/domain"
	"kospi-dashboard/internal/format"

	"github.com/guregu/null/v6"
)

type MetricCard struct {
	Value  null.Float `json:"value"`
	Text   string     `json:"text"`
	Sub    string     `json:"sub"`
	Bucket Bucket     `json:"bucket"`
	Color  string     `json:"color"`
}

type SignalCounts struct {
	Total  int `json:"total"`
	Buy    int `json:"buy"`
	Sell   int `json:"sell"`
	Strong int `json:"strong"`
}

// MetricsSummary backs the four strategy performance cards.
type MetricsSummary struct {
	WinRate  MetricCard   `json:"winRate"`
	Drawdown MetricCard   `json:"mdd"`
	Sharpe   MetricCard   `json:"sharpe"`
	Signals  SignalCounts `json:"signals"`
}

// CountSignals tallies signals by side; Strong counts STRONG signals of either side.
func CountSignals(signals []domain.Signal) SignalCounts {
	var c SignalCounts
	for _, s := range signals {
		switch s.Type {
		case domain.SignalBuy:
			c.Buy++
		case domain.SignalSell:
			c.Sell++
		default:
			continue
		}
		if s.Strength == domain.StrengthStrong {
			c.Strong++
		}
	}
	c.Total = c.Buy + c.Sell
	return c
}

// Metrics grades the backtest block. Missing values render as the
// placeholder and grade neutral.
func Metrics(m *domain.Metrics, signals []domain.Signal, theme chart.Theme) MetricsSummary {
	if m == nil {
		m = &domain.Metrics{}
	}
	out := MetricsSummary{
		WinRate:  card(m.WinRate, WinRateBucket, theme),
		Drawdown: card(m.MDD, DrawdownBucket, theme),
		Sharpe:   card(m.SharpeRatio, SharpeBucket, theme),
		Signals:  CountSignals(signals),
	}
	out.WinRate.Text = fractionPct(m.WinRate)
	out.WinRate.Sub = fmt.Sprintf("수익 %s / %s 매수 시그널", count(m.ProfitableSignals), count(m.BuySignals))
	out.Drawdown.Text = fractionPct(m.MDD)
	out.Drawdown.Sub = fmt.Sprintf("평균 수익: %s / 트레이드", format.Pct(scale(m.AvgReturn, 100), 1))
	out.Sharpe.Text = format.Placeholder
	if m.SharpeRatio.Valid {
		out.Sharpe.Text = strconv.FormatFloat(m.SharpeRatio.Float64, 'f', 2, 64)
	}
	out.Sharpe.Sub = "RF 3% 기준 / 연환산"
	return out
}

func card(v null.Float, bucket func(float64) Bucket, theme chart.Theme) MetricCard {
	b := Neutral
	if v.Valid {
		b = bucket(v.Float64)
	}
	return MetricCard{Value: v, Bucket: b, Color: theme.ToneColor(b.Tone())}
}

func count(v null.Int) string {
	if !v.Valid {
		return format.Placeholder
	}
	return strconv.FormatInt(v.Int64, 10)
}

func scale(v null.Float, k float64) null.Float {
	if !v.Valid {
		return v
	}
	return null.FloatFrom(v.Float64 * k)
}

// fractionPct renders 0.553 as "55.3%".
func fractionPct(v null.Float) string {
	if !v.Valid {
		return format.Placeholder
	}
	return strconv.FormatFloat(v.Float64*100, 'f', 1, 64) + "%"
}
