package chart

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"kospi-dashboard/internal/domain"

	"github.com/guregu/null/v6"
)

func candlesFor(dates ...string) []domain.Candle {
	out := make([]domain.Candle, len(dates))
	for i, d := range dates {
		out[i] = domain.Candle{Date: d, Open: null.FloatFrom(100), High: null.FloatFrom(110), Low: null.FloatFrom(90), Close: null.FloatFrom(105), Volume: null.FloatFrom(1000)}
	}
	return out
}

func tradingDays(start string, n int) []string {
	d, _ := time.Parse("2006-01-02", start)
	out := make([]string, n)
	for i := range out {
		out[i] = d.AddDate(0, 0, i).Format("2006-01-02")
	}
	return out
}

func TestAlignScenario(t *testing.T) {
	axis := NewAxis([]domain.Candle{
		{Date: "2024-01-02", Close: null.FloatFrom(2500)},
		{Date: "2024-01-03", Close: null.FloatFrom(2550)},
	})
	got := Align(axis, []domain.IndicatorPoint{{Date: "2024-01-03", Value: null.FloatFrom(2525)}})

	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].X != 1704153600000 || got[0].Y.Valid {
		t.Fatalf("expected missing first point, got %+v", got[0])
	}
	if got[1].X != 1704240000000 || !got[1].Y.Valid || got[1].Y.Float64 != 2525 {
		t.Fatalf("unexpected second point: %+v", got[1])
	}
}

func TestAlignEdgeCases(t *testing.T) {
	if got := Align(NewAxis(nil), []domain.IndicatorPoint{{Date: "2024-01-02", Value: null.FloatFrom(1)}}); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}

	axis := NewAxis(candlesFor("2024-01-02", "2024-01-03"))
	got := Align(axis, []domain.IndicatorPoint{
		{Date: "2023-12-29", Value: null.FloatFrom(9)},
		{Date: "2024-01-02", Value: null.FloatFrom(0)},
		{Date: "2024-01-03", Value: null.FloatFrom(1)},
		{Date: "2024-01-03", Value: null.FloatFrom(2)},
	})
	if len(got) != 2 {
		t.Fatalf("off-axis dates must be dropped, got %d points", len(got))
	}
	if !got[0].Y.Valid || got[0].Y.Float64 != 0 {
		t.Fatalf("zero must stay a present value, got %+v", got[0])
	}
	if got[1].Y.Float64 != 2 {
		t.Fatalf("expected last duplicate to win, got %+v", got[1])
	}

	if got := Align(axis, nil); len(got) != 2 || HasData(got) {
		t.Fatalf("nil series should align to all-missing, got %+v", got)
	}
}

func TestAlignLengthProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(40)
		dates := tradingDays("2024-01-01", n)
		axis := NewAxis(candlesFor(dates...))

		present := map[string]bool{}
		var sparse []domain.IndicatorPoint
		for _, d := range dates {
			if rng.Intn(2) == 0 {
				present[d] = true
				sparse = append(sparse, domain.IndicatorPoint{Date: d, Value: null.FloatFrom(rng.Float64())})
			}
		}
		sparse = append(sparse, domain.IndicatorPoint{Date: "1999-01-01", Value: null.FloatFrom(1)})

		got := Align(axis, sparse)
		if len(got) != n {
			t.Fatalf("trial %d: expected %d points, got %d", trial, n, len(got))
		}
		for i, p := range got {
			if p.X != axis.Timestamp(i) {
				t.Fatalf("trial %d: point %d out of order", trial, i)
			}
			if p.Y.Valid != present[dates[i]] {
				t.Fatalf("trial %d: %s missing=%v", trial, dates[i], !p.Y.Valid)
			}
		}
	}
}

func TestAxisKeepsUnparseableDates(t *testing.T) {
	axis := NewAxis(candlesFor("2024-01-02", "bad"))
	if axis.Len() != 2 || axis.Timestamp(1) != 0 {
		t.Fatalf("unexpected axis: len=%d ts=%d", axis.Len(), axis.Timestamp(1))
	}
	if i, ok := axis.Index("bad"); !ok || i != 1 {
		t.Fatal("expected to find bad date slot")
	}
	if i, ok := axis.Index("2024-01-02"); !ok || i != 0 {
		t.Fatal("expected first date at slot 0")
	}
}

func ExampleAlign() {
	axis := NewAxis([]domain.Candle{{Date: "2024-01-02"}, {Date: "2024-01-03"}})
	for _, p := range Align(axis, []domain.IndicatorPoint{{Date: "2024-01-03", Value: null.FloatFrom(2525)}}) {
		fmt.Println(p.X, p.Y.Valid, p.Y.Float64)
	}
	// Output:
	// 1704153600000 false 0
	// 1704240000000 true 2525
}
