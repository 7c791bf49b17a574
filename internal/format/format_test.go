package format

import (
	"math"
	"testing"

	"github.com/guregu/null/v6"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in       null.Float
		decimals int
		want     string
	}{
		{null.FloatFrom(2500), 2, "2,500.00"},
		{null.FloatFrom(1234567.891), 2, "1,234,567.89"},
		{null.FloatFrom(2450), 0, "2,450"},
		{null.FloatFrom(-1500.5), 1, "-1,500.5"},
		{null.Float{}, 2, Placeholder},
		{null.FloatFrom(math.NaN()), 2, Placeholder},
	}
	for _, tt := range tests {
		if got := Number(tt.in, tt.decimals); got != tt.want {
			t.Fatalf("Number(%v, %d): expected %q, got %q", tt.in, tt.decimals, tt.want, got)
		}
	}
}

func TestPctAndCorr(t *testing.T) {
	if got := Pct(null.FloatFrom(1.54), 1); got != "+1.5%" {
		t.Fatalf("unexpected pct %q", got)
	}
	if got := Pct(null.FloatFrom(-3.21), 1); got != "-3.2%" {
		t.Fatalf("unexpected pct %q", got)
	}
	if got := Pct(null.FloatFrom(0), 1); got != "+0.0%" {
		t.Fatalf("zero should be signed positive, got %q", got)
	}
	if got := Corr(null.FloatFrom(0.7)); got != "+0.700" {
		t.Fatalf("unexpected corr %q", got)
	}
	if got := Corr(null.FloatFrom(-0.25)); got != "-0.250" {
		t.Fatalf("unexpected corr %q", got)
	}
	if Corr(null.Float{}) != Placeholder || Pct(null.Float{}, 1) != Placeholder {
		t.Fatal("expected placeholder for missing values")
	}
}

func TestVolume(t *testing.T) {
	tests := map[float64]string{
		2_340_000_000: "2.34B",
		512_300_000:   "512.3M",
		45_600:        "46K",
		999:           "999",
	}
	for in, want := range tests {
		if got := Volume(null.FloatFrom(in)); got != want {
			t.Fatalf("Volume(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestDates(t *testing.T) {
	if got := Date("2024-01-02"); got != "2024. 01. 02." {
		t.Fatalf("unexpected date %q", got)
	}
	if Date("") != "" || Date("not a date") != "" {
		t.Fatal("expected empty string for bad dates")
	}
	if got := DateTime("2024-01-02T15:04:00+09:00"); got != "2024. 01. 02. 오후 03:04" {
		t.Fatalf("unexpected datetime %q", got)
	}
	if got := DateTime("2024-01-02T00:30:00"); got != "2024. 01. 02. 오전 12:30" {
		t.Fatalf("unexpected datetime %q", got)
	}
}

func TestTimestamp(t *testing.T) {
	ts, ok := Timestamp("2024-01-02")
	if !ok || ts != 1704153600000 {
		t.Fatalf("unexpected timestamp %d %v", ts, ok)
	}
	if _, ok := Timestamp("01/02/2024"); ok {
		t.Fatal("expected parse failure")
	}
}
