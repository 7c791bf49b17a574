package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSnapshotDecodeKeepsNulls(t *testing.T) {
	raw := `{
		"ohlcv": [{"date":"2024-01-02","open":2490,"high":2510,"low":2480,"close":2500,"volume":1000}],
		"indicators": {"ma5": [{"date":"2024-01-02","value":null}], "rsi14": [{"date":"2024-01-02","value":0}]},
		"signals": [{"date":"2024-01-02","type":"BUY","reason":"x","price":null,"strength":"STRONG"}],
		"decisionTree": {"currentState":"NEUTRAL","indicators":{"rsi":{"value":55.1,"signal":"NEUTRAL","label":"neutral"}}}
	}`
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Indicators.Series(IndicatorMA5)[0].Value.Valid {
		t.Fatal("expected null ma5 value to stay missing")
	}
	rsi := snap.Indicators.Series(IndicatorRSI14)[0].Value
	if !rsi.Valid || rsi.Float64 != 0 {
		t.Fatalf("expected zero rsi to stay present, got %+v", rsi)
	}
	if snap.Signals[0].Price.Valid {
		t.Fatal("expected null price")
	}
	if snap.Metrics != nil || snap.Range52W != nil {
		t.Fatal("expected absent blocks to stay nil")
	}
	if snap.Indicators.Series("missing") != nil {
		t.Fatal("expected nil for absent indicator")
	}
}

func TestSnapshotDecodeRejectsUnknownEnums(t *testing.T) {
	tests := map[string]string{
		"signal type":     `{"signals":[{"date":"2024-01-02","type":"HOLD"}]}`,
		"signal strength": `{"signals":[{"date":"2024-01-02","type":"BUY","strength":"HUGE"}]}`,
		"level type":      `{"supportResistance":[{"level":1,"type":"PIVOT"}]}`,
		"decision state":  `{"decisionTree":{"currentState":"MAYBE"}}`,
		"indicator":       `{"decisionTree":{"indicators":{"trend":{"signal":"ROCKET"}}}}`,
	}
	for name, raw := range tests {
		var snap Snapshot
		err := json.Unmarshal([]byte(raw), &snap)
		if err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
		if !strings.Contains(err.Error(), "unknown") {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
	}
}

func TestSnapshotDecodeAllowsAbsentEnums(t *testing.T) {
	var snap Snapshot
	if err := json.Unmarshal([]byte(`{"decisionTree":{"stateLabel":"x"},"signals":[{"date":"2024-01-02"}]}`), &snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.DecisionTree.CurrentState != "" || snap.DecisionTree.Indicators.RSI.Signal.Tone() != ToneNeutral {
		t.Fatalf("unexpected zero values: %+v", snap.DecisionTree)
	}
}

func TestSubSignalToneIsExhaustive(t *testing.T) {
	expected := map[SubSignal]Tone{
		SubBullish: TonePositive, SubStrongUptrend: TonePositive, SubUptrend: TonePositive,
		SubRecovering: TonePositive, SubAtLower: TonePositive, SubOversold: TonePositive,
		SubNeutral: ToneNeutral, SubSideways: ToneNeutral, SubMiddle: ToneNeutral, SubWeakening: ToneNeutral,
		SubBearish: ToneNegative, SubStrongDowntrend: ToneNegative, SubDowntrend: ToneNegative,
		SubAtUpper: ToneNegative, SubOverbought: ToneNegative,
	}
	for sig, tone := range expected {
		if !sig.Valid() {
			t.Fatalf("%s should be valid", sig)
		}
		if got := sig.Tone(); got != tone {
			t.Fatalf("%s: expected %s, got %s", sig, tone, got)
		}
	}
}

func TestDecisionStateTone(t *testing.T) {
	if StateStrongBuy.Tone() != TonePositive || StateNeutral.Tone() != ToneNeutral || StateStrongSell.Tone() != ToneNegative {
		t.Fatal("unexpected decision tones")
	}
	if len(DecisionStates) != 5 {
		t.Fatalf("expected 5 states, got %d", len(DecisionStates))
	}
}
