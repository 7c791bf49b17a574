package domain

import "fmt"

// SignalType is the side of a trading signal.
type SignalType string

const (
	SignalBuy  SignalType = "BUY"
	SignalSell SignalType = "SELL"
)

func (t SignalType) Valid() bool {
	switch t {
	case SignalBuy, SignalSell:
		return true
	}
	return false
}

func (t *SignalType) UnmarshalText(b []byte) error {
	v := SignalType(b)
	if v != "" && !v.Valid() {
		return fmt.Errorf("unknown signal type %q", string(b))
	}
	*t = v
	return nil
}

// SignalStrength orders signals into three marker tiers.
type SignalStrength string

const (
	StrengthWeak     SignalStrength = "WEAK"
	StrengthModerate SignalStrength = "MODERATE"
	StrengthStrong   SignalStrength = "STRONG"
)

func (s SignalStrength) Valid() bool {
	switch s {
	case StrengthWeak, StrengthModerate, StrengthStrong:
		return true
	}
	return false
}

func (s *SignalStrength) UnmarshalText(b []byte) error {
	v := SignalStrength(b)
	if v != "" && !v.Valid() {
		return fmt.Errorf("unknown signal strength %q", string(b))
	}
	*s = v
	return nil
}

// LevelKind tags a horizontal price level.
type LevelKind string

const (
	LevelSupport    LevelKind = "SUPPORT"
	LevelResistance LevelKind = "RESISTANCE"
)

func (k LevelKind) Valid() bool {
	switch k {
	case LevelSupport, LevelResistance:
		return true
	}
	return false
}

func (k *LevelKind) UnmarshalText(b []byte) error {
	v := LevelKind(b)
	if v != "" && !v.Valid() {
		return fmt.Errorf("unknown level type %q", string(b))
	}
	*k = v
	return nil
}

// DecisionState is the current trading stance.
type DecisionState string

const (
	StateStrongBuy  DecisionState = "STRONG_BUY"
	StateBullish    DecisionState = "BULLISH"
	StateNeutral    DecisionState = "NEUTRAL"
	StateBearish    DecisionState = "BEARISH"
	StateStrongSell DecisionState = "STRONG_SELL"
)

// DecisionStates lists the states from most bullish to most bearish.
var DecisionStates = []DecisionState{StateStrongBuy, StateBullish, StateNeutral, StateBearish, StateStrongSell}

func (s DecisionState) Valid() bool {
	switch s {
	case StateStrongBuy, StateBullish, StateNeutral, StateBearish, StateStrongSell:
		return true
	}
	return false
}

func (s *DecisionState) UnmarshalText(b []byte) error {
	v := DecisionState(b)
	if v != "" && !v.Valid() {
		return fmt.Errorf("unknown decision state %q", string(b))
	}
	*s = v
	return nil
}

// Tone is the semantic color family of a categorical value.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNeutral  Tone = "neutral"
	ToneNegative Tone = "negative"
)

// Tone maps the state onto a color family. An empty state reads as neutral.
func (s DecisionState) Tone() Tone {
	switch s {
	case StateStrongBuy, StateBullish:
		return TonePositive
	case StateBearish, StateStrongSell:
		return ToneNegative
	case StateNeutral, "":
		return ToneNeutral
	}
	return ToneNeutral
}

// SubSignal is the category reported for one decision indicator (RSI, MACD,
// Bollinger position, trend).
type SubSignal string

const (
	SubBullish         SubSignal = "BULLISH"
	SubStrongUptrend   SubSignal = "STRONG_UPTREND"
	SubUptrend         SubSignal = "UPTREND"
	SubRecovering      SubSignal = "RECOVERING"
	SubAtLower         SubSignal = "AT_LOWER"
	SubOversold        SubSignal = "OVERSOLD"
	SubNeutral         SubSignal = "NEUTRAL"
	SubSideways        SubSignal = "SIDEWAYS"
	SubMiddle          SubSignal = "MIDDLE"
	SubWeakening       SubSignal = "WEAKENING"
	SubBearish         SubSignal = "BEARISH"
	SubStrongDowntrend SubSignal = "STRONG_DOWNTREND"
	SubDowntrend       SubSignal = "DOWNTREND"
	SubAtUpper         SubSignal = "AT_UPPER"
	SubOverbought      SubSignal = "OVERBOUGHT"
)

func (s SubSignal) Valid() bool {
	switch s {
	case SubBullish, SubStrongUptrend, SubUptrend, SubRecovering, SubAtLower, SubOversold,
		SubNeutral, SubSideways, SubMiddle, SubWeakening,
		SubBearish, SubStrongDowntrend, SubDowntrend, SubAtUpper, SubOverbought:
		return true
	}
	return false
}

func (s *SubSignal) UnmarshalText(b []byte) error {
	v := SubSignal(b)
	if v != "" && !v.Valid() {
		return fmt.Errorf("unknown indicator signal %q", string(b))
	}
	*s = v
	return nil
}

// Tone reports the color family of the sub-signal. WEAKENING is amber, not
// red, and an absent signal reads as neutral.
func (s SubSignal) Tone() Tone {
	switch s {
	case SubBullish, SubStrongUptrend, SubUptrend, SubRecovering, SubAtLower, SubOversold:
		return TonePositive
	case SubNeutral, SubSideways, SubMiddle, SubWeakening, "":
		return ToneNeutral
	case SubBearish, SubStrongDowntrend, SubDowntrend, SubAtUpper, SubOverbought:
		return ToneNegative
	}
	return ToneNeutral
}
