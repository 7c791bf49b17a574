package domain

import "github.com/guregu/null/v6"

// Indicator keys published by the data-preparation job.
const (
	IndicatorMA5        = "ma5"
	IndicatorMA20       = "ma20"
	IndicatorMA60       = "ma60"
	IndicatorMA120      = "ma120"
	IndicatorMA240      = "ma240"
	IndicatorBBUpper    = "bb_upper"
	IndicatorBBMiddle   = "bb_middle"
	IndicatorBBLower    = "bb_lower"
	IndicatorRSI14      = "rsi14"
	IndicatorMACD       = "macd"
	IndicatorMACDSignal = "macd_signal"
	IndicatorMACDHist   = "macd_hist"
	IndicatorOBV        = "obv"
	IndicatorVKOSPI     = "vkospi"
)

// Markets carried in the supplyDemand block.
const (
	MarketKOSPI  = "kospi"
	MarketKOSDAQ = "kosdaq"
)

// Snapshot is the single market_data.json document. Every block is optional.
type Snapshot struct {
	Metadata          Metadata                 `json:"metadata"`
	OHLCV             []Candle                 `json:"ohlcv"`
	Indicators        Indicators               `json:"indicators"`
	Signals           []Signal                 `json:"signals"`
	SupportResistance []Level                  `json:"supportResistance"`
	Metrics           *Metrics                 `json:"metrics"`
	Correlations      *Correlations            `json:"correlations"`
	Comparison        *Comparison              `json:"comparison"`
	DecisionTree      *DecisionTree            `json:"decisionTree"`
	Range52W          *Range52W                `json:"range52w"`
	SupplyDemand      map[string]*SupplyDemand `json:"supplyDemand"`
}

type Metadata struct {
	LastUpdated string `json:"lastUpdated"`
	DataStart   string `json:"dataStart"`
	DataEnd     string `json:"dataEnd"`
	TotalDays   int    `json:"totalDays"`
}

// Candle is one trading day. The ascending sequence of candles is the date
// axis every other series is aligned to.
type Candle struct {
	Date   string     `json:"date"`
	Open   null.Float `json:"open"`
	High   null.Float `json:"high"`
	Low    null.Float `json:"low"`
	Close  null.Float `json:"close"`
	Volume null.Float `json:"volume"`
}

// IndicatorPoint is one entry of a sparse date-keyed series.
type IndicatorPoint struct {
	Date  string     `json:"date"`
	Value null.Float `json:"value"`
}

// Indicators maps an indicator key (see Indicator* constants) to its sparse series.
type Indicators map[string][]IndicatorPoint

// Series returns the named series, or nil when the key is absent.
func (i Indicators) Series(key string) []IndicatorPoint {
	if i == nil {
		return nil
	}
	return i[key]
}

type Signal struct {
	Date     string         `json:"date"`
	Type     SignalType     `json:"type"`
	Reason   string         `json:"reason"`
	Price    null.Float     `json:"price"`
	Strength SignalStrength `json:"strength"`
}

type Level struct {
	Level    null.Float `json:"level"`
	Type     LevelKind  `json:"type"`
	Strength null.Int   `json:"strength"`
}

type Metrics struct {
	WinRate           null.Float `json:"winRate"`
	MDD               null.Float `json:"mdd"`
	SharpeRatio       null.Float `json:"sharpeRatio"`
	TotalSignals      null.Int   `json:"totalSignals"`
	BuySignals        null.Int   `json:"buySignals"`
	ProfitableSignals null.Int   `json:"profitableSignals"`
	AvgReturn         null.Float `json:"avgReturn"`
	MaxReturn         null.Float `json:"maxReturn"`
	MinReturn         null.Float `json:"minReturn"`
}

type Correlations struct {
	Current   CorrelationPair      `json:"current"`
	Rolling60 []RollingCorrelation `json:"rolling60"`
}

type CorrelationPair struct {
	KospiQQQ null.Float `json:"kospi_qqq"`
	KospiSOX null.Float `json:"kospi_sox"`
}

type RollingCorrelation struct {
	Date     string     `json:"date"`
	KospiQQQ null.Float `json:"kospi_qqq"`
	KospiSOX null.Float `json:"kospi_sox"`
}

// Comparison holds the benchmark series normalized to 100 at the window start
// and the scalar one-year returns.
type Comparison struct {
	KospiNormalized []IndicatorPoint `json:"kospi_normalized"`
	QQQNormalized   []IndicatorPoint `json:"qqq_normalized"`
	SOXNormalized   []IndicatorPoint `json:"sox_normalized"`
	KospiCurrent    null.Float       `json:"kospi_current"`
	QQQCurrent      null.Float       `json:"qqq_current"`
	SOXCurrent      null.Float       `json:"sox_current"`
	KospiReturn     null.Float       `json:"kospi_return"`
	QQQReturn       null.Float       `json:"qqq_return"`
	SOXReturn       null.Float       `json:"sox_return"`
}

// DecisionTree is the externally computed trading stance, passed through
// unmodified apart from enum validation.
type DecisionTree struct {
	CurrentState     DecisionState      `json:"currentState"`
	StateLabel       string             `json:"stateLabel"`
	Color            string             `json:"color"`
	Advice           string             `json:"advice"`
	CashRatio        null.Int           `json:"cashRatio"`
	Strategy         string             `json:"strategy"`
	Description      string             `json:"description"`
	Confidence       null.Int           `json:"confidence"`
	Indicators       DecisionIndicators `json:"indicators"`
	SupportLevels    []LabeledLevel     `json:"supportLevels"`
	ResistanceLevels []LabeledLevel     `json:"resistanceLevels"`
}

type DecisionIndicators struct {
	RSI        IndicatorReading `json:"rsi"`
	MACD       IndicatorReading `json:"macd"`
	BBPosition IndicatorReading `json:"bbPosition"`
	Trend      IndicatorReading `json:"trend"`
}

type IndicatorReading struct {
	Value  null.Float `json:"value"`
	Signal SubSignal  `json:"signal"`
	Label  string     `json:"label"`
}

type LabeledLevel struct {
	Level null.Float `json:"level"`
	Label string     `json:"label"`
}

type Range52W struct {
	High     null.Float `json:"high"`
	Low      null.Float `json:"low"`
	Current  null.Float `json:"current"`
	Position null.Float `json:"position"`
}

// SupplyDemand is the per-market investor net flow block.
type SupplyDemand struct {
	LastDate string     `json:"lastDate"`
	Latest   FlowValues `json:"latest"`
	Series   []FlowRow  `json:"series"`
	Unit     string     `json:"unit"`
}

type FlowValues struct {
	Foreign     null.Float `json:"foreign"`
	Institution null.Float `json:"institution"`
	Individual  null.Float `json:"individual"`
}

type FlowRow struct {
	Date        string     `json:"date"`
	Individual  null.Float `json:"individual"`
	Foreign     null.Float `json:"foreign"`
	Institution null.Float `json:"institution"`
}
