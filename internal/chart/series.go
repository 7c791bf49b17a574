package chart

import (
	"github.com/guregu/null/v6"
)

type SeriesKind string

const (
	KindLine        SeriesKind = "line"
	KindBar         SeriesKind = "bar"
	KindCandlestick SeriesKind = "candlestick"
)

// Series is one named, styled line aligned to the axis.
type Series struct {
	Key   string     `json:"key"`
	Name  string     `json:"name"`
	Kind  SeriesKind `json:"type"`
	Color string     `json:"color"`
	Width float64    `json:"width"`
	Dash  int        `json:"dashArray"`
	Data  []Point    `json:"data"`
}

// CandlePoint carries the four prices of one day. Any of them may be null.
type CandlePoint struct {
	X     int64      `json:"x"`
	Open  null.Float `json:"open"`
	High  null.Float `json:"high"`
	Low   null.Float `json:"low"`
	Close null.Float `json:"close"`
}

// Bar is a colored column.
type Bar struct {
	X     int64      `json:"x"`
	Y     null.Float `json:"y"`
	Color string     `json:"color"`
}

func line(key, name, color string, width float64, dash int, data []Point) Series {
	return Series{Key: key, Name: name, Kind: KindLine, Color: color, Width: width, Dash: dash, Data: data}
}
