package chart

import (
	"sort"

	"kospi-dashboard/internal/domain"

	"github.com/guregu/null/v6"
)

// MinFlowPoints is the fewest on-axis rows a flow chart needs to draw lines.
const MinFlowPoints = 2

const insufficientFlowMessage = "not enough investor flow data"

// FlowChart shows the net buying of foreign, institutional and individual
// investors for one market.
type FlowChart struct {
	Market   string            `json:"market"`
	Unit     string            `json:"unit"`
	LastDate string            `json:"lastDate"`
	Latest   domain.FlowValues `json:"latest"`
	Lines    []Series          `json:"lines"`
	Empty    bool              `json:"empty"`
	Message  string            `json:"message,omitempty"`
}

// BuildFlows returns one chart per market, kospi and kosdaq first.
func BuildFlows(candles []domain.Candle, blocks map[string]*domain.SupplyDemand, theme Theme) []FlowChart {
	axis := NewAxis(candles)
	markets := make([]string, 0, len(blocks))
	for m := range blocks {
		markets = append(markets, m)
	}
	sort.Slice(markets, func(i, j int) bool {
		ri, rj := marketRank(markets[i]), marketRank(markets[j])
		if ri != rj {
			return ri < rj
		}
		return markets[i] < markets[j]
	})
	out := make([]FlowChart, 0, len(markets))
	for _, m := range markets {
		out = append(out, BuildFlow(axis, m, blocks[m], theme))
	}
	return out
}

func marketRank(m string) int {
	switch m {
	case domain.MarketKOSPI:
		return 0
	case domain.MarketKOSDAQ:
		return 1
	}
	return 2
}

// BuildFlow aligns one market's flow rows. Fewer than MinFlowPoints rows on
// the axis produce the empty placeholder state.
func BuildFlow(axis Axis, market string, block *domain.SupplyDemand, theme Theme) FlowChart {
	fc := FlowChart{Market: market, Lines: []Series{}}
	if block == nil {
		fc.Empty, fc.Message = true, insufficientFlowMessage
		return fc
	}
	fc.Unit, fc.LastDate, fc.Latest = block.Unit, block.LastDate, block.Latest

	foreign := make(map[string]null.Float, len(block.Series))
	institution := make(map[string]null.Float, len(block.Series))
	individual := make(map[string]null.Float, len(block.Series))
	onAxis := 0
	for _, row := range block.Series {
		if _, ok := foreign[row.Date]; !ok {
			if _, hit := axis.Index(row.Date); hit {
				onAxis++
			}
		}
		foreign[row.Date] = row.Foreign
		institution[row.Date] = row.Institution
		individual[row.Date] = row.Individual
	}
	if onAxis < MinFlowPoints {
		fc.Empty, fc.Message = true, insufficientFlowMessage
		return fc
	}
	fc.Lines = []Series{
		line("foreign", "외국인", theme.Colors.Cyan, 2, 0, AlignValues(axis, foreign)),
		line("institution", "기관", theme.Colors.QQQ, 2, 0, AlignValues(axis, institution)),
		line("individual", "개인", theme.Colors.Amber, 1.5, 4, AlignValues(axis, individual)),
	}
	return fc
}
