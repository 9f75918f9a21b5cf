package domain

import (
	"sort"
	"strings"
)

type SearchConsoleDimension string

const (
	DimensionQuery   SearchConsoleDimension = "query"
	DimensionPage    SearchConsoleDimension = "page"
	DimensionCountry SearchConsoleDimension = "country"
	DimensionDevice  SearchConsoleDimension = "device"
)

func (d SearchConsoleDimension) IsValid() bool {
	switch d {
	case DimensionQuery, DimensionPage, DimensionCountry, DimensionDevice:
		return true
	}
	return false
}

type SearchConsoleFilter struct {
	TenantID   string
	SiteURL    string
	Range      DateRange
	Visibility DataVisibilityPolicy
}

type SearchConsoleTotals struct {
	Clicks      int64
	Impressions int64
	AvgPosition float64
	Rows        int64
}

type BreakdownItem struct {
	Key         string  `json:"key"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Ctr         float64 `json:"ctr"`
	Position    float64 `json:"position"`
}

// RankBreakdown ordena por cliques desc, impressões desc e chave asc, mantendo os primeiros limit itens
func RankBreakdown(items []BreakdownItem, limit int) []BreakdownItem {
	ranked := make([]BreakdownItem, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Clicks != ranked[j].Clicks {
			return ranked[i].Clicks > ranked[j].Clicks
		}
		if ranked[i].Impressions != ranked[j].Impressions {
			return ranked[i].Impressions > ranked[j].Impressions
		}
		return strings.Compare(ranked[i].Key, ranked[j].Key) < 0
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

type SearchConsoleSummary struct {
	Clicks            int64    `json:"clicks"`
	Impressions       int64    `json:"impressions"`
	Ctr               float64  `json:"ctr"`
	AvgPosition       float64  `json:"avgPosition"`
	ClicksGrowth      *float64 `json:"clicksGrowth"`
	ImpressionsGrowth *float64 `json:"impressionsGrowth"`
	CtrGrowth         *float64 `json:"ctrGrowth"`
	PositionGrowth    *float64 `json:"positionGrowth"`
}

type SearchConsoleOverview struct {
	Summary   SearchConsoleSummary `json:"summary"`
	Queries   []BreakdownItem      `json:"topQueries"`
	Pages     []BreakdownItem      `json:"topPages"`
	Countries []BreakdownItem      `json:"topCountries"`
	Devices   []BreakdownItem      `json:"topDevices"`
}
