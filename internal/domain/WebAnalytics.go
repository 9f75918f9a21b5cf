package domain

import "time"

// WebAnalyticsDaily é a linha diária do GA4 de um tenant
type WebAnalyticsDaily struct {
	ID                 string       `json:"id"`
	TenantID           string       `json:"tenant_id"`
	Date               time.Time    `json:"date"`
	Sessions           int64        `json:"sessions"`
	ActiveUsers        int64        `json:"active_users"`
	NewUsers           int64        `json:"new_users"`
	EngagementRate     float64      `json:"engagement_rate"`
	BounceRate         float64      `json:"bounce_rate"`
	AvgSessionDuration float64      `json:"avg_session_duration"`
	PageViews          int64        `json:"page_views"`
	Metadata           *SeoMetadata `json:"metadata,omitempty"`
	IsMockData         bool         `json:"is_mock_data"`
}

// SeoMetadata é o conteúdo tipado da coluna metadata. Ponteiro nulo indica bloco ausente.
type SeoMetadata struct {
	SeoMetrics *PremiumSeoMetrics `json:"seoMetrics,omitempty"`
	Location   *Location          `json:"location,omitempty"`
}

// PremiumSeoMetrics vem de ferramentas externas de SEO. Cada campo nulo significa "não informado",
// diferente de um zero informado.
type PremiumSeoMetrics struct {
	OrganicSessions      *float64 `json:"organicSessions,omitempty"`
	AvgTimeOnPage        *float64 `json:"avgTimeOnPage,omitempty"`
	OrganicSessionsTrend *float64 `json:"organicSessionsTrend,omitempty"`
	AvgTimeOnPageTrend   *float64 `json:"avgTimeOnPageTrend,omitempty"`
	GoalCompletions      *float64 `json:"goalCompletions,omitempty"`
	AvgPosition          *float64 `json:"avgPosition,omitempty"`
	AvgPositionTrend     *float64 `json:"avgPositionTrend,omitempty"`
	UR                   *float64 `json:"ur,omitempty"`
	DR                   *float64 `json:"dr,omitempty"`
	Backlinks            *float64 `json:"backlinks,omitempty"`
	ReferringDomains     *float64 `json:"referringDomains,omitempty"`
	Keywords             *float64 `json:"keywords,omitempty"`
	TrafficCost          *float64 `json:"trafficCost,omitempty"`
}

type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

type WebAnalyticsFilter struct {
	TenantID   string
	Range      DateRange
	Visibility DataVisibilityPolicy
}

// WebAnalyticsTotals são as somas e médias de uma janela
type WebAnalyticsTotals struct {
	Sessions           int64
	NewUsers           int64
	PageViews          int64
	AvgSessionDuration float64
	AvgBounceRate      float64
	AvgEngagementRate  float64
	Rows               int64
}
