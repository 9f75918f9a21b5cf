package domain

type InsightLevel string

const (
	InsightLevelInfo     InsightLevel = "info"
	InsightLevelWarning  InsightLevel = "warning"
	InsightLevelCritical InsightLevel = "critical"
)

// BusinessMetrics são os KPIs de negócio recalculados a partir do resumo e das variações do dashboard
type BusinessMetrics struct {
	Revenue        float64  `json:"revenue"`
	Cost           float64  `json:"cost"`
	Profit         float64  `json:"profit"`
	ROI            float64  `json:"roi"`
	ROAS           float64  `json:"roas"`
	CTR            float64  `json:"ctr"`
	CPA            float64  `json:"cpa"`
	CPC            float64  `json:"cpc"`
	ConversionRate float64  `json:"conversionRate"`
	CAC            float64  `json:"cac"`
	LTV            float64  `json:"ltv"`
	CPCGrowth      *float64 `json:"cpcGrowth"`
}

type InsightItem struct {
	Title  string       `json:"title"`
	Detail string       `json:"detail"`
	Level  InsightLevel `json:"level"`
}

type Recommendation struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
	Action string `json:"action"`
}

type WhatIfProjection struct {
	BudgetAdjustment float64 `json:"budgetAdjustment"`
	Elasticity       float64 `json:"elasticity"`
	ProjectedRevenue float64 `json:"projectedRevenue"`
	ProjectedCost    float64 `json:"projectedCost"`
	ProjectedProfit  float64 `json:"projectedProfit"`
	ProjectedROI     float64 `json:"projectedRoi"`
}

type ForecastPoint struct {
	Month   string  `json:"month"` // yyyy-mm
	Revenue float64 `json:"revenue"`
}

type FunnelStage struct {
	Stage string `json:"stage"`
	Value int64  `json:"value"`
}

type CampaignRevenueRank struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Platform         Platform `json:"platform"`
	Spending         float64  `json:"spending"`
	EstimatedRevenue float64  `json:"estimatedRevenue"`
}

type AiInsights struct {
	Metrics         BusinessMetrics       `json:"metrics"`
	Insights        []InsightItem         `json:"insights"`
	Anomalies       []InsightItem         `json:"anomalies"`
	Recommendations []Recommendation      `json:"recommendations"`
	WhatIf          WhatIfProjection      `json:"whatIf"`
	Forecast        []ForecastPoint       `json:"forecast"`
	Funnel          []FunnelStage         `json:"funnel"`
	CampaignRanking []CampaignRevenueRank `json:"campaignRanking"`
	IsDemo          bool                  `json:"isDemo,omitempty"`
}
