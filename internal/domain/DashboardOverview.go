package domain

type DashboardSummary struct {
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalCost        float64 `json:"totalCost"`
	TotalConversions int64   `json:"totalConversions"`
	AverageCtr       float64 `json:"averageCtr"`
	AverageRoas      float64 `json:"averageRoas"`
	AverageCpm       float64 `json:"averageCpm"`
	AverageRoi       float64 `json:"averageRoi"`
}

// DashboardGrowth guarda a variação percentual de cada métrica; nil quando não há base de comparação
type DashboardGrowth struct {
	ImpressionsGrowth *float64 `json:"impressionsGrowth"`
	ClicksGrowth      *float64 `json:"clicksGrowth"`
	CostGrowth        *float64 `json:"costGrowth"`
	ConversionsGrowth *float64 `json:"conversionsGrowth"`
	CtrGrowth         *float64 `json:"ctrGrowth"`
	CpmGrowth         *float64 `json:"cpmGrowth"`
	RoasGrowth        *float64 `json:"roasGrowth"`
	RoiGrowth         *float64 `json:"roiGrowth"`
}

type RecentCampaign struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Status            CampaignStatus `json:"status"`
	Platform          Platform       `json:"platform"`
	Spending          float64        `json:"spending"`
	Impressions       int64          `json:"impressions"`
	Clicks            int64          `json:"clicks"`
	Conversions       int64          `json:"conversions"`
	BudgetUtilization *float64       `json:"budgetUtilization,omitempty"`
}

type DashboardOverview struct {
	Summary         DashboardSummary `json:"summary"`
	Growth          DashboardGrowth  `json:"growth"`
	Trends          []TrendPoint     `json:"trends"`
	RecentCampaigns []RecentCampaign `json:"recentCampaigns"`
	IsDemo          bool             `json:"isDemo,omitempty"`
}
