package insighting

import (
	"sort"
	"time"
	"unicode/utf8"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/kpi"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

const (
	ltvMultiplier      = 3
	maxRecommendations = 5
	forecastMonths     = 3
	daysPerMonth       = 30
	topRankedCampaigns = 6
	maxCampaignName    = 22

	highElasticity = 0.78
	lowElasticity  = 0.55
)

// Fatores de receita estimada por plataforma
var platformMultiplier = map[domain.Platform]float64{
	domain.PlatformGoogleAds:       1.08,
	domain.PlatformFacebook:        0.97,
	domain.PlatformTikTok:          0.94,
	domain.PlatformLineAds:         0.9,
	domain.PlatformShopee:          1.02,
	domain.PlatformLazada:          0.99,
	domain.PlatformGoogleAnalytics: 1,
}

// DeriveMetrics recalcula os KPIs de negócio apenas com o resumo e as variações do overview.
// Não reaproveita as razões do backend além de CTR e ROAS médios.
func DeriveMetrics(summary domain.DashboardSummary, growth domain.DashboardGrowth) domain.BusinessMetrics {
	cost := summary.TotalCost
	roas := summary.AverageRoas
	clicks := float64(summary.TotalClicks)
	conversions := float64(summary.TotalConversions)

	revenue := cost * roas
	profit := revenue - cost
	cpa := kpi.SafeDivide(cost, conversions)
	cpc := kpi.SafeDivide(cost, clicks)

	metrics := domain.BusinessMetrics{
		Revenue:        revenue,
		Cost:           cost,
		Profit:         profit,
		ROI:            kpi.SafeDivide(profit, cost) * 100,
		ROAS:           roas,
		CTR:            summary.AverageCtr,
		CPA:            cpa,
		CPC:            cpc,
		ConversionRate: kpi.SafeDivide(conversions, clicks) * 100,
		CAC:            cpa,
		LTV:            kpi.SafeDivide(revenue, conversions) * ltvMultiplier,
	}

	previousCost := previousFromGrowth(cost, growth.CostGrowth)
	previousClicks := previousFromGrowth(clicks, growth.ClicksGrowth)
	if previousCost != nil && previousClicks != nil {
		previousCpc := kpi.SafeDivide(*previousCost, *previousClicks)
		if previousCpc > 0 {
			g := (cpc - previousCpc) / previousCpc * 100
			metrics.CPCGrowth = &g
		}
	}

	return metrics
}

// previousFromGrowth reconstrói o valor anterior: atual / (1 + variação/100)
func previousFromGrowth(current float64, growth *float64) *float64 {
	if growth == nil {
		return nil
	}
	ratio := 1 + *growth/100
	if ratio <= 0 {
		return nil
	}
	previous := current / ratio
	return &previous
}

func level(warn bool) domain.InsightLevel {
	if warn {
		return domain.InsightLevelWarning
	}
	return domain.InsightLevelInfo
}

func BuildInsights(m domain.BusinessMetrics) []domain.InsightItem {
	return []domain.InsightItem{
		{
			Title:  "CTR",
			Detail: "CTR médio de " + utils.FormatPercent(m.CTR),
			Level:  level(m.CTR < 1),
		},
		{
			Title:  "CPA",
			Detail: "CPA atual de " + utils.FormatDecimal(m.CPA) + " por conversão",
			Level:  level(m.CPA > 600),
		},
		{
			Title:  "ROI / ROAS",
			Detail: "ROI de " + utils.FormatPercent(m.ROI) + " e ROAS de " + utils.FormatDecimal(m.ROAS) + "x",
			Level:  level(m.ROAS < 1.8),
		},
		{
			Title:  "Taxa de conversão",
			Detail: "Taxa de conversão de " + utils.FormatPercent(m.ConversionRate),
			Level:  level(m.ConversionRate < 2),
		},
	}
}

// DetectAnomalies sempre devolve ao menos um item
func DetectAnomalies(m domain.BusinessMetrics, growth domain.DashboardGrowth) []domain.InsightItem {
	anomalies := []domain.InsightItem{}

	conversionsGrowth := valueOrZero(growth.ConversionsGrowth)
	costGrowth := valueOrZero(growth.CostGrowth)

	if m.CPCGrowth != nil && *m.CPCGrowth > 20 {
		anomalies = append(anomalies, domain.InsightItem{
			Title:  "CPC fora do padrão",
			Detail: "CPC subiu " + utils.FormatPercent(*m.CPCGrowth) + " em relação ao período anterior",
			Level:  domain.InsightLevelCritical,
		})
	}

	if conversionsGrowth < -20 {
		anomalies = append(anomalies, domain.InsightItem{
			Title:  "Queda forte de conversões",
			Detail: "Conversões caíram " + utils.FormatPercent(-conversionsGrowth),
			Level:  domain.InsightLevelCritical,
		})
	}

	if costGrowth > 15 && conversionsGrowth <= 0 {
		anomalies = append(anomalies, domain.InsightItem{
			Title:  "Custo crescendo mais que o resultado",
			Detail: "O investimento aumentou sem crescimento das conversões",
			Level:  domain.InsightLevelWarning,
		})
	}

	if m.ROAS > 0 && m.ROAS < 1.5 {
		anomalies = append(anomalies, domain.InsightItem{
			Title:  "ROAS abaixo do limite seguro",
			Detail: "ROAS em " + utils.FormatDecimal(m.ROAS) + "x",
			Level:  domain.InsightLevelWarning,
		})
	}

	if len(anomalies) == 0 {
		anomalies = append(anomalies, domain.InsightItem{
			Title:  "Nenhuma anomalia relevante",
			Detail: "Os indicadores principais estão dentro do esperado",
			Level:  domain.InsightLevelInfo,
		})
	}

	return anomalies
}

func Recommend(m domain.BusinessMetrics) []domain.Recommendation {
	recommendations := []domain.Recommendation{}

	if m.ROAS < 2 {
		recommendations = append(recommendations, domain.Recommendation{
			Title:  "Redistribuir orçamento por retorno",
			Reason: "ROAS abaixo da meta",
			Action: "Aumentar a verba dos grupos com ROAS alto e reduzir a dos que dão prejuízo",
		})
	}

	if m.ConversionRate < 2 {
		recommendations = append(recommendations, domain.Recommendation{
			Title:  "Revisar landing page",
			Reason: "Taxa de conversão abaixo do padrão",
			Action: "Testar texto, CTA e velocidade da página",
		})
	}

	if m.CTR < 1 {
		recommendations = append(recommendations, domain.Recommendation{
			Title:  "Renovar criativos",
			Reason: "CTR baixo",
			Action: "Criar 2 ou 3 novos criativos e testar públicos",
		})
	}

	if m.CPCGrowth != nil && *m.CPCGrowth > 20 {
		recommendations = append(recommendations, domain.Recommendation{
			Title:  "Reduzir lances de palavras-chave",
			Reason: "CPC acima do normal",
			Action: "Baixar o lance das palavras-chave com custo alto e poucas conversões",
		})
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Title:  "Manter o plano atual",
			Reason: "Indicadores principais em bom nível",
			Action: "Testar 10-15% a mais de verba nas campanhas mais lucrativas",
		})
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return recommendations
}

// ProjectBudget estima o efeito de um ajuste percentual de verba
func ProjectBudget(m domain.BusinessMetrics, adjustment float64) domain.WhatIfProjection {
	elasticity := lowElasticity
	if m.ROAS >= 2 {
		elasticity = highElasticity
	}

	revenue := max(0, m.Revenue*(1+adjustment*elasticity/100))
	cost := max(0, m.Cost*(1+adjustment/100))
	profit := revenue - cost

	return domain.WhatIfProjection{
		BudgetAdjustment: adjustment,
		Elasticity:       elasticity,
		ProjectedRevenue: revenue,
		ProjectedCost:    cost,
		ProjectedProfit:  profit,
		ProjectedROI:     kpi.SafeDivide(profit, cost) * 100,
	}
}

// Forecast projeta a receita dos próximos meses a partir da receita diária estimada (custo × ROAS)
func Forecast(trends []domain.TrendPoint, roas float64, now time.Time) []domain.ForecastPoint {
	if len(trends) == 0 {
		return []domain.ForecastPoint{}
	}

	daily := make([]float64, len(trends))
	var total float64
	for i, point := range trends {
		daily[i] = point.Cost * roas
		total += daily[i]
	}
	average := total / float64(len(daily))

	var slope float64
	if len(daily) > 1 {
		slope = (daily[len(daily)-1] - daily[0]) / float64(len(daily)-1)
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	forecast := make([]domain.ForecastPoint, 0, forecastMonths)
	for offset := 1; offset <= forecastMonths; offset++ {
		revenue := average*daysPerMonth + slope*daysPerMonth*float64(offset)
		forecast = append(forecast, domain.ForecastPoint{
			Month:   firstOfMonth.AddDate(0, offset, 0).Format("2006-01"),
			Revenue: max(0, revenue),
		})
	}

	return forecast
}

func BuildFunnel(summary domain.DashboardSummary) []domain.FunnelStage {
	return []domain.FunnelStage{
		{Stage: "impressions", Value: summary.TotalImpressions},
		{Stage: "clicks", Value: summary.TotalClicks},
		{Stage: "conversions", Value: summary.TotalConversions},
	}
}

// RankCampaigns ordena as campanhas pela receita estimada (investimento × ROAS × fator da plataforma)
func RankCampaigns(campaigns []domain.RecentCampaign, roas float64) []domain.CampaignRevenueRank {
	ranking := make([]domain.CampaignRevenueRank, 0, len(campaigns))
	for _, c := range campaigns {
		factor, ok := platformMultiplier[c.Platform]
		if !ok {
			factor = 1
		}

		ranking = append(ranking, domain.CampaignRevenueRank{
			ID:               c.ID,
			Name:             shortName(c.Name),
			Platform:         c.Platform,
			Spending:         kpi.Round(c.Spending, 0),
			EstimatedRevenue: kpi.Round(c.Spending*roas*factor, 0),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].EstimatedRevenue > ranking[j].EstimatedRevenue
	})

	if len(ranking) > topRankedCampaigns {
		ranking = ranking[:topRankedCampaigns]
	}

	return ranking
}

func shortName(name string) string {
	if utf8.RuneCountInString(name) <= maxCampaignName {
		return name
	}
	return string([]rune(name)[:maxCampaignName]) + "..."
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
