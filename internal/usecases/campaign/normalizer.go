package campaign

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/kpi"
)

var hundred = decimal.NewFromInt(100)

// SumMetrics soma exatamente as linhas recebidas, sem nenhum filtro adicional
func SumMetrics(rows []domain.MetricRow) domain.MetricTotals {
	var totals domain.MetricTotals
	for _, row := range rows {
		totals.Add(row)
	}
	return totals
}

// NormalizeCampaign agrega as métricas já filtradas pelo chamador e anexa ROAS e CTR.
// Linhas fora da janela desejada não devem ser passadas aqui.
func NormalizeCampaign(c *domain.Campaign, rows []domain.MetricRow) domain.NormalizedCampaign {
	totals := SumMetrics(rows)

	spend := totals.Spend.InexactFloat64()
	revenue := totals.Revenue.InexactFloat64()

	return domain.NormalizedCampaign{
		ID:          c.ID,
		Name:        c.Name,
		Platform:    c.Platform,
		Status:      c.Status,
		Budget:      c.Budget.Round(2).InexactFloat64(),
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		ExternalID:  c.ExternalID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Spend:       totals.Spend.Round(2).InexactFloat64(),
		Revenue:     totals.Revenue.Round(2).InexactFloat64(),
		Clicks:      totals.Clicks,
		Impressions: totals.Impressions,
		Conversions: totals.Conversions,
		ROAS:        kpi.Round(kpi.ROAS(revenue, spend), 2),
		CTR:         kpi.Round(kpi.CTR(float64(totals.Clicks), float64(totals.Impressions)), 2),
	}
}

// BudgetUtilization = investimento / orçamento × 100 com uma casa; nil sem orçamento
func BudgetUtilization(spend, budget decimal.Decimal) *float64 {
	if !budget.IsPositive() {
		return nil
	}
	utilization := spend.Div(budget).Mul(hundred).Round(1).InexactFloat64()
	return &utilization
}

// DailyMetric recalcula as razões de um dia a partir dos valores brutos; as colunas gravadas são ignoradas
func DailyMetric(row domain.MetricRow) domain.CampaignDailyMetric {
	spend := row.Spend.InexactFloat64()
	revenue := row.Revenue.InexactFloat64()
	impressions := float64(row.Impressions)
	clicks := float64(row.Clicks)

	return domain.CampaignDailyMetric{
		Date:           row.Date.Format(domain.DateLayout),
		Impressions:    row.Impressions,
		Clicks:         row.Clicks,
		Spend:          row.Spend.Round(2).InexactFloat64(),
		Conversions:    row.Conversions,
		Revenue:        row.Revenue.Round(2).InexactFloat64(),
		CTR:            kpi.Round(kpi.CTR(clicks, impressions), 2),
		CPC:            kpi.Round(kpi.CPC(spend, clicks), 2),
		CPM:            kpi.Round(kpi.CPM(spend, impressions), 2),
		ROAS:           kpi.Round(kpi.ROAS(revenue, spend), 2),
		ConversionRate: kpi.Round(kpi.ConversionRate(float64(row.Conversions), clicks), 2),
	}
}

// GroupByCampaign separa as linhas diárias por campanha
func GroupByCampaign(rows []domain.MetricRow) map[string][]domain.MetricRow {
	grouped := make(map[string][]domain.MetricRow)
	for _, row := range rows {
		grouped[row.CampaignID] = append(grouped[row.CampaignID], row)
	}
	return grouped
}
